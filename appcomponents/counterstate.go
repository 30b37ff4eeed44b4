package appcomponents

import "math"

// CounterState is the complete state of a ClickCounter.
// The zero value is the initial state: count 0, no error shown.
type CounterState struct {
	Count int
	// ErrorVisible is set when the last decrement was refused because
	// Count was already 0. Only Increment clears it.
	ErrorVisible bool
}

// Increment returns the state after the increment control is pressed.
// The count saturates at math.MaxInt rather than wrapping negative.
func (s CounterState) Increment() CounterState {
	if s.Count == math.MaxInt {
		return CounterState{Count: s.Count}
	}
	return CounterState{Count: s.Count + 1}
}

// Decrement returns the state after the decrement control is pressed.
// Count never goes below zero; a refused decrement raises ErrorVisible instead.
func (s CounterState) Decrement() CounterState {
	if s.Count > 0 {
		s.Count--
		return s
	}
	s.ErrorVisible = true
	return s
}
