package appcomponents

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCounterState_IncrementsOnly verifies increments from the initial state count up without an error.
func TestCounterState_IncrementsOnly(t *testing.T) {
	var s CounterState
	for i := 1; i <= 25; i++ {
		s = s.Increment()
		assert.Equal(t, CounterState{Count: i}, s)
	}
}

// TestCounterState_DecrementAtZero verifies decrementing at 0 keeps 0 and raises the error.
func TestCounterState_DecrementAtZero(t *testing.T) {
	for _, start := range []CounterState{{}, {ErrorVisible: true}} {
		got := start.Decrement()
		assert.Equal(t, CounterState{Count: 0, ErrorVisible: true}, got)
	}
}

// TestCounterState_DecrementAboveZero verifies decrementing above 0 subtracts one and leaves the error flag alone.
func TestCounterState_DecrementAboveZero(t *testing.T) {
	tests := []struct {
		name  string
		start CounterState
		want  CounterState
	}{
		{"one", CounterState{Count: 1}, CounterState{Count: 0}},
		{"many", CounterState{Count: 42}, CounterState{Count: 41}},
		{"error left alone", CounterState{Count: 3, ErrorVisible: true}, CounterState{Count: 2, ErrorVisible: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.Decrement())
		})
	}
}

// TestCounterState_IncrementClearsError verifies increment clears a raised error.
func TestCounterState_IncrementClearsError(t *testing.T) {
	got := CounterState{Count: 0, ErrorVisible: true}.Increment()
	assert.Equal(t, CounterState{Count: 1}, got)
}

// TestCounterState_IncrementSaturatesAtMaxInt verifies the count stays at
// math.MaxInt instead of overflowing, and the error is still cleared.
func TestCounterState_IncrementSaturatesAtMaxInt(t *testing.T) {
	// Arrange
	start := CounterState{Count: math.MaxInt, ErrorVisible: true}

	// Act
	got := start.Increment()

	// Assert
	assert.Equal(t, CounterState{Count: math.MaxInt}, got)
	assert.GreaterOrEqual(t, got.Count, 0)
}

// TestCounterState_NeverNegative walks every sequence of up to ten presses
// and checks each intermediate state against a reference count.
func TestCounterState_NeverNegative(t *testing.T) {
	const maxLen = 10
	for n := 0; n <= maxLen; n++ {
		for mask := 0; mask < 1<<n; mask++ {
			var s CounterState
			want := 0
			for i := 0; i < n; i++ {
				prev := s
				if mask&(1<<i) != 0 {
					s = s.Increment()
					want++
					assert.False(t, s.ErrorVisible)
				} else {
					s = s.Decrement()
					if want > 0 {
						want--
						assert.Equal(t, prev.ErrorVisible, s.ErrorVisible)
					} else {
						assert.True(t, s.ErrorVisible)
					}
				}
				if !assert.GreaterOrEqual(t, s.Count, 0) || !assert.Equal(t, want, s.Count) {
					t.Fatalf("sequence mask=%b len=%d broke at step %d", mask, n, i)
				}
			}
		}
	}
}
