package appcomponents

import (
	"strconv"

	"github.com/vcrobe/clickcounter/runtime"
	"github.com/vcrobe/clickcounter/signals"
	"github.com/vcrobe/clickcounter/vdom"
)

// Values of the data-test attribute on each element ClickCounter renders.
const (
	TestAttrApp             = "component-app"
	TestAttrCounterDisplay  = "counter-display"
	TestAttrCount           = "count"
	TestAttrErrorMessage    = "error-message"
	TestAttrIncrementButton = "increment-button"
	TestAttrDecrementButton = "decrement-button"
)

const (
	// CounterLabel precedes the current count in the heading.
	CounterLabel = "The count is currently"
	// ErrorMessage is always rendered; the "hidden" class decides whether it shows.
	ErrorMessage = "The counter cannot go below 0"

	classError  = "error"
	classHidden = "hidden"
)

// ClickCounter shows a count with increment and decrement buttons and an
// error message when a decrement at zero is refused.
type ClickCounter struct {
	runtime.ComponentBase

	state       *signals.Signal[CounterState]
	unsubscribe func()
}

var (
	_ runtime.Component   = (*ClickCounter)(nil)
	_ runtime.Initializer = (*ClickCounter)(nil)
	_ runtime.Cleaner     = (*ClickCounter)(nil)
)

// NewClickCounter returns a counter in its initial state, ready to mount.
func NewClickCounter() *ClickCounter {
	return &ClickCounter{state: signals.NewSignal(CounterState{})}
}

func (c *ClickCounter) signal() *signals.Signal[CounterState] {
	if c.state == nil {
		c.state = signals.NewSignal(CounterState{})
	}
	return c.state
}

// OnInit subscribes the component to its own state so every transition
// triggers exactly one re-render.
func (c *ClickCounter) OnInit() {
	if c.unsubscribe != nil {
		return
	}
	c.unsubscribe = c.signal().Subscribe(c.StateHasChanged)
}

// OnDestroy drops the state subscription.
func (c *ClickCounter) OnDestroy() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

// State returns the current state.
func (c *ClickCounter) State() CounterState {
	return c.signal().Get()
}

// Count returns the current count.
func (c *ClickCounter) Count() int {
	return c.State().Count
}

// ErrorVisible reports whether the below-zero message is showing.
func (c *ClickCounter) ErrorVisible() bool {
	return c.State().ErrorVisible
}

// Increment clears the error and adds one to the count.
func (c *ClickCounter) Increment() {
	c.signal().Update(CounterState.Increment)
}

// Decrement subtracts one from the count, or shows the error when the count is zero.
func (c *ClickCounter) Decrement() {
	c.signal().Update(CounterState.Decrement)
}

// Render builds the view from the current state.
func (c *ClickCounter) Render(r runtime.Renderer) *vdom.VNode {
	s := c.State()

	errorClass := vdom.Class(classError, classHidden)
	if s.ErrorVisible {
		errorClass = vdom.Class(classError)
	}

	return vdom.Div(map[string]any{"data-test": TestAttrApp, "class": "App"},
		vdom.H1(map[string]any{"data-test": TestAttrCounterDisplay},
			vdom.Text(CounterLabel+" \u00a0"),
			vdom.Span(strconv.Itoa(s.Count), map[string]any{"data-test": TestAttrCount}),
		),
		vdom.Div(map[string]any{"data-test": TestAttrErrorMessage, "class": errorClass},
			vdom.Text(ErrorMessage),
		),
		vdom.Button("Increment counter", map[string]any{
			"data-test": TestAttrIncrementButton,
			"onClick":   c.Increment,
		}),
		vdom.Button("Decrement Counter", map[string]any{
			"data-test": TestAttrDecrementButton,
			"onClick":   c.Decrement,
		}),
	)
}
