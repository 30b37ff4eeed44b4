package signals

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSignal_GetSet verifies Get observes Set and Update.
func TestSignal_GetSet(t *testing.T) {
	s := NewSignal(0)
	assert.Equal(t, 0, s.Get())

	s.Set(3)
	assert.Equal(t, 3, s.Get())

	s.Update(func(v int) int { return v + 1 })
	assert.Equal(t, 4, s.Get())
}

// TestSignal_NotifiesSubscribers verifies every Set notifies subscribers.
func TestSignal_NotifiesSubscribers(t *testing.T) {
	s := NewSignal(false)
	var calls int
	s.Subscribe(func() { calls++ })

	s.Set(true)
	s.Set(true)

	assert.Equal(t, 2, calls)
}

// TestSignal_UnsubscribeRemovesOnlyThatCallback verifies unsubscribe targets its own callback after earlier removals.
func TestSignal_UnsubscribeRemovesOnlyThatCallback(t *testing.T) {
	s := NewSignal("a")
	var got []string
	unsubFirst := s.Subscribe(func() { got = append(got, "first") })
	unsubSecond := s.Subscribe(func() { got = append(got, "second") })
	s.Subscribe(func() { got = append(got, "third") })

	unsubFirst()
	// After the first removal the second subscriber moved to index 0;
	// its unsubscribe must still find it.
	unsubSecond()
	unsubSecond()
	s.Set("b")

	assert.Equal(t, []string{"third"}, got)
}

// TestSignal_SubscriberMaySetDuringNotify verifies subscribers can write back without deadlocking.
func TestSignal_SubscriberMaySetDuringNotify(t *testing.T) {
	s := NewSignal(0)
	s.Subscribe(func() {
		if s.Get() < 3 {
			s.Set(s.Get() + 1)
		}
	})

	s.Set(1)

	assert.Equal(t, 3, s.Get())
}

// TestSignal_ConcurrentAccess verifies concurrent updates are not lost.
func TestSignal_ConcurrentAccess(t *testing.T) {
	s := NewSignal(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Update(func(v int) int { return v + 1 })
			_ = s.Get()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, s.Get())
}
