// ABOUTME: Tests for the typed event bus
// ABOUTME: Covers ordering, unsubscribe, re-entrant subscription, and concurrent access

package eventbus

import (
	"slices"
	"sync"
	"testing"
)

func TestBus_PublishSubscribe(t *testing.T) {
	t.Parallel()

	bus := New[string]()
	var received string

	bus.Subscribe(func(s string) {
		received = s
	})

	bus.Publish("hello")

	if received != "hello" {
		t.Errorf("received = %q, want %q", received, "hello")
	}
}

func TestBus_SubscriptionOrder(t *testing.T) {
	t.Parallel()

	bus := New[int]()
	var order []int

	for i := range 5 {
		bus.Subscribe(func(n int) {
			order = append(order, i*10+n)
		})
	}

	bus.Publish(1)

	want := []int{1, 11, 21, 31, 41}
	if !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	t.Parallel()

	bus := New[string]()
	var calls []string

	bus.Subscribe(func(string) { calls = append(calls, "a") })
	unsub := bus.Subscribe(func(string) { calls = append(calls, "b") })
	bus.Subscribe(func(string) { calls = append(calls, "c") })

	unsub()
	unsub()
	bus.Publish("test")

	if !slices.Equal(calls, []string{"a", "c"}) {
		t.Errorf("calls = %v, want [a c]", calls)
	}
}

func TestBus_SubscribeDuringPublish(t *testing.T) {
	t.Parallel()

	bus := New[int]()
	var late int

	bus.Subscribe(func(int) {
		bus.Subscribe(func(n int) { late += n })
	})

	bus.Publish(5)
	if late != 0 {
		t.Errorf("handler added during Publish ran in the same Publish")
	}
	bus.Publish(7)
	if late != 7 {
		t.Errorf("late = %d, want 7", late)
	}
}

func TestBus_Count(t *testing.T) {
	t.Parallel()

	bus := New[int]()

	unsub1 := bus.Subscribe(func(_ int) {})
	bus.Subscribe(func(_ int) {})

	if bus.Count() != 2 {
		t.Errorf("Count() = %d, want 2", bus.Count())
	}

	unsub1()
	if bus.Count() != 1 {
		t.Errorf("Count() = %d, want 1", bus.Count())
	}
}

func TestBus_Concurrent(t *testing.T) {
	t.Parallel()

	bus := New[int]()
	var mu sync.Mutex
	calls := 0

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unsub := bus.Subscribe(func(n int) {
				mu.Lock()
				calls += n + 1
				mu.Unlock()
			})
			bus.Publish(0)
			unsub()
		}()
	}
	wg.Wait()

	if bus.Count() != 0 {
		t.Errorf("Count() = %d after all unsubscribed, want 0", bus.Count())
	}
	mu.Lock()
	defer mu.Unlock()
	if calls < 8 {
		t.Errorf("calls = %d, want at least 8", calls)
	}
}
