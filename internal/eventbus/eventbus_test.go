package eventbus

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lasso/internal/domain"
)

func TestPublishReachesSubscriber(t *testing.T) {
	bus := New()
	defer bus.Close()

	received := make(chan DomainEvent, 1)
	bus.Subscribe(EventSearchCompleted, func(e DomainEvent) {
		received <- e
	})

	bus.Publish(SearchCompletedEvent{Query: "at", MatchCount: 3, FirstLine: 7})

	select {
	case e := <-received:
		event, ok := e.(SearchCompletedEvent)
		require.True(t, ok)
		assert.Equal(t, "at", event.Query)
		assert.Equal(t, 3, event.MatchCount)
		assert.Equal(t, 7, event.FirstLine)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestSubscriberOnlySeesItsEventType(t *testing.T) {
	bus := New()
	defer bus.Close()

	var mu sync.Mutex
	var got []domain.EventType
	bus.Subscribe(EventSearchCleared, func(e DomainEvent) {
		mu.Lock()
		got = append(got, e.Type())
		mu.Unlock()
	})

	bus.Publish(SearchStartedEvent{Query: "x"})
	bus.Publish(SearchClearedEvent{})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1 && got[0] == EventSearchCleared
	}, 2*time.Second, 10*time.Millisecond)
}

func TestMultipleSubscribers(t *testing.T) {
	bus := New()
	defer bus.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		bus.Subscribe(EventContentChanged, func(DomainEvent) {
			wg.Done()
		})
	}

	bus.Publish(ContentChangedEvent{Path: "/tmp/doc.md"})

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("not all subscribers were notified")
	}
}

func TestHandlerPanicDoesNotKillDispatcher(t *testing.T) {
	bus := New()
	defer bus.Close()

	received := make(chan struct{}, 1)
	bus.Subscribe(EventError, func(DomainEvent) {
		panic("handler bug")
	})
	bus.Subscribe(EventDocumentLoaded, func(DomainEvent) {
		received <- struct{}{}
	})

	bus.Publish(ErrorEvent{Message: "boom"})
	bus.Publish(DocumentLoadedEvent{Path: "a.md", Lines: 10})

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher stopped after handler panic")
	}
}

func TestUnsubscribeRemovesOnlyItsHandler(t *testing.T) {
	bus := New()
	defer bus.Close()

	var mu sync.Mutex
	var fired []string
	record := func(name string) EventHandler {
		return func(DomainEvent) {
			mu.Lock()
			fired = append(fired, name)
			mu.Unlock()
		}
	}

	unsubA := bus.Subscribe(EventSearchCleared, record("a"))
	unsubB := bus.Subscribe(EventSearchCleared, record("b"))
	bus.Subscribe(EventSearchCleared, record("c"))

	unsubA()
	unsubB()

	// The sentinel event drains behind the first; once it arrives the
	// dispatcher has finished delivering SearchCleared
	done := make(chan struct{}, 1)
	bus.Subscribe(EventConfigSaved, func(DomainEvent) {
		done <- struct{}{}
	})

	bus.Publish(SearchClearedEvent{})
	bus.Publish(ConfigSavedEvent{})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sentinel event was not delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"c"}, fired, "surviving subscriber must still fire")
}

func TestCloseWaitsForInFlightDelivery(t *testing.T) {
	bus := New()

	started := make(chan struct{})
	var finished atomic.Bool
	bus.Subscribe(EventError, func(DomainEvent) {
		close(started)
		time.Sleep(50 * time.Millisecond)
		finished.Store(true)
	})

	bus.Publish(ErrorEvent{Message: "boom"})
	<-started
	bus.Close()

	assert.True(t, finished.Load(), "Close must not return while a handler is running")
}

func TestCloseIsIdempotent(t *testing.T) {
	bus := New()

	assert.NotPanics(t, func() {
		bus.Close()
		bus.Close()
	})
}
