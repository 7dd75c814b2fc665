package bus

import (
	"sync"
	"testing"
)

func TestEmitterDeliversToAllSubscribers(t *testing.T) {
	emitter := NewEmitter()

	var got []string
	emitter.Subscribe(TopicStockChanged, func(payload string) {
		got = append(got, "first:"+payload)
	})
	emitter.Subscribe(TopicStockChanged, func(payload string) {
		got = append(got, "second:"+payload)
	})

	emitter.Publish(TopicStockChanged, "p1")

	if len(got) != 2 {
		t.Fatalf("expected 2 deliveries, got %v", got)
	}
}

func TestEmitterScopesByTopic(t *testing.T) {
	emitter := NewEmitter()

	stockSignals := 0
	cartSignals := 0
	emitter.Subscribe(TopicStockChanged, func(string) { stockSignals++ })
	emitter.Subscribe(TopicCartChanged, func(string) { cartSignals++ })

	emitter.Publish(TopicCartChanged, "user-1")

	if stockSignals != 0 || cartSignals != 1 {
		t.Fatalf("stock=%d cart=%d, want 0/1", stockSignals, cartSignals)
	}
}

func TestEmitterUnsubscribeStopsDelivery(t *testing.T) {
	emitter := NewEmitter()

	delivered := 0
	unsubscribe := emitter.Subscribe(TopicStockChanged, func(string) { delivered++ })

	emitter.Publish(TopicStockChanged, "")
	unsubscribe()
	emitter.Publish(TopicStockChanged, "")

	if delivered != 1 {
		t.Fatalf("delivered %d signals, want 1", delivered)
	}
}

func TestEmitterNoReplayForLateSubscribers(t *testing.T) {
	emitter := NewEmitter()

	emitter.Publish(TopicCartChanged, "early")

	delivered := 0
	emitter.Subscribe(TopicCartChanged, func(string) { delivered++ })

	if delivered != 0 {
		t.Fatalf("late subscriber received a replayed signal")
	}
}

func TestEmitterConcurrentPublish(t *testing.T) {
	emitter := NewEmitter()

	var mu sync.Mutex
	delivered := 0
	emitter.Subscribe(TopicStockChanged, func(string) {
		mu.Lock()
		delivered++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			emitter.Publish(TopicStockChanged, "")
		}()
	}
	wg.Wait()

	if delivered != 20 {
		t.Fatalf("delivered %d signals, want 20", delivered)
	}
}
