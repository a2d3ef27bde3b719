package event

import (
	"sync"
	"testing"
	"time"
)

func TestEventBus_PublishSubscribe(t *testing.T) {
	bus := NewEventBus()
	defer bus.Shutdown()

	done := make(chan interface{}, 1)
	bus.Subscribe(PhotoUploaded, func(payload interface{}) {
		done <- payload
	})

	bus.Publish(PhotoUploaded, "载荷")

	select {
	case got := <-done:
		if got != "载荷" {
			t.Errorf("载荷不符: %v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("等待事件超时")
	}
}

func TestEventBus_MultipleHandlers(t *testing.T) {
	bus := NewEventBus()

	var mu sync.Mutex
	counts := make(map[string]int)
	var wg sync.WaitGroup
	wg.Add(2)

	for _, name := range []string{"处理器A", "处理器B"} {
		name := name
		bus.Subscribe(PhotoDeleted, func(payload interface{}) {
			mu.Lock()
			counts[name]++
			mu.Unlock()
			wg.Done()
		})
	}

	bus.Publish(PhotoDeleted, nil)
	bus.Shutdown() // Shutdown 等待 worker 处理完积压事件

	wg.Wait()
	mu.Lock()
	defer mu.Unlock()
	for name, n := range counts {
		if n != 1 {
			t.Errorf("%s 应恰好执行一次, got %d", name, n)
		}
	}
}

func TestEventBus_TopicIsolation(t *testing.T) {
	bus := NewEventBus()

	got := make(chan Topic, 2)
	bus.Subscribe(PhotoMoved, func(payload interface{}) {
		got <- PhotoMoved
	})
	bus.Subscribe(PhotoCopied, func(payload interface{}) {
		got <- PhotoCopied
	})

	bus.Publish(PhotoMoved, nil)
	bus.Shutdown()

	select {
	case topic := <-got:
		if topic != PhotoMoved {
			t.Errorf("收到了不相关主题的事件: %s", topic)
		}
	default:
		t.Fatal("订阅者未收到事件")
	}

	select {
	case topic := <-got:
		t.Errorf("不应再有事件投递: %s", topic)
	default:
	}
}
