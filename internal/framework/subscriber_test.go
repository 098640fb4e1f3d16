package framework

import (
	"context"
	"sync"
	"testing"
	"time"
)

type fakeSource struct {
	mu       sync.Mutex
	messages []*Message
}

func (f *fakeSource) Consume(queue string, timeout time.Duration, ttr time.Duration) (*Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		// 模拟长轮询超时
		time.Sleep(time.Millisecond)
		return nil, nil
	}
	msg := f.messages[0]
	f.messages = f.messages[1:]
	return msg, nil
}

func (f *fakeSource) Ack(queue string, jobID string) error { return nil }

func TestSubscriberForwardsMessages(t *testing.T) {
	source := &fakeSource{messages: []*Message{
		{ID: "a", Queue: "q"},
		{ID: "b", Queue: "q"},
	}}

	cfg := &SubscriberConfig{
		QueueName:    "q",
		Concurrency:  1,
		Timeout:      time.Millisecond,
		TTR:          time.Second,
		Rate:         time.Millisecond,
		ErrorBackoff: time.Millisecond,
	}

	s := NewSubscriber(cfg, source, nopLogger{})
	inputChan := make(chan *Message, 4)

	if err := s.Start(context.Background(), inputChan); err != nil {
		t.Fatalf("Start: %v", err)
	}

	got := make([]string, 0, 2)
	deadline := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case msg := <-inputChan:
			got = append(got, msg.ID)
		case <-deadline:
			t.Fatalf("timed out waiting for messages, got %v", got)
		}
	}

	s.Stop()
	s.Wait()

	if got[0] != "a" || got[1] != "b" {
		t.Fatalf("messages out of order: %v", got)
	}
}

func TestSubscriberStopsWhileIdle(t *testing.T) {
	source := &fakeSource{}
	cfg := &SubscriberConfig{
		QueueName:    "q",
		Concurrency:  2,
		Timeout:      time.Millisecond,
		TTR:          time.Second,
		Rate:         time.Millisecond,
		ErrorBackoff: time.Millisecond,
	}

	s := NewSubscriber(cfg, source, nopLogger{})
	inputChan := make(chan *Message, 1)

	if err := s.Start(context.Background(), inputChan); err != nil {
		t.Fatalf("Start: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	s.Stop()

	done := make(chan struct{})
	go func() {
		s.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("subscriber did not exit after Stop")
	}
}
