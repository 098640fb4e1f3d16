package framework

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bitleak/lmstfy/client"

	"github.com/areed15ev/shipping-calculator/pkg/lmstfyx"
)

type nopLogger struct{}

func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}

type fakeAcker struct {
	mu    sync.Mutex
	acked []string
}

func (f *fakeAcker) Ack(queue string, jobID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acked = append(f.acked, jobID)
	return nil
}

func (f *fakeAcker) ackedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.acked))
	copy(out, f.acked)
	return out
}

func procReturning(action lmstfyx.JobRespStatus) lmstfyx.Proc {
	return func(ctx context.Context, job *client.Job) *lmstfyx.JobResp {
		return &lmstfyx.JobResp{Action: action}
	}
}

func testProcessorConfig() *ProcessorConfig {
	return &ProcessorConfig{Concurrency: 1, BufferSize: 8, Timeout: time.Second}
}

func TestProcessorAcksOnSuccess(t *testing.T) {
	acker := &fakeAcker{}
	p := NewProcessor(testProcessorConfig(), procReturning(lmstfyx.JobRespStatusSuccess), acker, nopLogger{})

	p.process(context.Background(), &Message{ID: "m1", Queue: "q"}, 0)

	if ids := acker.ackedIDs(); len(ids) != 1 || ids[0] != "m1" {
		t.Fatalf("expected ack for m1, got %v", ids)
	}
}

func TestProcessorAcksOnBury(t *testing.T) {
	// Bury 以 ACK 落地，避免无限重投
	acker := &fakeAcker{}
	p := NewProcessor(testProcessorConfig(), procReturning(lmstfyx.JobRespStatusBury), acker, nopLogger{})

	p.process(context.Background(), &Message{ID: "m2", Queue: "q"}, 0)

	if ids := acker.ackedIDs(); len(ids) != 1 || ids[0] != "m2" {
		t.Fatalf("expected ack for buried m2, got %v", ids)
	}
}

func TestProcessorSkipsAckOnRelease(t *testing.T) {
	// Release 不确认，等待 TTR 到期重投
	acker := &fakeAcker{}
	p := NewProcessor(testProcessorConfig(), procReturning(lmstfyx.JobRespStatusRelease), acker, nopLogger{})

	p.process(context.Background(), &Message{ID: "m3", Queue: "q"}, 0)

	if ids := acker.ackedIDs(); len(ids) != 0 {
		t.Fatalf("release must not ack, got %v", ids)
	}
}

func TestProcessorDrainsOnShutdown(t *testing.T) {
	acker := &fakeAcker{}

	var mu sync.Mutex
	processed := 0
	proc := func(ctx context.Context, job *client.Job) *lmstfyx.JobResp {
		mu.Lock()
		processed++
		mu.Unlock()
		return &lmstfyx.JobResp{Action: lmstfyx.JobRespStatusSuccess}
	}

	p := NewProcessor(testProcessorConfig(), proc, acker, nopLogger{})

	inputChan := make(chan *Message, 8)
	for i := 0; i < 5; i++ {
		inputChan <- &Message{ID: "d", Queue: "q"}
	}

	if err := p.Start(context.Background(), inputChan); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// 留一点时间进入处理循环，再触发 Drain
	time.Sleep(50 * time.Millisecond)
	p.SignalShutdown()
	p.Wait()

	mu.Lock()
	defer mu.Unlock()
	if processed != 5 {
		t.Fatalf("expected 5 messages drained, got %d", processed)
	}
}
