package framework

import (
	"context"
	"errors"
	"testing"
)

func TestPreProcessorRunsInOrder(t *testing.T) {
	var order []int
	p := NewPreProcessor([]ProcessorFunc{
		func(ctx context.Context) error { order = append(order, 1); return nil },
		func(ctx context.Context) error { order = append(order, 2); return nil },
		func(ctx context.Context) error { order = append(order, 3); return nil },
	})

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("functions ran out of order: %v", order)
	}
}

func TestPreProcessorStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	var ran []int
	p := NewPreProcessor([]ProcessorFunc{
		func(ctx context.Context) error { ran = append(ran, 1); return nil },
		func(ctx context.Context) error { ran = append(ran, 2); return boom },
		func(ctx context.Context) error { ran = append(ran, 3); return nil },
	})

	err := p.Run(context.Background())
	if err == nil || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped boom error, got %v", err)
	}
	if len(ran) != 2 {
		t.Fatalf("chain should stop at failing function, ran %v", ran)
	}
}
