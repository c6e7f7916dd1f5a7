// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// countingWorker tracks how many times Run was called.
type countingWorker struct {
	runCount atomic.Int32
}

func (m *countingWorker) Run(context.Context) {
	m.runCount.Add(1)
}

// blockingWorker returns only once ctx is cancelled.
type blockingWorker struct {
	stopped atomic.Bool
}

func (b *blockingWorker) Run(ctx context.Context) {
	<-ctx.Done()
	b.stopped.Store(true)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &countingWorker{}
	w2 := &countingWorker{}
	w3 := &countingWorker{}

	NewWorkers(w1, w2, w3).Run(context.Background())

	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.EqualValues(t, 1, w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// should not panic or block
	NewWorkers().Run(context.Background())
	(&Workers{}).Run(context.Background())
}

func TestNewWorkers_SkipsNil(t *testing.T) {
	var disabled Worker
	ws := NewWorkers(&countingWorker{}, disabled)

	assert.Equal(t, 1, ws.Len())
}

func TestWorkers_Run_WaitsForCancellation(t *testing.T) {
	w := &blockingWorker{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		NewWorkers(w).Run(ctx)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Run returned before cancellation")
	case <-time.After(20 * time.Millisecond):
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.True(t, w.stopped.Load())
}
