/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package batch_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Santhosh-Hanabi/tensorzero/batch"
	"github.com/google/go-cmp/cmp"
)

func TestRun_PreservesOrder(t *testing.T) {
	t.Parallel()

	items := []int{5, 4, 3, 2, 1}
	got := batch.Run(context.Background(), items, 2, func(_ context.Context, n int) (*string, error) {
		// Later items finish first to exercise out-of-order completion.
		time.Sleep(time.Duration(n) * time.Millisecond)
		s := fmt.Sprintf("item-%d", n)
		return &s, nil
	})

	if len(got) != len(items) {
		t.Fatalf("len(results) = %d, want %d", len(got), len(items))
	}
	for i, n := range items {
		want := fmt.Sprintf("item-%d", n)
		if got[i] == nil || *got[i] != want {
			t.Errorf("results[%d] = %v, want %q", i, got[i], want)
		}
	}
}

func TestRun_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	const limit = 3
	var inFlight, peak atomic.Int32
	var mu sync.Mutex

	items := make([]int, 20)
	batch.Run(context.Background(), items, limit, func(_ context.Context, _ int) (*struct{}, error) {
		n := inFlight.Add(1)
		mu.Lock()
		if n > peak.Load() {
			peak.Store(n)
		}
		mu.Unlock()
		time.Sleep(2 * time.Millisecond)
		inFlight.Add(-1)
		return &struct{}{}, nil
	})

	if p := peak.Load(); p > limit {
		t.Errorf("peak concurrency = %d, want <= %d", p, limit)
	}
}

func TestRun_FailuresYieldNilSlots(t *testing.T) {
	t.Parallel()

	items := []int{0, 1, 2, 3}
	got := batch.Run(context.Background(), items, 2, func(_ context.Context, n int) (*int, error) {
		if n%2 == 1 {
			return nil, errors.New("transient failure")
		}
		v := n * 10
		return &v, nil
	})

	want := []*int{ptr(0), nil, ptr(20), nil}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_PanicIsContained(t *testing.T) {
	t.Parallel()

	items := []int{1, 2, 3}
	got := batch.Run(context.Background(), items, 0, func(_ context.Context, n int) (*int, error) {
		if n == 2 {
			panic("boom")
		}
		return &n, nil
	})

	if got[0] == nil || got[2] == nil {
		t.Error("healthy items should have results")
	}
	if got[1] != nil {
		t.Errorf("panicked item should be nil, got %v", *got[1])
	}
}

func TestRun_EmptyInput(t *testing.T) {
	t.Parallel()

	got := batch.Run(context.Background(), nil, 4, func(_ context.Context, _ int) (*int, error) {
		t.Error("fn should not be called")
		return nil, nil
	})
	if len(got) != 0 {
		t.Errorf("len(results) = %d, want 0", len(got))
	}
}

func ptr[T any](v T) *T { return &v }
