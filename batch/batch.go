/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package batch fans work out over a bounded number of concurrent
// tasks. It exists for the recipes' many-small-HTTP-calls workload:
// each item is independent, completion order does not matter, and one
// item failing must not sink the rest of the batch.
package batch

import (
	"context"
	"fmt"

	"github.com/chainguard-dev/clog"
	"golang.org/x/sync/errgroup"
)

// Run applies fn to every item with at most limit tasks in flight and
// returns the results positionally aligned with items. A failed item
// (fn returned an error or panicked) is logged and leaves a nil slot;
// Run itself never fails. A limit of zero or less means unbounded.
func Run[I, O any](ctx context.Context, items []I, limit int, fn func(context.Context, I) (*O, error)) []*O {
	results := make([]*O, len(items))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, item := range items {
		g.Go(func() error {
			out, err := safeCall(ctx, item, fn)
			if err != nil {
				clog.FromContext(ctx).With("index", i).
					With("error", err.Error()).
					Warn("Batch item failed, continuing without it")
				return nil
			}
			results[i] = out
			return nil
		})
	}

	// Tasks never return errors, so this only waits.
	_ = g.Wait()
	return results
}

// safeCall invokes fn, converting a panic into an error so a single
// bad item cannot take down the whole batch.
func safeCall[I, O any](ctx context.Context, item I, fn func(context.Context, I) (*O, error)) (out *O, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(ctx, item)
}
