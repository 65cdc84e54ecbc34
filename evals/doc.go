/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package evals provides observers for aggregating evaluation outcomes
// across a batch of inferences.
//
// Recipes report each scored inference to an Observer: Increment once
// per evaluated item, then either Fail with a message or Grade with a
// score. Observers compose:
//
//   - ResultCollector records failures and grades for reporting
//   - MetricsObserver exports Prometheus counters and gauges
//   - NamespacedObserver fans a tree of observers out by path, so
//     results can be grouped by variant and metric
//
// A typical recipe wires them together as:
//
//	root := evals.NewNamespacedObserver(func(string) *evals.ResultCollector {
//	    return evals.NewResultCollector(evals.NewLogObserver(ctx))
//	})
//	obs := root.Child(variantName).Child("haiku_score")
//	for _, item := range scored {
//	    obs.Increment()
//	    if item.Err != nil {
//	        obs.Fail(item.Err.Error())
//	        continue
//	    }
//	    obs.Grade(item.Score, item.Reasoning)
//	}
//	summary, belowThreshold := report.Summary(root, 0.7)
package evals
