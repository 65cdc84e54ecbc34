/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package evals

import (
	"math"
	"sync"
)

// Grade represents a grade with score and reasoning
type Grade struct {
	Score     float64
	Reasoning string
}

// ResultCollector wraps an Observer to collect failure messages and grades
type ResultCollector struct {
	inner    Observer
	failures []string
	grades   []Grade
	mu       sync.Mutex
}

// NewResultCollector creates a new ResultCollector that wraps the given Observer
func NewResultCollector(inner Observer) *ResultCollector {
	return &ResultCollector{
		inner:    inner,
		failures: make([]string, 0),
		grades:   make([]Grade, 0),
	}
}

// Fail logs the failure message and stores it in the failures list
func (r *ResultCollector) Fail(msg string) {
	// Log rather than Fail so the inner observer does not double-count
	r.inner.Log(msg)

	r.mu.Lock()
	r.failures = append(r.failures, msg)
	r.mu.Unlock()
}

// Log passes through to the inner observer
func (r *ResultCollector) Log(msg string) {
	r.inner.Log(msg)
}

// Grade passes through to the inner observer and stores the grade
func (r *ResultCollector) Grade(score float64, reasoning string) {
	r.inner.Grade(score, reasoning)

	r.mu.Lock()
	r.grades = append(r.grades, Grade{
		Score:     score,
		Reasoning: reasoning,
	})
	r.mu.Unlock()
}

// Increment passes through to the inner observer
func (r *ResultCollector) Increment() {
	r.inner.Increment()
}

// Total passes through to the inner observer
func (r *ResultCollector) Total() int64 {
	return r.inner.Total()
}

// Failures returns a copy of all collected failure messages
func (r *ResultCollector) Failures() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]string, len(r.failures))
	copy(result, r.failures)
	return result
}

// Grades returns a copy of all collected grades
func (r *ResultCollector) Grades() []Grade {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]Grade, len(r.grades))
	copy(result, r.grades)
	return result
}

// PassRate returns the fraction of observed items that did not fail.
// Returns 1.0 when nothing has been observed.
func (r *ResultCollector) PassRate() float64 {
	total := r.Total()
	if total == 0 {
		return 1.0
	}

	r.mu.Lock()
	failed := int64(len(r.failures))
	r.mu.Unlock()

	return float64(total-failed) / float64(total)
}

// MeanGrade returns the mean and sample standard deviation of collected
// grade scores. Both are 0 when no grades have been collected; the
// standard deviation is 0 for a single grade.
func (r *ResultCollector) MeanGrade() (mean, stddev float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.grades)
	if n == 0 {
		return 0, 0
	}

	var sum float64
	for _, g := range r.grades {
		sum += g.Score
	}
	mean = sum / float64(n)

	if n < 2 {
		return mean, 0
	}
	var sq float64
	for _, g := range r.grades {
		d := g.Score - mean
		sq += d * d
	}
	return mean, math.Sqrt(sq / float64(n-1))
}
