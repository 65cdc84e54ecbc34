/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package evals

// Fanout returns an Observer that forwards every call to all of the
// given observers. Total reports the largest total among them, since
// observers like MetricsObserver do not count.
func Fanout(observers ...Observer) Observer {
	return fanout(observers)
}

type fanout []Observer

func (f fanout) Fail(msg string) {
	for _, o := range f {
		o.Fail(msg)
	}
}

func (f fanout) Log(msg string) {
	for _, o := range f {
		o.Log(msg)
	}
}

func (f fanout) Grade(score float64, reasoning string) {
	for _, o := range f {
		o.Grade(score, reasoning)
	}
}

func (f fanout) Increment() {
	for _, o := range f {
		o.Increment()
	}
}

func (f fanout) Total() int64 {
	var total int64
	for _, o := range f {
		total = max(total, o.Total())
	}
	return total
}
