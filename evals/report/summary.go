/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"
	"strings"

	"github.com/Santhosh-Hanabi/tensorzero/evals"
)

// Summary walks a NamespacedObserver tree and renders a markdown table
// with one row per namespace that observed at least one item: the pass
// rate, the mean grade with sample standard deviation, and a flag for
// rows below the threshold. The second return value reports whether any
// row fell below the threshold, for use as a process exit condition.
func Summary(obs *evals.NamespacedObserver[*evals.ResultCollector], threshold float64) (string, bool) {
	var sb strings.Builder
	table := NewMarkdownTable([]string{"Namespace", "Items", "Pass Rate", "Mean Grade", "Std Dev", "Status"}, &sb)

	belowThreshold := false
	var failures []string

	obs.Walk(func(name string, collector *evals.ResultCollector) {
		iterations := collector.Total()
		if iterations == 0 {
			return
		}

		passRate := collector.PassRate()
		mean, stddev := collector.MeanGrade()
		grades := collector.Grades()

		gradeCell := "-"
		stddevCell := "-"
		if len(grades) > 0 {
			gradeCell = fmt.Sprintf("%.3f", mean)
			stddevCell = fmt.Sprintf("%.3f", stddev)
		}

		status := "ok"
		if passRate < threshold || (len(grades) > 0 && mean < threshold) {
			status = "below threshold"
			belowThreshold = true
		}

		_ = table.Append([]string{
			name,
			fmt.Sprintf("%d", iterations),
			fmt.Sprintf("%.1f%%", passRate*100),
			gradeCell,
			stddevCell,
			status,
		})

		for _, failure := range collector.Failures() {
			failures = append(failures, fmt.Sprintf("%s: %s", name, failure))
		}
	})

	_ = table.Render()

	if len(failures) > 0 {
		sb.WriteString("\nFailures:\n")
		for _, failure := range failures {
			sb.WriteString("  - ")
			sb.WriteString(failure)
			sb.WriteString("\n")
		}
	}

	return sb.String(), belowThreshold
}
