/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package analytics

import (
	"fmt"
	"strings"

	"github.com/Santhosh-Hanabi/tensorzero/evals/report"
)

// RenderVariantTable formats variant statistics as a markdown table
// with a 95% confidence interval per variant.
func RenderVariantTable(stats []VariantStats) string {
	var sb strings.Builder
	table := report.NewMarkdownTable([]string{"Variant", "Inferences", "Mean", "95% CI"}, &sb)

	for _, s := range stats {
		ci := 1.96 * s.Stderr()
		_ = table.Append([]string{
			s.Variant,
			fmt.Sprintf("%d", s.Count),
			fmt.Sprintf("%.4f", s.Mean),
			fmt.Sprintf("%.4f .. %.4f", s.Mean-ci, s.Mean+ci),
		})
	}
	_ = table.Render()

	return sb.String()
}
