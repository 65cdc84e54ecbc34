/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package analytics queries the gateway's ClickHouse database to
// compare how inference variants perform on a feedback metric.
//
// The gateway records every inference in ChatInference or
// JsonInference and every feedback value in FloatMetricFeedback or
// BooleanMetricFeedback, keyed by inference id. VariantPerformance
// joins the two and aggregates per variant, and RenderVariantTable
// formats the result for terminal output.
package analytics
