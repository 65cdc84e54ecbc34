/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package analytics

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/chainguard-dev/clog"
)

// MetricType selects which feedback table a metric lives in.
type MetricType string

const (
	// FloatMetric reads from FloatMetricFeedback.
	FloatMetric MetricType = "float"
	// BooleanMetric reads from BooleanMetricFeedback; values aggregate
	// as the fraction of true feedback.
	BooleanMetric MetricType = "boolean"
)

// FunctionType selects which inference table a function writes to.
type FunctionType string

const (
	// ChatFunction reads from ChatInference.
	ChatFunction FunctionType = "chat"
	// JSONFunction reads from JsonInference.
	JSONFunction FunctionType = "json"
)

// Config holds ClickHouse connection settings.
type Config struct {
	Addr     string
	Database string
	Username string
	Password string
}

// Open connects to ClickHouse and verifies the connection.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.Addr == "" {
		return nil, errors.New("clickhouse address is required")
	}

	db := clickhouse.OpenDB(&clickhouse.Options{
		Addr: []string{cfg.Addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
	})
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging clickhouse at %s: %w", cfg.Addr, err)
	}

	clog.FromContext(ctx).With("addr", cfg.Addr).With("database", cfg.Database).
		Debug("Connected to ClickHouse")
	return db, nil
}

// Query identifies which inferences and feedback values to aggregate.
type Query struct {
	// FunctionName filters inferences to one gateway function.
	FunctionName string
	// MetricName filters feedback to one metric.
	MetricName string
	// MetricType is the feedback value type, float or boolean.
	MetricType MetricType
	// FunctionType is the inference shape, chat or json.
	FunctionType FunctionType
}

// Validate reports whether the query names valid tables.
func (q Query) Validate() error {
	switch {
	case q.FunctionName == "":
		return errors.New("function name is required")
	case q.MetricName == "":
		return errors.New("metric name is required")
	}
	switch q.MetricType {
	case FloatMetric, BooleanMetric:
	default:
		return fmt.Errorf("unsupported metric type %q (expected float or boolean)", q.MetricType)
	}
	switch q.FunctionType {
	case ChatFunction, JSONFunction:
	default:
		return fmt.Errorf("unsupported function type %q (expected chat or json)", q.FunctionType)
	}
	return nil
}

// inferenceTable maps the function type to its ClickHouse table.
func (q Query) inferenceTable() string {
	if q.FunctionType == JSONFunction {
		return "JsonInference"
	}
	return "ChatInference"
}

// feedbackColumns maps the metric type to its table and value expression.
func (q Query) feedbackColumns() (table, valueExpr string) {
	if q.MetricType == BooleanMetric {
		return "BooleanMetricFeedback", "toUInt8(f.value)"
	}
	return "FloatMetricFeedback", "f.value"
}

// VariantStats aggregates one variant's feedback values.
type VariantStats struct {
	Variant string
	Count   uint64
	Mean    float64
	Stddev  float64
}

// Stderr returns the standard error of the mean.
func (v VariantStats) Stderr() float64 {
	if v.Count == 0 {
		return 0
	}
	return v.Stddev / math.Sqrt(float64(v.Count))
}

// VariantPerformance joins inferences with feedback and aggregates the
// metric per variant, ordered by descending mean. Feedback rows target
// the inference id, so metrics submitted against episodes do not appear
// here.
func VariantPerformance(ctx context.Context, db *sql.DB, q Query) ([]VariantStats, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	feedbackTable, valueExpr := q.feedbackColumns()
	query := fmt.Sprintf(`
		SELECT
			i.variant_name AS variant_name,
			count() AS n,
			avg(%s) AS mean,
			stddevSamp(%s) AS stddev
		FROM %s i
		JOIN %s f ON i.id = f.target_id
		WHERE i.function_name = ?
		  AND f.metric_name = ?
		GROUP BY variant_name
		ORDER BY mean DESC`, valueExpr, valueExpr, q.inferenceTable(), feedbackTable)

	rows, err := db.QueryContext(ctx, query, q.FunctionName, q.MetricName)
	if err != nil {
		return nil, fmt.Errorf("querying variant performance: %w", err)
	}
	defer rows.Close()

	var stats []VariantStats
	for rows.Next() {
		var s VariantStats
		var stddev sql.NullFloat64 // stddevSamp is NULL for single-row groups
		if err := rows.Scan(&s.Variant, &s.Count, &s.Mean, &stddev); err != nil {
			return nil, fmt.Errorf("scanning variant row: %w", err)
		}
		s.Stddev = stddev.Float64
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating variant rows: %w", err)
	}

	clog.FromContext(ctx).With("function", q.FunctionName).
		With("metric", q.MetricName).
		With("variants", len(stats)).
		Debug("Aggregated variant performance")
	return stats, nil
}
