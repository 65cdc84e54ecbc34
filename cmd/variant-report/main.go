/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package main compares variant performance by querying the gateway's
// ClickHouse database and printing per-variant metric statistics.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Santhosh-Hanabi/tensorzero/analytics"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
)

type config struct {
	ClickHouseAddr     string `env:"CLICKHOUSE_ADDR,default=localhost:9000"`
	ClickHouseDatabase string `env:"CLICKHOUSE_DATABASE,default=tensorzero"`
	ClickHouseUsername string `env:"CLICKHOUSE_USERNAME,default=default"`
	ClickHousePassword string `env:"CLICKHOUSE_PASSWORD"`

	FunctionName string  `env:"FUNCTION_NAME,required"`
	MetricName   string  `env:"METRIC_NAME,required"`
	MetricType   string  `env:"METRIC_TYPE,default=float"`
	FunctionType string  `env:"FUNCTION_TYPE,default=chat"`
	Threshold    float64 `env:"THRESHOLD,default=0"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	db, err := analytics.Open(ctx, analytics.Config{
		Addr:     cfg.ClickHouseAddr,
		Database: cfg.ClickHouseDatabase,
		Username: cfg.ClickHouseUsername,
		Password: cfg.ClickHousePassword,
	})
	if err != nil {
		clog.FatalContextf(ctx, "connecting to clickhouse: %v", err)
	}
	defer db.Close()

	stats, err := analytics.VariantPerformance(ctx, db, analytics.Query{
		FunctionName: cfg.FunctionName,
		MetricName:   cfg.MetricName,
		MetricType:   analytics.MetricType(cfg.MetricType),
		FunctionType: analytics.FunctionType(cfg.FunctionType),
	})
	if err != nil {
		clog.FatalContextf(ctx, "querying variant performance: %v", err)
	}
	if len(stats) == 0 {
		clog.FatalContextf(ctx, "no feedback found for function %q and metric %q", cfg.FunctionName, cfg.MetricName)
	}

	fmt.Println(analytics.RenderVariantTable(stats))

	// Stats are ordered by descending mean, so the first row is the
	// best variant.
	if stats[0].Mean < cfg.Threshold {
		clog.ErrorContextf(ctx, "best variant %q mean %.4f is below threshold %.2f",
			stats[0].Variant, stats[0].Mean, cfg.Threshold)
		os.Exit(1)
	}
}
