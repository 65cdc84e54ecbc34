/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package main evaluates entity extraction: it runs the gateway's
// extract_entities function over a JSONL dataset, scores predictions
// against gold labels, submits the scores as feedback, and prints a
// summary report.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Santhosh-Hanabi/tensorzero/dataset"
	"github.com/Santhosh-Hanabi/tensorzero/gateway"
	"github.com/Santhosh-Hanabi/tensorzero/recipes/ner"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
)

type config struct {
	GatewayURL  string  `env:"GATEWAY_URL,default=http://localhost:3000"`
	Dataset     string  `env:"DATASET,required"`
	Concurrency int     `env:"CONCURRENCY,default=8"`
	Limit       int     `env:"LIMIT,default=0"`
	Variant     string  `env:"VARIANT"`
	Threshold   float64 `env:"THRESHOLD,default=0.5"`
	Dryrun      bool    `env:"DRYRUN,default=false"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var cfg config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		clog.FatalContextf(ctx, "processing config: %v", err)
	}

	gw, err := gateway.NewClient(cfg.GatewayURL)
	if err != nil {
		clog.FatalContextf(ctx, "creating gateway client: %v", err)
	}

	examples, err := dataset.LoadNER(ctx, cfg.Dataset, cfg.Limit)
	if err != nil {
		clog.FatalContextf(ctx, "loading dataset: %v", err)
	}
	if len(examples) == 0 {
		clog.FatalContextf(ctx, "dataset %s contains no usable examples", cfg.Dataset)
	}

	clog.InfoContextf(ctx, "Evaluating %d examples against %s", len(examples), cfg.GatewayURL)
	summary, err := ner.Run(ctx, ner.Config{
		Gateway:     gw,
		Variant:     cfg.Variant,
		Concurrency: cfg.Concurrency,
		Threshold:   cfg.Threshold,
		Dryrun:      cfg.Dryrun,
	}, examples)
	if err != nil {
		clog.FatalContextf(ctx, "running ner evaluation: %v", err)
	}

	fmt.Println(summary.Report)
	if summary.BelowThreshold {
		clog.ErrorContextf(ctx, "evaluation fell below threshold %.2f", cfg.Threshold)
		os.Exit(1)
	}
}
