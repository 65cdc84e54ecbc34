/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package main evaluates haiku generation: it generates one haiku per
// topic through the gateway, scores each with an LLM judge, submits
// the scores as feedback, and prints a summary report.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Santhosh-Hanabi/tensorzero/dataset"
	"github.com/Santhosh-Hanabi/tensorzero/gateway"
	"github.com/Santhosh-Hanabi/tensorzero/judge"
	"github.com/Santhosh-Hanabi/tensorzero/recipes/haiku"
	"github.com/chainguard-dev/clog"
	"github.com/sethvargo/go-envconfig"
)

type config struct {
	GatewayURL  string  `env:"GATEWAY_URL,default=http://localhost:3000"`
	JudgeModel  string  `env:"JUDGE_MODEL,default=gpt-4o-mini"`
	Concurrency int     `env:"CONCURRENCY,default=8"`
	TopicsFile  string  `env:"TOPICS_FILE"`
	Variant     string  `env:"VARIANT"`
	Threshold   float64 `env:"THRESHOLD,default=0.7"`
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

	j, err := judge.New(ctx, cfg.JudgeModel)
	if err != nil {
		clog.FatalContextf(ctx, "creating judge: %v", err)
	}

	topics, err := dataset.LoadTopics(cfg.TopicsFile)
	if err != nil {
		clog.FatalContextf(ctx, "loading topics: %v", err)
	}

	clog.InfoContextf(ctx, "Evaluating %d topics against %s", len(topics), cfg.GatewayURL)
	summary, err := haiku.Run(ctx, haiku.Config{
		Gateway:     gw,
		Judge:       j,
		Variant:     cfg.Variant,
		Concurrency: cfg.Concurrency,
		Threshold:   cfg.Threshold,
		Dryrun:      cfg.Dryrun,
	}, topics)
	if err != nil {
		clog.FatalContextf(ctx, "running haiku evaluation: %v", err)
	}

	fmt.Println(summary.Report)
	if summary.BelowThreshold {
		clog.ErrorContextf(ctx, "evaluation fell below threshold %.2f", cfg.Threshold)
		os.Exit(1)
	}
}
