/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package haiku generates haiku through the gateway, scores them with
// an LLM judge, and submits the scores back as feedback.
package haiku

import (
	"context"
	"errors"
	"fmt"

	"github.com/Santhosh-Hanabi/tensorzero/batch"
	"github.com/Santhosh-Hanabi/tensorzero/evals"
	"github.com/Santhosh-Hanabi/tensorzero/evals/report"
	"github.com/Santhosh-Hanabi/tensorzero/gateway"
	"github.com/Santhosh-Hanabi/tensorzero/judge"
	"github.com/chainguard-dev/clog"
)

const (
	// FunctionName is the gateway function that writes haiku.
	FunctionName = "write_haiku"
	// MetricName is the float metric fed back with the judge's score.
	MetricName = "haiku_score"
)

// Config wires the recipe's collaborators and knobs.
type Config struct {
	Gateway *gateway.Client
	Judge   judge.Interface

	// Variant pins inferences to one gateway variant; empty lets the
	// gateway sample.
	Variant string
	// Concurrency bounds in-flight inferences; <= 0 means unbounded.
	Concurrency int
	// Threshold is the mean score below which the summary flags the run.
	Threshold float64
	// Dryrun asks the gateway not to persist inferences or feedback.
	Dryrun bool
}

// Result is the outcome for a single topic.
type Result struct {
	Topic       string
	InferenceID string
	EpisodeID   string
	Variant     string
	Haiku       string
	Judgement   *judge.Judgement
	// FeedbackID is empty when feedback submission failed; the score
	// still counts toward the local summary.
	FeedbackID string
}

// Summary is the aggregate outcome of a run.
type Summary struct {
	// Results is positional with the input topics; nil entries mark
	// topics whose inference or judgement failed.
	Results []*Result
	// Report is the rendered evaluation table.
	Report string
	// BelowThreshold reports whether any namespace fell below the
	// configured threshold.
	BelowThreshold bool
}

// Run generates and scores one haiku per topic.
func Run(ctx context.Context, cfg Config, topics []string) (*Summary, error) {
	if cfg.Gateway == nil {
		return nil, errors.New("gateway client is required")
	}
	if cfg.Judge == nil {
		return nil, errors.New("judge is required")
	}
	if len(topics) == 0 {
		return nil, errors.New("at least one topic is required")
	}

	variantLabel := cfg.Variant
	if variantLabel == "" {
		variantLabel = "default"
	}

	root := evals.NewNamespacedObserver(func(ns string) *evals.ResultCollector {
		return evals.NewResultCollector(evals.Fanout(
			evals.NewLogObserver(ctx),
			evals.NewMetricsObserver(FunctionName, ns),
		))
	})
	obs := root.Child(variantLabel).Child(MetricName)

	results := batch.Run(ctx, topics, cfg.Concurrency, func(ctx context.Context, topic string) (*Result, error) {
		obs.Increment()
		res, err := evaluateTopic(ctx, cfg, topic)
		if err != nil {
			obs.Fail(fmt.Sprintf("%s: %v", topic, err))
			return nil, err
		}
		obs.Grade(res.Judgement.Score, res.Judgement.Reasoning)
		return res, nil
	})

	rendered, belowThreshold := report.Summary(root, cfg.Threshold)
	return &Summary{
		Results:        results,
		Report:         rendered,
		BelowThreshold: belowThreshold,
	}, nil
}

// evaluateTopic runs one inference, judges it, and submits feedback.
func evaluateTopic(ctx context.Context, cfg Config, topic string) (*Result, error) {
	log := clog.FromContext(ctx).With("topic", topic)

	resp, err := cfg.Gateway.Inference(ctx, &gateway.InferenceRequest{
		FunctionName: FunctionName,
		Input: gateway.Input{
			Messages: []gateway.Message{{
				Role:    "user",
				Content: map[string]any{"topic": topic},
			}},
		},
		EpisodeID:   gateway.NewEpisodeID(),
		VariantName: cfg.Variant,
		Dryrun:      cfg.Dryrun,
		Tags:        map[string]string{"recipe": "haiku"},
	})
	if err != nil {
		return nil, fmt.Errorf("inference: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("inference %s returned no text", resp.InferenceID)
	}

	judgement, err := cfg.Judge.Judge(ctx, &judge.Request{
		Mode:         judge.StandaloneMode,
		ActualAnswer: text,
		Criterion:    fmt.Sprintf("a haiku about %q with a 5-7-5 syllable structure and vivid imagery", topic),
	})
	if err != nil {
		return nil, fmt.Errorf("judging: %w", err)
	}

	result := &Result{
		Topic:       topic,
		InferenceID: resp.InferenceID,
		EpisodeID:   resp.EpisodeID,
		Variant:     resp.VariantName,
		Haiku:       text,
		Judgement:   judgement,
	}

	// Feedback failures cost one data point server-side; the local
	// summary already has the score, so the run continues.
	fb, err := cfg.Gateway.Feedback(ctx, &gateway.FeedbackRequest{
		MetricName:  MetricName,
		InferenceID: resp.InferenceID,
		Value:       judgement.Score,
		Dryrun:      cfg.Dryrun,
	})
	if err != nil {
		log.With("inference_id", resp.InferenceID).
			With("error", err.Error()).
			Warn("Failed to submit feedback")
		return result, nil
	}
	result.FeedbackID = fb.FeedbackID

	return result, nil
}
