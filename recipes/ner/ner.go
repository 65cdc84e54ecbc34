/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package ner extracts named entities through the gateway, scores the
// predictions against gold labels, and submits the scores back as
// feedback.
package ner

import (
	"context"
	"errors"
	"fmt"

	"github.com/Santhosh-Hanabi/tensorzero/batch"
	"github.com/Santhosh-Hanabi/tensorzero/dataset"
	"github.com/Santhosh-Hanabi/tensorzero/evals"
	"github.com/Santhosh-Hanabi/tensorzero/evals/report"
	"github.com/Santhosh-Hanabi/tensorzero/gateway"
	"github.com/Santhosh-Hanabi/tensorzero/scoring"
	"github.com/chainguard-dev/clog"
)

const (
	// FunctionName is the gateway JSON function that extracts entities.
	FunctionName = "extract_entities"
	// ExactMatchMetric is the boolean metric for set-equal predictions.
	ExactMatchMetric = "exact_match"
	// JaccardMetric is the float metric for multiset overlap.
	JaccardMetric = "jaccard_similarity"
)

// Config wires the recipe's collaborators and knobs.
type Config struct {
	Gateway *gateway.Client

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

// Result is the outcome for a single example.
type Result struct {
	Text        string
	InferenceID string
	EpisodeID   string
	Variant     string
	Predicted   scoring.Entities
	Gold        scoring.Entities
	ExactMatch  bool
	Jaccard     float64
}

// Summary is the aggregate outcome of a run.
type Summary struct {
	// Results is positional with the input examples; nil entries mark
	// examples whose inference failed.
	Results []*Result
	// Report is the rendered evaluation table.
	Report string
	// BelowThreshold reports whether any namespace fell below the
	// configured threshold.
	BelowThreshold bool
}

// Run extracts and scores entities for every example.
func Run(ctx context.Context, cfg Config, examples []dataset.NERExample) (*Summary, error) {
	if cfg.Gateway == nil {
		return nil, errors.New("gateway client is required")
	}
	if len(examples) == 0 {
		return nil, errors.New("at least one example is required")
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
	exactObs := root.Child(variantLabel).Child(ExactMatchMetric)
	jaccardObs := root.Child(variantLabel).Child(JaccardMetric)

	results := batch.Run(ctx, examples, cfg.Concurrency, func(ctx context.Context, ex dataset.NERExample) (*Result, error) {
		exactObs.Increment()
		jaccardObs.Increment()

		res, err := evaluateExample(ctx, cfg, ex)
		if err != nil {
			msg := fmt.Sprintf("%.40q: %v", ex.Text, err)
			exactObs.Fail(msg)
			jaccardObs.Fail(msg)
			return nil, err
		}

		exactScore := 0.0
		if res.ExactMatch {
			exactScore = 1.0
		}
		exactObs.Grade(exactScore, "")
		jaccardObs.Grade(res.Jaccard, "")
		return res, nil
	})

	rendered, belowThreshold := report.Summary(root, cfg.Threshold)
	return &Summary{
		Results:        results,
		Report:         rendered,
		BelowThreshold: belowThreshold,
	}, nil
}

// evaluateExample runs one inference, scores it, and submits feedback.
func evaluateExample(ctx context.Context, cfg Config, ex dataset.NERExample) (*Result, error) {
	log := clog.FromContext(ctx)

	resp, err := cfg.Gateway.Inference(ctx, &gateway.InferenceRequest{
		FunctionName: FunctionName,
		Input: gateway.Input{
			Messages: []gateway.Message{{
				Role:    "user",
				Content: map[string]any{"text": ex.Text},
			}},
		},
		EpisodeID:   gateway.NewEpisodeID(),
		VariantName: cfg.Variant,
		Dryrun:      cfg.Dryrun,
		Tags:        map[string]string{"recipe": "ner"},
	})
	if err != nil {
		return nil, fmt.Errorf("inference: %w", err)
	}

	var predicted scoring.Entities
	if err := resp.ParseOutput(&predicted); err != nil {
		return nil, fmt.Errorf("parsing output: %w", err)
	}

	result := &Result{
		Text:        ex.Text,
		InferenceID: resp.InferenceID,
		EpisodeID:   resp.EpisodeID,
		Variant:     resp.VariantName,
		Predicted:   predicted,
		Gold:        ex.Gold,
		ExactMatch:  scoring.ExactMatch(predicted, ex.Gold),
		Jaccard:     scoring.Jaccard(predicted, ex.Gold),
	}

	submitFeedback(ctx, cfg, log, resp.InferenceID, ExactMatchMetric, result.ExactMatch)
	submitFeedback(ctx, cfg, log, resp.InferenceID, JaccardMetric, result.Jaccard)

	return result, nil
}

// submitFeedback sends one metric value, logging instead of failing.
// The local summary already holds the score, so a lost feedback row
// only thins the server-side aggregates.
func submitFeedback(ctx context.Context, cfg Config, log *clog.Logger, inferenceID, metric string, value any) {
	if _, err := cfg.Gateway.Feedback(ctx, &gateway.FeedbackRequest{
		MetricName:  metric,
		InferenceID: inferenceID,
		Value:       value,
		Dryrun:      cfg.Dryrun,
	}); err != nil {
		log.With("inference_id", inferenceID).
			With("metric", metric).
			With("error", err.Error()).
			Warn("Failed to submit feedback")
	}
}
