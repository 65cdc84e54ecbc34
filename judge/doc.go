/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package judge provides LLM-based evaluation of model outputs using structured rubrics.
//
// # Overview
//
// The judge package provides:
//   - A common Interface for different LLM judge implementations
//   - Support for OpenAI and Anthropic models
//   - Single-criterion evaluation for clarity and simplicity
//
// # Usage
//
//	// Create a judge instance (automatically selects implementation based on model name)
//	judgeInstance, err := judge.New(ctx, model)
//	if err != nil {
//		return err
//	}
//
//	judgement, err := judgeInstance.Judge(ctx, &judge.Request{
//	    Mode:         judge.StandaloneMode,
//	    ActualAnswer: haiku,
//	    Criterion:    "a haiku about " + topic + " with a 5-7-5 syllable structure",
//	})
//
// # Scoring
//
// Judges score responses on a scale of 0.0 to 1.0, with 1.0 being perfect.
// Each criterion is evaluated independently.
//
// # Thread Safety
//
// All judge implementations are stateless and safe for concurrent use.
package judge
