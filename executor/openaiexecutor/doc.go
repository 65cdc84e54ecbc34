/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package openaiexecutor provides a generic single-shot executor for
// OpenAI chat models. It renders a prompt template with a bound
// request, sends one chat completion, and parses the JSON response
// into a typed value.
//
// # Basic Usage
//
//	client := openai.NewClient(
//	    option.WithAPIKey(apiKey),
//	)
//
//	tmpl := prompt.MustNew("Score this haiku about {{topic}}:\n{{haiku}}")
//
//	exec, err := openaiexecutor.New[*Request, *Judgement](
//	    client,
//	    tmpl,
//	    openaiexecutor.WithModel[*Request, *Judgement]("gpt-4o-mini"),
//	)
//	if err != nil {
//	    return nil, err
//	}
//
//	judgement, err := exec.Execute(ctx, request)
//
// # Options
//
// The executor supports several configuration options:
//   - WithModel: Override the default model
//   - WithMaxTokens: Set maximum response tokens (defaults to 4096)
//   - WithTemperature: Set response temperature (defaults to 0.1)
//   - WithSystemInstructions: Provide system-level instructions
//   - WithRetryConfig: Tune retry behavior for transient API errors
package openaiexecutor
