/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"fmt"
	"strings"

	"github.com/Santhosh-Hanabi/tensorzero/executor/anthropicexecutor"
	"github.com/Santhosh-Hanabi/tensorzero/executor/openaiexecutor"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"
)

// New creates a new Interface instance by delegating to the appropriate
// implementation based on the model name. Claude models use the Anthropic
// SDK, GPT and o-series models use the OpenAI SDK. Credentials are read
// from the standard environment variables of each SDK.
// Accepts optional executor options that will be passed through to the
// underlying executor.
func New(_ context.Context, modelName string, opts ...any) (Interface, error) {
	modelLower := strings.ToLower(modelName)

	if strings.HasPrefix(modelLower, "claude-") {
		anthropicOpts := make([]anthropicexecutor.Option[*Request, *Judgement], 0, len(opts))
		for _, opt := range opts {
			if anthropicOpt, ok := opt.(anthropicexecutor.Option[*Request, *Judgement]); ok {
				anthropicOpts = append(anthropicOpts, anthropicOpt)
			}
		}
		return NewAnthropic(anthropic.NewClient(), modelName, anthropicOpts...)
	}

	if strings.HasPrefix(modelLower, "gpt-") || strings.HasPrefix(modelLower, "o") {
		openaiOpts := make([]openaiexecutor.Option[*Request, *Judgement], 0, len(opts))
		for _, opt := range opts {
			if openaiOpt, ok := opt.(openaiexecutor.Option[*Request, *Judgement]); ok {
				openaiOpts = append(openaiOpts, openaiOpt)
			}
		}
		return NewOpenAI(openai.NewClient(), modelName, openaiOpts...)
	}

	return nil, fmt.Errorf("unsupported model: %s (expected claude-*, gpt-*, or o*)", modelName)
}
