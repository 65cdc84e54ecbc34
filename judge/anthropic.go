/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"fmt"

	"github.com/Santhosh-Hanabi/tensorzero/executor/anthropicexecutor"
	"github.com/anthropics/anthropic-sdk-go"
)

// anthropicJudge implements Interface using Claude models
type anthropicJudge struct {
	goldenExecutor     anthropicexecutor.Interface[*Request, *Judgement]
	standaloneExecutor anthropicexecutor.Interface[*Request, *Judgement]
}

// NewAnthropic creates a judge backed by Claude via the given client.
func NewAnthropic(client anthropic.Client, model string, opts ...anthropicexecutor.Option[*Request, *Judgement]) (Interface, error) {
	baseOpts := []anthropicexecutor.Option[*Request, *Judgement]{
		anthropicexecutor.WithModel[*Request, *Judgement](model),
		anthropicexecutor.WithMaxTokens[*Request, *Judgement](8192),
		anthropicexecutor.WithTemperature[*Request, *Judgement](0.1),
	}
	baseOpts = append(baseOpts, opts...)

	goldenExecutor, err := anthropicexecutor.New[*Request, *Judgement](
		client,
		goldenPrompt,
		baseOpts...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create golden executor: %w", err)
	}

	standaloneExecutor, err := anthropicexecutor.New[*Request, *Judgement](
		client,
		standalonePrompt,
		baseOpts...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create standalone executor: %w", err)
	}

	return &anthropicJudge{
		goldenExecutor:     goldenExecutor,
		standaloneExecutor: standaloneExecutor,
	}, nil
}

// Judge implements Interface
func (a *anthropicJudge) Judge(ctx context.Context, request *Request) (*Judgement, error) {
	if err := request.validate(); err != nil {
		return nil, err
	}
	switch request.Mode {
	case GoldenMode:
		return a.goldenExecutor.Execute(ctx, request)
	default:
		return a.standaloneExecutor.Execute(ctx, request)
	}
}
