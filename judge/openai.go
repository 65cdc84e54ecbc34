/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"context"
	"fmt"

	"github.com/Santhosh-Hanabi/tensorzero/executor/openaiexecutor"
	"github.com/openai/openai-go"
)

// openaiJudge implements Interface using OpenAI chat models
type openaiJudge struct {
	goldenExecutor     openaiexecutor.Interface[*Request, *Judgement]
	standaloneExecutor openaiexecutor.Interface[*Request, *Judgement]
}

// NewOpenAI creates a judge backed by an OpenAI chat model via the given client.
func NewOpenAI(client openai.Client, model string, opts ...openaiexecutor.Option[*Request, *Judgement]) (Interface, error) {
	baseOpts := []openaiexecutor.Option[*Request, *Judgement]{
		openaiexecutor.WithModel[*Request, *Judgement](model),
		openaiexecutor.WithMaxTokens[*Request, *Judgement](8192),
		openaiexecutor.WithTemperature[*Request, *Judgement](0.1),
	}
	baseOpts = append(baseOpts, opts...)

	goldenExecutor, err := openaiexecutor.New[*Request, *Judgement](
		client,
		goldenPrompt,
		baseOpts...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create golden executor: %w", err)
	}

	standaloneExecutor, err := openaiexecutor.New[*Request, *Judgement](
		client,
		standalonePrompt,
		baseOpts...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create standalone executor: %w", err)
	}

	return &openaiJudge{
		goldenExecutor:     goldenExecutor,
		standaloneExecutor: standaloneExecutor,
	}, nil
}

// Judge implements Interface
func (o *openaiJudge) Judge(ctx context.Context, request *Request) (*Judgement, error) {
	if err := request.validate(); err != nil {
		return nil, err
	}
	switch request.Mode {
	case GoldenMode:
		return o.goldenExecutor.Execute(ctx, request)
	default:
		return o.standaloneExecutor.Execute(ctx, request)
	}
}
