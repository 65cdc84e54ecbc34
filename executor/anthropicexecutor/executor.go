/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package anthropicexecutor

import (
	"context"
	"errors"
	"fmt"

	"github.com/Santhosh-Hanabi/tensorzero/gateway/retry"
	"github.com/Santhosh-Hanabi/tensorzero/metrics"
	"github.com/Santhosh-Hanabi/tensorzero/prompt"
	"github.com/Santhosh-Hanabi/tensorzero/result"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/chainguard-dev/clog"
)

// Interface is the public interface for single-shot Claude execution.
type Interface[Request prompt.Bindable, Response any] interface {
	// Execute binds the request into the prompt template, sends one
	// message, and parses the JSON response into Response.
	Execute(ctx context.Context, request Request) (Response, error)
}

// executor provides the private implementation
type executor[Request prompt.Bindable, Response any] struct {
	client             anthropic.Client
	modelName          string
	systemInstructions *prompt.Prompt
	prompt             *prompt.Prompt
	maxTokens          int64
	temperature        float64
	genaiMetrics       *metrics.GenAI // token usage, model name as dimension
	retryConfig        retry.Config   // retry configuration for transient API errors
}

// New creates a new Executor with minimal required configuration
func New[Request prompt.Bindable, Response any](
	client anthropic.Client,
	tmpl *prompt.Prompt,
	opts ...Option[Request, Response],
) (Interface[Request, Response], error) {
	if tmpl == nil {
		return nil, errors.New("prompt cannot be nil")
	}

	// Uses a unified meter across all executors, with model name as a dimension
	genaiMetrics := metrics.NewGenAI("tensorzero.recipes")

	e := &executor[Request, Response]{
		client:       client,
		modelName:    "claude-sonnet-4-20250514",
		prompt:       tmpl,
		maxTokens:    4096,
		temperature:  0.1, // low default for judging consistency
		genaiMetrics: genaiMetrics,
		retryConfig:  retry.DefaultConfig(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return e, nil
}

// Execute binds the request, sends one message, and parses the reply.
func (e *executor[Request, Response]) Execute(ctx context.Context, request Request) (response Response, err error) {
	log := clog.FromContext(ctx)

	boundPrompt, err := request.Bind(e.prompt)
	if err != nil {
		return response, fmt.Errorf("failed to bind request to prompt: %w", err)
	}

	rendered, err := boundPrompt.Build()
	if err != nil {
		return response, fmt.Errorf("failed to build prompt: %w", err)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(e.modelName),
		MaxTokens: e.maxTokens,
		Messages: []anthropic.MessageParam{{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(rendered),
			},
		}},
	}
	params.Temperature = anthropic.Float(e.temperature)

	if e.systemInstructions != nil {
		systemPrompt, err := e.systemInstructions.Build()
		if err != nil {
			return response, fmt.Errorf("building system prompt: %w", err)
		}
		params.System = []anthropic.TextBlockParam{{Text: systemPrompt}}
	}

	message, err := retry.Do(ctx, e.retryConfig, "anthropic_message", isRetryableAnthropicError, func() (*anthropic.Message, error) {
		return e.client.Messages.New(ctx, params)
	})
	if err != nil {
		return response, fmt.Errorf("failed to get Claude response: %w", err)
	}

	if message.Usage.InputTokens > 0 || message.Usage.OutputTokens > 0 {
		e.genaiMetrics.RecordTokens(ctx, e.modelName, message.Usage.InputTokens, message.Usage.OutputTokens)
	}

	var textContent string
	for _, content := range message.Content {
		if content.Type == "text" {
			textContent += content.Text
		}
	}
	if textContent == "" {
		return response, errors.New("no text content in Claude's response")
	}

	resp, err := result.Extract[Response](textContent)
	if err != nil {
		log.With("response", textContent).
			With("error", err).
			Error("Failed to parse Claude response")
		return response, fmt.Errorf("failed to parse response: %w", err)
	}
	return resp, nil
}
