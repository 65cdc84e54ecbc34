/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package openaiexecutor

import (
	"context"
	"errors"
	"fmt"

	"github.com/Santhosh-Hanabi/tensorzero/gateway/retry"
	"github.com/Santhosh-Hanabi/tensorzero/metrics"
	"github.com/Santhosh-Hanabi/tensorzero/prompt"
	"github.com/Santhosh-Hanabi/tensorzero/result"
	"github.com/chainguard-dev/clog"
	"github.com/openai/openai-go"
)

// Interface is the public interface for single-shot OpenAI execution.
type Interface[Request prompt.Bindable, Response any] interface {
	// Execute binds the request into the prompt template, sends one
	// chat completion, and parses the JSON response into Response.
	Execute(ctx context.Context, request Request) (Response, error)
}

// executor provides the private implementation
type executor[Request prompt.Bindable, Response any] struct {
	client             openai.Client
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
	client openai.Client,
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
		modelName:    "gpt-4o-mini",
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

// Execute binds the request, sends one completion, and parses the reply.
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

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if e.systemInstructions != nil {
		systemPrompt, err := e.systemInstructions.Build()
		if err != nil {
			return response, fmt.Errorf("building system prompt: %w", err)
		}
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(rendered))

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(e.modelName),
		Messages:    messages,
		MaxTokens:   openai.Int(e.maxTokens),
		Temperature: openai.Float(e.temperature),
	}

	completion, err := retry.Do(ctx, e.retryConfig, "chat_completion", isRetryableOpenAIError, func() (*openai.ChatCompletion, error) {
		return e.client.Chat.Completions.New(ctx, params)
	})
	if err != nil {
		return response, fmt.Errorf("failed to get chat completion: %w", err)
	}

	if completion.Usage.PromptTokens > 0 || completion.Usage.CompletionTokens > 0 {
		e.genaiMetrics.RecordTokens(ctx, e.modelName, completion.Usage.PromptTokens, completion.Usage.CompletionTokens)
	}

	if len(completion.Choices) == 0 {
		return response, errors.New("no choices in chat completion")
	}
	textContent := completion.Choices[0].Message.Content
	if textContent == "" {
		return response, errors.New("no text content in chat completion")
	}

	resp, err := result.Extract[Response](textContent)
	if err != nil {
		log.With("response", textContent).
			With("error", err).
			Error("Failed to parse chat completion")
		return response, fmt.Errorf("failed to parse response: %w", err)
	}
	return resp, nil
}
