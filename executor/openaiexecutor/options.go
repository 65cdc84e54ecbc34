/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package openaiexecutor

import (
	"errors"
	"fmt"

	"github.com/Santhosh-Hanabi/tensorzero/gateway/retry"
	"github.com/Santhosh-Hanabi/tensorzero/prompt"
)

// Option is a functional option for configuring the executor
type Option[Request prompt.Bindable, Response any] func(*executor[Request, Response]) error

// WithMaxTokens sets the maximum tokens for responses
func WithMaxTokens[Request prompt.Bindable, Response any](tokens int64) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if tokens <= 0 {
			return fmt.Errorf("max tokens must be positive, got %d", tokens)
		}
		e.maxTokens = tokens
		return nil
	}
}

// WithTemperature sets the temperature for responses
// OpenAI chat models support temperature values from 0.0 to 2.0
func WithTemperature[Request prompt.Bindable, Response any](temp float64) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if temp < 0.0 || temp > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", temp)
		}
		e.temperature = temp
		return nil
	}
}

// WithSystemInstructions sets custom system instructions
func WithSystemInstructions[Request prompt.Bindable, Response any](p *prompt.Prompt) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if p == nil {
			return errors.New("system instructions prompt cannot be nil")
		}
		e.systemInstructions = p
		return nil
	}
}

// WithModel allows overriding the model name
func WithModel[Request prompt.Bindable, Response any](model string) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if model == "" {
			return errors.New("model name cannot be empty")
		}
		e.modelName = model
		return nil
	}
}

// WithRetryConfig sets the retry configuration for handling transient API
// errors, particularly 429 rate limit responses.
// If not set, a default configuration is used.
func WithRetryConfig[Request prompt.Bindable, Response any](cfg retry.Config) Option[Request, Response] {
	return func(e *executor[Request, Response]) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		e.retryConfig = cfg
		return nil
	}
}
