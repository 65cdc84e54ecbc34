/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package openaiexecutor

import (
	"fmt"
	"testing"

	"github.com/openai/openai-go"
)

func TestIsRetryableOpenAIError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "non-API error", err: fmt.Errorf("connection refused"), want: false},
		{name: "429 rate limit", err: &openai.Error{StatusCode: 429}, want: true},
		{name: "500 internal error", err: &openai.Error{StatusCode: 500}, want: true},
		{name: "502 bad gateway", err: &openai.Error{StatusCode: 502}, want: true},
		{name: "503 unavailable", err: &openai.Error{StatusCode: 503}, want: true},
		{name: "400 bad request", err: &openai.Error{StatusCode: 400}, want: false},
		{name: "401 unauthorized", err: &openai.Error{StatusCode: 401}, want: false},
		{name: "404 not found", err: &openai.Error{StatusCode: 404}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := isRetryableOpenAIError(tt.err); got != tt.want {
				t.Errorf("isRetryableOpenAIError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
