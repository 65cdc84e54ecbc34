/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Message is a single chat turn in the inference input.
type Message struct {
	Role string `json:"role"`
	// Content is either a plain string or structured content the
	// gateway's function templates accept.
	Content any `json:"content"`
}

// Input is the structured input to a gateway function. System holds
// the arguments bound into the function's system template; Messages
// holds the conversation turns.
type Input struct {
	System   any       `json:"system,omitempty"`
	Messages []Message `json:"messages"`
}

// InferenceRequest describes one call to POST /inference.
type InferenceRequest struct {
	// FunctionName selects the gateway function to run.
	FunctionName string `json:"function_name"`
	Input        Input  `json:"input"`
	// EpisodeID groups related inferences; minted with NewEpisodeID
	// when the caller does not carry one forward.
	EpisodeID string `json:"episode_id,omitempty"`
	// VariantName pins the call to a specific variant instead of
	// letting the gateway sample one.
	VariantName string `json:"variant_name,omitempty"`
	// Dryrun asks the gateway not to persist the inference.
	Dryrun bool `json:"dryrun,omitempty"`
	// Tags are opaque key/value pairs stored with the inference.
	Tags map[string]string `json:"tags,omitempty"`
}

// ContentBlock is one block of a chat function's response content.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// JSONOutput is the output of a JSON function: the raw model text and
// the gateway-validated parsed payload. Parsed is null when the raw
// text failed the function's output schema.
type JSONOutput struct {
	Raw    string          `json:"raw"`
	Parsed json.RawMessage `json:"parsed"`
}

// Usage reports token consumption for an inference.
type Usage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}

// InferenceResponse is the gateway's answer to an inference request.
// Chat functions populate Content; JSON functions populate Output.
type InferenceResponse struct {
	InferenceID string         `json:"inference_id"`
	EpisodeID   string         `json:"episode_id"`
	VariantName string         `json:"variant_name"`
	Content     []ContentBlock `json:"content,omitempty"`
	Output      *JSONOutput    `json:"output,omitempty"`
	Usage       *Usage         `json:"usage,omitempty"`
}

// Text concatenates the text blocks of a chat response.
func (r *InferenceResponse) Text() string {
	var sb strings.Builder
	for _, block := range r.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String()
}

// ParseOutput unmarshals a JSON function's parsed output into v.
func (r *InferenceResponse) ParseOutput(v any) error {
	if r.Output == nil {
		return fmt.Errorf("inference %s has no JSON output", r.InferenceID)
	}
	if len(r.Output.Parsed) == 0 || string(r.Output.Parsed) == "null" {
		return fmt.Errorf("inference %s output did not validate against the function schema", r.InferenceID)
	}
	if err := json.Unmarshal(r.Output.Parsed, v); err != nil {
		return fmt.Errorf("unmarshaling parsed output of inference %s: %w", r.InferenceID, err)
	}
	return nil
}

// FeedbackRequest describes one call to POST /feedback. Exactly one of
// InferenceID or EpisodeID must be set, matching the metric's level.
type FeedbackRequest struct {
	MetricName  string `json:"metric_name"`
	InferenceID string `json:"inference_id,omitempty"`
	EpisodeID   string `json:"episode_id,omitempty"`
	// Value is the metric payload: a bool for boolean metrics, a
	// number for float metrics, or a structured value for comments
	// and demonstrations.
	Value  any               `json:"value"`
	Tags   map[string]string `json:"tags,omitempty"`
	Dryrun bool              `json:"dryrun,omitempty"`
}

// FeedbackResponse acknowledges a stored feedback row.
type FeedbackResponse struct {
	FeedbackID string `json:"feedback_id"`
}

// NewEpisodeID mints a fresh episode identifier.
func NewEpisodeID() string {
	return uuid.NewString()
}
