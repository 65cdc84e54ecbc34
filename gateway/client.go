/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Santhosh-Hanabi/tensorzero/gateway/retry"
	"github.com/chainguard-dev/clog"
)

// Client talks to a single inference gateway.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	retryConfig retry.Config
	tags        map[string]string
}

// NewClient creates a client for the gateway at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing gateway URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("gateway URL %q must be http or https", baseURL)
	}

	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{},
		retryConfig: retry.DefaultConfig(),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return c, nil
}

// Inference runs a gateway function. Rate-limit and server errors are
// retried with backoff; everything else surfaces immediately.
func (c *Client) Inference(ctx context.Context, req *InferenceRequest) (*InferenceResponse, error) {
	if req.FunctionName == "" {
		return nil, errors.New("function_name is required")
	}
	if len(req.Input.Messages) == 0 {
		return nil, errors.New("input must contain at least one message")
	}

	sent := *req
	sent.Tags = mergeTags(c.tags, req.Tags)

	log := clog.FromContext(ctx).With("function", req.FunctionName)
	resp, err := retry.Do(ctx, c.retryConfig, "inference", IsRetryable, func() (*InferenceResponse, error) {
		var out InferenceResponse
		if err := c.post(ctx, "/inference", &sent, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		return nil, err
	}

	log.With("inference_id", resp.InferenceID).
		With("variant", resp.VariantName).
		Debug("Inference complete")
	return resp, nil
}

// Feedback attaches a metric value to an inference or episode. It is
// not retried: a duplicated score skews downstream aggregates more
// than a missing one.
func (c *Client) Feedback(ctx context.Context, req *FeedbackRequest) (*FeedbackResponse, error) {
	if req.MetricName == "" {
		return nil, errors.New("metric_name is required")
	}
	if (req.InferenceID == "") == (req.EpisodeID == "") {
		return nil, errors.New("exactly one of inference_id or episode_id must be set")
	}

	sent := *req
	sent.Tags = mergeTags(c.tags, req.Tags)

	var out FeedbackResponse
	if err := c.post(ctx, "/feedback", &sent, &out); err != nil {
		return nil, err
	}

	clog.FromContext(ctx).With("metric", req.MetricName).
		With("feedback_id", out.FeedbackID).
		Debug("Feedback recorded")
	return &out, nil
}

// post sends body as JSON and decodes the 2xx response into out.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// readErrorMessage extracts the gateway's error description from a
// non-2xx body, falling back to the raw body text.
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return strings.TrimSpace(string(raw))
}

// mergeTags overlays per-request tags on the client defaults.
func mergeTags(base, extra map[string]string) map[string]string {
	if len(base) == 0 {
		return extra
	}
	merged := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}
