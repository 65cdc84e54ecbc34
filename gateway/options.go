/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"errors"
	"net/http"
	"time"

	"github.com/Santhosh-Hanabi/tensorzero/gateway/retry"
)

// Option is a functional option for configuring the client.
type Option func(*Client) error

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client cannot be nil")
		}
		c.httpClient = hc
		return nil
	}
}

// WithTimeout sets a per-request timeout on the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return errors.New("timeout must be positive")
		}
		c.httpClient.Timeout = d
		return nil
	}
}

// WithRetryConfig overrides the retry policy applied to inference
// calls. Feedback calls are never retried regardless of this setting.
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *Client) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		c.retryConfig = cfg
		return nil
	}
}

// WithTags sets default tags attached to every inference and feedback
// request. Per-request tags win on key collisions.
func WithTags(tags map[string]string) Option {
	return func(c *Client) error {
		c.tags = tags
		return nil
	}
}
