/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-2xx response from the gateway.
type APIError struct {
	// StatusCode is the HTTP status the gateway returned.
	StatusCode int
	// Message is the gateway's error description, when it sent one.
	Message string
}

// Error implements error.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("gateway returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("gateway returned %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// IsRetryable reports whether err is a gateway error worth retrying:
// rate limits and server-side failures. Client errors (4xx other than
// 429) indicate a bad request and never recover on retry.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		// Transport-level failures (connection refused, timeouts)
		// are treated as transient.
		return err != nil
	}
	if apiErr.StatusCode == http.StatusTooManyRequests {
		return true
	}
	return apiErr.StatusCode >= 500
}
