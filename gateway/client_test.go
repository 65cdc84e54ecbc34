/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package gateway_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Santhosh-Hanabi/tensorzero/gateway"
	"github.com/Santhosh-Hanabi/tensorzero/gateway/retry"
	"github.com/google/go-cmp/cmp"
)

// fastRetry keeps the retry loop quick in tests.
func fastRetry() retry.Config {
	return retry.Config{
		MaxRetries:  2,
		BaseBackoff: time.Millisecond,
		MaxBackoff:  5 * time.Millisecond,
		MaxJitter:   time.Millisecond,
	}
}

func haikuRequest() *gateway.InferenceRequest {
	return &gateway.InferenceRequest{
		FunctionName: "write_haiku",
		Input: gateway.Input{
			Messages: []gateway.Message{{Role: "user", Content: "Write a haiku about autumn rain."}},
		},
		EpisodeID: gateway.NewEpisodeID(),
	}
}

func TestInference_ChatResponse(t *testing.T) {
	t.Parallel()

	var gotBody gateway.InferenceRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/inference" {
			t.Errorf("path = %q, want /inference", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"inference_id": "0193e-abc",
			"episode_id":   gotBody.EpisodeID,
			"variant_name": "gpt_4o_mini",
			"content": []map[string]any{
				{"type": "text", "text": "Rain taps the window\n"},
				{"type": "text", "text": "autumn holds its breath and waits\nleaves let go at last"},
			},
			"usage": map[string]any{"input_tokens": 20, "output_tokens": 17},
		})
	}))
	defer srv.Close()

	client, err := gateway.NewClient(srv.URL, gateway.WithRetryConfig(fastRetry()))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	req := haikuRequest()
	resp, err := client.Inference(context.Background(), req)
	if err != nil {
		t.Fatalf("Inference: %v", err)
	}

	if gotBody.FunctionName != "write_haiku" {
		t.Errorf("sent function_name = %q, want write_haiku", gotBody.FunctionName)
	}
	if resp.InferenceID != "0193e-abc" {
		t.Errorf("InferenceID = %q, want 0193e-abc", resp.InferenceID)
	}
	if resp.VariantName != "gpt_4o_mini" {
		t.Errorf("VariantName = %q, want gpt_4o_mini", resp.VariantName)
	}
	wantText := "Rain taps the window\nautumn holds its breath and waits\nleaves let go at last"
	if diff := cmp.Diff(wantText, resp.Text()); diff != "" {
		t.Errorf("Text() mismatch (-want +got):\n%s", diff)
	}
}

func TestInference_JSONOutput(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"inference_id": "0193e-def",
			"episode_id":   "ep-1",
			"variant_name": "baseline",
			"output": map[string]any{
				"raw":    `{"person":["Alice"]}`,
				"parsed": map[string]any{"person": []string{"Alice"}},
			},
		})
	}))
	defer srv.Close()

	client, err := gateway.NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	resp, err := client.Inference(context.Background(), &gateway.InferenceRequest{
		FunctionName: "extract_entities",
		Input: gateway.Input{
			Messages: []gateway.Message{{Role: "user", Content: "Alice went home."}},
		},
	})
	if err != nil {
		t.Fatalf("Inference: %v", err)
	}

	var parsed struct {
		Person []string `json:"person"`
	}
	if err := resp.ParseOutput(&parsed); err != nil {
		t.Fatalf("ParseOutput: %v", err)
	}
	if diff := cmp.Diff([]string{"Alice"}, parsed.Person); diff != "" {
		t.Errorf("parsed output mismatch (-want +got):\n%s", diff)
	}
}

func TestInference_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"inference_id": "0193e-ghi",
			"episode_id":   "ep-1",
			"variant_name": "baseline",
			"content":      []map[string]any{{"type": "text", "text": "ok"}},
		})
	}))
	defer srv.Close()

	client, err := gateway.NewClient(srv.URL, gateway.WithRetryConfig(fastRetry()))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	resp, err := client.Inference(context.Background(), haikuRequest())
	if err != nil {
		t.Fatalf("Inference: %v", err)
	}
	if resp.Text() != "ok" {
		t.Errorf("Text() = %q, want ok", resp.Text())
	}
	if n := calls.Load(); n != 3 {
		t.Errorf("server calls = %d, want 3", n)
	}
}

func TestInference_BadRequestIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "unknown function: write_sonnet"})
	}))
	defer srv.Close()

	client, err := gateway.NewClient(srv.URL, gateway.WithRetryConfig(fastRetry()))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.Inference(context.Background(), haikuRequest())
	var apiErr *gateway.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got: %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.Message != "unknown function: write_sonnet" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("server calls = %d, want 1", n)
	}
}

func TestInference_Validation(t *testing.T) {
	t.Parallel()

	client, err := gateway.NewClient("http://localhost:3000")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := client.Inference(context.Background(), &gateway.InferenceRequest{}); err == nil {
		t.Error("expected error for missing function_name")
	}
	if _, err := client.Inference(context.Background(), &gateway.InferenceRequest{
		FunctionName: "write_haiku",
	}); err == nil {
		t.Error("expected error for empty messages")
	}
}

func TestFeedback(t *testing.T) {
	t.Parallel()

	var gotBody gateway.FeedbackRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/feedback" {
			t.Errorf("path = %q, want /feedback", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"feedback_id": "fb-1"})
	}))
	defer srv.Close()

	client, err := gateway.NewClient(srv.URL, gateway.WithTags(map[string]string{"run": "eval-7"}))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	resp, err := client.Feedback(context.Background(), &gateway.FeedbackRequest{
		MetricName:  "exact_match",
		InferenceID: "0193e-abc",
		Value:       true,
	})
	if err != nil {
		t.Fatalf("Feedback: %v", err)
	}
	if resp.FeedbackID != "fb-1" {
		t.Errorf("FeedbackID = %q, want fb-1", resp.FeedbackID)
	}
	if gotBody.Value != true {
		t.Errorf("sent value = %v, want true", gotBody.Value)
	}
	if gotBody.Tags["run"] != "eval-7" {
		t.Errorf("default tags not merged, got %v", gotBody.Tags)
	}
}

func TestFeedback_NotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := gateway.NewClient(srv.URL, gateway.WithRetryConfig(fastRetry()))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.Feedback(context.Background(), &gateway.FeedbackRequest{
		MetricName:  "haiku_score",
		InferenceID: "0193e-abc",
		Value:       0.5,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("server calls = %d, want 1 (feedback must not retry)", n)
	}
}

func TestFeedback_Validation(t *testing.T) {
	t.Parallel()

	client, err := gateway.NewClient("http://localhost:3000")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	// Missing metric name.
	if _, err := client.Feedback(context.Background(), &gateway.FeedbackRequest{
		InferenceID: "x", Value: true,
	}); err == nil {
		t.Error("expected error for missing metric_name")
	}
	// Neither target set.
	if _, err := client.Feedback(context.Background(), &gateway.FeedbackRequest{
		MetricName: "exact_match", Value: true,
	}); err == nil {
		t.Error("expected error when no target is set")
	}
	// Both targets set.
	if _, err := client.Feedback(context.Background(), &gateway.FeedbackRequest{
		MetricName: "exact_match", InferenceID: "x", EpisodeID: "y", Value: true,
	}); err == nil {
		t.Error("expected error when both targets are set")
	}
}

func TestNewClient_RejectsBadURLs(t *testing.T) {
	t.Parallel()

	for _, u := range []string{"", "localhost:3000", "ftp://gateway"} {
		if _, err := gateway.NewClient(u); err == nil {
			t.Errorf("NewClient(%q) = nil error, want failure", u)
		}
	}
}

func TestParseOutput_Errors(t *testing.T) {
	t.Parallel()

	var v map[string]any

	// No JSON output at all.
	chat := &gateway.InferenceResponse{InferenceID: "i1"}
	if err := chat.ParseOutput(&v); err == nil {
		t.Error("expected error for chat response")
	}

	// Schema validation failed upstream: parsed is null.
	failed := &gateway.InferenceResponse{
		InferenceID: "i2",
		Output:      &gateway.JSONOutput{Raw: "not json", Parsed: json.RawMessage("null")},
	}
	if err := failed.ParseOutput(&v); err == nil {
		t.Error("expected error for null parsed output")
	}
}
