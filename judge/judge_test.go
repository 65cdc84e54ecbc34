/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package judge_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Santhosh-Hanabi/tensorzero/judge"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// newFakeOpenAIJudge serves canned judgements from an httptest server.
func newFakeOpenAIJudge(t *testing.T, judgement judge.Judgement) judge.Interface {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		body, err := json.Marshal(judgement)
		if err != nil {
			t.Errorf("marshaling judgement: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{
			"id": "chatcmpl-01",
			"object": "chat.completion",
			"model": "gpt-4o-mini",
			"choices": [{
				"index": 0,
				"message": {"role": "assistant", "content": %q},
				"finish_reason": "stop"
			}],
			"usage": {"prompt_tokens": 100, "completion_tokens": 40, "total_tokens": 140}
		}`, string(body))
	}))
	t.Cleanup(srv.Close)

	client := openai.NewClient(
		option.WithBaseURL(srv.URL),
		option.WithAPIKey("test-key"),
	)
	j, err := judge.NewOpenAI(client, "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewOpenAI: %v", err)
	}
	return j
}

func TestJudge_Standalone(t *testing.T) {
	t.Parallel()

	j := newFakeOpenAIJudge(t, judge.Judgement{
		Mode:      judge.StandaloneMode,
		Score:     0.9,
		Reasoning: "vivid imagery, correct structure",
	})

	got, err := j.Judge(t.Context(), &judge.Request{
		Mode:         judge.StandaloneMode,
		ActualAnswer: "old pond\na frog leaps in\nwater's sound",
		Criterion:    "a haiku about ponds with a 5-7-5 syllable structure",
	})
	if err != nil {
		t.Fatalf("Judge: %v", err)
	}
	if got.Score != 0.9 {
		t.Errorf("Judge() score = %v, want 0.9", got.Score)
	}
	if got.Mode != judge.StandaloneMode {
		t.Errorf("Judge() mode = %q, want standalone", got.Mode)
	}
}

func TestJudge_Golden(t *testing.T) {
	t.Parallel()

	j := newFakeOpenAIJudge(t, judge.Judgement{
		Mode:        judge.GoldenMode,
		Score:       0.5,
		Reasoning:   "misses the organization entities",
		Suggestions: []string{"include all organizations from the text"},
	})

	got, err := j.Judge(t.Context(), &judge.Request{
		Mode:            judge.GoldenMode,
		ReferenceAnswer: `{"person": ["Ada Lovelace"], "organization": ["Analytical Society"]}`,
		ActualAnswer:    `{"person": ["Ada Lovelace"]}`,
		Criterion:       "extracted entities should match the reference exactly",
	})
	if err != nil {
		t.Fatalf("Judge: %v", err)
	}
	if got.Score != 0.5 {
		t.Errorf("Judge() score = %v, want 0.5", got.Score)
	}
	if len(got.Suggestions) != 1 {
		t.Errorf("Judge() suggestions = %v, want one entry", got.Suggestions)
	}
}

func TestJudge_InvalidRequests(t *testing.T) {
	t.Parallel()

	j := newFakeOpenAIJudge(t, judge.Judgement{Score: 1.0})

	tests := []struct {
		name string
		req  *judge.Request
	}{{
		name: "golden without reference",
		req:  &judge.Request{Mode: judge.GoldenMode, ActualAnswer: "x", Criterion: "y"},
	}, {
		name: "standalone with reference",
		req:  &judge.Request{Mode: judge.StandaloneMode, ReferenceAnswer: "r", ActualAnswer: "x", Criterion: "y"},
	}, {
		name: "missing answer",
		req:  &judge.Request{Mode: judge.StandaloneMode, Criterion: "y"},
	}, {
		name: "unsupported mode",
		req:  &judge.Request{Mode: "benchmark", ActualAnswer: "x", Criterion: "y"},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := j.Judge(t.Context(), tt.req); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
