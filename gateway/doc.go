/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package gateway is an HTTP client for the model inference gateway.

The gateway exposes two endpoints this package wraps:

  - POST /inference runs a named function (a prompt/model combination
    the gateway routes to one of its configured variants) and returns
    either free-text chat content or a parsed JSON output, along with
    the identifiers needed to reference the inference later.
  - POST /feedback attaches a metric value (boolean, float, or
    structured) to a previous inference or episode.

Inference calls are retried with randomized exponential backoff on
rate-limit and server errors; feedback calls are single-shot since a
lost score is preferable to a duplicated one.

	client, err := gateway.NewClient("http://localhost:3000")
	if err != nil { ... }

	resp, err := client.Inference(ctx, &gateway.InferenceRequest{
		FunctionName: "write_haiku",
		Input: gateway.Input{
			Messages: []gateway.Message{{
				Role:    "user",
				Content: "Write a haiku about autumn rain.",
			}},
		},
		EpisodeID: gateway.NewEpisodeID(),
	})
	if err != nil { ... }

	_, err = client.Feedback(ctx, &gateway.FeedbackRequest{
		MetricName:  "haiku_score",
		InferenceID: resp.InferenceID,
		Value:       0.9,
	})
*/
package gateway
