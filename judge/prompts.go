/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"fmt"

	"github.com/Santhosh-Hanabi/tensorzero/prompt"
	"github.com/Santhosh-Hanabi/tensorzero/schema"
)

// responseSchema is the Judgement JSON schema embedded in both prompts
// so the model returns a shape Extract can parse.
var responseSchema = func() string {
	rendered, err := schema.MarshalIndent(schema.ReflectType[Judgement]())
	if err != nil {
		panic(err)
	}
	return rendered
}()

// mustBindSchema fills the response_schema placeholder shared by the
// mode prompts.
func mustBindSchema(p *prompt.Prompt) *prompt.Prompt {
	bound, err := p.BindLiteral("response_schema", responseSchema)
	if err != nil {
		panic(err)
	}
	return bound
}

// goldenPrompt is the prompt for golden mode judgment
var goldenPrompt = mustBindSchema(prompt.MustNew(`<task>
You are evaluating a response against a reference answer.
Score the response based on the specific criterion provided.
</task>

{{golden_answer}}

{{actual_response}}

{{criterion}}

<instructions>
1. Compare the actual response to the golden answer
2. Evaluate specifically for the given criterion
3. Provide a score from 0.0 to 1.0 using this scoring rubric:

SCORING RUBRIC:
- Score 1.0 (Perfect): Response achieves the same quality and effectiveness as the golden answer, or exceeds it while maintaining appropriateness. Minor word order, synonym usage, or stylistic variations that do not affect meaning should score 1.0, not be penalized. Suggestions MUST be an empty array.
- Score 0.75-0.99 (High Quality): Response meets the criterion well with minor variations that prevent perfection. Provide the specific minor improvements that justify why the score is less than 1.0.
- Score 0.50-0.74 (Adequate): Response partially meets the criterion with notable gaps. Explain what prevents a higher score and provide improvements addressing the gaps.
- Score 0.25-0.49 (Poor): Response has significant problems but contains some correct elements. Identify the major issues and provide multiple specific improvements.
- Score 0.0-0.24 (Failing): Response fails to meet the criterion or contains major errors. Explain the fundamental failures and what needs complete correction.

4. Explain your reasoning and provide suggestions following the guidelines above
</instructions>

<output_format>
Return your judgment as a JSON object matching this schema:
{{response_schema}}

IMPORTANT: Always include "mode": "golden" in your response.

Note on suggestions:
- Focus on specific, missing elements rather than general advice
- Each suggestion should address a distinct aspect of improvement
</output_format>

Respond with only the JSON object, no additional text.`))

// standalonePrompt is the prompt for standalone mode judgment
var standalonePrompt = mustBindSchema(prompt.MustNew(`<task>
You are evaluating a response to determine how well it meets the evaluation criterion.
Assess the response's quality based on the specific criterion provided.
</task>

{{response}}

{{criterion}}

<instructions>
1. Evaluate the response SOLELY based on the given criterion - ignore all other response qualities
2. Assess how well the response meets the specific criterion requirements
3. Provide a score from 0.0 to 1.0 using this scoring rubric:

IMPORTANT: Score ONLY how well the response meets the stated criterion.
Do not consider other aspects unless they directly relate to the criterion.

SCORING RUBRIC:
- Score 1.0 (Perfect): Response fully satisfies all criterion requirements with no meaningful gaps. Suggestions MUST be an empty array.
- Score 0.75-0.99 (High Quality): Response addresses the criterion effectively but has small gaps or minor presentation issues. Provide the specific minor improvements that justify the deduction.
- Score 0.50-0.74 (Adequate): Response addresses the basic criterion requirements but is missing important elements. Explain what prevents a higher score.
- Score 0.25-0.49 (Poor): Response shows some understanding of the criterion but fails in major ways. Provide multiple specific improvements.
- Score 0.0-0.24 (Failing): Response completely ignores the criterion requirements or actively contradicts them. Explain the fundamental failures.

4. Explain your reasoning and provide suggestions following the guidelines above
</instructions>

<output_format>
Return your judgment as a JSON object matching this schema:
{{response_schema}}

IMPORTANT: Always include "mode": "standalone" in your response.

Focus suggestions on how to better meet the criterion requirements.
</output_format>

Respond with only the JSON object, no additional text.`))

// Bind implements prompt.Bindable for Request
func (r *Request) Bind(p *prompt.Prompt) (*prompt.Prompt, error) {
	var err error

	switch r.Mode {
	case GoldenMode:
		if p, err = p.BindXML("golden_answer", struct {
			XMLName struct{} `xml:"golden_answer"`
			Content string   `xml:",chardata"`
		}{
			Content: r.ReferenceAnswer,
		}); err != nil {
			return nil, err
		}

		if p, err = p.BindXML("actual_response", struct {
			XMLName struct{} `xml:"actual_response"`
			Content string   `xml:",chardata"`
		}{
			Content: r.ActualAnswer,
		}); err != nil {
			return nil, err
		}

	case StandaloneMode:
		if p, err = p.BindXML("response", struct {
			XMLName struct{} `xml:"response"`
			Content string   `xml:",chardata"`
		}{
			Content: r.ActualAnswer,
		}); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unknown judgment mode: %s", r.Mode)
	}

	// Bind criterion for all modes
	return p.BindXML("criterion", struct {
		XMLName struct{} `xml:"criterion"`
		Content string   `xml:",chardata"`
	}{
		Content: r.Criterion,
	})
}
