/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package prompt provides immutable prompt templates with explicit
// {{placeholder}} bindings. A template is parsed once; binding returns
// a new template, and Build fails if any placeholder is still unbound,
// so a prompt can never silently ship with a hole in it.
package prompt

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// placeholderPattern matches {{name}} tokens; names are identifiers.
var placeholderPattern = regexp.MustCompile(`\{\{([a-zA-Z_][a-zA-Z0-9_]*)\}\}`)

// Prompt is an immutable template. Bind methods return new prompts.
type Prompt struct {
	template string
	bound    map[string]string
	names    map[string]struct{}
}

// New parses a template and records its placeholders.
func New(template string) (*Prompt, error) {
	names := make(map[string]struct{})
	for _, m := range placeholderPattern.FindAllStringSubmatch(template, -1) {
		names[m[1]] = struct{}{}
	}

	// Reject stray braces that look like malformed placeholders.
	stripped := placeholderPattern.ReplaceAllString(template, "")
	if strings.Contains(stripped, "{{") || strings.Contains(stripped, "}}") {
		return nil, fmt.Errorf("template contains malformed placeholder braces")
	}

	return &Prompt{
		template: template,
		bound:    make(map[string]string),
		names:    names,
	}, nil
}

// MustNew is New for package-level template literals; it panics on a
// malformed template.
func MustNew(template string) *Prompt {
	p, err := New(template)
	if err != nil {
		panic(err)
	}
	return p
}

// Placeholders returns the set of placeholder names in the template.
func (p *Prompt) Placeholders() map[string]struct{} {
	return maps.Clone(p.names)
}

// BindLiteral binds a plain string value to a placeholder.
func (p *Prompt) BindLiteral(name, value string) (*Prompt, error) {
	return p.bind(name, value)
}

// BindJSON marshals data as JSON and binds it to a placeholder.
func (p *Prompt) BindJSON(name string, data any) (*Prompt, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshaling binding %q: %w", name, err)
	}
	return p.bind(name, string(raw))
}

// BindXML marshals data as XML and binds it to a placeholder. XML
// blocks keep model-facing prompts legible when values contain
// multi-line text.
func (p *Prompt) BindXML(name string, data any) (*Prompt, error) {
	raw, err := xml.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshaling binding %q: %w", name, err)
	}
	return p.bind(name, string(raw))
}

// bind records a value for name, enforcing existence and single-bind.
func (p *Prompt) bind(name, value string) (*Prompt, error) {
	if _, ok := p.names[name]; !ok {
		return nil, fmt.Errorf("template has no placeholder %q", name)
	}
	if _, ok := p.bound[name]; ok {
		return nil, fmt.Errorf("placeholder %q is already bound", name)
	}
	next := &Prompt{
		template: p.template,
		bound:    maps.Clone(p.bound),
		names:    p.names,
	}
	next.bound[name] = value
	return next, nil
}

// Build renders the template, failing if any placeholder is unbound.
func (p *Prompt) Build() (string, error) {
	var missing []string
	for name := range p.names {
		if _, ok := p.bound[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return "", fmt.Errorf("unbound placeholders: %s", strings.Join(missing, ", "))
	}

	return placeholderPattern.ReplaceAllStringFunc(p.template, func(tok string) string {
		name := placeholderPattern.FindStringSubmatch(tok)[1]
		return p.bound[name]
	}), nil
}
