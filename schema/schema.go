/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package schema derives JSON schemas from Go types. The judge embeds
// the reflected Judgement schema in its prompts so backends answer in
// a parseable shape.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// reflector is configured for inline schemas: no $ref indirection,
// required fields driven by jsonschema struct tags, and closed objects
// so a misnamed field fails validation instead of vanishing.
var reflector = jsonschema.Reflector{
	RequiredFromJSONSchemaTags: true,
	ExpandedStruct:             true,
	DoNotReference:             true,
}

// Reflect returns the JSON schema for the provided value.
func Reflect(v any) *jsonschema.Schema {
	return reflector.Reflect(v)
}

// ReflectType reflects the schema of T from its zero value.
func ReflectType[T any]() *jsonschema.Schema {
	var zero T
	return Reflect(&zero)
}

// MarshalIndent renders a schema as indented JSON, suitable for
// embedding in a model-facing prompt.
func MarshalIndent(s *jsonschema.Schema) (string, error) {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling schema: %w", err)
	}
	return string(raw), nil
}
