/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package schema_test

import (
	"strings"
	"testing"

	"github.com/Santhosh-Hanabi/tensorzero/schema"
	"github.com/Santhosh-Hanabi/tensorzero/scoring"
)

func TestReflectType_Entities(t *testing.T) {
	t.Parallel()

	s := schema.ReflectType[scoring.Entities]()
	if s == nil {
		t.Fatal("ReflectType returned nil")
	}

	rendered, err := schema.MarshalIndent(s)
	if err != nil {
		t.Fatalf("MarshalIndent: %v", err)
	}

	// The inline schema should name every entity category.
	for _, field := range []string{"person", "organization", "location", "miscellaneous"} {
		if !strings.Contains(rendered, field) {
			t.Errorf("schema missing property %q:\n%s", field, rendered)
		}
	}
	// Inline schemas must not use $ref indirection.
	if strings.Contains(rendered, "$ref") {
		t.Errorf("schema should be inline, found $ref:\n%s", rendered)
	}
}
