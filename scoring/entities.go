/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package scoring

// Entities holds named-entity predictions grouped by CoNLL-2003 category.
// The JSON shape matches the output schema of the gateway's
// extract_entities JSON function.
type Entities struct {
	Person        []string `json:"person"`
	Organization  []string `json:"organization"`
	Location      []string `json:"location"`
	Miscellaneous []string `json:"miscellaneous"`
}

// IsEmpty reports whether no entities were extracted in any category.
func (e Entities) IsEmpty() bool {
	return len(e.Person) == 0 &&
		len(e.Organization) == 0 &&
		len(e.Location) == 0 &&
		len(e.Miscellaneous) == 0
}

// Len returns the total number of entity mentions across all categories,
// counting duplicates.
func (e Entities) Len() int {
	return len(e.Person) + len(e.Organization) + len(e.Location) + len(e.Miscellaneous)
}

// tagged enumerates every mention as a (category, value) pair with the
// category tag uppercased. Duplicates are preserved.
func (e Entities) tagged() []taggedEntity {
	out := make([]taggedEntity, 0, e.Len())
	for _, v := range e.Person {
		out = append(out, taggedEntity{category: "PERSON", value: v})
	}
	for _, v := range e.Organization {
		out = append(out, taggedEntity{category: "ORGANIZATION", value: v})
	}
	for _, v := range e.Location {
		out = append(out, taggedEntity{category: "LOCATION", value: v})
	}
	for _, v := range e.Miscellaneous {
		out = append(out, taggedEntity{category: "MISCELLANEOUS", value: v})
	}
	return out
}

// taggedEntity is a single entity mention keyed by its category.
type taggedEntity struct {
	category string
	value    string
}
