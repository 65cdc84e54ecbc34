/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package scoring_test

import (
	"math"
	"testing"

	"github.com/Santhosh-Hanabi/tensorzero/scoring"
)

func TestExactMatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pred scoring.Entities
		gold scoring.Entities
		want bool
	}{{
		name: "both empty",
		want: true,
	}, {
		name: "identical",
		pred: scoring.Entities{
			Person:   []string{"Ada Lovelace"},
			Location: []string{"London"},
		},
		gold: scoring.Entities{
			Person:   []string{"Ada Lovelace"},
			Location: []string{"London"},
		},
		want: true,
	}, {
		name: "order within a category is irrelevant",
		pred: scoring.Entities{Person: []string{"Bob", "Alice"}},
		gold: scoring.Entities{Person: []string{"Alice", "Bob"}},
		want: true,
	}, {
		name: "duplicates collapse for set equality",
		pred: scoring.Entities{Person: []string{"Alice", "Alice"}},
		gold: scoring.Entities{Person: []string{"Alice"}},
		want: true,
	}, {
		name: "same value under a different category is a different label",
		pred: scoring.Entities{Person: []string{"Paris"}},
		gold: scoring.Entities{Location: []string{"Paris"}},
		want: false,
	}, {
		name: "missing entity",
		pred: scoring.Entities{Organization: []string{"Reuters"}},
		gold: scoring.Entities{Organization: []string{"Reuters", "EU"}},
		want: false,
	}, {
		name: "spurious entity",
		pred: scoring.Entities{Miscellaneous: []string{"World Cup", "Olympics"}},
		gold: scoring.Entities{Miscellaneous: []string{"World Cup"}},
		want: false,
	}, {
		name: "empty prediction against non-empty gold",
		gold: scoring.Entities{Person: []string{"Alice"}},
		want: false,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := scoring.ExactMatch(tt.pred, tt.gold); got != tt.want {
				t.Errorf("ExactMatch() = %v, want %v", got, tt.want)
			}
			// The metric is symmetric.
			if got := scoring.ExactMatch(tt.gold, tt.pred); got != tt.want {
				t.Errorf("ExactMatch() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJaccard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		pred scoring.Entities
		gold scoring.Entities
		want float64
	}{{
		name: "both empty scores one",
		want: 1,
	}, {
		name: "identical scores one",
		pred: scoring.Entities{Person: []string{"Alice"}, Location: []string{"Oslo"}},
		gold: scoring.Entities{Person: []string{"Alice"}, Location: []string{"Oslo"}},
		want: 1,
	}, {
		name: "disjoint scores zero",
		pred: scoring.Entities{Person: []string{"Alice"}},
		gold: scoring.Entities{Person: []string{"Bob"}},
		want: 0,
	}, {
		name: "empty prediction scores zero",
		gold: scoring.Entities{Organization: []string{"UN"}},
		want: 0,
	}, {
		name: "half overlap",
		pred: scoring.Entities{Person: []string{"Alice"}},
		gold: scoring.Entities{Person: []string{"Alice", "Bob"}},
		want: 0.5,
	}, {
		name: "category tag distinguishes keys",
		pred: scoring.Entities{Person: []string{"Paris"}, Location: []string{"Paris"}},
		gold: scoring.Entities{Location: []string{"Paris"}},
		want: 0.5,
	}, {
		name: "duplicate counts use per-key minimum and maximum",
		// Key PERSON/Alice: min(2,1)=1, max(2,1)=2 -> 1/2.
		pred: scoring.Entities{Person: []string{"Alice", "Alice"}},
		gold: scoring.Entities{Person: []string{"Alice"}},
		want: 0.5,
	}, {
		name: "mixed categories",
		// Intersection: PERSON/Alice (1) + LOCATION/Oslo (1) = 2.
		// Union: Alice (1) + Bob (1) + Oslo (1) + UN (1) = 4.
		pred: scoring.Entities{
			Person:   []string{"Alice", "Bob"},
			Location: []string{"Oslo"},
		},
		gold: scoring.Entities{
			Person:       []string{"Alice"},
			Location:     []string{"Oslo"},
			Organization: []string{"UN"},
		},
		want: 0.5,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := scoring.Jaccard(tt.pred, tt.gold)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Jaccard() = %v, want %v", got, tt.want)
			}
			if rev := scoring.Jaccard(tt.gold, tt.pred); math.Abs(rev-tt.want) > 1e-9 {
				t.Errorf("Jaccard() reversed = %v, want %v", rev, tt.want)
			}
		})
	}
}

func TestJaccardBounds(t *testing.T) {
	t.Parallel()

	pred := scoring.Entities{
		Person:        []string{"Alice", "Bob", "Bob"},
		Organization:  []string{"UN"},
		Miscellaneous: []string{"Treaty of Rome"},
	}
	gold := scoring.Entities{
		Person:   []string{"Bob"},
		Location: []string{"Rome"},
	}

	got := scoring.Jaccard(pred, gold)
	if got < 0 || got > 1 {
		t.Fatalf("Jaccard() = %v, want value in [0, 1]", got)
	}
}

func TestEntitiesHelpers(t *testing.T) {
	t.Parallel()

	var empty scoring.Entities
	if !empty.IsEmpty() {
		t.Error("IsEmpty() = false for zero value, want true")
	}
	if got := empty.Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}

	e := scoring.Entities{
		Person:   []string{"Alice", "Alice"},
		Location: []string{"Oslo"},
	}
	if e.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
	if got := e.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}
