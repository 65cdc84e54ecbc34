/*
Copyright 2026 TensorZero Go Contributors
SPDX-License-Identifier: Apache-2.0
*/

package scoring

// ExactMatch reports whether the predicted and gold label sets are
// set-equal. Each label is tagged by its category, so "Paris" under
// LOCATION and "Paris" under PERSON are distinct labels. Duplicate
// mentions collapse: this is set equality, not multiset equality.
//
// Two empty extractions match.
func ExactMatch(pred, gold Entities) bool {
	predSet := labelSet(pred)
	goldSet := labelSet(gold)

	if len(predSet) != len(goldSet) {
		return false
	}
	for k := range predSet {
		if _, ok := goldSet[k]; !ok {
			return false
		}
	}
	return true
}

// Jaccard computes the multiset Jaccard similarity between the predicted
// and gold labels: the sum of per-key minimum counts divided by the sum
// of per-key maximum counts across the union of keys. Unlike ExactMatch,
// duplicate mentions matter.
//
// Two empty extractions score 1.
func Jaccard(pred, gold Entities) float64 {
	predCounts := labelCounts(pred)
	goldCounts := labelCounts(gold)

	if len(predCounts) == 0 && len(goldCounts) == 0 {
		return 1
	}

	var intersection, union int
	for k, p := range predCounts {
		g := goldCounts[k]
		intersection += min(p, g)
		union += max(p, g)
	}
	for k, g := range goldCounts {
		if _, seen := predCounts[k]; !seen {
			union += g
		}
	}

	return float64(intersection) / float64(union)
}

// labelSet builds the set of category-tagged labels.
func labelSet(e Entities) map[taggedEntity]struct{} {
	set := make(map[taggedEntity]struct{}, e.Len())
	for _, t := range e.tagged() {
		set[t] = struct{}{}
	}
	return set
}

// labelCounts builds the multiset of category-tagged labels.
func labelCounts(e Entities) map[taggedEntity]int {
	counts := make(map[taggedEntity]int, e.Len())
	for _, t := range e.tagged() {
		counts[t]++
	}
	return counts
}
