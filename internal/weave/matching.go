package weave

import "signal-weaver/internal/match"

// FindOptimalMatching pairs every identifier of groupB with its most
// plausible counterpart in groupA, given a shared hint substring (an
// interface or bus name both sides may embed in different spellings).
//
// For every (b, a) pair the cost is (1 - bestTrimmedSimilarity) weighted
// by maxLenB/len(b), so short strings cannot match arbitrarily well by
// chance. The matrix is padded to a square with maximum cost 1.0 and
// solved exactly; pairings that land on padding indices are omitted from
// the result.
func FindOptimalMatching(groupA, groupB []string, hint string) map[string]string {
	matching := make(map[string]string)

	n := max(len(groupA), len(groupB))
	if n == 0 {
		return matching
	}

	variants := []string{""}
	if hint != "" {
		variants = match.Variants(hint)
	}

	maxLenB := 0
	for _, b := range groupB {
		maxLenB = max(maxLenB, len(b))
	}

	cost := make([][]float64, n)
	for i := range cost {
		cost[i] = make([]float64, n)
		for j := range cost[i] {
			cost[i][j] = 1.0
		}
	}

	for i, b := range groupB {
		weight := 1.0
		if len(b) > 0 {
			weight = float64(maxLenB) / float64(len(b))
		}

		for j, a := range groupA {
			cost[i][j] = (1.0 - bestVariantSimilarity(b, a, variants)) * weight
		}
	}

	assignment := Solve(cost)

	for i, b := range groupB {
		if j := assignment[i]; j >= 0 && j < len(groupA) {
			matching[b] = groupA[j]
		}
	}

	return matching
}

// PairSimilarity returns the best trimmed similarity between b and a over
// every variant spelling of the hint; the same score the cost matrix of
// FindOptimalMatching is built from.
func PairSimilarity(b, a, hint string) float64 {
	variants := []string{""}
	if hint != "" {
		variants = match.Variants(hint)
	}

	return bestVariantSimilarity(b, a, variants)
}

func bestVariantSimilarity(b, a string, variants []string) float64 {
	best := 0.0

	for _, variant := range variants {
		if sim := TrimmedSimilarity(b, a, variant); sim > best {
			best = sim
		}
	}

	return best
}
