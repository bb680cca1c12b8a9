package weave

import (
	"sort"

	"signal-weaver/internal/match"
)

// Candidate represents a potential pairing of a target identifier with one
// entry of a candidate pool.
type Candidate struct {
	Target string
	Source string

	// Score is the normalized similarity between the two names (0-1).
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every pool entry against the target identifier and
// returns the candidates sorted by descending similarity.
func RankCandidates(target string, pool []string) CandidateList {
	candidates := make(CandidateList, 0, len(pool))

	for _, source := range pool {
		candidates = append(candidates, Candidate{
			Target: target,
			Source: source,
			Score:  match.Similarity(source, target),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// FindBestMatch returns the pool entry most similar to the target, or the
// empty string when no candidate scores strictly above the threshold.
func FindBestMatch(target string, pool []string, threshold float64) string {
	best := RankCandidates(target, pool).Best()
	if best == nil || best.Score <= threshold {
		return ""
	}

	return best.Source
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by source name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Source < c[j].Source
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// Best returns the best candidate, or nil if no candidates.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold returns candidates with a score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// IsAmbiguous returns true if the top two candidates are within the threshold.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score-c[1].Score < threshold
}
