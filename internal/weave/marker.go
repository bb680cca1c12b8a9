package weave

import (
	"sort"
	"strings"

	"signal-weaver/internal/match"
)

// UnknownMarker is the sentinel group for identifiers that no marker claims.
const UnknownMarker = "<unknown>"

// ExtractMarkers enumerates every substring of length >= minLen across the
// identifiers, counting each substring at most once per identifier, and
// returns the substrings that occur in at least freqThreshold identifiers.
func ExtractMarkers(identifiers []string, minLen, freqThreshold int) map[string]int {
	freq := make(map[string]int)

	for _, ident := range identifiers {
		seen := make(map[string]bool)

		for subLen := minLen; subLen <= len(ident); subLen++ {
			for i := 0; i+subLen <= len(ident); i++ {
				sub := ident[i : i+subLen]
				if !seen[sub] {
					seen[sub] = true
					freq[sub]++
				}
			}
		}
	}

	candidates := make(map[string]int)

	for sub, count := range freq {
		if count >= freqThreshold {
			candidates[sub] = count
		}
	}

	return candidates
}

// SortMarkers returns the marker set ordered by descending length, longer
// (more specific) markers first. Equal-length markers are ordered
// lexicographically so the result is deterministic.
func SortMarkers(markers map[string]int) []string {
	sorted := make([]string, 0, len(markers))
	for marker := range markers {
		sorted = append(sorted, marker)
	}

	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}

		return sorted[i] < sorted[j]
	})

	return sorted
}

// Cluster partitions identifiers into groups keyed by marker. Each
// identifier goes to the first marker, longest first, that is a prefix of
// it; identifiers no marker claims go to the UnknownMarker group.
func Cluster(identifiers []string, markers map[string]int) map[string][]string {
	sorted := SortMarkers(markers)

	groups := make(map[string][]string)

	for _, ident := range identifiers {
		assigned := false

		for _, marker := range sorted {
			if strings.HasPrefix(ident, marker) {
				groups[marker] = append(groups[marker], ident)
				assigned = true

				break
			}
		}

		if !assigned {
			groups[UnknownMarker] = append(groups[UnknownMarker], ident)
		}
	}

	return groups
}

// FindBestGroup returns the first marker from the sorted list that occurs
// anywhere inside s, or UnknownMarker when none does. Unlike Cluster this
// matches substrings, not prefixes: hint resolution accepts an occurrence
// anywhere in the identifier.
func FindBestGroup(s string, sortedMarkers []string) string {
	for _, marker := range sortedMarkers {
		if strings.Contains(s, marker) {
			return marker
		}
	}

	return UnknownMarker
}

// Part-aware scoring thresholds for BestMarkerForHint.
const (
	partMatchedThreshold = 0.7 // token similarity above this counts as a match
	hintFallbackScore    = 0.4 // below this, fall back to plain similarity
)

// BestMarkerForHint classifies a free-form hint string against a marker
// set. Variant spellings of the hint are scored against every marker with
// a part-aware similarity; ties resolve to the longer marker. If the best
// score stays below 0.4 the lookup falls back to plain whole-string
// similarity between the unmodified hint and each marker.
func BestMarkerForHint(hint string, markers []string) string {
	variants := match.Variants(hint)

	var best string

	bestScore := 0.0
	bestLen := 0

	for _, variant := range variants {
		for _, marker := range markers {
			score := partAwareSimilarity(variant, marker)
			if score > bestScore || (score == bestScore && len(marker) > bestLen) {
				bestScore = score
				bestLen = len(marker)
				best = marker
			}
		}
	}

	if bestScore < hintFallbackScore {
		bestScore = 0.0
		bestLen = 0

		for _, marker := range markers {
			score := match.Similarity(strings.ToLower(marker), strings.ToLower(hint))
			if score > bestScore || (score == bestScore && len(marker) > bestLen) {
				bestScore = score
				bestLen = len(marker)
				best = marker
			}
		}
	}

	return best
}

// partAwareSimilarity blends whole-string similarity with a token-level
// match ratio. When either side has a single token the plain similarity is
// returned; otherwise each token of a is matched against its best
// counterpart in b, a token counts as matched above 0.7, and the blended
// score matchRatio*0.7 + avgMatchedSim*0.3 competes with the plain score.
func partAwareSimilarity(a, b string) float64 {
	directSim := match.Similarity(strings.ToLower(a), strings.ToLower(b))

	partsA := match.Tokenize(a)
	partsB := match.Tokenize(b)

	if len(partsA) <= 1 || len(partsB) <= 1 {
		return directSim
	}

	matched := 0
	totalSim := 0.0

	for _, partA := range partsA {
		bestPartSim := 0.0

		for _, partB := range partsB {
			if sim := match.Similarity(partA, partB); sim > bestPartSim {
				bestPartSim = sim
			}
		}

		if bestPartSim > partMatchedThreshold {
			matched++

			totalSim += bestPartSim
		}
	}

	matchRatio := float64(matched) / float64(len(partsA))

	avgSim := 0.0
	if matched > 0 {
		avgSim = totalSim / float64(matched)
	}

	partScore := matchRatio*0.7 + avgSim*0.3

	return max(directSim, partScore)
}
