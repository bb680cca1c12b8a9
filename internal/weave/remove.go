package weave

import (
	"strings"

	"signal-weaver/internal/match"
)

// Thresholds for the removal strategies, tried in order.
const (
	fuzzyPartThreshold   = 0.5  // sub-token similarity to count a fuzzy token hit
	windowScoreThreshold = 0.5  // blended window score needed to remove a region
	wholeFuzzyThreshold  = 0.75 // whole-hint fallback similarity
)

// RemoveCommon strips one occurrence of the shared hint from s, exposing
// the residual used for comparison. Three strategies are tried in order:
// an exact case-insensitive match of any variant spelling of the hint at
// the best-scoring position, a sliding-window search for a region covering
// the hint tokens, and a fuzzy match of the hint as a whole. If nothing
// clears its threshold, s is returned unchanged.
func RemoveCommon(s, hint string) string {
	if hint == "" || s == "" {
		return s
	}

	lower := strings.ToLower(s)
	hintLower := strings.ToLower(hint)

	if start, end, ok := bestVariantOccurrence(s, lower, hint); ok {
		return s[:start] + s[end:]
	}

	tokens := match.Tokenize(hint)

	if len(s) > 5 {
		if start, end, ok := bestTokenWindow(lower, hintLower, tokens); ok {
			return s[:start] + s[end:]
		}
	}

	if start, end, ok := bestFuzzyRegion(lower, hintLower); ok {
		return s[:start] + s[end:]
	}

	return s
}

// bestVariantOccurrence scans every occurrence of every variant spelling
// of the hint inside s and picks the one with the lowest position score.
// The score prefers occurrences near the start of s and occurrences flush
// against either end, with little surrounding context.
func bestVariantOccurrence(s, lower, hint string) (start, end int, ok bool) {
	const maxContext = 5

	bestScore := int(^uint(0) >> 1)

	for _, variant := range match.Variants(hint) {
		variant = strings.ToLower(variant)

		for pos := 0; ; pos++ {
			idx := strings.Index(lower[pos:], variant)
			if idx < 0 {
				break
			}

			pos += idx

			prefixLen := min(pos, maxContext)
			suffixLen := min(len(s)-(pos+len(variant)), maxContext)

			score := pos + prefixLen + suffixLen
			if prefixLen == 0 {
				score -= maxContext
			}

			if suffixLen == 0 {
				score -= maxContext
			}

			if score < bestScore {
				bestScore = score
				start = pos
				end = pos + len(variant)
				ok = true
			}
		}
	}

	return start, end, ok
}

// bestTokenWindow slides a window over s looking for the contiguous region
// whose token overlap with the hint tokens (in original or reversed order)
// scores best on the blended matchRatio/lengthRatio metric.
func bestTokenWindow(lower, hintLower string, tokens []string) (start, end int, ok bool) {
	if len(tokens) == 0 {
		return 0, 0, false
	}

	orderings := [][]string{tokens}
	if len(tokens) > 1 && len(tokens) <= 6 {
		orderings = append(orderings, match.ReverseTokens(tokens))
	}

	bestScore := 0.0

	for i := 0; i < len(lower); i++ {
		maxWin := min(len(lower)-i, 2*len(hintLower))

		for winLen := 3; winLen <= maxWin; winLen++ {
			window := lower[i : i+winLen]

			for _, ordering := range orderings {
				matched := countMatchedTokens(window, ordering)

				matchRatio := matched / float64(len(ordering))
				lengthRatio := 1.0 - float64(abs(winLen-len(hintLower)))/float64(max(winLen, len(hintLower)))

				score := matchRatio*0.7 + lengthRatio*0.3
				if score > bestScore && score > windowScoreThreshold {
					bestScore = score
					start = i
					end = i + winLen
					ok = true
				}
			}
		}
	}

	return start, end, ok
}

// countMatchedTokens counts how many hint tokens occur in the window, in
// order. An exact occurrence counts 1.0; failing that, the closest
// sub-token above the fuzzy threshold earns partial credit.
func countMatchedTokens(window string, tokens []string) float64 {
	matched := 0.0
	lastMatch := -1

	for _, part := range tokens {
		// Only significant tokens participate
		if len(part) < 2 {
			continue
		}

		from := max(0, lastMatch)

		if idx := strings.Index(window[from:], part); idx >= 0 {
			matched += 1.0
			lastMatch = from + idx + len(part)

			continue
		}

		bestPartSim := fuzzyPartThreshold

		for wpos := 0; wpos < len(window)-1; wpos++ {
			maxPartLen := min(len(part)+2, len(window)-wpos)

			for plen := max(2, len(part)-1); plen <= maxPartLen; plen++ {
				sub := window[wpos : wpos+plen]
				if sim := match.Similarity(sub, part); sim > bestPartSim {
					bestPartSim = sim
					lastMatch = wpos + plen
				}
			}
		}

		if bestPartSim > fuzzyPartThreshold {
			matched += bestPartSim * 0.8
		}
	}

	return matched
}

// bestFuzzyRegion finds the contiguous substring of s most similar to the
// hint as a whole, above the whole-hint threshold.
func bestFuzzyRegion(lower, hintLower string) (start, end int, ok bool) {
	maxSim := wholeFuzzyThreshold

	for i := 0; i < len(lower)-2; i++ {
		maxWin := min(len(hintLower)+5, len(lower)-i)

		for winLen := 3; winLen <= maxWin; winLen++ {
			sim := match.Similarity(lower[i:i+winLen], hintLower)
			if sim > maxSim {
				maxSim = sim
				start = i
				end = i + winLen
				ok = true
			}
		}
	}

	return start, end, ok
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
