package weave

import (
	"strings"

	"signal-weaver/internal/match"
)

// TrimmedSimilarity computes the similarity of two identifiers after the
// shared hint has been stripped from both sides. For hints of more than
// two tokens a second, token-masking strategy competes with plain removal:
// every character position covered by an occurrence of a hint token is
// masked out and the remnants are compared. The better of the two scores
// wins.
func TrimmedSimilarity(s1, s2, hint string) float64 {
	basic := match.Similarity(RemoveCommon(s1, hint), RemoveCommon(s2, hint))

	if len(match.Tokenize(hint)) <= 2 {
		return basic
	}

	masked := match.Similarity(maskedRemnant(s1, hint), maskedRemnant(s2, hint))

	return max(basic, masked)
}

// maskedRemnant removes every character of s that participates in an
// occurrence of a hint token. A boolean mask parallel to the string marks
// matched positions; the remnant keeps the original casing of the
// surviving characters.
func maskedRemnant(s, hint string) string {
	lower := strings.ToLower(s)
	mask := make([]bool, len(s))

	for _, part := range match.Tokenize(hint) {
		// Skip too-short tokens
		if len(part) < 2 {
			continue
		}

		for pos := 0; ; {
			idx := strings.Index(lower[pos:], part)
			if idx < 0 {
				break
			}

			pos += idx

			for i := 0; i < len(part); i++ {
				mask[pos+i] = true
			}

			pos += len(part)
		}
	}

	var sb strings.Builder

	for i := 0; i < len(s); i++ {
		if !mask[i] {
			sb.WriteByte(s[i])
		}
	}

	return sb.String()
}
