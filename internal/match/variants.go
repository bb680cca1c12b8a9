package match

import "strings"

// Reversed token joins are only generated for short token sequences;
// longer ones explode the search space without adding plausible spellings.
const maxReversibleTokens = 4

// Variants returns the alternate spellings of an identifier: the original
// form, the underscore join, lowerCamel and UpperCamel joins of its tokens,
// and, for sequences of 2 to 4 tokens, the same three joins over the
// reversed token order. The result is de-duplicated case-insensitively and
// is never empty for a non-empty input.
func Variants(s string) []string {
	tokens := Tokenize(s)

	var out []string

	seen := make(map[string]bool)

	add := func(v string) {
		if v == "" {
			return
		}

		key := strings.ToLower(v)
		if !seen[key] {
			seen[key] = true

			out = append(out, v)
		}
	}

	add(s)

	if len(tokens) > 1 {
		add(JoinSnake(tokens))
		add(JoinLowerCamel(tokens))
		add(JoinUpperCamel(tokens))

		if len(tokens) <= maxReversibleTokens {
			reversed := ReverseTokens(tokens)

			add(JoinSnake(reversed))
			add(JoinLowerCamel(reversed))
			add(JoinUpperCamel(reversed))
		}
	}

	return out
}
