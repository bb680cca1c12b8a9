package match

import (
	"strings"
	"unicode"
)

// Tokenize splits an identifier into lowercase tokens.
//
// If the identifier contains underscores it is split strictly on them;
// doubled separators yield empty tokens exactly as produced by the split.
// Otherwise a new token starts at every uppercase letter that is not the
// first character. Identifiers that do not split return a single
// lowercased token.
func Tokenize(s string) []string {
	if parts := strings.Split(strings.ToLower(s), "_"); len(parts) > 1 {
		return parts
	}

	var tokens []string

	start := 0

	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			tokens = append(tokens, strings.ToLower(s[start:i]))
			start = i
		}
	}

	tokens = append(tokens, strings.ToLower(s[start:]))

	if len(tokens) <= 1 {
		return []string{strings.ToLower(s)}
	}

	return tokens
}

// JoinSnake joins tokens with underscores.
func JoinSnake(tokens []string) string {
	return strings.Join(tokens, "_")
}

// JoinLowerCamel joins tokens in lowerCamel form: the first token is kept
// as-is, every subsequent token gets its first letter upper-cased.
func JoinLowerCamel(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(tokens[0])

	for _, tok := range tokens[1:] {
		sb.WriteString(capitalize(tok))
	}

	return sb.String()
}

// JoinUpperCamel joins tokens in UpperCamel (Pascal) form: every token gets
// its first letter upper-cased.
func JoinUpperCamel(tokens []string) string {
	var sb strings.Builder

	for _, tok := range tokens {
		sb.WriteString(capitalize(tok))
	}

	return sb.String()
}

// ReverseTokens returns a reversed copy of the token sequence. The input
// is left untouched.
func ReverseTokens(tokens []string) []string {
	reversed := make([]string, len(tokens))
	for i, tok := range tokens {
		reversed[len(tokens)-1-i] = tok
	}

	return reversed
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
