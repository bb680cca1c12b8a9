// Package match provides edit-distance similarity scoring, identifier
// tokenization, and naming-variant generation for fuzzy name matching.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - Similarity: normalized similarity score in [0, 1]
//   - Tokenize: splits an identifier at underscore or case-change boundaries
//   - Variants: alternate casing/ordering spellings of an identifier
package match
