// Package diagnostic collects structured warnings and infos produced while
// correlating identifier collections, for presentation by the CLI.
package diagnostic
