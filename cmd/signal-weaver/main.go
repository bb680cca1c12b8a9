// Package main provides the CLI entrypoint for signal-weaver.
//
// signal-weaver correlates two collections of naming-convention-inconsistent
// identifiers, such as bus-interface signal names and module port names:
//   - Extracts recurring markers and clusters identifiers by them
//   - Strips a shared hint substring in any of its variant spellings
//   - Solves the remaining correspondence as an optimal assignment
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
