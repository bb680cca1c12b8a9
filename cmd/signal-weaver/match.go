package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"signal-weaver/internal/diagnostic"
	"signal-weaver/internal/weave"
)

var (
	matchBusPath       string
	matchPortsPath     string
	matchHint          string
	matchMinSimilarity float64
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Pair every port with its most plausible bus signal",
	Long: `Build a cost matrix from hint-trimmed, variant-aware similarity between
every (port, signal) pair and solve it as a minimum-cost one-to-one
assignment. Ports that land on padding (when the collections differ in
size) are reported as unmatched.`,
	Args: cobra.NoArgs,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVar(&matchBusPath, "bus", "", "plain-text file with bus signal names")
	matchCmd.Flags().StringVar(&matchPortsPath, "ports", "", "plain-text file with module port names")
	matchCmd.Flags().StringVar(&matchHint, "hint", "", "shared substring both sides may embed")
	matchCmd.Flags().Float64Var(&matchMinSimilarity, "min-similarity", 0.5, "warn about pairs scoring below this")
}

func runMatch(cmd *cobra.Command, _ []string) error {
	f, err := loadInputs(matchBusPath, matchPortsPath, matchHint)
	if err != nil {
		return err
	}

	matching := weave.FindOptimalMatching(f.Bus, f.Ports, f.Hint)

	scores := make(map[string]float64, len(matching))
	for port, signal := range matching {
		scores[port] = weave.PairSimilarity(port, signal, f.Hint)
	}

	if debugDump {
		spew.Fdump(os.Stderr, f, matching, scores)
	}

	diags := &diagnostic.Diagnostics{}

	for _, port := range f.Ports {
		if _, ok := matching[port]; !ok {
			diags.AddWarning("unmatched", "no bus signal left to pair with", port)

			continue
		}

		if scores[port] < matchMinSimilarity {
			diags.AddWarning("weak-match", "similarity below threshold", port)
		}
	}

	if diags.HasWarnings() {
		diags.AddInfo("matched", fmt.Sprintf("%d of %d ports matched", len(matching), len(f.Ports)), "")
	}

	printMatching(cmd.OutOrStdout(), f.Ports, matching, scores, matchMinSimilarity)

	if diags.HasWarnings() {
		cmd.PrintErr(diags.Format())
	}

	return nil
}
