package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"signal-weaver/internal/weave"
)

var (
	clusterBusPath   string
	clusterPortsPath string
	clusterHint      string
	clusterMinLen    int
	clusterThreshold int
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Group identifiers by their longest recurring marker",
	Long: `Extract recurring markers from the identifier collections and partition
the identifiers into groups, assigning each to the longest marker that
prefixes it. With --hint, additionally report the marker that best
matches the hint string.`,
	Args: cobra.NoArgs,
	RunE: runCluster,
}

func init() {
	clusterCmd.Flags().StringVar(&clusterBusPath, "bus", "", "plain-text file with bus signal names")
	clusterCmd.Flags().StringVar(&clusterPortsPath, "ports", "", "plain-text file with module port names")
	clusterCmd.Flags().StringVar(&clusterHint, "hint", "", "hint string to classify against the markers")
	clusterCmd.Flags().IntVar(&clusterMinLen, "min-len", 0, "minimum marker length (default from file, else 2)")
	clusterCmd.Flags().IntVar(&clusterThreshold, "threshold", 0, "minimum identifier count per marker (default from file, else 2)")
}

func runCluster(cmd *cobra.Command, _ []string) error {
	f, err := loadInputs(clusterBusPath, clusterPortsPath, clusterHint)
	if err != nil {
		return err
	}

	if clusterMinLen > 0 {
		f.MinLen = clusterMinLen
	}

	if clusterThreshold > 0 {
		f.Threshold = clusterThreshold
	}

	if err := f.Validate(); err != nil {
		return err
	}

	identifiers := allIdentifiers(f)
	markers := weave.ExtractMarkers(identifiers, f.MinLen, f.Threshold)
	groups := weave.Cluster(identifiers, markers)

	if debugDump {
		spew.Fdump(os.Stderr, markers, groups)
	}

	printGroups(cmd.OutOrStdout(), groups)

	if f.Hint != "" {
		best := weave.BestMarkerForHint(f.Hint, weave.SortMarkers(markers))
		fmt.Fprintf(cmd.OutOrStdout(), "\nbest marker for hint %q: %s\n", f.Hint, best)
	}

	return nil
}
