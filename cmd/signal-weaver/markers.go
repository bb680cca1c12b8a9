package main

import (
	"github.com/spf13/cobra"

	"signal-weaver/internal/weave"
)

var (
	markersBusPath   string
	markersPortsPath string
	markersMinLen    int
	markersThreshold int
)

var markersCmd = &cobra.Command{
	Use:   "markers",
	Short: "Extract recurring substrings from the identifier collections",
	Args:  cobra.NoArgs,
	RunE:  runMarkers,
}

func init() {
	markersCmd.Flags().StringVar(&markersBusPath, "bus", "", "plain-text file with bus signal names")
	markersCmd.Flags().StringVar(&markersPortsPath, "ports", "", "plain-text file with module port names")
	markersCmd.Flags().IntVar(&markersMinLen, "min-len", 0, "minimum marker length (default from file, else 2)")
	markersCmd.Flags().IntVar(&markersThreshold, "threshold", 0, "minimum identifier count per marker (default from file, else 2)")
}

func runMarkers(cmd *cobra.Command, _ []string) error {
	f, err := loadInputs(markersBusPath, markersPortsPath, "")
	if err != nil {
		return err
	}

	if markersMinLen > 0 {
		f.MinLen = markersMinLen
	}

	if markersThreshold > 0 {
		f.Threshold = markersThreshold
	}

	if err := f.Validate(); err != nil {
		return err
	}

	markers := weave.ExtractMarkers(allIdentifiers(f), f.MinLen, f.Threshold)

	printMarkers(cmd.OutOrStdout(), markers)

	return nil
}
