package main

import (
	"errors"

	"github.com/spf13/cobra"

	"signal-weaver/internal/lists"
)

var (
	listsFile string
	debugDump bool
)

var rootCmd = &cobra.Command{
	Use:   "signal-weaver",
	Short: "Correlate naming-convention-inconsistent identifier collections",
	Long: `signal-weaver discovers which bus-interface signal most plausibly
corresponds to which module port, even when the two sides use different
casing conventions, different token ordering, or embed a shared bus name
inconsistently.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&listsFile, "file", "f", "", "YAML identifier lists file")
	rootCmd.PersistentFlags().BoolVar(&debugDump, "debug", false, "dump intermediate matching state to stderr")

	rootCmd.AddCommand(matchCmd, markersCmd, clusterCmd, versionCmd)
}

// loadInputs assembles the identifier collections from the YAML lists file
// or from plain-text bus/ports files. Flags override file contents.
func loadInputs(busPath, portsPath, hint string) (*lists.File, error) {
	var f *lists.File

	if listsFile != "" {
		loaded, err := lists.LoadFile(listsFile)
		if err != nil {
			return nil, err
		}

		f = loaded
	} else {
		f = &lists.File{MinLen: 2, Threshold: 2}
	}

	if hint != "" {
		f.Hint = hint
	}

	if busPath != "" {
		ids, err := lists.ReadLines(busPath)
		if err != nil {
			return nil, err
		}

		f.Bus = lists.StringList(ids)
	}

	if portsPath != "" {
		ids, err := lists.ReadLines(portsPath)
		if err != nil {
			return nil, err
		}

		f.Ports = lists.StringList(ids)
	}

	if f.IsEmpty() {
		return nil, errors.New("no identifiers given: provide --file or --bus/--ports")
	}

	return f, nil
}

// allIdentifiers returns the bus and port collections merged, the input for
// marker extraction.
func allIdentifiers(f *lists.File) []string {
	all := make([]string, 0, len(f.Bus)+len(f.Ports))
	all = append(all, f.Bus...)
	all = append(all, f.Ports...)

	return all
}
