package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"signal-weaver/internal/weave"
)

var (
	colorStrong  = color.New(color.FgGreen)
	colorWeak    = color.New(color.FgYellow)
	colorMissing = color.New(color.FgRed)
	colorBold    = color.New(color.Bold)
)

// printMatching renders the port-to-signal pairing, ports in input order,
// with the pair similarity and a color cue for weak or missing matches.
func printMatching(w io.Writer, ports []string, matching map[string]string, scores map[string]float64, minSimilarity float64) {
	width := 0
	for _, port := range ports {
		width = max(width, len(port))
	}

	for _, port := range ports {
		signal, ok := matching[port]
		if !ok {
			fmt.Fprintf(w, "%-*s -> %s\n", width, port, colorMissing.Sprint("(unmatched)"))

			continue
		}

		line := fmt.Sprintf("%-*s -> %-20s %.3f", width, port, signal, scores[port])

		if scores[port] < minSimilarity {
			fmt.Fprintln(w, colorWeak.Sprint(line))
		} else {
			fmt.Fprintln(w, colorStrong.Sprint(line))
		}
	}
}

// printMarkers renders the marker set, longest first, with occurrence counts.
func printMarkers(w io.Writer, markers map[string]int) {
	for _, marker := range weave.SortMarkers(markers) {
		fmt.Fprintf(w, "%-20s %d\n", marker, markers[marker])
	}
}

// printGroups renders each marker group and its members, the sentinel
// unknown group last.
func printGroups(w io.Writer, groups map[string][]string) {
	names := make([]string, 0, len(groups))

	for name := range groups {
		if name != weave.UnknownMarker {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	if _, ok := groups[weave.UnknownMarker]; ok {
		names = append(names, weave.UnknownMarker)
	}

	for _, name := range names {
		fmt.Fprintln(w, colorBold.Sprint(name))

		for _, member := range groups[name] {
			fmt.Fprintf(w, "  %s\n", member)
		}
	}
}
