// Package lists loads identifier-list files for the CLI: the bus-side and
// port-side identifier collections, the shared hint, and the marker
// extraction parameters.
package lists
