// Package weave correlates two collections of naming-convention-inconsistent
// identifiers, such as bus-interface signal names and module port names.
//
// The pipeline: recurring substrings are extracted as group markers
// (ExtractMarkers, Cluster), a shared hint substring is stripped from both
// sides of every candidate pair (RemoveCommon, TrimmedSimilarity), and the
// resulting cost matrix is solved as a minimum-cost one-to-one assignment
// (Solve, FindOptimalMatching).
package weave
