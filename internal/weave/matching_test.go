package weave

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindOptimalMatchingRecoversRenamedSignals(t *testing.T) {
	groupA := []string{"axi_araddr", "axi_arburst"}
	groupB := []string{"m_axi_araddr", "m_axi_arburst"}

	matching := FindOptimalMatching(groupA, groupB, "axi")

	assert.Equal(t, map[string]string{
		"m_axi_araddr":  "axi_araddr",
		"m_axi_arburst": "axi_arburst",
	}, matching)
}

func TestFindOptimalMatchingAcrossConventions(t *testing.T) {
	// Bus side uses snake_case, port side camelCase with a moved hint
	groupA := []string{"axi_awvalid", "axi_awready", "axi_wdata"}
	groupB := []string{"awvalidAxi", "awreadyAxi", "wdataAxi"}

	matching := FindOptimalMatching(groupA, groupB, "axi")

	assert.Equal(t, map[string]string{
		"awvalidAxi": "axi_awvalid",
		"awreadyAxi": "axi_awready",
		"wdataAxi":   "axi_wdata",
	}, matching)
}

func TestFindOptimalMatchingUnequalSizes(t *testing.T) {
	groupA := []string{"axi_araddr", "axi_arburst", "axi_awvalid"}
	groupB := []string{"m_axi_araddr"}

	matching := FindOptimalMatching(groupA, groupB, "axi")

	// The lone B element pairs with its counterpart; padding rows are dropped
	assert.Equal(t, map[string]string{"m_axi_araddr": "axi_araddr"}, matching)
}

func TestFindOptimalMatchingMoreTargetsThanSources(t *testing.T) {
	groupA := []string{"axi_araddr"}
	groupB := []string{"m_axi_araddr", "m_axi_arburst"}

	matching := FindOptimalMatching(groupA, groupB, "axi")

	// One B element necessarily lands on a padding column and is omitted
	assert.Len(t, matching, 1)
	assert.Equal(t, "axi_araddr", matching["m_axi_araddr"])
}

func TestFindOptimalMatchingWithoutHint(t *testing.T) {
	groupA := []string{"alpha", "beta"}
	groupB := []string{"alpha", "beta"}

	matching := FindOptimalMatching(groupA, groupB, "")

	assert.Equal(t, map[string]string{"alpha": "alpha", "beta": "beta"}, matching)
}

func TestFindOptimalMatchingEmptyGroups(t *testing.T) {
	assert.Empty(t, FindOptimalMatching(nil, nil, "axi"))
	assert.Empty(t, FindOptimalMatching([]string{"axi_araddr"}, nil, "axi"))
}
