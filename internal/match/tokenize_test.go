package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		// Underscore splitting wins when underscores are present
		{"axi_araddr", []string{"axi", "araddr"}},
		{"m_axi_araddr", []string{"m", "axi", "araddr"}},
		{"AXI_ARADDR", []string{"axi", "araddr"}},

		// Doubled separators preserve empty tokens
		{"axi__araddr", []string{"axi", "", "araddr"}},
		{"_araddr", []string{"", "araddr"}},
		{"araddr_", []string{"araddr", ""}},

		// camelCase splitting
		{"axiAraddr", []string{"axi", "araddr"}},
		{"AxiAraddr", []string{"axi", "araddr"}},
		{"busIfName", []string{"bus", "if", "name"}},

		// Consecutive uppercase letters each start a token
		{"AXIBus", []string{"a", "x", "i", "bus"}},

		// Single-token identifiers fold to lowercase
		{"araddr", []string{"araddr"}},
		{"ARADDR", []string{"araddr"}},
		{"A", []string{"a"}},
		{"", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestTokenizeSnakeRoundTrip(t *testing.T) {
	// Tokenizing the underscore join of a token sequence must reproduce
	// the same sequence.
	inputs := []string{
		"axi_araddr",
		"m_axi_arburst",
		"busIfName",
		"AxiMasterPort",
		"clk",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tokens := Tokenize(input)
			rejoined := JoinSnake(tokens)
			assert.Equal(t, tokens, Tokenize(rejoined))
		})
	}
}

func TestJoins(t *testing.T) {
	tokens := []string{"cpu", "axi", "araddr"}

	assert.Equal(t, "cpu_axi_araddr", JoinSnake(tokens))
	assert.Equal(t, "cpuAxiAraddr", JoinLowerCamel(tokens))
	assert.Equal(t, "CpuAxiAraddr", JoinUpperCamel(tokens))

	// Empty tokens from doubled separators are tolerated
	assert.Equal(t, "a__b", JoinSnake([]string{"a", "", "b"}))
	assert.Equal(t, "aB", JoinLowerCamel([]string{"a", "", "b"}))

	assert.Equal(t, "", JoinLowerCamel(nil))
	assert.Equal(t, "", JoinUpperCamel(nil))
}

func TestReverseTokens(t *testing.T) {
	original := []string{"a", "b", "c"}
	reversed := ReverseTokens(original)

	assert.Equal(t, []string{"c", "b", "a"}, reversed)
	assert.Equal(t, []string{"a", "b", "c"}, original, "input must not be mutated")
}

func TestVariants(t *testing.T) {
	t.Run("single token has only the original spelling", func(t *testing.T) {
		assert.Equal(t, []string{"axi"}, Variants("axi"))
	})

	t.Run("two tokens include reversed joins", func(t *testing.T) {
		got := Variants("axi_master")

		assert.Contains(t, got, "axi_master")
		assert.Contains(t, got, "axiMaster")
		assert.Contains(t, got, "AxiMaster")
		assert.Contains(t, got, "master_axi")
		assert.Contains(t, got, "masterAxi")
		assert.Contains(t, got, "MasterAxi")
	})

	t.Run("camelCase input yields snake variant", func(t *testing.T) {
		got := Variants("axiMaster")

		assert.Contains(t, got, "axi_master")
		assert.Contains(t, got, "master_axi")
	})

	t.Run("de-duplication is case-insensitive", func(t *testing.T) {
		got := Variants("axi_master")

		lower := make(map[string]int)
		for _, v := range got {
			lower[toLowerKey(v)]++
		}

		for key, count := range lower {
			assert.Equalf(t, 1, count, "variant %q appears %d times", key, count)
		}
	})

	t.Run("five tokens skip reversed joins", func(t *testing.T) {
		got := Variants("a_bb_cc_dd_ee")

		assert.Contains(t, got, "aBbCcDdEe")
		assert.NotContains(t, got, "ee_dd_cc_bb_a")
	})

	t.Run("empty input yields no variants", func(t *testing.T) {
		assert.Empty(t, Variants(""))
	})
}

func toLowerKey(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}

	return string(out)
}
