package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetCommand restores a command's flags (and the root persistent flags)
// to their defaults so tests do not leak state into each other.
func resetCommand(t *testing.T, cmd *cobra.Command) {
	t.Helper()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), errOut.String(), err
}

func writeListsFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lists.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestMatchCommand(t *testing.T) {
	defer resetCommand(t, matchCmd)

	path := writeListsFile(t, `
hint: axi
bus:
  - axi_araddr
  - axi_arburst
ports:
  - m_axi_araddr
  - m_axi_arburst
`)

	out, errOut, err := execute(t, "match", "-f", path)
	require.NoError(t, err)

	assert.Contains(t, out, "m_axi_araddr")
	assert.Contains(t, out, "axi_araddr")
	assert.Empty(t, errOut)
}

func TestMatchCommandWarnsAboutUnmatchedPorts(t *testing.T) {
	defer resetCommand(t, matchCmd)

	path := writeListsFile(t, `
hint: axi
bus:
  - axi_araddr
ports:
  - m_axi_araddr
  - m_axi_arburst
`)

	out, errOut, err := execute(t, "match", "-f", path)
	require.NoError(t, err)

	assert.Contains(t, out, "(unmatched)")
	assert.Contains(t, errOut, "unmatched")
}

func TestMatchCommandRequiresInput(t *testing.T) {
	defer resetCommand(t, matchCmd)

	_, _, err := execute(t, "match")
	assert.ErrorContains(t, err, "no identifiers")
}

func TestClusterCommand(t *testing.T) {
	defer resetCommand(t, clusterCmd)

	path := writeListsFile(t, `
ports:
  - u_uart0
  - u_uart1
  - u_spi0
`)

	out, _, err := execute(t, "cluster", "-f", path, "--hint", "uart")
	require.NoError(t, err)

	assert.Contains(t, out, "u_uart")
	assert.Contains(t, out, `best marker for hint "uart"`)
}

func TestMarkersCommand(t *testing.T) {
	defer resetCommand(t, markersCmd)

	path := writeListsFile(t, `
ports:
  - u_uart0
  - u_uart1
  - u_spi0
`)

	out, _, err := execute(t, "markers", "-f", path)
	require.NoError(t, err)

	assert.Contains(t, out, "u_")
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "signal-weaver")
}
