package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	gridcrafterrors "github.com/alexisbeaulieu97/gridcraft/pkg/errors"
)

func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestPreviewCommand_Defaults(t *testing.T) {
	out, err := executeRoot(t, "preview")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(out, "/* Current container CSS */\n.grid-container {\n"))
	require.Contains(t, out, "  display: grid;\n")
	require.Contains(t, out, "  grid-template-columns: repeat(4, minmax(140px, 1fr));\n")
	require.Contains(t, out, "  grid-auto-rows: minmax(80px, auto);\n")
	require.Contains(t, out, "  gap: 12px;\n")
	require.Contains(t, out, "  grid-auto-flow: row;\n")
	require.Contains(t, out, "/* Selected item (1) overrides */\n.item:nth-child(1) {\n")
	require.Contains(t, out, "  grid-column: auto / span 1;\n")
	require.Contains(t, out, "  justify-self: center;\n")
	require.Contains(t, out, "  align-self: center;\n")
}

func TestPreviewCommand_Overrides(t *testing.T) {
	out, err := executeRoot(t, "preview",
		"--cols", "6",
		"--col-min", "120",
		"--gap", "0",
		"--flow", "column",
		"--dense",
		"--sizing", "fit",
		"--items", "3",
		"--select", "3",
	)
	require.NoError(t, err)

	require.Contains(t, out, "grid-template-columns: repeat(6, minmax(120px, auto));")
	require.Contains(t, out, "gap: 0px;")
	require.Contains(t, out, "grid-auto-flow: column dense;")
	require.Contains(t, out, ".item:nth-child(3)")
}

func TestPreviewCommand_NoItems(t *testing.T) {
	out, err := executeRoot(t, "preview", "--items", "0")
	require.NoError(t, err)

	require.Contains(t, out, ".grid-container {")
	require.NotContains(t, out, ".item:nth-child")
}

func TestPreviewCommand_ShuffleIsReproducible(t *testing.T) {
	first, err := executeRoot(t, "preview", "--shuffle", "--seed", "42")
	require.NoError(t, err)

	second, err := executeRoot(t, "preview", "--shuffle", "--seed", "42")
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestPreviewCommand_Canvas(t *testing.T) {
	out, err := executeRoot(t, "preview", "--canvas", "--items", "2")
	require.NoError(t, err)

	require.Contains(t, out, "1")
	require.Contains(t, out, "2")
	require.Contains(t, out, "/* Current container CSS */")
}

func TestPreviewCommand_InvalidSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridcraft.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0o600))

	_, err := executeRoot(t, "preview", "--config", path)

	var valErr *gridcrafterrors.ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestPreviewCommand_WritesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "gridcraft.log")

	_, err := executeRoot(t, "preview", "--log-level", "debug", "--log-file", logPath)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "preview rendered")
	require.Contains(t, string(data), "session_id")
}

func TestRootCommand_NonTerminalPrintsPreview(t *testing.T) {
	original := isTerminal
	t.Cleanup(func() { isTerminal = original })
	isTerminal = func(io.Writer) bool { return false }

	out, err := executeRoot(t)
	require.NoError(t, err)
	require.Contains(t, out, "/* Current container CSS */")
}

func TestPreviewCommand_ClampsToSettingsLimits(t *testing.T) {
	out, err := executeRoot(t, "preview", "--items", "1000000000", "--cols", "1000000", "--select", "1000000000")
	require.NoError(t, err)

	require.Contains(t, out, "grid-template-columns: repeat(12, minmax(140px, 1fr));")
	require.Contains(t, out, ".item:nth-child(40)")
}

func TestPreviewCommand_LimitsFromSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridcraft.yaml")
	require.NoError(t, os.WriteFile(path, []byte("limits:\n  max_columns: 6\n  max_items: 3\n"), 0o600))

	out, err := executeRoot(t, "preview", "--config", path, "--items", "50", "--cols", "9", "--select", "50")
	require.NoError(t, err)

	require.Contains(t, out, "repeat(6, minmax(140px, 1fr))")
	require.Contains(t, out, ".item:nth-child(3)")
}
