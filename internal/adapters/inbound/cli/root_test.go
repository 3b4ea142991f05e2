package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codelens/codelens/internal/adapters/inbound/cli"
)

func writeSnippet(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "codelens")
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	path := writeSnippet(t, "snippet.js", "const x = 1;\n")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"analyze", path, "--format", "json"})
	require.NoError(t, cmd.Execute())

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result), "output should be valid JSON")
	assert.Equal(t, "javascript", result["language"])
	assert.Equal(t, float64(100), result["codeQualityScore"])
}

func TestAnalyzeCommand_YAML(t *testing.T) {
	path := writeSnippet(t, "snippet.py", "x = 1\n")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"analyze", path, "--language", "python", "--format", "yaml"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "language: python")
}

func TestAnalyzeCommand_Stdin(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetIn(bytes.NewBufferString("const x = 1;\n"))
	cmd.SetArgs([]string{"analyze", "-", "--format", "json"})
	require.NoError(t, cmd.Execute())

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "javascript", result["language"])
}

func TestAnalyzeCommand_CIGate(t *testing.T) {
	path := writeSnippet(t, "broken.js", "const x = 1\n")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"analyze", path, "--format", "json", "--ci", "--min", "90"})
	assert.Error(t, cmd.Execute())
}

func TestAnalyzeCommand_UnknownFormat(t *testing.T) {
	path := writeSnippet(t, "snippet.js", "const x = 1;\n")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"analyze", path, "--format", "xml"})
	assert.Error(t, cmd.Execute())
}

func TestFixCommand_JSON(t *testing.T) {
	path := writeSnippet(t, "broken.js", "const x = 1\n")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"fix", path, "--language", "javascript", "--format", "json"})
	require.NoError(t, cmd.Execute())

	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "const x = 1;", result["fixedCode"])
	assert.Equal(t, "heuristic", result["source"])
}

func TestReportCommand_WritesFile(t *testing.T) {
	path := writeSnippet(t, "snippet.js", "const x = 1;\n")
	out := filepath.Join(t.TempDir(), "report.txt")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"report", path, "--out", out})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Code Quality Report")
	assert.Contains(t, buf.String(), out)
}
