package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/linepos/internal/cli"
)

func writeSample(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestLocate_TextOutput(t *testing.T) {
	path := writeSample(t, "foo\nbar\nbaz\n")

	out, err := execute(t, "locate", path, "5")
	require.NoError(t, err)

	assert.Contains(t, out, path+":2:1", "offset 5 is line 2 (one-indexed), column 1")
	assert.Contains(t, out, "bar", "context should show the source line")
	assert.Contains(t, out, "^", "context should mark the column")
}

func TestLocate_NoContext(t *testing.T) {
	path := writeSample(t, "foo\nbar\n")

	out, err := execute(t, "locate", "--no-context", path, "0")
	require.NoError(t, err)

	assert.Contains(t, out, path+":1:0")
	assert.NotContains(t, out, "^")
}

func TestLocate_JSONOutput(t *testing.T) {
	path := writeSample(t, "foo\nbar\nbaz\n")

	out, err := execute(t, "locate", "--format", "json", path, "5")
	require.NoError(t, err)

	var result struct {
		Path    string `json:"path"`
		Offset  int    `json:"offset"`
		Line    int    `json:"line"`
		Display string `json:"display"`
		Column  int    `json:"column"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, path, result.Path)
	assert.Equal(t, 5, result.Offset)
	assert.Equal(t, 1, result.Line, "line is zero-indexed in JSON")
	assert.Equal(t, "2", result.Display)
	assert.Equal(t, 1, result.Column)
}

func TestLocate_OutOfBounds(t *testing.T) {
	path := writeSample(t, "foo")

	_, err := execute(t, "locate", path, "4")
	require.Error(t, err)

	assert.Contains(t, err.Error(), "offset 4")
	assert.Contains(t, err.Error(), "3", "error should reference the valid bound")
	assert.Equal(t, cli.ExitQueryError, cli.ExitCodeForError(err))
}

func TestLocate_BadOffsetArgument(t *testing.T) {
	path := writeSample(t, "foo")

	_, err := execute(t, "locate", path, "abc")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeForError(err))
}

func TestLocate_MissingFile(t *testing.T) {
	_, err := execute(t, "locate", filepath.Join(t.TempDir(), "absent.txt"), "0")
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeForError(err))
}

func TestSpan_TextOutput(t *testing.T) {
	path := writeSample(t, "foo\nbar\nbaz\n")

	out, err := execute(t, "span", "--no-context", path, "5", "10")
	require.NoError(t, err)

	// Region covers "ar\nba": line 2 cols 1..3 and line 3 cols 0..2.
	assert.Contains(t, out, "2:1-3")
	assert.Contains(t, out, "3:0-2")
}

func TestSpan_ContextUnderlines(t *testing.T) {
	path := writeSample(t, "foo\nbar\nbaz\n")

	out, err := execute(t, "span", path, "5", "10")
	require.NoError(t, err)

	assert.Contains(t, out, "bar")
	assert.Contains(t, out, "baz")
	assert.Contains(t, out, "~~", "covered columns should be underlined")
}

func TestSpan_JSONOutput(t *testing.T) {
	path := writeSample(t, "foo\nbar\nbaz\n")

	out, err := execute(t, "span", "--format", "json", path, "5", "10")
	require.NoError(t, err)

	var result struct {
		Start int `json:"start"`
		End   int `json:"end"`
		Spans []struct {
			Line     int `json:"line"`
			StartCol int `json:"startCol"`
			EndCol   int `json:"endCol"`
		} `json:"spans"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	require.Len(t, result.Spans, 2)
	assert.Equal(t, 1, result.Spans[0].Line)
	assert.Equal(t, 1, result.Spans[0].StartCol)
	assert.Equal(t, 3, result.Spans[0].EndCol)
	assert.Equal(t, 2, result.Spans[1].Line)
	assert.Equal(t, 0, result.Spans[1].StartCol)
	assert.Equal(t, 2, result.Spans[1].EndCol)
}

func TestSpan_InvalidRange(t *testing.T) {
	path := writeSample(t, "foo\nbar\n")

	_, err := execute(t, "span", path, "5", "2")
	require.Error(t, err)
	assert.Equal(t, cli.ExitQueryError, cli.ExitCodeForError(err))
}

func TestSpan_ZeroWidthRegion(t *testing.T) {
	path := writeSample(t, "foo")

	out, err := execute(t, "span", "--format", "json", path, "3", "3")
	require.NoError(t, err)

	var result struct {
		Spans []struct {
			Line     int `json:"line"`
			StartCol int `json:"startCol"`
			EndCol   int `json:"endCol"`
		} `json:"spans"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	require.Len(t, result.Spans, 1)
	assert.Equal(t, 3, result.Spans[0].StartCol)
	assert.Equal(t, 3, result.Spans[0].EndCol)
}

func TestInvalidFormatFlag(t *testing.T) {
	path := writeSample(t, "foo")

	_, err := execute(t, "locate", "--format", "xml", path, "0")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeForError(err))
}

func TestConfigFileApplies(t *testing.T) {
	path := writeSample(t, "foo\nbar\n")

	confPath := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(confPath, []byte("format: json\n"), 0o644))

	out, err := execute(t, "locate", "--config", confPath, path, "0")
	require.NoError(t, err)

	assert.True(t, json.Valid([]byte(out)), "config should switch output to JSON")
}

func TestExitCodeForError_Nil(t *testing.T) {
	assert.Equal(t, cli.ExitSuccess, cli.ExitCodeForError(nil))
}
