package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig points the data dir and log file at a temp directory
func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: "+filepath.Join(dir, "data")+"\n"), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(BuildInfo{Version: "1.2.3", Commit: "abc", Date: "today"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dgboard 1.2.3 (commit: abc, built: today)\n", out)
}

func TestList_SeedsFirstRun(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "--config", cfg, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Total 4 · In Progress 1 · Review 1 · Done 1")
	assert.Contains(t, out, "Backlog (1)")
	assert.Contains(t, out, "Stakeholder dashboard")
	assert.Contains(t, out, "Done (1)")
	assert.Contains(t, out, "API contracts")

	// The seed was written back, so the second run reads the same board
	again, err := run(t, "--config", cfg, "list")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	_, err = os.Stat(filepath.Join(filepath.Dir(cfg), "data", "dgboard.db"))
	assert.NoError(t, err)
}

func TestList_HelpMentionsSeedWrite(t *testing.T) {
	out, err := run(t, "list", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "the demo board is written to it")
}

func TestList_Filters(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "--config", cfg, "list", "--assignee", "Diya")
	require.NoError(t, err)
	assert.Contains(t, out, "Auth flow")
	assert.NotContains(t, out, "Setup project foundation")
	// Metrics stay unfiltered
	assert.Contains(t, out, "Total 4")

	out, err = run(t, "--config", cfg, "list", "-q", "ENDPOINT")
	require.NoError(t, err)
	assert.Contains(t, out, "API contracts")
	assert.NotContains(t, out, "Stakeholder dashboard")
}

func TestList_Done(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "--config", cfg, "list", "--done", "--from", "2000-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed (1)")
	assert.Contains(t, out, "API contracts")

	out, err = run(t, "--config", cfg, "list", "--done", "--to", "2000-01-01")
	require.NoError(t, err)
	assert.Contains(t, out, "Completed (0)")
}

func TestList_BadFlags(t *testing.T) {
	cfg := writeConfig(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown assignee", []string{"--assignee", "Zed"}},
		{"unknown priority", []string{"--priority", "Urgent"}},
		{"bad date", []string{"--done", "--from", "01/02/2024"}},
		{"range without done", []string{"--from", "2024-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, append([]string{"--config", cfg, "list"}, tt.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestList_MissingConfig(t *testing.T) {
	_, err := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "list")
	assert.Error(t, err)
}
