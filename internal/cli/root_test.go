package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the CLI with the given args and captures stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCLI_InitExecQuery_FileBackend(t *testing.T) {
	store := filepath.Join(t.TempDir(), "store")

	out, err := runCommand(t, "init", "--backend", "file", "--db", store)
	require.NoError(t, err)
	assert.Equal(t, "initialized dir://"+store+"\n", out)

	out, err = runCommand(t, "exec",
		"INSERT INTO quests (id, title, status) VALUES (?, ?, ?)",
		"--backend", "file", "--db", store,
		"--params", "q1, 'Slay the inbox', open")
	require.NoError(t, err)
	assert.Equal(t, "1 row(s) affected\n", out)

	out, err = runCommand(t, "query",
		"SELECT * FROM quests WHERE id = ?",
		"q1",
		"--backend", "file", "--db", store, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"title": "Slay the inbox"`)

	out, err = runCommand(t, "tables", "quests", "worlds",
		"--backend", "file", "--db", store)
	require.NoError(t, err)
	assert.Equal(t, "quests\texists\nworlds\tabsent\n", out)
}

func TestCLI_QuerySQLiteBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quest.db")

	_, err := runCommand(t, "exec",
		"INSERT INTO worlds (id, name) VALUES ('w1', 'Eldoria')",
		"--backend", "sqlite", "--db", path)
	require.NoError(t, err)

	out, err := runCommand(t, "query",
		"SELECT COUNT(*) FROM worlds",
		"--backend", "sqlite", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "count")
	assert.Contains(t, out, "1")
}

func TestCLI_InvalidFormat(t *testing.T) {
	_, err := runCommand(t, "query", "SELECT * FROM quests", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestCLI_InvalidBackend(t *testing.T) {
	_, err := runCommand(t, "query", "SELECT * FROM quests", "--backend", "redis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid backend")
}

func TestCLI_ConfigFileFillsUnsetFlags(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "questlog.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("backend: memory\nformat: json\n"), 0o644))

	out, err := runCommand(t, "query", "SELECT * FROM quests", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestCLI_FlagsWinOverConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "questlog.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("backend: memory\nformat: json\n"), 0o644))

	out, err := runCommand(t, "query", "SELECT * FROM quests",
		"--config", cfgPath, "--format", "text")
	require.NoError(t, err)
	assert.Equal(t, "(no rows)\n", out)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
