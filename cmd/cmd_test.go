package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args against a temp database.
func execute(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("BINOMEN_LOG", filepath.Join(t.TempDir(), "binomen.log"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--db", db))
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSettingsCommands(t *testing.T) {
	db := filepath.Join(t.TempDir(), "binomen.db")

	out, err := execute(t, db, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "shuffleQuestions   true")
	assert.Contains(t, out, "showHints          false")

	out, err = execute(t, db, "settings", "set", "showHints", "true")
	require.NoError(t, err)
	assert.Contains(t, out, "showHints          true")

	out, err = execute(t, db, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "showHints          true", "value persists across runs")

	_, err = execute(t, db, "settings", "reset")
	require.NoError(t, err)
	out, err = execute(t, db, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "showHints          false")
}

func TestSettingsSet_Invalid(t *testing.T) {
	db := filepath.Join(t.TempDir(), "binomen.db")

	_, err := execute(t, db, "settings", "set", "fontSize", "true")
	assert.ErrorContains(t, err, "unknown setting")

	_, err = execute(t, db, "settings", "set", "darkMode", "maybe")
	assert.ErrorContains(t, err, "parse value")
}

func TestQuestionsCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "binomen.db")

	out, err := execute(t, db, "questions", "--range", "1-13", "--check=false")
	require.NoError(t, err)
	assert.Contains(t, out, "Oryza sativa L.")
	assert.Contains(t, out, "13 questions")
	assert.NotContains(t, out, "Phaseolus")

	out, err = execute(t, db, "questions", "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "corpus ok: 15 questions")
}

func TestStatsCommand_Empty(t *testing.T) {
	db := filepath.Join(t.TempDir(), "binomen.db")

	out, err := execute(t, db, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "No sessions yet.")
}

func TestVersionCommand(t *testing.T) {
	db := filepath.Join(t.TempDir(), "binomen.db")

	out, err := execute(t, db, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "binomen (devel)")
}
