package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/passforge/passforge/internal/batch"
	"github.com/passforge/passforge/internal/generator"
	"github.com/passforge/passforge/internal/strength"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := &cobra.Command{Use: "passforge", SilenceUsage: true, SilenceErrors: true}
	RegisterPasswordCommand(root)
	RegisterPassphraseCommand(root)
	RegisterStrengthCommand(root)
	RegisterPresetCommands(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func outputLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestPasswordCommand(t *testing.T) {
	out, err := execute(t, "password", "--length", "14", "--count", "3")
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, line, 14)
	}
}

func TestPasswordCommandPolicyError(t *testing.T) {
	_, err := execute(t, "password", "--length", "2")
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrPolicyUnsatisfiable)
}

func TestPasswordCommandUnknownPreset(t *testing.T) {
	_, err := execute(t, "password", "--preset", "heroic")
	assert.Error(t, err)
}

func TestPassphraseCommandCustomList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("eagle\nstone\n"), 0o600))

	out, err := execute(t, "passphrase",
		"--words", "5", "--separator", "_", "--word-list", path)
	require.NoError(t, err)

	lines := outputLines(out)
	require.Len(t, lines, 1)
	tokens := strings.Split(lines[0], "_")
	require.Len(t, tokens, 5)
	for _, tok := range tokens {
		assert.Contains(t, []string{"eagle", "stone"}, tok)
	}
}

func TestPassphraseCommandMissingList(t *testing.T) {
	_, err := execute(t, "passphrase", "--word-list", filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestStrengthCommandQuiet(t *testing.T) {
	out, err := execute(t, "strength", "--quiet", "weak")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestStrengthCommandReport(t *testing.T) {
	out, err := execute(t, "strength", "thicket-lantern-quartz-meadow-otter")
	require.NoError(t, err)
	assert.Contains(t, out, "score:")
	assert.Contains(t, out, "crack times:")
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)

	for _, name := range []string{"weak", "average", "strong"} {
		assert.Contains(t, out, name+":")
	}
}

func TestPrintResultsWithReports(t *testing.T) {
	report, err := strength.NewZxcvbn().Evaluate("weak")
	require.NoError(t, err)

	var out bytes.Buffer
	printResults(&out, []batch.Result{
		{Secret: generator.Secret{Value: "weak", Kind: generator.KindPassword}, Report: &report},
	})

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "weak\n"))
	assert.Contains(t, s, "score:")
	assert.Contains(t, s, "warning:")
}
