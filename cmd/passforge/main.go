// PassForge — cryptographically-random password and passphrase
// generation with optional strength scoring.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge/cmd/passforge/cli"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "passforge",
		Short: "Generate cryptographically-random passwords and passphrases",
		Long: `PassForge generates uniformly-random secrets from declarative policies:
fixed-policy passwords (length, character classes) or multi-word
passphrases (word count, separator, word list). Generated secrets can be
scored against a pattern-matching guessability estimator.

Secrets are written to stdout and never persisted or transmitted.`,
		Version:      version,
		SilenceUsage: true,
	}

	// Register command groups
	cli.RegisterPasswordCommand(rootCmd)
	cli.RegisterPassphraseCommand(rootCmd)
	cli.RegisterStrengthCommand(rootCmd)
	cli.RegisterPresetCommands(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
