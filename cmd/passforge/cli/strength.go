package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/passforge/passforge/internal/strength"
)

// RegisterStrengthCommand adds the standalone strength evaluation
// command.
func RegisterStrengthCommand(root *cobra.Command) {
	root.AddCommand(newStrengthCmd())
}

func newStrengthCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "strength [secret]",
		Short: "Evaluate the guessability of a secret",
		Long: `Score a secret against a pattern-matching guessability estimator
(dictionary, keyboard, date and repeat attacks) and print a normalized
report. Without an argument the secret is read from stdin; on a
terminal the prompt does not echo.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var secret string
			if len(args) == 1 {
				secret = args[0]
			} else {
				read, err := readSecret()
				if err != nil {
					return err
				}
				secret = read
			}

			report, err := strength.NewZxcvbn().Evaluate(secret)
			if err != nil {
				return err
			}

			if quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\n", report.Score)
				return nil
			}
			printReport(cmd.OutOrStdout(), report, "")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the 0-4 score tier")

	return cmd
}

// readSecret reads the secret from stdin, without echo when stdin is a
// terminal.
func readSecret() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Secret: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading secret: %w", err)
		}
		return string(raw), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading secret from stdin: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
