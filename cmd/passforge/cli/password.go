package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge/internal/generator"
	"github.com/passforge/passforge/internal/preset"
)

// RegisterPasswordCommand adds the password generation command.
func RegisterPasswordCommand(root *cobra.Command) {
	root.AddCommand(newPasswordCmd())
}

func newPasswordCmd() *cobra.Command {
	var (
		length      uint
		maxLength   uint
		count       int
		noLowercase bool
		noUppercase bool
		noDigits    bool
		noSymbols   bool
		evaluate    bool
		presetName  string
		workers     int
	)

	cmd := &cobra.Command{
		Use:     "password",
		Aliases: []string{"pw"},
		Short:   "Generate one or more random passwords",
		Long: `Generate passwords drawn uniformly from the enabled character classes.
Every enabled class is guaranteed at least one character per password.
With --max-length, each password's length is drawn uniformly from
[--length, --max-length].`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			var policy generator.PasswordPolicy
			if presetName != "" {
				policy, err = preset.Password(presetName)
				if err != nil {
					return err
				}
			} else {
				policy = generator.PasswordPolicy{
					Length:    length,
					MaxLength: maxLength,
					Lowercase: !noLowercase,
					Uppercase: !noUppercase,
					Digits:    !noDigits,
					Symbols:   !noSymbols,
				}
			}

			gen, err := generator.NewPassword(policy, rt.logger)
			if err != nil {
				return fmt.Errorf("invalid password policy: %w", err)
			}

			results, err := rt.orchestrator(evaluate, workers).GenerateMany(cmd.Context(), gen, count)
			if err != nil {
				return err
			}

			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().UintVarP(&length, "length", "l", generator.DefaultPasswordLength,
		"password length (minimum length when --max-length is set)")
	cmd.Flags().UintVar(&maxLength, "max-length", 0,
		"maximum password length; enables per-password ranged lengths")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of passwords to generate")
	cmd.Flags().BoolVar(&noLowercase, "no-lowercase", false, "exclude lowercase letters")
	cmd.Flags().BoolVarP(&noUppercase, "no-uppercase", "u", false, "exclude uppercase letters")
	cmd.Flags().BoolVarP(&noDigits, "no-digits", "n", false, "exclude digits")
	cmd.Flags().BoolVarP(&noSymbols, "no-symbols", "s", false, "exclude symbols")
	cmd.Flags().BoolVarP(&evaluate, "evaluate-strength", "e", false,
		"score each password and print its strength report")
	cmd.Flags().StringVar(&presetName, "preset", "",
		"use a fixed policy (weak, average, strong); overrides policy flags")
	cmd.Flags().IntVar(&workers, "workers", 0,
		"parallel generation workers (0 uses PASSFORGE_WORKERS)")

	return cmd
}
