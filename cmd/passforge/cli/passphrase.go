package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge/internal/generator"
	"github.com/passforge/passforge/internal/preset"
)

// RegisterPassphraseCommand adds the passphrase generation command.
func RegisterPassphraseCommand(root *cobra.Command) {
	root.AddCommand(newPassphraseCmd())
}

func newPassphraseCmd() *cobra.Command {
	var (
		words        uint
		separator    string
		wordlistPath string
		count        int
		capitalize   bool
		injectNumber bool
		evaluate     bool
		presetName   string
		workers      int
	)

	cmd := &cobra.Command{
		Use:     "passphrase",
		Aliases: []string{"pp"},
		Short:   "Generate one or more random passphrases",
		Long: `Generate passphrases by drawing words independently and uniformly (with
replacement) from a word list. Entropy is word count x log2(list size),
so prefer large lists; the embedded default has several hundred words
and a custom EFF-style list can be supplied with --word-list.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}

			var policy generator.PassphrasePolicy
			if presetName != "" {
				policy, err = preset.Passphrase(presetName)
				if err != nil {
					return err
				}
			} else {
				list, err := rt.loadWordlist(wordlistPath)
				if err != nil {
					return err
				}
				policy = generator.PassphrasePolicy{
					WordCount:    words,
					Separator:    separator,
					Capitalize:   capitalize,
					InjectNumber: injectNumber,
					Words:        list,
				}
			}

			gen, err := generator.NewPassphrase(policy)
			if err != nil {
				return fmt.Errorf("invalid passphrase policy: %w", err)
			}

			results, err := rt.orchestrator(evaluate, workers).GenerateMany(cmd.Context(), gen, count)
			if err != nil {
				return err
			}

			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().UintVarP(&words, "words", "w", generator.DefaultWordCount,
		"number of words per passphrase")
	cmd.Flags().StringVar(&separator, "separator", generator.DefaultSeparator,
		"string joining the words")
	cmd.Flags().StringVar(&wordlistPath, "word-list", "",
		"custom word list file, one word per line (EFF dice format accepted)")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of passphrases to generate")
	cmd.Flags().BoolVar(&capitalize, "capitalize", false,
		"title-case one randomly chosen word")
	cmd.Flags().BoolVar(&injectNumber, "inject-number", false,
		"append a random digit to one randomly chosen word")
	cmd.Flags().BoolVarP(&evaluate, "evaluate-strength", "e", false,
		"score each passphrase and print its strength report")
	cmd.Flags().StringVar(&presetName, "preset", "",
		"use a fixed policy (weak, average, strong); overrides policy flags")
	cmd.Flags().IntVar(&workers, "workers", 0,
		"parallel generation workers (0 uses PASSFORGE_WORKERS)")

	return cmd
}
