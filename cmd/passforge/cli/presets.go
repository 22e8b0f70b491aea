package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge/internal/preset"
)

// RegisterPresetCommands adds preset inspection commands.
func RegisterPresetCommands(root *cobra.Command) {
	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List the named generation presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, name := range preset.Names() {
				pw, err := preset.Password(name)
				if err != nil {
					return err
				}
				pp, err := preset.Passphrase(name)
				if err != nil {
					return err
				}

				var classes []string
				for _, c := range pw.Classes() {
					classes = append(classes, c.String())
				}
				fmt.Fprintf(w, "%s:\n", name)
				fmt.Fprintf(w, "  password:   %d chars, classes: %s\n",
					pw.Length, strings.Join(classes, ", "))
				fmt.Fprintf(w, "  passphrase: %d words joined by %q\n",
					pp.WordCount, pp.Separator)
			}
			return nil
		},
	}

	root.AddCommand(presetsCmd)
}
