package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/exline/excmd"
)

var hintCmd = &cobra.Command{
	Use:   "hint <command>",
	Short: "Print the syntax hint for one command",
	Long: `Resolves a command name or prefix and prints its syntax hint,
for example "[range]w[rite][!] [filename]" for write.`,
	Args: cobra.ExactArgs(1),
	RunE: runHint,
}

func init() {
	rootCmd.AddCommand(hintCmd)
}

func runHint(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	m, err := buildMap(settings)
	if err != nil {
		printError("building command map", err)
		return err
	}

	token := args[0]
	mapping, err := lookup(m, token, settings.Scope)
	if err != nil {
		var ambiguous *excmd.AmbiguousError
		if errors.As(err, &ambiguous) {
			fmt.Printf("ambiguous command %q: %s\n", token, strings.Join(ambiguous.Candidates, ", "))
			return err
		}
		fmt.Printf("unknown command %q\n", token)
		return err
	}

	fmt.Println(m.SyntaxHintPrefix(mapping, token))
	return nil
}
