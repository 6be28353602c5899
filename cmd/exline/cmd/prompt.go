package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/exline/internal/prompt"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Start the interactive command prompt",
	Long: `Starts the interactive exline prompt.

Type a command name or prefix; exline resolves it on every keystroke
and shows the syntax hint and documentation of the matching command,
or the candidates when the input is ambiguous.

Keys:
  Enter     - resolve the line and keep it in the transcript
  Ctrl+C    - quit`,
	RunE: runPrompt,
}

func init() {
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	m, err := buildMap(settings)
	if err != nil {
		printError("building command map", err)
		return err
	}

	p := tea.NewProgram(prompt.New(m, settings.Prompt, settings.Scope))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "prompt error: %v\n", err)
		return err
	}
	return nil
}
