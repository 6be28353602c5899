package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all commands with their hints",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	m, err := buildMap(settings)
	if err != nil {
		printError("building command map", err)
		return err
	}

	mappings := m.Mappings()
	sort.Slice(mappings, func(i, j int) bool {
		return mappings[i].Name() < mappings[j].Name()
	})

	for _, mapping := range mappings {
		doc := mapping.RenderDocumentation(func(name string) string {
			return "<" + name + ">"
		})
		fmt.Printf("%-40s %s\n", m.SyntaxHint(mapping), doc)
	}
	return nil
}
