package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cliotris/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var listHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

func runList(cmd *cobra.Command, _ []string) error {
	modes := registry.List()
	out := cmd.OutOrStdout()
	if len(modes) == 0 {
		_, err := fmt.Fprintln(out, "no game modes registered")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("MODE", "TITLE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, m := range modes {
		t.Row(m.ID, m.Title)
	}

	_, err := fmt.Fprintf(out, "%s\nPlay one with: cliotris play <mode>\n", t.Render())
	return err
}
