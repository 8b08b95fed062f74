package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/graysonarts/jdexmd/internal/adapters/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the plan in an interactive tree",
	Long: `Open an interactive tree of the resolved hierarchy. Each node is
annotated with the action a run would take for it; planned paths can be
copied to the clipboard.

Example:
  jdexmd -c jdex.toml preview`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := tui.NewApp(fs, systems, cfg.BaseFolder, cfg.Separator)
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("running preview: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
