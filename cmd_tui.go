package main

import (
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kube-rca/console/internal/client"
	"github.com/kube-rca/console/internal/config"
	"github.com/kube-rca/console/internal/ui"
)

func newTuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive console",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			theme, ok := ui.ThemeByName(cfg.UI.Theme)
			if !ok {
				log.Printf("Unknown theme %q, falling back to %q (available: %s)",
					cfg.UI.Theme, theme.Name, strings.Join(ui.ThemeNames(), ", "))
			}

			exec := client.NewExecutor(cfg.Service)
			program := tea.NewProgram(ui.NewModel(theme, exec), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}
}
