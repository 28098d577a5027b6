package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kube-rca/console/internal/client"
	"github.com/kube-rca/console/internal/config"
	"github.com/kube-rca/console/internal/markup"
	"github.com/kube-rca/console/internal/session"
	"github.com/kube-rca/console/internal/ui"
)

// 한 번 조회하고 결과를 출력하는 비대화형 경로.
// TUI와 같은 세션/실행기를 그대로 사용한다.
func newLookupCmd() *cobra.Command {
	var ritm bool

	cmd := &cobra.Command{
		Use:   "lookup <ticket-number>",
		Short: "Fetch the RCA report for a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			sess := session.NewTicketSession(client.NewExecutor(cfg.Service))
			if ritm {
				sess.SetMode(session.ModeRitm)
			}
			sess.SetInput(args[0])

			work, ok := sess.Submit()
			if !ok {
				return errors.New("ticket number is required")
			}
			sess.Resolve(work())

			if sess.State() != session.Succeeded {
				return errors.New(sess.ErrorMessage())
			}

			result := sess.Result()
			if len(result.TicketData) > 0 {
				pretty, err := json.MarshalIndent(result.TicketData, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to format ticket data: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
				fmt.Fprintln(cmd.OutOrStdout())
			}
			fmt.Fprintln(cmd.OutOrStdout(), markup.Styled(result.GeneratedRca, boldStyle(cfg)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&ritm, "ritm", false, "treat the argument as a RITM number")
	return cmd
}

func boldStyle(cfg config.Config) lipgloss.Style {
	theme, _ := ui.ThemeByName(cfg.UI.Theme)
	return lipgloss.NewStyle().Foreground(theme.Emphasis).Bold(true)
}
