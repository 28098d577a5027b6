package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kube-rca/console/internal/client"
	"github.com/kube-rca/console/internal/config"
	"github.com/kube-rca/console/internal/markup"
	"github.com/kube-rca/console/internal/session"
)

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask the RCA agent a free-text question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			sess := session.NewAgentSession(client.NewExecutor(cfg.Service))
			sess.SetInput(strings.Join(args, " "))

			work, ok := sess.Submit()
			if !ok {
				return errors.New("a question is required")
			}
			sess.Resolve(work())

			if sess.State() != session.Succeeded {
				return errors.New(sess.ErrorMessage())
			}

			fmt.Fprintln(cmd.OutOrStdout(), markup.Styled(sess.Answer(), boldStyle(cfg)))
			return nil
		},
	}
}
