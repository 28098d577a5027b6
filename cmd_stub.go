package main

import (
	"github.com/spf13/cobra"

	"github.com/kube-rca/console/internal/config"
	"github.com/kube-rca/console/internal/stub"
)

func newStubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stub",
		Short: "Run a local stub of the RCA backend",
		Long: "Serves /get-details and /agent-query with canned data so the console\n" +
			"can be exercised without a real backend. Set AI_API_KEY to answer\n" +
			"agent queries through Gemini instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return stub.Run(config.Load().Stub)
		},
	}
}
