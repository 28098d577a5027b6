package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rca-console",
		Short: "Terminal console for the kube-rca service",
		Long: "rca-console fetches root-cause-analysis reports by ticket number\n" +
			"and forwards free-text questions to the RCA agent backend.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	cmd.AddCommand(newTuiCmd())
	cmd.AddCommand(newLookupCmd())
	cmd.AddCommand(newAskCmd())
	cmd.AddCommand(newStubCmd())
	cmd.Version = version
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
