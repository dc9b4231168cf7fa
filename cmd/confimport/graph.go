package main

import (
	"context"

	"github.com/spf13/cobra"
)

var graphCommand = &cobra.Command{
	Use:   "graph <file>...",
	Short: "Print the dependency graph of the plan in DOT format",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newRunEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx, cancel := signalContext(context.Background())
		defer cancel()

		p, err := e.plan(ctx, args)
		if err != nil {
			return err
		}
		return p.WriteDOT(cmd.OutOrStdout())
	},
}

func init() {
	cmd.AddCommand(graphCommand)
}
