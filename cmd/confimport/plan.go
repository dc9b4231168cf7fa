package main

import (
	"context"
	"fmt"

	"github.com/confimport/confimport/plan"
	"github.com/spf13/cobra"
)

var planCommand = &cobra.Command{
	Use:   "plan <file>...",
	Short: "Show the operations an import would apply",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detailed, err := cmd.Flags().GetBool("detailed")
		if err != nil {
			return err
		}

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
		return printPlan(cmd, p, detailed)
	},
}

func init() {
	planCommand.Flags().Bool("detailed", false, "Print the desired state of every object")
	cmd.AddCommand(planCommand)
}

func printPlan(cmd *cobra.Command, p *plan.Plan, detailed bool) error {
	out := cmd.OutOrStdout()
	p.Color = isTerminal(out)
	if report := plan.UnchangeableReport(p.Unchangeable); report != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), report)
	}
	if err := p.Print(out, detailed); err != nil {
		return err
	}
	if len(p.Operations()) > 0 {
		fmt.Fprintln(out, p.Summary())
	}
	return nil
}
