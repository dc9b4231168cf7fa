package main

import (
	"context"
	"fmt"

	"github.com/confimport/confimport/plan"
	"github.com/spf13/cobra"
)

var validateCommand = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Validate configuration documents against the current state",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newRunEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx, cancel := signalContext(context.Background())
		defer cancel()

		cfg, err := e.load(ctx, args)
		if err != nil {
			return err
		}
		v := &plan.Validator{Logger: e.logger.Named("validate")}
		res, err := v.Validate(ctx, cfg, e.repo)
		if err != nil {
			return err
		}
		if report := plan.UnchangeableReport(res.Unchangeable); report != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), report)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid: %d object(s).\n", cfg.Len())
		return nil
	},
}

func init() {
	cmd.AddCommand(validateCommand)
}
