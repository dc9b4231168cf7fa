package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var importCommand = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import configuration documents",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		detailed, err := cmd.Flags().GetBool("detailed")
		if err != nil {
			return err
		}
		autoApprove, err := cmd.Flags().GetBool("auto-approve")
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
		out := cmd.OutOrStdout()
		if len(p.Operations()) == 0 {
			fmt.Fprintln(out, "Nothing to import.")
			return nil
		}
		if err := printPlan(cmd, p, detailed); err != nil {
			return err
		}

		if !autoApprove {
			in := cmd.InOrStdin()
			if !isTerminal(in) {
				return errors.New("refusing to import without confirmation, use --auto-approve")
			}
			ok, err := confirm(in, out)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Import cancelled.")
				return nil
			}
		}

		n, err := p.Apply(ctx)
		fmt.Fprintf(out, "%d operation(s) applied.\n", n)
		if err != nil {
			e.logger.Error("Import failed", zap.Int("count", n), zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	importCommand.Flags().Bool("detailed", false, "Print the desired state of every object")
	importCommand.Flags().Bool("auto-approve", false, "Skip the confirmation prompt")
	cmd.AddCommand(importCommand)
}

// confirm asks the user to approve the plan.
func confirm(in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprint(out, "Do you want to continue? [y/N] ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.Wrap(err, "read answer")
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
