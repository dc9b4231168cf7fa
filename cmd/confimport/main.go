package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var cmd = &cobra.Command{
	Use:           "confimport",
	Short:         "Import declarative configuration into a configuration server",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func main() {
	err := cmd.Execute()
	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	f := cmd.PersistentFlags()
	f.String("state", "", "State file. Defaults to ~/.confimport/state.db")
	f.Bool("memory", false, "Use an in-memory backend; nothing is persisted")
	f.String("log-level", "warn", "Log level (debug, info, warn, error)")
	f.String("metrics-file", "", "Write metrics in Prometheus text format to file")
	f.StringArray("var", nil, "Set a variable (name=value), can be repeated")
	f.Bool("env-vars", false, "Expose environment variables to documents")
}

// printError writes each aggregated error on its own line.
func printError(w io.Writer, err error) {
	for _, e := range multierr.Errors(err) {
		fmt.Fprintln(w, e)
	}
}
