// Package cli implements the seqfn command, which applies one sequence
// operator to whitespace-separated values read from standard input.
package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

type options struct {
	verbose bool
	logger  *slog.Logger
}

func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "seqfn",
		Short: "Apply lazy sequence operators to values read from stdin",
		Long: `seqfn reads whitespace-separated values from standard input, applies a
single sequence operator and prints the resulting values one per line.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every input value at debug level")

	root.AddCommand(
		newRangeCommand(opts),
		newWhereCommand(opts),
		newSelectCommand(opts),
		newOrderCommand(opts),
		newReverseCommand(opts),
		newCountCommand(opts),
		newAllCommand(opts),
		newTypesCommand(opts),
	)
	return root
}
