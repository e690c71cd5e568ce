// Package cli implements itemctl, a command line front end to the item
// validation rules and message code resolution.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-item-service/internal/platform/logging"
)

// ErrInvalid is returned by the validate command when the item has errors.
// The errors have already been printed.
var ErrInvalid = errors.New("item is invalid")

type options struct {
	logLevel string
	locale   string
}

// NewRootCommand builds the itemctl command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "itemctl",
		Short:         "Validate items and inspect message codes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := logging.New(opts.logLevel, "text", errOut)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.locale, "lang", "en", "locale for rendered messages (en, ko)")

	root.AddCommand(newValidateCommand(opts), newBatchCommand(opts), newCodesCommand())
	return root
}

// Execute runs itemctl with args and returns the process exit code.
func Execute(ctx context.Context, args []string, out, errOut io.Writer) int {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInvalid):
		return 1
	default:
		_, _ = fmt.Fprintf(errOut, "error: %v\n", err)
		return 1
	}
}
