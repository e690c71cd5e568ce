package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-item-service/internal/domain/item"
	"github.com/jsamuelsen11/go-item-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-item-service/internal/platform/messages"
)

func newValidateCommand(opts *options) *cobra.Command {
	var name, price, quantity string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the item rules against the given values",
		Long: `Bind the flag values the way a submitted form is bound and run the item
rules. Flags left unset are treated as absent fields. Prints "valid" or one
line per error and exits with status 1 when the item is invalid.`,
		Example: `  itemctl validate --name Book --price 1000 --quantity 10
  itemctl validate --name "" --price abc --lang ko`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := messages.NewCatalog("en")
			if err != nil {
				return err
			}
			src := catalog.For(opts.locale)

			raw := make(map[string]string, 3)
			if cmd.Flags().Changed("name") {
				raw[item.FieldItemName] = name
			}
			if cmd.Flags().Changed("price") {
				raw[item.FieldPrice] = price
			}
			if cmd.Flags().Changed("quantity") {
				raw[item.FieldQuantity] = quantity
			}

			candidate, report := item.Bind(raw)
			item.Validator{}.ValidateInto(candidate, report)

			logging.FromContext(cmd.Context()).DebugContext(cmd.Context(), "validated item",
				slog.Any("target", raw),
				slog.Any("report", report),
			)

			out := cmd.OutOrStdout()
			if !report.HasErrors() {
				_, err := fmt.Fprintln(out, "valid")
				return err
			}

			for _, fe := range report.AllFieldErrors() {
				line := fmt.Sprintf("%s: %s", fe.Field, src.Resolve(fe.Resolvable))
				if fe.RejectedValue != nil {
					line += fmt.Sprintf(" [%v]", fe.RejectedValue)
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}
			for _, oe := range report.GlobalErrors() {
				if _, err := fmt.Fprintf(out, "%s: %s\n", oe.Object, src.Resolve(oe.Resolvable)); err != nil {
					return err
				}
			}
			return ErrInvalid
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "item name")
	cmd.Flags().StringVar(&price, "price", "", "price")
	cmd.Flags().StringVar(&quantity, "quantity", "", "quantity")
	return cmd
}
