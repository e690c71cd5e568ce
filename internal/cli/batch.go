package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-item-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-item-service/internal/app"
	"github.com/jsamuelsen11/go-item-service/internal/platform/messages"
)

func newBatchCommand(opts *options) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Validate a JSON array of item forms",
		Long: `Read a JSON array of item forms from FILE ("-" for stdin) and validate
each one. Values may be strings or numbers. Prints one line per form and
exits with status 1 when any form is invalid.`,
		Example: `  itemctl batch items.json
  echo '[{"itemName":"Book","price":1000,"quantity":10}]' | itemctl batch -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			forms, err := readForms(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			catalog, err := messages.NewCatalog("en")
			if err != nil {
				return err
			}
			src := catalog.For(opts.locale)

			reports, err := app.ValidateForms(cmd.Context(), workers, forms)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			invalid := 0
			for i, report := range reports {
				if !report.HasErrors() {
					_, _ = fmt.Fprintf(out, "#%d: valid\n", i+1)
					continue
				}
				invalid++
				for _, fe := range report.AllFieldErrors() {
					_, _ = fmt.Fprintf(out, "#%d %s: %s\n", i+1, fe.Field, src.Resolve(fe.Resolvable))
				}
				for _, oe := range report.GlobalErrors() {
					_, _ = fmt.Fprintf(out, "#%d %s: %s\n", i+1, oe.Object, src.Resolve(oe.Resolvable))
				}
			}

			if invalid > 0 {
				_, _ = fmt.Fprintf(out, "%d of %d invalid\n", invalid, len(reports))
				return ErrInvalid
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", app.DefaultBatchWorkers, "forms validated concurrently")
	return cmd
}

func readForms(stdin io.Reader, path string) ([]map[string]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var raw []dto.ItemForm
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding forms: %w", err)
	}

	forms := make([]map[string]string, len(raw))
	for i, f := range raw {
		forms[i] = map[string]string(f)
	}
	return forms, nil
}
