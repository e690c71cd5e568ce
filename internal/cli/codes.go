package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-item-service/internal/domain/validation"
)

func newCodesCommand() *cobra.Command {
	var (
		prefix  string
		postfix bool
	)

	cmd := &cobra.Command{
		Use:   "codes CODE OBJECT [FIELD [TYPE]]",
		Short: "Print the message codes tried for an error, most specific first",
		Example: `  itemctl codes required item itemName string
  itemctl codes totalPriceMin item`,
		Args: cobra.RangeArgs(2, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []validation.ResolverOption{validation.WithPrefix(prefix)}
			if postfix {
				opts = append(opts, validation.WithFormat(validation.PostfixErrorCode))
			}
			resolver := validation.NewCodesResolver(opts...)

			code, object := args[0], args[1]
			var codes []string
			if len(args) == 2 {
				codes = resolver.ResolveObjectCodes(code, object)
			} else {
				var fieldType string
				if len(args) == 4 {
					fieldType = args[3]
				}
				codes = resolver.ResolveFieldCodes(code, object, args[2], fieldType)
			}

			for _, c := range codes {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), c); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "prefix added to every code")
	cmd.Flags().BoolVar(&postfix, "postfix", false, "put the error code last (object.field.code)")
	return cmd
}
