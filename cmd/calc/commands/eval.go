package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"calc/internal/httpapi"
)

// evalCmd evaluates its arguments, joined without separators, as one
// expression.
func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an expression",
		Example: `  calc eval '2+3*4'
  calc eval -- -5%3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, "")

			var (
				out string
				err error
			)
			if serverURL != "" {
				out, err = httpapi.NewClient(serverURL, nil).Evaluate(cmd.Context(), text)
			} else {
				out, err = appCtx.Calculator.Evaluate(text)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
