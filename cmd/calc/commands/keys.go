package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"calc/internal/domain"
	"calc/internal/httpapi"
)

// keysCmd presses keys in order on one core instance and prints the display.
func keysCmd() *cobra.Command {
	var trace bool
	cmd := &cobra.Command{
		Use:     "keys <key>...",
		Short:   "Press keypad keys and print the display",
		Example: `  calc keys 1 2 + 5 +/- =`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			press := localPress()
			if serverURL != "" {
				press = remotePress(cmd.Context(), httpapi.NewClient(serverURL, nil))
			}

			out := cmd.OutOrStdout()
			var d domain.Display
			for _, k := range args {
				var err error
				if d, err = press(k); err != nil {
					return err
				}
				if trace {
					fmt.Fprintf(out, "%-5s %-16s %s\n", k, d.State, d.Text)
				}
			}
			if !trace {
				fmt.Fprintln(out, d.Text)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "print key, state and buffer after every key")
	return cmd
}

type pressFunc func(key string) (domain.Display, error)

func localPress() pressFunc {
	return appCtx.Calculator.Press
}

// remotePress keeps the display locally and sends it with every key.
func remotePress(ctx context.Context, c *httpapi.Client) pressFunc {
	var d domain.Display
	return func(key string) (domain.Display, error) {
		next, err := c.Apply(ctx, d, key)
		if err != nil {
			return d, err
		}
		d = next
		return d, nil
	}
}
