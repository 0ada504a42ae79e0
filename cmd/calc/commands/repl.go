package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"calc/internal/services/calculator"
)

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read whitespace-separated keys from stdin, one line at a time",
		Long: `repl reads lines of keys from stdin and prints the display after each
line. Type "quit" or send EOF to leave. A prompt is shown when stdin is a
terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			return runREPL(in, cmd.OutOrStdout(), appCtx.Calculator, isTerminal(in))
		},
	}
}

func runREPL(in io.Reader, out io.Writer, calc *calculator.Service, prompt bool) error {
	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}
		if _, err := calc.PressAll(strings.Fields(line)...); err != nil {
			fmt.Fprintln(out, err)
		}
		fmt.Fprintln(out, calc.Display().Text)
	}
	return sc.Err()
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
