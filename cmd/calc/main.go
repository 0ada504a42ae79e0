package main

import (
	"fmt"
	"os"

	"calc/cmd/calc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
