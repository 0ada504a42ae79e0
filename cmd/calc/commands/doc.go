// Package commands defines the calc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - eval    Evaluate an expression and print the result
//   - keys    Press a sequence of keypad keys and print the display
//   - repl    Read key sequences line by line from stdin
//
// Keys are the keypad labels 0-9, + - * / %, ".", "+/-", "back", "CE" and
// "=", plus the keyboard aliases enter, esc, del and backspace.
//
// # Implementation
//
// The root command resolves the configuration (defaults, --config file, then
// explicit flags) and builds the dependency graph before any subcommand runs,
// so handlers share one core instance and logger.
package commands
