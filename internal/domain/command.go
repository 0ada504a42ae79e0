package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKey is returned by ParseKey for keys outside the vocabulary.
var ErrUnknownKey = errors.New("unknown key")

// CommandKind identifies an edit command.
type CommandKind int

const (
	CmdDigit CommandKind = iota
	CmdOperator
	CmdDecimal
	CmdNegate
	CmdBackspace
	CmdClear
	CmdEquals
)

// Command is one discrete input forwarded by a shell. Key carries the digit
// or operator character for CmdDigit and CmdOperator.
type Command struct {
	Kind CommandKind
	Key  byte
}

// Digit returns the command for pressing d ('0'..'9').
func Digit(d byte) Command { return Command{Kind: CmdDigit, Key: d} }

// Operator returns the command for pressing op (one of Operators).
func Operator(op byte) Command { return Command{Kind: CmdOperator, Key: op} }

// String renders the command with its button label.
func (c Command) String() string {
	switch c.Kind {
	case CmdDigit, CmdOperator:
		return string(c.Key)
	case CmdDecimal:
		return "."
	case CmdNegate:
		return "+/-"
	case CmdBackspace:
		return "back"
	case CmdClear:
		return "CE"
	case CmdEquals:
		return "="
	default:
		return fmt.Sprintf("Command(%d)", int(c.Kind))
	}
}

// ParseKey maps a button label, or one of the keyboard aliases, to a Command.
func ParseKey(key string) (Command, error) {
	if len(key) == 1 {
		c := key[0]
		switch {
		case IsDigit(c):
			return Digit(c), nil
		case IsOperator(c):
			return Operator(c), nil
		case c == '.':
			return Command{Kind: CmdDecimal}, nil
		case c == '=':
			return Command{Kind: CmdEquals}, nil
		}
	}
	switch strings.ToLower(key) {
	case "+/-", "neg":
		return Command{Kind: CmdNegate}, nil
	case "back", "backspace", "bs":
		return Command{Kind: CmdBackspace}, nil
	case "ce", "esc", "escape", "del", "delete":
		return Command{Kind: CmdClear}, nil
	case "enter":
		return Command{Kind: CmdEquals}, nil
	}
	return Command{}, fmt.Errorf("%w %q", ErrUnknownKey, key)
}
