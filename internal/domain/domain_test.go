package domain_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calc/internal/domain"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		key  string
		want domain.Command
	}{
		{"0", domain.Digit('0')},
		{"9", domain.Digit('9')},
		{"+", domain.Operator('+')},
		{"-", domain.Operator('-')},
		{"*", domain.Operator('*')},
		{"/", domain.Operator('/')},
		{"%", domain.Operator('%')},
		{".", domain.Command{Kind: domain.CmdDecimal}},
		{"=", domain.Command{Kind: domain.CmdEquals}},
		{"enter", domain.Command{Kind: domain.CmdEquals}},
		{"+/-", domain.Command{Kind: domain.CmdNegate}},
		{"neg", domain.Command{Kind: domain.CmdNegate}},
		{"back", domain.Command{Kind: domain.CmdBackspace}},
		{"Backspace", domain.Command{Kind: domain.CmdBackspace}},
		{"CE", domain.Command{Kind: domain.CmdClear}},
		{"esc", domain.Command{Kind: domain.CmdClear}},
		{"Delete", domain.Command{Kind: domain.CmdClear}},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got, err := domain.ParseKey(tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseKey_Unknown(t *testing.T) {
	for _, key := range []string{"", "x", "^", "sqrt", "=="} {
		_, err := domain.ParseKey(key)
		assert.ErrorIs(t, err, domain.ErrUnknownKey, "key %q", key)
	}
}

func TestCommandString_RoundTrips(t *testing.T) {
	for _, key := range []string{"7", "%", ".", "+/-", "back", "CE", "="} {
		cmd, err := domain.ParseKey(key)
		require.NoError(t, err)
		assert.Equal(t, key, cmd.String())
	}
}

func TestErrorKind_Messages(t *testing.T) {
	tests := []struct {
		kind domain.ErrorKind
		want string
	}{
		{domain.DivisionByZero, "Error: Divide by 0"},
		{domain.ModuloByZero, "Error: Modulo by 0"},
		{domain.InvalidExpression, "Error: Invalid Input"},
		{domain.MathError, "Error: Math Error"},
		{domain.Overflow, "Error: Number too large"},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.kind.Error())
		})
	}
}

func TestErrorKind_Wrapping(t *testing.T) {
	err := fmt.Errorf("evaluating %q: %w", "5/0", domain.ErrDivisionByZero)

	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
	assert.NotErrorIs(t, err, domain.ErrModuloByZero)

	var kind domain.ErrorKind
	require.True(t, errors.As(err, &kind))
	assert.Equal(t, domain.DivisionByZero, kind)
}

func TestEditState_Text(t *testing.T) {
	states := []domain.EditState{
		domain.StateEmpty,
		domain.StateEnteringNumber,
		domain.StateAfterOperator,
		domain.StateAfterResult,
		domain.StateError,
	}
	for _, s := range states {
		b, err := json.Marshal(s)
		require.NoError(t, err)

		var got domain.EditState
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, s, got)
	}

	var s domain.EditState
	assert.Error(t, s.UnmarshalText([]byte("bogus")))
	assert.Equal(t, "EditState(42)", domain.EditState(42).String())
}
