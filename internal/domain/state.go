package domain

import "fmt"

// EditState tags what the user did last. Exactly one state is active.
type EditState int

const (
	// StateEmpty means nothing has been entered yet.
	StateEmpty EditState = iota
	// StateEnteringNumber means the user is typing an operand.
	StateEnteringNumber
	// StateAfterOperator means the last accepted input was an operator.
	StateAfterOperator
	// StateAfterResult means the buffer holds a formatted result.
	StateAfterResult
	// StateError means the buffer holds an error message.
	StateError
)

var stateNames = [...]string{
	StateEmpty:          "empty",
	StateEnteringNumber: "entering_number",
	StateAfterOperator:  "after_operator",
	StateAfterResult:    "after_result",
	StateError:          "error",
}

// String returns the snake_case name of the state.
func (s EditState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("EditState(%d)", int(s))
	}
	return stateNames[s]
}

// MarshalText encodes the state by name.
func (s EditState) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(stateNames) {
		return nil, fmt.Errorf("unknown edit state %d", int(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText mirrors MarshalText. An empty input decodes to StateEmpty.
func (s *EditState) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*s = StateEmpty
		return nil
	}
	for i, name := range stateNames {
		if name == string(text) {
			*s = EditState(i)
			return nil
		}
	}
	return fmt.Errorf("unknown edit state %q", text)
}
