package domain

// Display is the read projection a shell renders: the buffer text and the
// state tag. Err keeps the failure kind while State is StateError.
type Display struct {
	Text  string
	State EditState
	Err   ErrorKind
}

// Empty reports whether the buffer holds no characters.
func (d Display) Empty() bool { return d.Text == "" }
