package domain

// Evaluator turns a finished buffer into a formatted result. The returned
// error is always an ErrorKind.
type Evaluator interface {
	Evaluate(text string) (string, error)
}

// Controller computes the next Display for a command without side effects.
type Controller interface {
	Apply(d Display, cmd Command) Display
}
