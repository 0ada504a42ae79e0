package editor

import (
	"errors"
	"strings"

	"calc/internal/domain"
)

// Controller applies edit commands to displays and delegates "=" to an
// Evaluator.
type Controller struct {
	eval      domain.Evaluator
	maxLength int
}

// New returns a Controller that evaluates with eval and caps the buffer at
// maxLength characters. A non-positive maxLength means
// domain.MaxDisplayLength.
func New(eval domain.Evaluator, maxLength int) *Controller {
	if maxLength <= 0 {
		maxLength = domain.MaxDisplayLength
	}
	return &Controller{eval: eval, maxLength: maxLength}
}

// Apply returns the display that results from cmd. Rejected commands return d
// unchanged.
func (c *Controller) Apply(d domain.Display, cmd domain.Command) domain.Display {
	if d.State == domain.StateError && cmd.Kind != domain.CmdClear && cmd.Kind != domain.CmdBackspace {
		d = domain.Display{}
	}
	if d.State == domain.StateAfterResult && cmd.Kind == domain.CmdDigit {
		d = domain.Display{}
	}

	switch cmd.Kind {
	case domain.CmdDigit:
		return c.digit(d, cmd.Key)
	case domain.CmdOperator:
		return c.operator(d, cmd.Key)
	case domain.CmdDecimal:
		return c.decimal(d)
	case domain.CmdNegate:
		return c.negate(d)
	case domain.CmdBackspace:
		return backspace(d)
	case domain.CmdClear:
		return domain.Display{}
	case domain.CmdEquals:
		return c.equals(d)
	}
	return d
}

func (c *Controller) digit(d domain.Display, key byte) domain.Display {
	if !domain.IsDigit(key) || len(d.Text) >= c.maxLength {
		return d
	}
	return domain.Display{Text: d.Text + string(key), State: domain.StateEnteringNumber}
}

func (c *Controller) operator(d domain.Display, op byte) domain.Display {
	if !domain.IsOperator(op) || d.Empty() || endsWithOperator(d.Text) || !c.fits(d.Text, 1) {
		return d
	}
	return domain.Display{Text: d.Text + string(op), State: domain.StateAfterOperator}
}

func (c *Controller) decimal(d domain.Display) domain.Display {
	if num, _ := TrailingNumber(d.Text); strings.Contains(num, ".") {
		return d
	}
	add := "."
	if d.Empty() || endsWithOperator(d.Text) {
		add = "0."
	}
	if !c.fits(d.Text, len(add)) {
		return d
	}
	return domain.Display{Text: d.Text + add, State: domain.StateEnteringNumber}
}

func (c *Controller) negate(d domain.Display) domain.Display {
	if d.Empty() {
		return domain.Display{Text: "-", State: domain.StateEnteringNumber}
	}

	num, off := TrailingNumber(d.Text)
	if num == "" || num == "-" {
		return d
	}
	if strings.HasPrefix(num, "-") {
		num = num[1:]
	} else {
		num = "-" + num
	}

	text := d.Text[:off] + num
	if len(text) > c.maxLength {
		return d
	}
	d.Text = text
	return d
}

func backspace(d domain.Display) domain.Display {
	if d.Empty() {
		return d
	}
	d.Text = d.Text[:len(d.Text)-1]
	if d.Empty() {
		return domain.Display{}
	}
	return d
}

func (c *Controller) equals(d domain.Display) domain.Display {
	out, err := c.eval.Evaluate(d.Text)
	if err != nil {
		kind := domain.InvalidExpression
		errors.As(err, &kind)
		return domain.Display{Text: kind.Error(), State: domain.StateError, Err: kind}
	}
	return domain.Display{Text: out, State: domain.StateAfterResult}
}

// fits reports whether n more characters can be appended to text.
func (c *Controller) fits(text string, n int) bool {
	return len(text)+n <= c.maxLength
}
