package calculator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"calc/internal/domain"
)

// Service owns a single display and routes commands through a Controller.
type Service struct {
	ctl  domain.Controller
	eval domain.Evaluator
	log  *slog.Logger
	disp domain.Display
}

// New returns a Service with an empty display. A nil logger discards output.
func New(ctl domain.Controller, eval domain.Evaluator, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{ctl: ctl, eval: eval, log: log}
}

// Press parses key and applies it. Unknown keys leave the display untouched.
func (s *Service) Press(key string) (domain.Display, error) {
	cmd, err := domain.ParseKey(key)
	if err != nil {
		s.log.Debug("rejected key", "key", key, "err", err)
		return s.disp, err
	}
	return s.Apply(cmd), nil
}

// PressAll presses keys in order and stops at the first unknown key.
func (s *Service) PressAll(keys ...string) (domain.Display, error) {
	for i, k := range keys {
		if _, err := s.Press(k); err != nil {
			return s.disp, fmt.Errorf("key %d: %w", i+1, err)
		}
	}
	return s.disp, nil
}

// Apply runs cmd against the current display and stores the result.
func (s *Service) Apply(cmd domain.Command) domain.Display {
	prev := s.disp
	s.disp = s.ctl.Apply(prev, cmd)

	if s.disp == prev {
		s.log.Debug("command ignored", "cmd", cmd.String(), "state", prev.State.String(), "buffer", prev.Text)
		return s.disp
	}
	s.log.Debug("command applied", "cmd", cmd.String(), "state", s.disp.State.String(), "buffer", s.disp.Text)
	if s.disp.State == domain.StateError && prev.State != domain.StateError {
		s.log.Info("evaluation failed", "expression", prev.Text, "kind", s.disp.Err.String())
	}
	return s.disp
}

// Display returns the current display.
func (s *Service) Display() domain.Display { return s.disp }

// Reset empties the display.
func (s *Service) Reset() { s.disp = domain.Display{} }

// Evaluate computes text directly without touching the display.
func (s *Service) Evaluate(text string) (string, error) {
	out, err := s.eval.Evaluate(text)
	if err != nil {
		var kind domain.ErrorKind
		if !errors.As(err, &kind) {
			kind = domain.InvalidExpression
		}
		s.log.Info("evaluation failed", "expression", text, "kind", kind.String())
		return "", kind
	}
	s.log.Debug("evaluated", "expression", text, "result", out)
	return out, nil
}
