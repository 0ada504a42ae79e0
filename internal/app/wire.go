package app

import (
	"io"
	"log/slog"
	"os"

	"calc/internal/domain"
	"calc/internal/editor"
	"calc/internal/expr"
	"calc/internal/services/calculator"
)

// Wire bundles the engine components for the shells.
type Wire struct {
	Config     Config
	Log        *slog.Logger
	Evaluator  domain.Evaluator
	Controller domain.Controller
	Calculator *calculator.Service
}

// NewWire validates cfg and constructs the dependency graph. Logs go to
// logOut, or stderr when logOut is nil.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logOut == nil {
		logOut = os.Stderr
	}
	log := NewLogger(cfg.LogLevel, logOut)

	ev := expr.New(cfg.MaxLength, cfg.Precision)
	ctl := editor.New(ev, cfg.MaxLength)

	return &Wire{
		Config:     cfg,
		Log:        log,
		Evaluator:  ev,
		Controller: ctl,
		Calculator: calculator.New(ctl, ev, log.With("component", "calculator")),
	}, nil
}
