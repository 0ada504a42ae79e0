package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"calc/internal/domain"
)

// maxBodyBytes bounds request bodies; expressions are short.
const maxBodyBytes = 64 << 10

// Server serves the engine over HTTP.
type Server struct {
	ctl  domain.Controller
	eval domain.Evaluator
	log  *slog.Logger
}

// NewServer returns a Server using ctl and eval. A nil logger discards output.
func NewServer(ctl domain.Controller, eval domain.Evaluator, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{ctl: ctl, eval: eval, log: log}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	r := httprouter.New()
	r.POST("/v1/apply", s.apply)
	r.POST("/v1/evaluate", s.evaluate)
	r.GET("/healthz", s.health)
	return r
}

func (s *Server) apply(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req ApplyRequest
	if !s.decode(w, r, &req) {
		return
	}
	cmd, err := domain.ParseKey(req.Key)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	d := s.ctl.Apply(toDisplay(req), cmd)
	s.log.Debug("apply", "key", req.Key, "state", d.State.String(), "buffer", d.Text)
	writeJSON(w, http.StatusOK, fromDisplay(d))
}

func (s *Server) evaluate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req EvaluateRequest
	if !s.decode(w, r, &req) {
		return
	}
	out, err := s.eval.Evaluate(req.Expression)
	if err != nil {
		kind := domain.InvalidExpression
		errors.As(err, &kind)
		s.log.Info("evaluation failed", "expression", req.Expression, "kind", kind.String())
		writeJSON(w, http.StatusUnprocessableEntity, EvaluateResponse{Error: kind.Error(), Kind: kind})
		return
	}
	writeJSON(w, http.StatusOK, EvaluateResponse{Result: out})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.log.Debug("bad request", "path", r.URL.Path, "err", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
