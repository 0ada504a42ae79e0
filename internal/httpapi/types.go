package httpapi

import "calc/internal/domain"

// ApplyRequest asks for the display that follows pressing Key.
type ApplyRequest struct {
	Buffer string           `json:"buffer"`
	State  domain.EditState `json:"state"`
	Kind   domain.ErrorKind `json:"kind,omitempty"`
	Key    string           `json:"key"`
}

// DisplayResponse is a display on the wire.
type DisplayResponse struct {
	Buffer string           `json:"buffer"`
	State  domain.EditState `json:"state"`
	Kind   domain.ErrorKind `json:"kind,omitempty"`
}

// EvaluateRequest carries an expression to compute.
type EvaluateRequest struct {
	Expression string `json:"expression"`
}

// EvaluateResponse holds either Result or Error and Kind.
type EvaluateResponse struct {
	Result string           `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
	Kind   domain.ErrorKind `json:"kind,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toDisplay(r ApplyRequest) domain.Display {
	return domain.Display{Text: r.Buffer, State: r.State, Err: r.Kind}
}

func fromDisplay(d domain.Display) DisplayResponse {
	return DisplayResponse{Buffer: d.Text, State: d.State, Kind: d.Err}
}
