package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"calc/internal/domain"
)

// Client talks to a calcd server.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a Client for base. A nil hc means http.DefaultClient.
func NewClient(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{Base: base, HTTP: hc}
}

// Evaluate computes text on the server. Calculator failures come back as a
// domain.ErrorKind.
func (c *Client) Evaluate(ctx context.Context, text string) (string, error) {
	var out EvaluateResponse
	status, err := c.post(ctx, "/v1/evaluate", EvaluateRequest{Expression: text}, &out)
	if err != nil {
		return "", err
	}
	if status == http.StatusUnprocessableEntity {
		if out.Kind == domain.NoError {
			return "", domain.ErrInvalidExpression
		}
		return "", out.Kind
	}
	return out.Result, nil
}

// Apply asks the server for the display that follows pressing key.
func (c *Client) Apply(ctx context.Context, d domain.Display, key string) (domain.Display, error) {
	req := ApplyRequest{Buffer: d.Text, State: d.State, Kind: d.Err, Key: key}
	var out DisplayResponse
	if _, err := c.post(ctx, "/v1/apply", req, &out); err != nil {
		return d, err
	}
	return domain.Display{Text: out.Buffer, State: out.State, Err: out.Kind}, nil
}

// post sends in as JSON and decodes the reply into out. 2xx and 422 replies
// are decoded; any other status is an error.
func (c *Client) post(ctx context.Context, path string, in, out any) (int, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 && resp.StatusCode != http.StatusUnprocessableEntity {
		var e errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Error != "" {
			return resp.StatusCode, fmt.Errorf("calcd post %s: %s: %s", path, resp.Status, e.Error)
		}
		return resp.StatusCode, fmt.Errorf("calcd post %s: %s", path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("calcd post %s: decoding reply: %w", path, err)
	}
	return resp.StatusCode, nil
}
