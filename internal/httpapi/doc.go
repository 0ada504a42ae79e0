// Package httpapi exposes the calculator engine as JSON over HTTP.
//
// The server is stateless: every request carries the display it wants to
// edit, so the pure apply and evaluate operations map one-to-one onto
// endpoints and no session lives on the server.
//
// Endpoints:
//   - POST /v1/apply     {"buffer","state","kind","key"} -> next display
//   - POST /v1/evaluate  {"expression"} -> {"result"} or {"error","kind"}
//   - GET  /healthz
//
// Calculator failures from /v1/evaluate use status 422 and carry the
// ErrorKind name in "kind". Malformed bodies and unknown keys get 400.
//
// Client is the matching HTTP client.
package httpapi
