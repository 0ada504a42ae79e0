// Command calcd serves the calculator engine as stateless JSON over HTTP.
//
// Usage:
//
//	calcd [--addr 127.0.0.1:8080] [--config calc.yaml] [--log-level info]
//
// See package calc/internal/httpapi for the endpoints.
package main
