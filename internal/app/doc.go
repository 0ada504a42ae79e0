// Package app wires application dependencies for the CLI and the HTTP front
// end.
//
// It resolves Config (defaults, then an optional YAML file, then flags),
// builds the logger, and constructs the evaluator, controller and core
// instance, exposing them via the Wire struct.
package app
