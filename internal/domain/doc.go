// Package domain defines the calculator's core data model and the contracts
// shared across packages.
//
// It contains plain types only: the editing state tag (EditState), the closed
// error taxonomy (ErrorKind), the shell command vocabulary (Command) and the
// read projection rendered by a shell (Display). Behaviour lives in
// internal/editor and internal/expr.
package domain
