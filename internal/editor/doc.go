// Package editor implements the calculator's edit-state machine.
//
// A Controller takes the current domain.Display and one domain.Command and
// returns the next Display. It never mutates its input and holds no buffer of
// its own, so the same Controller can serve any number of displays.
//
// Before routing a command, an error display is cleared for every command
// except CE and back, and a result display is cleared when a digit arrives.
// An operator after a result therefore continues from the result text.
package editor
