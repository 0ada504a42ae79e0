// Package calculator provides the core instance a shell holds: one display
// buffer and state tag, fed one command at a time.
//
// Concurrency: Service is NOT safe for concurrent use. A shell that receives
// input from several goroutines must serialise its calls.
package calculator
