// Package progress provides progress reporting for the build and push
// pipeline stages.
package progress

import "fmt"

// Reporter defines the interface for reporting progress.
// It provides methods to report different stages of an operation
// and its status.
type Reporter interface {
	// Start begins progress reporting with an initial message
	Start(message string)

	// Step reports a new step in the operation
	Step(message string)

	// Error reports an error condition
	Error(message string)

	// Success reports successful completion
	Success(message string)

	// End finalizes progress reporting
	End()
}

// ConsoleReporter implements Reporter by printing plain messages to console.
// It is the fallback for non-TTY environments such as CI logs.
type ConsoleReporter struct{}

// NewConsoleReporter creates a new ConsoleReporter
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{}
}

func (r *ConsoleReporter) Start(message string) {
	fmt.Printf("%s...\n", message)
}

func (r *ConsoleReporter) Step(message string) {
	fmt.Printf("  > %s...\n", message)
}

func (r *ConsoleReporter) Error(message string) {
	fmt.Printf("  ERROR %s\n", message)
}

func (r *ConsoleReporter) Success(message string) {
	fmt.Printf("  OK %s\n", message)
}

func (r *ConsoleReporter) End() {}
