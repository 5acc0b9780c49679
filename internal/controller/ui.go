// Package controller provides the output front-ends for query results.
package controller

import (
	m "github.com/natiilollll/Code-Sequence-Validator/internal/model"
)

// UI receives the results of a run as they become available.
// Implementations can use different output methods (plain protocol text, TUI).
type UI interface {
	Start() error
	Close()
	Wait() // Wait for the UI to finish (user closes it)
	DisplayBanner()
	DisplayResult(report m.Report)
	DisplayInputError(err error)
	DisplaySummary(reports []m.Report)
}
