package controller

import m "github.com/natiilollll/Code-Sequence-Validator/internal/model"

// Message types.
type resultMsg struct {
	report m.Report
}

type inputErrorMsg struct {
	err error
}

type finishedMsg struct{}
