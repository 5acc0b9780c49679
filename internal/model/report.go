package model

import "time"

// Report records how a single input record was handled.
type Report struct {
	Index     int           `yaml:"index"`
	Action    string        `yaml:"action,omitempty"`
	Digits    string        `yaml:"digits,omitempty"`
	Length    int           `yaml:"length"`
	Count     int64         `yaml:"count"`
	Capped    bool          `yaml:"capped,omitempty"`
	Elapsed   time.Duration `yaml:"elapsed"`
	Error     string        `yaml:"error,omitempty"`
	Solutions string        `yaml:"-"`
	Err       error         `yaml:"-"` // malformed record or solver failure
}

// Failed reports whether the record could not be answered.
func (r Report) Failed() bool {
	return r.Err != nil || r.Error != ""
}

// Path represents a file system path.
type Path string
