package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	var quiet bytes.Buffer

	logger := New(&quiet, false)
	logger.Debug("hidden detail")
	logger.Info("visible", "record", 3)

	assert.NotContains(t, quiet.String(), "hidden detail")
	assert.Contains(t, quiet.String(), "visible")
	assert.Contains(t, quiet.String(), "record=3")
	assert.Contains(t, quiet.String(), "codeseq")

	var loud bytes.Buffer

	New(&loud, true).Debug("query solved", "count", 2)
	assert.Contains(t, loud.String(), "query solved")
	assert.Contains(t, loud.String(), "count=2")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("dropped")
	assert.NotNil(t, logger)
}
