package controller

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	m "github.com/natiilollll/Code-Sequence-Validator/internal/model"
)

func TestNewUI_FallsBackWithoutTerminal(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false, nil))
	assert.IsType(t, &SimpleUI{}, NewUI(cmd, true, nil))
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestTUI_SendBeforeStartIsNoop(t *testing.T) {
	ui := NewTUI(&bytes.Buffer{}, nil)

	ui.DisplayBanner()
	ui.DisplayResult(m.Report{})
	ui.DisplaySummary(nil)
	ui.Close()
	ui.Wait()
	assert.NoError(t, ui.Err())
}
