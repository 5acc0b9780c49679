package domain

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/natiilollll/Code-Sequence-Validator/internal/adapter"
	"github.com/natiilollll/Code-Sequence-Validator/internal/logging"
	m "github.com/natiilollll/Code-Sequence-Validator/internal/model"
)

type mockUI struct {
	mock.Mock
}

func newMockUI(t *testing.T) *mockUI {
	t.Helper()

	ui := &mockUI{}
	ui.On("Start").Return(nil).Maybe()
	ui.On("Close").Return().Maybe()
	ui.On("Wait").Return().Maybe()
	t.Cleanup(func() { ui.AssertExpectations(t) })

	return ui
}

func (u *mockUI) Start() error {
	return u.Called().Error(0)
}

func (u *mockUI) Close() {
	u.Called()
}

func (u *mockUI) Wait() {
	u.Called()
}

func (u *mockUI) DisplayBanner() {
	u.Called()
}

func (u *mockUI) DisplayResult(report m.Report) {
	u.Called(report)
}

func (u *mockUI) DisplayInputError(err error) {
	u.Called(err)
}

func (u *mockUI) DisplaySummary(reports []m.Report) {
	u.Called(reports)
}

type stringSource struct {
	text string
}

func (s stringSource) Open(_ ...m.Path) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.text)), nil
}

type recordingStore struct {
	path  m.Path
	saved []m.Report
}

func (s *recordingStore) SaveReports(path m.Path, reports []m.Report) error {
	s.path = path
	s.saved = reports

	return nil
}

func (s *recordingStore) LoadReports(_ m.Path) ([]m.Report, error) {
	return s.saved, nil
}

func newTestWorkflow(input string, ui *mockUI, store adapter.ReportStore) Workflow {
	if store == nil {
		store = &recordingStore{}
	}

	return NewWorkflow(stringSource{text: input}, store, ui, NewSolver(), logging.Discard())
}

func reportIndex(idx int) interface{} {
	return mock.MatchedBy(func(r m.Report) bool { return r.Index == idx })
}

func TestWorkflow_Run_Sequential(t *testing.T) {
	ui := newMockUI(t)
	ui.On("DisplayBanner").Return().Once()
	ui.On("DisplayResult", mock.MatchedBy(func(r m.Report) bool {
		return r.Index == 1 && r.Count == 2 && r.Solutions == "* 2,2\n* 22\n"
	})).Return().Once()
	ui.On("DisplayResult", mock.MatchedBy(func(r m.Report) bool {
		return r.Index == 2 && r.Count == 1 && r.Solutions == ""
	})).Return().Once()

	wf := newTestWorkflow("? 22\n# 21\n", ui, nil)

	reports, err := wf.Run(context.Background(), RunArgs{Threads: 1, Banner: true})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "?", reports[0].Action)
	assert.Equal(t, 2, reports[0].Length)
}

func TestWorkflow_Run_StopsAtMalformedRecord(t *testing.T) {
	ui := newMockUI(t)
	ui.On("DisplayResult", reportIndex(1)).Return().Once()
	ui.On("DisplayInputError", mock.Anything).Return().Once()

	wf := newTestWorkflow("# 1\nx 2\n# 3\n", ui, nil)

	reports, err := wf.Run(context.Background(), RunArgs{Threads: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrMalformedRecord)

	var recErr *adapter.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, 2, recErr.Record)
	assert.Len(t, reports, 2)
}

func TestWorkflow_Run_KeepGoing(t *testing.T) {
	ui := newMockUI(t)
	ui.On("DisplayResult", reportIndex(1)).Return().Once()
	ui.On("DisplayInputError", mock.Anything).Return().Once()
	ui.On("DisplayResult", reportIndex(3)).Return().Once()

	wf := newTestWorkflow("# 1\nx 2\n# 3\n", ui, nil)

	reports, err := wf.Run(context.Background(), RunArgs{Threads: 1, KeepGoing: true})
	assert.ErrorIs(t, err, adapter.ErrMalformedRecord)
	require.Len(t, reports, 3)
	assert.True(t, reports[1].Failed())
	assert.Equal(t, int64(1), reports[2].Count)
}

func TestWorkflow_Run_ParallelKeepsInputOrder(t *testing.T) {
	var shown []int

	ui := newMockUI(t)
	ui.On("DisplayResult", mock.Anything).Run(func(args mock.Arguments) {
		shown = append(shown, args.Get(0).(m.Report).Index)
	}).Return().Times(5)

	input := "# 1\n# 22\n? 123\n# " + strings.Repeat("1", 16) + "\n? 21\n"
	wf := newTestWorkflow(input, ui, nil)

	reports, err := wf.Run(context.Background(), RunArgs{Threads: 3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, shown)
	require.Len(t, reports, 5)
	assert.Equal(t, int64(1<<15), reports[3].Count)
	assert.Equal(t, "* 1,2,3\n* 1,23\n* 123\n", reports[2].Solutions)
}

func TestWorkflow_Run_ParallelStopsAtMalformedRecord(t *testing.T) {
	ui := newMockUI(t)
	ui.On("DisplayResult", reportIndex(1)).Return().Once()
	ui.On("DisplayInputError", mock.Anything).Return().Once()

	wf := newTestWorkflow("# 1\n% 2\n# 3\n", ui, nil)

	reports, err := wf.Run(context.Background(), RunArgs{Threads: 4})
	assert.ErrorIs(t, err, adapter.ErrMalformedRecord)
	assert.Len(t, reports, 2)
}

func TestWorkflow_Run_SummaryAndReport(t *testing.T) {
	ui := newMockUI(t)
	ui.On("DisplayResult", mock.Anything).Return().Twice()
	ui.On("DisplaySummary", mock.MatchedBy(func(r []m.Report) bool { return len(r) == 2 })).Return().Once()

	store := &recordingStore{}
	wf := newTestWorkflow("# 1\n# "+strings.Repeat("2", 31)+"\n", ui, store)

	_, err := wf.Run(context.Background(), RunArgs{Threads: 1, Summary: true, Report: "out.yaml"})
	require.NoError(t, err)
	assert.Equal(t, m.Path("out.yaml"), store.path)
	require.Len(t, store.saved, 2)
	assert.True(t, store.saved[1].Capped)
	assert.Equal(t, int64(0), store.saved[1].Count)
}

func TestWorkflow_Run_SolverFailure(t *testing.T) {
	ui := newMockUI(t)
	ui.On("DisplayResult", mock.MatchedBy(func(r m.Report) bool { return r.Err != nil })).Return().Once()

	wf := NewWorkflow(stringSource{text: "? 1111\n# 1\n"}, &recordingStore{}, ui,
		NewSolver(WithMaxOutputBytes(4)), logging.Discard())

	reports, err := wf.Run(context.Background(), RunArgs{Threads: 1})
	assert.ErrorIs(t, err, ErrOutputLimit)
	assert.Len(t, reports, 1)
}

func TestWorkflow_Run_CanceledContext(t *testing.T) {
	ui := newMockUI(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestWorkflow("# 1\n", ui, nil).Run(ctx, RunArgs{Threads: 1})
	assert.ErrorIs(t, err, context.Canceled)
}

// gatedSolver answers "1" before it lets "9" through, and cancels the run
// once "9" is answered.
type gatedSolver struct {
	Solver
	first  chan struct{}
	cancel context.CancelFunc
}

func (s *gatedSolver) Solve(digits m.Digits, wantSolutions bool) (m.Result, error) {
	switch digits {
	case "1":
		defer close(s.first)
	case "9":
		<-s.first
		defer s.cancel()
	}

	return s.Solver.Solve(digits, wantSolutions)
}

func TestWorkflow_Run_ParallelCancelKeepsAnsweredPrefix(t *testing.T) {
	ui := newMockUI(t)
	ui.On("DisplayResult", reportIndex(1)).Return().Once()
	ui.On("DisplayResult", reportIndex(2)).Return().Once()
	ui.On("DisplayResult", reportIndex(3)).Return().Maybe()
	ui.On("DisplayResult", reportIndex(4)).Return().Maybe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	solver := &gatedSolver{Solver: NewSolver(), first: make(chan struct{}), cancel: cancel}
	store := &recordingStore{}
	wf := NewWorkflow(stringSource{text: "# 1\n# 9\n# 22\n# 3\n"}, store, ui, solver, logging.Discard())

	reports, err := wf.Run(ctx, RunArgs{Threads: 2, Report: "out.yaml"})
	require.GreaterOrEqual(t, len(reports), 2)
	assert.Equal(t, 1, reports[0].Index)
	assert.Equal(t, 2, reports[1].Index)
	assert.Equal(t, int64(1), reports[1].Count)
	assert.Len(t, store.saved, len(reports))

	if len(reports) < 4 {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestWorkflow_Run_ParallelCanceledBeforeStart(t *testing.T) {
	ui := newMockUI(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reports, err := newTestWorkflow("# 1\n# 2\n", ui, nil).Run(ctx, RunArgs{Threads: 2})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, reports)
}

func TestWorkflow_Solve(t *testing.T) {
	ui := newMockUI(t)
	ui.On("DisplayResult", mock.MatchedBy(func(r m.Report) bool {
		return r.Index == 1 && r.Solutions == "* 2,2\n* 22\n"
	})).Return().Once()
	ui.On("DisplayInputError", mock.Anything).Return().Once()

	wf := newTestWorkflow("", ui, nil)

	reports, err := wf.Solve(SolveArgs{Digits: []string{"22", "2a"}, List: true})
	assert.ErrorIs(t, err, adapter.ErrMalformedRecord)
	assert.Len(t, reports, 2)
}
