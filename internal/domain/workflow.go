// Package domain contains the partition enumerator and the workflow that feeds it records.
package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/natiilollll/Code-Sequence-Validator/internal/adapter"
	"github.com/natiilollll/Code-Sequence-Validator/internal/controller"
	m "github.com/natiilollll/Code-Sequence-Validator/internal/model"
)

// RunArgs configures a run over a stream of records.
type RunArgs struct {
	Inputs    []m.Path // empty means standard input
	Threads   int
	KeepGoing bool
	Banner    bool
	Summary   bool
	Report    m.Path // YAML report destination, empty to skip
}

// SolveArgs configures ad-hoc queries given on the command line.
type SolveArgs struct {
	Digits []string
	List   bool
}

// Workflow defines the record-processing operations of the CLI.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) ([]m.Report, error)
	Solve(args SolveArgs) ([]m.Report, error)
}

type workflow struct {
	input  adapter.InputSource
	store  adapter.ReportStore
	ui     controller.UI
	solver Solver
	logger *log.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	input adapter.InputSource,
	store adapter.ReportStore,
	ui controller.UI,
	solver Solver,
	logger *log.Logger,
) Workflow {
	return &workflow{
		input:  input,
		store:  store,
		ui:     ui,
		solver: solver,
		logger: logger,
	}
}

// Run reads records until end of input and answers each of them. Without
// KeepGoing the first malformed record ends the run with its *adapter.RecordError.
// With Threads > 1 all records are read first, solved concurrently and shown in
// input order.
func (w *workflow) Run(ctx context.Context, args RunArgs) ([]m.Report, error) {
	rc, err := w.input.Open(args.Inputs...)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	if err := w.ui.Start(); err != nil {
		return nil, fmt.Errorf("failed to start UI: %w", err)
	}

	if args.Banner {
		w.ui.DisplayBanner()
	}

	reader := adapter.NewRecordReader(rc)

	var reports []m.Report
	if args.Threads > 1 {
		reports, err = w.runParallel(ctx, reader, args)
	} else {
		reports, err = w.runSequential(ctx, reader, args)
	}

	if args.Summary {
		w.ui.DisplaySummary(reports)
	}

	w.ui.Close()
	w.ui.Wait()

	if args.Report != "" {
		if saveErr := w.store.SaveReports(args.Report, reports); saveErr != nil {
			err = errors.Join(err, saveErr)
		}
	}

	w.logger.Debug("run finished", "records", len(reports), "threads", args.Threads, "err", err)

	return reports, err
}

func (w *workflow) runSequential(ctx context.Context, reader adapter.RecordReader, args RunArgs) ([]m.Report, error) {
	var (
		reports []m.Report
		errs    []error
	)

	for {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		query, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		var report m.Report

		if err != nil {
			var recErr *adapter.RecordError
			if !errors.As(err, &recErr) {
				return reports, err
			}

			report = w.rejectRecord(recErr)
		} else {
			report = w.solveQuery(query)
			w.ui.DisplayResult(report)
		}

		reports = append(reports, report)

		if report.Err != nil {
			if !args.KeepGoing {
				return reports, report.Err
			}

			errs = append(errs, report.Err)
		}
	}

	return reports, errors.Join(errs...)
}

// queuedRecord is either a query waiting to be solved or a rejected record.
type queuedRecord struct {
	query  m.Query
	report m.Report
	bad    bool
	solved bool
}

func (w *workflow) runParallel(ctx context.Context, reader adapter.RecordReader, args RunArgs) ([]m.Report, error) {
	queue, readErr := w.collect(reader, args.KeepGoing)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(args.Threads)

	for i := range queue {
		if queue[i].bad {
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			queue[i].report = w.solveQuery(queue[i].query)
			queue[i].solved = true

			return nil
		})
	}

	waitErr := g.Wait()

	reports := make([]m.Report, 0, len(queue))

	var errs []error

	for _, rec := range queue {
		// After cancellation only the leading run of answered records is kept.
		if !rec.bad && !rec.solved {
			return reports, waitErr
		}

		if rec.bad {
			w.ui.DisplayInputError(rec.report.Err)
		} else {
			w.ui.DisplayResult(rec.report)
		}

		reports = append(reports, rec.report)

		if rec.report.Err != nil {
			if !args.KeepGoing {
				return reports, rec.report.Err
			}

			errs = append(errs, rec.report.Err)
		}
	}

	if readErr != nil {
		errs = append(errs, readErr)
	}

	return reports, errors.Join(errs...)
}

// collect reads every record up front. Without keepGoing it stops after the
// first malformed one, which stays in the queue so it is reported in order.
func (w *workflow) collect(reader adapter.RecordReader, keepGoing bool) ([]queuedRecord, error) {
	var queue []queuedRecord

	for {
		query, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return queue, nil
		}

		if err != nil {
			var recErr *adapter.RecordError
			if !errors.As(err, &recErr) {
				return queue, err
			}

			w.logger.Warn("malformed record", "record", recErr.Record, "reason", recErr.Reason)
			queue = append(queue, queuedRecord{report: malformedReport(recErr), bad: true})

			if !keepGoing {
				return queue, nil
			}

			continue
		}

		queue = append(queue, queuedRecord{query: query})
	}
}

// Solve answers each digit string given on the command line.
func (w *workflow) Solve(args SolveArgs) ([]m.Report, error) {
	action := m.ActionCount
	if args.List {
		action = m.ActionList
	}

	reports := make([]m.Report, 0, len(args.Digits))

	var errs []error

	for i, digits := range args.Digits {
		query, err := adapter.NewQuery(i+1, action, digits)
		if err != nil {
			var recErr *adapter.RecordError
			if errors.As(err, &recErr) {
				reports = append(reports, w.rejectRecord(recErr))
			}

			errs = append(errs, err)

			continue
		}

		report := w.solveQuery(query)
		w.ui.DisplayResult(report)
		reports = append(reports, report)

		if report.Err != nil {
			errs = append(errs, report.Err)
		}
	}

	return reports, errors.Join(errs...)
}

func (w *workflow) rejectRecord(recErr *adapter.RecordError) m.Report {
	w.logger.Warn("malformed record", "record", recErr.Record, "reason", recErr.Reason)
	w.ui.DisplayInputError(recErr)

	return malformedReport(recErr)
}

func malformedReport(recErr *adapter.RecordError) m.Report {
	return m.Report{Index: recErr.Record, Err: recErr}
}

func (w *workflow) solveQuery(query m.Query) m.Report {
	start := time.Now()
	result, err := w.solver.Solve(query.Digits, query.Action.WantSolutions())
	elapsed := time.Since(start)

	report := m.Report{
		Index:     query.Index,
		Action:    query.Action.String(),
		Digits:    string(query.Digits),
		Length:    query.Digits.Len(),
		Count:     result.Count,
		Capped:    result.Capped,
		Elapsed:   elapsed,
		Solutions: result.Solutions,
	}

	if err != nil {
		report.Err = fmt.Errorf("record %d: %w", query.Index, err)
		w.logger.Error("query failed", "record", query.Index, "length", report.Length, "err", err)

		return report
	}

	w.logger.Debug("query solved",
		"record", query.Index,
		"action", report.Action,
		"length", report.Length,
		"count", report.Count,
		"capped", report.Capped,
		"elapsed", elapsed,
	)

	return report
}
