package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/benchmark510k/pkg/domain/interfaces"
	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
	"github.com/secmon-lab/benchmark510k/pkg/domain/types"
)

// Benchmark runs the fetch, aggregate and report pipeline
type Benchmark struct {
	aggregator *Aggregator
	repo       interfaces.Repository
	notifier   ReportNotifier
	now        func() time.Time
}

// BenchmarkOption configures a Benchmark
type BenchmarkOption func(*Benchmark)

// WithRepository archives the report and per-device summaries
func WithRepository(repo interfaces.Repository) BenchmarkOption {
	return func(b *Benchmark) {
		b.repo = repo
	}
}

// WithNotifier publishes the report once it is built
func WithNotifier(notifier ReportNotifier) BenchmarkOption {
	return func(b *Benchmark) {
		b.notifier = notifier
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) BenchmarkOption {
	return func(b *Benchmark) {
		b.now = now
	}
}

// NewBenchmark creates a new Benchmark
func NewBenchmark(aggregator *Aggregator, opts ...BenchmarkOption) *Benchmark {
	b := &Benchmark{
		aggregator: aggregator,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run aggregates the tracked devices and computes the population report
func (b *Benchmark) Run(ctx context.Context, tracked *model.TrackedDevices) (*model.Report, error) {
	if tracked == nil {
		return nil, goerr.New("tracked devices is nil")
	}

	runID, err := types.NewRunID()
	if err != nil {
		return nil, err
	}

	logger := ctxlog.From(ctx).With("runID", runID)
	ctx = ctxlog.With(ctx, logger)

	devices, err := b.aggregator.Collect(ctx, tracked)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to collect devices", goerr.V("runID", runID))
	}

	now := b.now().UTC()
	today := types.DateOf(now)
	report := model.NewReport(runID, now, devices, today)

	logger.Info("Report computed",
		"devices", report.DeviceCount,
		"configured", len(tracked.Devices),
	)

	if b.repo != nil {
		if err := b.archive(ctx, report, devices, today); err != nil {
			return nil, err
		}
	}

	if b.notifier != nil {
		if err := b.notifier.PostReport(ctx, report); err != nil {
			return nil, goerr.Wrap(err, "failed to publish report", goerr.V("runID", runID))
		}
	}

	return report, nil
}

func (b *Benchmark) archive(ctx context.Context, report *model.Report, devices []*model.DeviceData, today types.Date) error {
	for _, device := range devices {
		if err := b.repo.SaveDeviceSummary(ctx, device.Summarize(report.RunID, today)); err != nil {
			return goerr.Wrap(err, "failed to archive device",
				goerr.V("runID", report.RunID),
				goerr.V("device", device.DeviceName))
		}
	}

	if err := b.repo.SaveReport(ctx, report); err != nil {
		return goerr.Wrap(err, "failed to archive report", goerr.V("runID", report.RunID))
	}
	return nil
}
