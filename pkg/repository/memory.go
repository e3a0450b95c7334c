package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/benchmark510k/pkg/domain/interfaces"
	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
	"github.com/secmon-lab/benchmark510k/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu        sync.RWMutex
	reports   map[types.RunID]*model.Report
	summaries map[types.RunID]map[types.DeviceKey]*model.DeviceSummary
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		reports:   make(map[types.RunID]*model.Report),
		summaries: make(map[types.RunID]map[types.DeviceKey]*model.DeviceSummary),
	}
}

// SaveReport saves a report to memory
func (m *Memory) SaveReport(ctx context.Context, report *model.Report) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if report.RunID == "" {
		return goerr.New("run ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	reportCopy := *report
	reportCopy.Rows = append([]model.ReportRow(nil), report.Rows...)
	m.reports[report.RunID] = &reportCopy
	return nil
}

// GetReport retrieves a report by run ID
func (m *Memory) GetReport(ctx context.Context, id types.RunID) (*model.Report, error) {
	if id == "" {
		return nil, goerr.New("run ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	report, exists := m.reports[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrReportNotFound, "report not found", goerr.V("runID", id))
	}

	// Return a copy to prevent external modification
	reportCopy := *report
	reportCopy.Rows = append([]model.ReportRow(nil), report.Rows...)
	return &reportCopy, nil
}

// SaveDeviceSummary saves a device summary under its run
func (m *Memory) SaveDeviceSummary(ctx context.Context, summary *model.DeviceSummary) error {
	if summary == nil {
		return goerr.New("device summary is nil")
	}
	if summary.RunID == "" {
		return goerr.New("run ID is empty")
	}
	if summary.Key == "" {
		return goerr.New("device key is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.summaries[summary.RunID] == nil {
		m.summaries[summary.RunID] = make(map[types.DeviceKey]*model.DeviceSummary)
	}
	summaryCopy := *summary
	m.summaries[summary.RunID][summary.Key] = &summaryCopy
	return nil
}

// ListDeviceSummaries lists the device summaries of a run ordered by key
func (m *Memory) ListDeviceSummaries(ctx context.Context, runID types.RunID) ([]*model.DeviceSummary, error) {
	if runID == "" {
		return nil, goerr.New("run ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	summaries := make([]*model.DeviceSummary, 0, len(m.summaries[runID]))
	for _, summary := range m.summaries[runID] {
		summaryCopy := *summary
		summaries = append(summaries, &summaryCopy)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Key < summaries[j].Key
	})

	return summaries, nil
}

// Close does nothing for the memory repository
func (m *Memory) Close() error {
	return nil
}
