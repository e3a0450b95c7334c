package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/benchmark510k/pkg/domain/interfaces"
	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
	"github.com/secmon-lab/benchmark510k/pkg/domain/types"
)

// Archive reads back runs stored by Benchmark
type Archive struct {
	repo interfaces.Repository
}

// NewArchive creates a new Archive
func NewArchive(repo interfaces.Repository) *Archive {
	return &Archive{repo: repo}
}

// Lookup returns the report of runID and its device summaries ordered by key
func (a *Archive) Lookup(ctx context.Context, runID types.RunID) (*model.Report, []*model.DeviceSummary, error) {
	if err := runID.Validate(); err != nil {
		return nil, nil, err
	}

	report, err := a.repo.GetReport(ctx, runID)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to get report", goerr.V("runID", runID))
	}

	summaries, err := a.repo.ListDeviceSummaries(ctx, runID)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to list device summaries", goerr.V("runID", runID))
	}

	return report, summaries, nil
}
