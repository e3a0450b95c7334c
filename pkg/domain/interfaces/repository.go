package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
	"github.com/secmon-lab/benchmark510k/pkg/domain/types"
)

// Repository archives the results of a run
type Repository interface {
	// Report operations
	SaveReport(ctx context.Context, report *model.Report) error
	GetReport(ctx context.Context, id types.RunID) (*model.Report, error)

	// Device summary operations
	SaveDeviceSummary(ctx context.Context, summary *model.DeviceSummary) error
	ListDeviceSummaries(ctx context.Context, runID types.RunID) ([]*model.DeviceSummary, error)

	// Close closes the repository connection
	Close() error
}
