package usecase

import (
	"context"

	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
)

// ReportNotifier publishes a finished report
type ReportNotifier interface {
	PostReport(ctx context.Context, report *model.Report) error
}
