package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/benchmark510k/pkg/domain/interfaces"
	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
	"github.com/secmon-lab/benchmark510k/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	reportsCollection = "reports"
	devicesCollection = "devices"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on bad project or missing permissions
	_, err = client.Collection(reportsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// SaveReport saves a report to Firestore
func (f *Firestore) SaveReport(ctx context.Context, report *model.Report) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if report.RunID == "" {
		return goerr.New("run ID is empty")
	}

	_, err := f.client.Collection(reportsCollection).Doc(report.RunID.String()).Set(ctx, report)
	if err != nil {
		return goerr.Wrap(err, "failed to save report to firestore", goerr.V("runID", report.RunID))
	}

	return nil
}

// GetReport retrieves a report by run ID
func (f *Firestore) GetReport(ctx context.Context, id types.RunID) (*model.Report, error) {
	if id == "" {
		return nil, goerr.New("run ID is empty")
	}

	doc, err := f.client.Collection(reportsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrReportNotFound, "report not found", goerr.V("runID", id))
		}
		return nil, goerr.Wrap(err, "failed to get report from firestore", goerr.V("runID", id))
	}

	var report model.Report
	if err := doc.DataTo(&report); err != nil {
		return nil, goerr.Wrap(err, "failed to decode report", goerr.V("runID", id))
	}

	return &report, nil
}

// SaveDeviceSummary saves a device summary under reports/{runID}/devices
func (f *Firestore) SaveDeviceSummary(ctx context.Context, summary *model.DeviceSummary) error {
	if summary == nil {
		return goerr.New("device summary is nil")
	}
	if summary.RunID == "" {
		return goerr.New("run ID is empty")
	}
	if summary.Key == "" {
		return goerr.New("device key is empty")
	}

	_, err := f.devices(summary.RunID).Doc(summary.Key.String()).Set(ctx, summary)
	if err != nil {
		return goerr.Wrap(err, "failed to save device summary to firestore",
			goerr.V("runID", summary.RunID),
			goerr.V("key", summary.Key))
	}

	return nil
}

// ListDeviceSummaries lists the device summaries of a run ordered by key
func (f *Firestore) ListDeviceSummaries(ctx context.Context, runID types.RunID) ([]*model.DeviceSummary, error) {
	if runID == "" {
		return nil, goerr.New("run ID is empty")
	}

	iter := f.devices(runID).Documents(ctx)
	defer iter.Stop()

	var summaries []*model.DeviceSummary
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate device summaries", goerr.V("runID", runID))
		}

		var summary model.DeviceSummary
		if err := doc.DataTo(&summary); err != nil {
			return nil, goerr.Wrap(err, "failed to decode device summary", goerr.V("doc", doc.Ref.ID))
		}
		summaries = append(summaries, &summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Key < summaries[j].Key
	})

	return summaries, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	return f.client.Close()
}

func (f *Firestore) devices(runID types.RunID) *firestore.CollectionRef {
	return f.client.Collection(reportsCollection).Doc(runID.String()).Collection(devicesCollection)
}
