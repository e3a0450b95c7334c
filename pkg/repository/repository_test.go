package repository_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/benchmark510k/pkg/domain/interfaces"
	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
	"github.com/secmon-lab/benchmark510k/pkg/domain/types"
	"github.com/secmon-lab/benchmark510k/pkg/repository"
)

func newRunID(t *testing.T) types.RunID {
	id, err := types.NewRunID()
	gt.NoError(t, err).Required()
	return id
}

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Run("SaveReport", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		report := &model.Report{
			RunID:       newRunID(t),
			GeneratedAt: time.Now().UTC().Truncate(time.Millisecond),
			DeviceCount: 2,
			Rows: []model.ReportRow{
				{Percentile: 10, MeanDaysBetweenSubmissions: 30, DaysSinceLastSubmission: 12, MeanDaysToDecision: 90},
				{Percentile: 50, MeanDaysBetweenSubmissions: 60, DaysSinceLastSubmission: 40, MeanDaysToDecision: 120},
			},
			Counts: model.ReportCounts{MeanDaysBetweenSubmissions: 2, DaysSinceLastSubmission: 2, MeanDaysToDecision: 1},
		}

		gt.NoError(t, repo.SaveReport(ctx, report))

		retrieved, err := repo.GetReport(ctx, report.RunID)
		gt.NoError(t, err)
		gt.Equal(t, retrieved.RunID, report.RunID)
		gt.Equal(t, retrieved.DeviceCount, report.DeviceCount)
		gt.Equal(t, retrieved.Rows, report.Rows)
		gt.Equal(t, retrieved.Counts, report.Counts)
		gt.True(t, retrieved.GeneratedAt.Sub(report.GeneratedAt).Abs() < time.Second)
	})

	t.Run("SaveReport_Invalid", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		gt.Error(t, repo.SaveReport(ctx, nil))
		gt.Error(t, repo.SaveReport(ctx, &model.Report{}))
	})

	t.Run("GetReport_NotFound", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		_, err := repo.GetReport(context.Background(), newRunID(t))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrReportNotFound))
	})

	t.Run("DeviceSummaries", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		runID := newRunID(t)
		mean := 45.5
		days := 12

		summaries := []*model.DeviceSummary{
			{
				Key:                        types.NewDeviceKey("Zeta Medical", "ZS"),
				RunID:                      runID,
				DeviceName:                 "ZS",
				Manufacturer:               "Zeta Medical",
				SubmissionCount:            3,
				FirstSubmissionDate:        "2019-01-01",
				LastSubmissionDate:         "2021-06-30",
				MeanDaysBetweenSubmissions: &mean,
				DaysSinceLastSubmission:    &days,
			},
			{
				Key:                 types.NewDeviceKey("Acme Medical", "AS"),
				RunID:               runID,
				DeviceName:          "AS",
				Manufacturer:        "Acme Medical",
				SubmissionCount:     1,
				FirstSubmissionDate: "2020-02-02",
				LastSubmissionDate:  "2020-02-02",
			},
		}
		for _, s := range summaries {
			gt.NoError(t, repo.SaveDeviceSummary(ctx, s))
		}

		// a different run must not leak into the listing
		other := *summaries[0]
		other.RunID = newRunID(t)
		gt.NoError(t, repo.SaveDeviceSummary(ctx, &other))

		listed, err := repo.ListDeviceSummaries(ctx, runID)
		gt.NoError(t, err)
		gt.A(t, listed).Length(2)
		gt.Equal(t, listed[0].DeviceName, "AS")
		gt.Equal(t, listed[1].DeviceName, "ZS")
		gt.Equal(t, *listed[1].MeanDaysBetweenSubmissions, mean)
		gt.Equal(t, *listed[1].DaysSinceLastSubmission, days)
		gt.Nil(t, listed[1].MeanDaysToDecision)
		gt.Nil(t, listed[0].MeanDaysBetweenSubmissions)
	})

	t.Run("DeviceSummaries_Invalid", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		gt.Error(t, repo.SaveDeviceSummary(ctx, nil))
		gt.Error(t, repo.SaveDeviceSummary(ctx, &model.DeviceSummary{Key: "k"}))
		gt.Error(t, repo.SaveDeviceSummary(ctx, &model.DeviceSummary{RunID: newRunID(t)}))

		_, err := repo.ListDeviceSummaries(ctx, "")
		gt.Error(t, err)
	})

	t.Run("ListDeviceSummaries_Empty", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		listed, err := repo.ListDeviceSummaries(context.Background(), newRunID(t))
		gt.NoError(t, err)
		gt.A(t, listed).Length(0)
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		return repository.NewMemory()
	})
}

func TestFirestoreRepository(t *testing.T) {
	// Skip test if Firestore test environment variables are not set
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")

	if projectID == "" || databaseID == "" {
		t.Skip("Skipping Firestore test: TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE must be set")
	}

	testRepository(t, func(t *testing.T) interfaces.Repository {
		ctx := context.Background()
		logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
		ctx = ctxlog.With(ctx, logger)

		repo, err := repository.NewFirestore(ctx, projectID, databaseID)
		gt.NoError(t, err)
		return repo
	})
}
