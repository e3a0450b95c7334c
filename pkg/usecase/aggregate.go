package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
)

// Aggregator builds DeviceData from every alias of each configured device
type Aggregator struct {
	fetcher *Fetcher
}

// NewAggregator creates a new Aggregator
func NewAggregator(fetcher *Fetcher) *Aggregator {
	return &Aggregator{fetcher: fetcher}
}

// Collect aggregates every device in order. Devices without any submission
// are left out of the result. The first fetch error aborts the run.
func (a *Aggregator) Collect(ctx context.Context, tracked *model.TrackedDevices) ([]*model.DeviceData, error) {
	var devices []*model.DeviceData
	for _, query := range tracked.Devices {
		device, err := a.CollectDevice(ctx, query)
		if err != nil {
			return nil, err
		}
		if device == nil {
			continue
		}
		devices = append(devices, device)
	}
	return devices, nil
}

// CollectDevice fetches every alias of query sequentially and merges the
// records. It returns nil when nothing was found.
func (a *Aggregator) CollectDevice(ctx context.Context, query model.DeviceQuery) (*model.DeviceData, error) {
	logger := ctxlog.From(ctx)

	var records []model.SubmissionRecord
	for _, alias := range query.Aliases {
		logger.Info("Fetching data",
			"manufacturer", query.Manufacturer,
			"alias", alias,
		)

		found, err := a.fetcher.FetchAll(ctx, query.SearchQuery(alias))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to fetch submissions",
				goerr.V("manufacturer", query.Manufacturer),
				goerr.V("alias", alias))
		}

		if len(found) == 0 {
			logger.Warn("No results found",
				"manufacturer", query.Manufacturer,
				"alias", alias,
			)
		}
		records = append(records, found...)
	}

	device := model.NewDeviceData(query, records)
	if device == nil {
		return nil, nil
	}

	last, _ := device.LastSubmissionDate()
	logger.Info("Adding device",
		"device", device.DeviceName,
		"manufacturer", device.Manufacturer,
		"submissions", len(device.Submissions),
		"lastSubmission", last.String(),
	)

	return device, nil
}
