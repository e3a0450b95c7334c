package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/benchmark510k/pkg/domain/interfaces"
	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
)

// DefaultPageDelay is the pause between successive page requests
const DefaultPageDelay = 100 * time.Millisecond

// Fetcher retrieves every record matching a search query, page by page
type Fetcher struct {
	client    interfaces.OpenFDAClient
	pageSize  int
	pageDelay time.Duration
}

// FetcherOption configures a Fetcher
type FetcherOption func(*Fetcher)

// WithPageDelay overrides DefaultPageDelay
func WithPageDelay(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.pageDelay = d
	}
}

// NewFetcher creates a new Fetcher
func NewFetcher(client interfaces.OpenFDAClient, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:    client,
		pageSize:  model.MaxPageSize,
		pageDelay: DefaultPageDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchAll requests pages at skip 0, pageSize, 2*pageSize, ... and stops when
// the accepted records reach the total reported by the first page, a page
// comes back empty, or openFDA reports no matches. Records without a usable
// received date are dropped.
func (f *Fetcher) FetchAll(ctx context.Context, query string) ([]model.SubmissionRecord, error) {
	logger := ctxlog.From(ctx)

	var (
		records []model.SubmissionRecord
		total   int
	)

	for skip := 0; ; skip += f.pageSize {
		if skip > 0 {
			if err := sleepContext(ctx, f.pageDelay); err != nil {
				return nil, goerr.Wrap(err, "interrupted between pages",
					goerr.V("query", query),
					goerr.V("skip", skip))
			}
		}

		resp, err := f.client.Search(ctx, query, skip, f.pageSize)
		if err != nil {
			if errors.Is(err, model.ErrNoMatches) {
				logger.Debug("No more matches", "query", query, "skip", skip)
				break
			}
			return nil, goerr.Wrap(err, "failed to fetch page",
				goerr.V("query", query),
				goerr.V("skip", skip))
		}

		if len(resp.Results) == 0 {
			break
		}
		if skip == 0 {
			total = resp.Total()
		}

		for _, result := range resp.Results {
			record := model.NewSubmissionRecord(result)
			if !record.HasSubmissionDate() {
				continue
			}
			records = append(records, record)
		}

		logger.Debug("Fetched page",
			"query", query,
			"skip", skip,
			"results", len(resp.Results),
			"accepted", len(records),
			"total", total,
		)

		if len(records) >= total {
			break
		}
	}

	return records, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
