package interfaces

//go:generate moq -out mocks/openfda_client_mock.go -pkg mocks . OpenFDAClient

import (
	"context"

	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
)

// OpenFDAClient fetches pages of the openFDA 510(k) endpoint
type OpenFDAClient interface {
	// Search returns one page of results for query starting at skip.
	// A "no matches" answer is reported as an error wrapping model.ErrNoMatches.
	Search(ctx context.Context, query string, skip, limit int) (*model.Response, error)
}
