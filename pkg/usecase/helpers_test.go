package usecase_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/benchmark510k/pkg/domain/interfaces/mocks"
	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
	"github.com/secmon-lab/benchmark510k/pkg/domain/types"
)

// catalog holds a fixed result set per alias and serves it in openFDA-sized
// windows; a window past the end answers "not found".
type catalog struct {
	results  map[string][]model.Result
	total    map[string]int
	failures map[string]error
}

func newCatalog() *catalog {
	return &catalog{
		results:  map[string][]model.Result{},
		total:    map[string]int{},
		failures: map[string]error{},
	}
}

func (c *catalog) set(alias string, results []model.Result) {
	c.results[alias] = results
	c.total[alias] = len(results)
}

func (c *catalog) search(ctx context.Context, query string, skip, limit int) (*model.Response, error) {
	alias := aliasOf(query)
	if err, ok := c.failures[alias]; ok {
		return nil, err
	}

	results := c.results[alias]
	if skip >= len(results) {
		return nil, goerr.Wrap(model.ErrNoMatches, "not found")
	}
	end := min(skip+limit, len(results))

	return pageOf(results[skip:end], skip, limit, c.total[alias]), nil
}

// client returns an OpenFDAClientMock backed by the catalog
func (c *catalog) client() *mocks.OpenFDAClientMock {
	return &mocks.OpenFDAClientMock{SearchFunc: c.search}
}

func pageOf(results []model.Result, skip, limit, total int) *model.Response {
	return &model.Response{
		Meta: &model.ResponseMeta{Results: &model.ResultsMeta{
			Skip:  skip,
			Limit: limit,
			Total: total,
		}},
		Results: results,
	}
}

func skipsOf(client *mocks.OpenFDAClientMock) []int {
	calls := client.SearchCalls()
	out := make([]int, 0, len(calls))
	for _, c := range calls {
		out = append(out, c.Skip)
	}
	return out
}

// aliasOf extracts the device_name value from a search query
func aliasOf(query string) string {
	const marker = `device_name:"`
	i := strings.Index(query, marker)
	if i < 0 {
		return ""
	}
	return strings.TrimSuffix(query[i+len(marker):], `"`)
}

// makeResults builds n results received on consecutive days from start,
// each decided decisionAfter days later.
func makeResults(n int, start types.Date, decisionAfter int) []model.Result {
	results := make([]model.Result, 0, n)
	for i := 0; i < n; i++ {
		received := start.AddDays(i)
		results = append(results, model.Result{
			KNumber:      fmt.Sprintf("K%06d", i),
			DateReceived: received.String(),
			DecisionDate: received.AddDays(decisionAfter).String(),
		})
	}
	return results
}
