package apperr_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/benchmark510k/pkg/utils/apperr"
)

func TestHandleLogsValues(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	ctx := ctxlog.With(context.Background(), logger)

	err := goerr.Wrap(goerr.New("unexpected openFDA status", goerr.V("status", 500)),
		"failed to fetch page", goerr.V("skip", 1000))
	apperr.Handle(ctx, err)

	var entry map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	gt.Equal(t, entry["msg"], "application error")
	gt.Equal[any](t, entry["status"], float64(500))
	gt.Equal[any](t, entry["skip"], float64(1000))
}

func TestHandleNil(t *testing.T) {
	var buf bytes.Buffer
	ctx := ctxlog.With(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))

	apperr.Handle(ctx, nil)
	gt.Equal(t, buf.Len(), 0)
}
