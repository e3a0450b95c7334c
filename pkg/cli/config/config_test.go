package config_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/benchmark510k/pkg/cli/config"
)

func TestLoggerConfigure(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := config.Logger{Level: "debug", Format: "json"}
		gt.NoError(t, cfg.Validate())
		logger, err := cfg.Configure()
		gt.NoError(t, err)
		gt.V(t, logger).NotNil()
	})

	t.Run("invalid format", func(t *testing.T) {
		cfg := config.Logger{Level: "info", Format: "xml"}
		gt.Error(t, cfg.Validate())
		_, err := cfg.Configure()
		gt.Error(t, err)
	})

	t.Run("empty format means auto", func(t *testing.T) {
		cfg := config.Logger{Level: "warn"}
		logger, err := cfg.Configure()
		gt.NoError(t, err)
		gt.V(t, logger).NotNil()
	})

	t.Run("invalid level", func(t *testing.T) {
		cfg := config.Logger{Level: "loud", Format: "auto"}
		gt.Error(t, cfg.Validate())
		_, err := cfg.Configure()
		gt.Error(t, err)
	})
}

func TestOpenFDAConfigure(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := config.OpenFDA{BaseURL: "http://localhost/510k.json", PageDelay: 100 * time.Millisecond}
		fetcher, err := cfg.Configure()
		gt.NoError(t, err)
		gt.V(t, fetcher).NotNil()
	})

	testCases := []struct {
		name string
		cfg  config.OpenFDA
	}{
		{name: "missing url", cfg: config.OpenFDA{}},
		{name: "negative delay", cfg: config.OpenFDA{BaseURL: "http://x", PageDelay: -time.Second}},
		{name: "negative timeout", cfg: config.OpenFDA{BaseURL: "http://x", Timeout: -time.Second}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.cfg.Configure()
			gt.Error(t, err)
		})
	}
}

func TestFirestoreFallsBackToMemory(t *testing.T) {
	cfg := config.Firestore{}
	gt.False(t, cfg.IsConfigured())

	repo, err := cfg.Configure(context.Background())
	gt.NoError(t, err)
	gt.V(t, repo).NotNil()
	gt.NoError(t, repo.Close())
}

func TestSlackConfig(t *testing.T) {
	logger := slog.Default()

	t.Run("not configured", func(t *testing.T) {
		cfg := config.Slack{}
		gt.NoError(t, cfg.Validate())
		gt.Nil(t, cfg.ConfigureOptional(logger))
	})

	t.Run("configured", func(t *testing.T) {
		cfg := config.Slack{OAuthToken: "xoxb-test", ChannelID: "C0123"}
		gt.NoError(t, cfg.Validate())
		gt.True(t, cfg.IsConfigured())
		gt.V(t, cfg.ConfigureOptional(logger)).NotNil()
	})

	t.Run("token without channel", func(t *testing.T) {
		cfg := config.Slack{OAuthToken: "xoxb-test"}
		gt.Error(t, cfg.Validate())
	})
}
