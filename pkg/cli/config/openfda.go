package config

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/benchmark510k/pkg/service/openfda"
	"github.com/secmon-lab/benchmark510k/pkg/usecase"
	"github.com/urfave/cli/v3"
)

// OpenFDA holds openFDA client configuration
type OpenFDA struct {
	BaseURL   string
	PageDelay time.Duration
	Timeout   time.Duration
}

// Flags returns CLI flags for OpenFDA configuration
func (o *OpenFDA) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openfda-url",
			Usage:       "openFDA 510(k) endpoint",
			Category:    "openFDA",
			Value:       openfda.DefaultBaseURL,
			Sources:     cli.EnvVars("BENCHMARK510K_OPENFDA_URL"),
			Destination: &o.BaseURL,
		},
		&cli.DurationFlag{
			Name:        "openfda-page-delay",
			Usage:       "Pause between successive page requests",
			Category:    "openFDA",
			Value:       usecase.DefaultPageDelay,
			Sources:     cli.EnvVars("BENCHMARK510K_OPENFDA_PAGE_DELAY"),
			Destination: &o.PageDelay,
		},
		&cli.DurationFlag{
			Name:        "openfda-timeout",
			Usage:       "Per-request timeout (0 keeps the transport default)",
			Category:    "openFDA",
			Value:       0,
			Sources:     cli.EnvVars("BENCHMARK510K_OPENFDA_TIMEOUT"),
			Destination: &o.Timeout,
		},
	}
}

// Validate validates the openFDA configuration
func (o *OpenFDA) Validate() error {
	if o.BaseURL == "" {
		return goerr.New("openFDA URL is required")
	}
	if o.PageDelay < 0 {
		return goerr.New("page delay must not be negative", goerr.V("delay", o.PageDelay))
	}
	if o.Timeout < 0 {
		return goerr.New("timeout must not be negative", goerr.V("timeout", o.Timeout))
	}
	return nil
}

// Configure creates the paginated fetcher backed by an openFDA client
func (o *OpenFDA) Configure() (*usecase.Fetcher, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	client := openfda.New(
		openfda.WithBaseURL(o.BaseURL),
		openfda.WithHTTPClient(&http.Client{Timeout: o.Timeout}),
	)
	return usecase.NewFetcher(client, usecase.WithPageDelay(o.PageDelay)), nil
}

// LogValue returns structured log value
func (o OpenFDA) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", o.BaseURL),
		slog.Duration("pageDelay", o.PageDelay),
		slog.Duration("timeout", o.Timeout),
	)
}
