package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/benchmark510k/pkg/cli/config"
	"github.com/secmon-lab/benchmark510k/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdRun() *cli.Command {
	var (
		devicesCfg   config.Devices
		openfdaCfg   config.OpenFDA
		firestoreCfg config.Firestore
		slackCfg     config.Slack
	)

	flags := joinFlags(
		devicesCfg.Flags(),
		openfdaCfg.Flags(),
		firestoreCfg.Flags(),
		slackCfg.Flags(),
	)

	return &cli.Command{
		Name:  "run",
		Usage: "Fetch 510(k) submissions for the tracked devices and print the percentile report",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger := ctxlog.From(ctx)
			logger.Info("Starting benchmark",
				slog.Any("devices", devicesCfg),
				slog.Any("openfda", openfdaCfg),
				slog.Any("firestore", firestoreCfg),
				slog.Any("slack", slackCfg),
			)

			tracked, err := devicesCfg.Load()
			if err != nil {
				return err
			}
			if err := slackCfg.Validate(); err != nil {
				return err
			}

			fetcher, err := openfdaCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logger.Warn("Failed to close repository", "error", err)
				}
			}()

			opts := []usecase.BenchmarkOption{usecase.WithRepository(repo)}
			if notifier := slackCfg.ConfigureOptional(logger); notifier != nil {
				opts = append(opts, usecase.WithNotifier(notifier))
			}

			benchmark := usecase.NewBenchmark(usecase.NewAggregator(fetcher), opts...)
			report, err := benchmark.Run(ctx, tracked)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprint(c.Root().Writer, report.Markdown()); err != nil {
				return goerr.Wrap(err, "failed to write report")
			}

			logger.Info("Benchmark completed",
				"runID", report.RunID,
				"devices", report.DeviceCount,
			)
			return nil
		},
	}
}
