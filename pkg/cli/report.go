package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/benchmark510k/pkg/cli/config"
	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
	"github.com/secmon-lab/benchmark510k/pkg/domain/types"
	"github.com/secmon-lab/benchmark510k/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdReport() *cli.Command {
	var (
		firestoreCfg config.Firestore
		runID        string
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "run-id",
				Usage:       "Run ID of an archived report",
				Required:    true,
				Sources:     cli.EnvVars("BENCHMARK510K_RUN_ID"),
				Destination: &runID,
			},
		},
		firestoreCfg.Flags(),
	)

	return &cli.Command{
		Name:  "report",
		Usage: "Print an archived report and its per-device summaries from Firestore",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if !firestoreCfg.IsConfigured() {
				return goerr.New("reading archived reports requires --firestore-project")
			}

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := repo.Close(); err != nil {
					ctxlog.From(ctx).Warn("Failed to close repository", "error", err)
				}
			}()

			report, summaries, err := usecase.NewArchive(repo).Lookup(ctx, types.RunID(runID))
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintf(c.Root().Writer, "%s\n%s", report.Markdown(), model.SummariesMarkdown(summaries)); err != nil {
				return goerr.Wrap(err, "failed to write report")
			}
			return nil
		},
	}
}
