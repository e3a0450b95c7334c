package slack

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/benchmark510k/pkg/domain/interfaces"
	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
	"github.com/slack-go/slack"
)

// Notifier posts finished reports to a channel
type Notifier struct {
	client    interfaces.SlackClient
	channelID string
}

// NewNotifier creates a new Notifier
func NewNotifier(client interfaces.SlackClient, channelID string) *Notifier {
	return &Notifier{
		client:    client,
		channelID: channelID,
	}
}

// PostReport posts the report table
func (n *Notifier) PostReport(ctx context.Context, report *model.Report) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if n.channelID == "" {
		return goerr.New("channel ID is required")
	}

	_, ts, err := n.client.PostMessage(ctx, n.channelID,
		slack.MsgOptionText(FallbackText(report), false),
		slack.MsgOptionBlocks(BuildReportBlocks(report)...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post report",
			goerr.V("channel", n.channelID),
			goerr.V("runID", report.RunID))
	}

	ctxlog.From(ctx).Info("Posted report to Slack",
		"channel", n.channelID,
		"ts", ts,
	)
	return nil
}
