package slack

import (
	"fmt"

	"github.com/secmon-lab/benchmark510k/pkg/domain/model"
	"github.com/slack-go/slack"
)

// maxSectionText is Slack's character limit for a section block's text
const maxSectionText = 3000

// BuildReportBlocks renders a report as a header, the markdown table in a
// code block, and a context line with the run metadata.
func BuildReportBlocks(report *model.Report) []slack.Block {
	table := "```\n" + report.Markdown() + "```"
	if len(table) > maxSectionText {
		table = table[:maxSectionText-7] + "\n…\n```"
	}

	return []slack.Block{
		slack.NewHeaderBlock(
			slack.NewTextBlockObject(slack.PlainTextType, "510(k) submission benchmark", true, false),
		),
		slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, table, false, false),
			nil, nil,
		),
		slack.NewContextBlock("",
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*Devices:* %d  |  *Run:* `%s`  |  *Generated:* %s",
				report.DeviceCount,
				report.RunID,
				report.GeneratedAt.UTC().Format("2006-01-02 15:04 MST"),
			), false, false),
		),
	}
}

// FallbackText is shown by clients that cannot render blocks
func FallbackText(report *model.Report) string {
	return fmt.Sprintf("510(k) submission benchmark for %d devices", report.DeviceCount)
}
