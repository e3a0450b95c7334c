package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	slackSvc "github.com/secmon-lab/benchmark510k/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack configuration
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token used to post the report",
			Category:    "Slack",
			Sources:     cli.EnvVars("BENCHMARK510K_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID that receives the report",
			Category:    "Slack",
			Sources:     cli.EnvVars("BENCHMARK510K_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
	}
}

// Validate rejects a half-configured Slack setup
func (s *Slack) Validate() error {
	if (s.OAuthToken == "") != (s.ChannelID == "") {
		return goerr.New("slack-oauth-token and slack-channel must be set together",
			goerr.V("has_oauth_token", s.OAuthToken != ""),
			goerr.V("has_channel", s.ChannelID != ""))
	}
	return nil
}

// ConfigureOptional creates a report notifier if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) *slackSvc.Notifier {
	if !s.IsConfigured() {
		logger.Debug("Slack not configured, report will not be posted")
		return nil
	}

	logger.Info("Configuring Slack notifier", slog.String("channel", s.ChannelID))
	return slackSvc.NewNotifier(slackSvc.New(s.OAuthToken), s.ChannelID)
}

// IsConfigured checks if Slack is properly configured
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
	)
}
