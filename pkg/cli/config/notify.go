package config

import (
	"log/slog"

	"github.com/coldemails/sales-hub/pkg/domain/interfaces"
	"github.com/coldemails/sales-hub/pkg/service/notify"
	"github.com/urfave/cli/v3"
)

// Notify holds Slack notification configuration
type Notify struct {
	SlackToken   string
	SlackChannel string
}

// Flags returns CLI flags for notification configuration
func (n *Notify) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-token",
			Usage:       "Slack bot token for operation notifications",
			Category:    "Notification",
			Sources:     cli.EnvVars("SALES_HUB_SLACK_TOKEN"),
			Destination: &n.SlackToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Channel to post operation summaries to",
			Category:    "Notification",
			Sources:     cli.EnvVars("SALES_HUB_SLACK_CHANNEL"),
			Destination: &n.SlackChannel,
		},
	}
}

// IsConfigured checks if notification is enabled
func (n *Notify) IsConfigured() bool {
	return n.SlackToken != "" && n.SlackChannel != ""
}

// Configure creates the notifier, or nil when not configured
func (n *Notify) Configure() interfaces.Notifier {
	if !n.IsConfigured() {
		return nil
	}
	return notify.NewSlack(n.SlackToken, n.SlackChannel)
}

// LogValue returns structured log value
func (n Notify) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_token", n.SlackToken != ""),
		slog.String("channel", n.SlackChannel),
	)
}
