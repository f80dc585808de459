package notify

import (
	"context"
	"fmt"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Slack posts operation summaries to a channel so the ops team sees
// every onboarding and offboarding run without opening the dashboard
type Slack struct {
	client  *slack.Client
	channel string
}

// NewSlack creates a Slack notifier posting to the given channel
func NewSlack(token, channel string) *Slack {
	return &Slack{
		client:  slack.New(token),
		channel: channel,
	}
}

// NotifyOperation posts the outcome of a completed run
func (s *Slack) NotifyOperation(ctx context.Context, record *model.OperationRecord) error {
	blocks := buildOperationBlocks(record)

	_, _, err := s.client.PostMessageContext(ctx, s.channel,
		slack.MsgOptionBlocks(blocks...),
		slack.MsgOptionText(headline(record), false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post operation notification",
			goerr.V("channel", s.channel), goerr.V("operationID", record.ID))
	}

	ctxlog.From(ctx).Debug("operation notification posted",
		"channel", s.channel, "operationID", record.ID)
	return nil
}

func headline(record *model.OperationRecord) string {
	verb := "Onboarded"
	if record.Kind == types.OperationOffboard {
		verb = "Offboarded"
	}
	target := record.TargetName
	if target == "" {
		target = record.TargetEmail
	}
	return fmt.Sprintf("%s %s (%d/%d steps succeeded)",
		verb, target, record.Summary.Successful, record.Summary.Total)
}

func statusEmoji(status types.StepStatus) string {
	switch status {
	case types.StepSuccess:
		return "✅"
	case types.StepFailed:
		return "❌"
	default:
		return "⏳"
	}
}

func buildOperationBlocks(record *model.OperationRecord) []slack.Block {
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, headline(record), false, false),
	)

	var fields []*slack.TextBlockObject
	for _, o := range record.Outcomes {
		line := fmt.Sprintf("%s *%s*", statusEmoji(o.Status), o.StepName)
		if o.Error != "" {
			line += "\n" + truncate(o.Error, 120)
		} else if o.Note != "" {
			line += "\n" + truncate(o.Note, 120)
		}
		fields = append(fields, slack.NewTextBlockObject(slack.MarkdownType, line, false, false))
	}

	blocks := []slack.Block{header}
	// Slack allows at most 10 fields per section
	for len(fields) > 0 {
		n := len(fields)
		if n > 10 {
			n = 10
		}
		blocks = append(blocks, slack.NewSectionBlock(nil, fields[:n], nil))
		fields = fields[n:]
	}

	footer := slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("Operation `%s` · %s", record.ID, record.CreatedAt.Format("2006-01-02 15:04:05 MST")),
			false, false),
	)
	return append(blocks, footer)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-3] + "..."
}
