package config

import (
	"log/slog"

	"github.com/coldemails/sales-hub/pkg/service/twilio"
	"github.com/urfave/cli/v3"
)

// Twilio holds telephony provider configuration
type Twilio struct {
	AccountSID          string
	AuthToken           string
	MessagingServiceSID string
}

// Flags returns CLI flags for Twilio configuration
func (t *Twilio) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "twilio-account-sid",
			Usage:       "Twilio account SID",
			Category:    "Twilio",
			Sources:     cli.EnvVars("SALES_HUB_TWILIO_ACCOUNT_SID"),
			Destination: &t.AccountSID,
		},
		&cli.StringFlag{
			Name:        "twilio-auth-token",
			Usage:       "Twilio auth token",
			Category:    "Twilio",
			Sources:     cli.EnvVars("SALES_HUB_TWILIO_AUTH_TOKEN"),
			Destination: &t.AuthToken,
		},
		&cli.StringFlag{
			Name:        "twilio-messaging-service-sid",
			Usage:       "Messaging service to attach purchased numbers to",
			Category:    "Twilio",
			Sources:     cli.EnvVars("SALES_HUB_TWILIO_MESSAGING_SERVICE_SID"),
			Destination: &t.MessagingServiceSID,
		},
	}
}

// Configure creates the telephony adapter
func (t *Twilio) Configure() *twilio.Service {
	return twilio.New(t.AccountSID, t.AuthToken, t.MessagingServiceSID)
}

// LogValue returns structured log value
func (t Twilio) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("account_sid", t.AccountSID),
		slog.Bool("has_auth_token", t.AuthToken != ""),
		slog.String("messaging_service_sid", t.MessagingServiceSID),
	)
}
