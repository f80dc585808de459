package config

import (
	"log/slog"

	"github.com/coldemails/sales-hub/pkg/service/zoom"
	"github.com/urfave/cli/v3"
)

// Zoom holds video provider configuration (Server-to-Server OAuth app)
type Zoom struct {
	AccountID    string
	ClientID     string
	ClientSecret string
}

// Flags returns CLI flags for Zoom configuration
func (z *Zoom) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "zoom-account-id",
			Usage:       "Zoom account ID",
			Category:    "Zoom",
			Sources:     cli.EnvVars("SALES_HUB_ZOOM_ACCOUNT_ID"),
			Destination: &z.AccountID,
		},
		&cli.StringFlag{
			Name:        "zoom-client-id",
			Usage:       "Zoom S2S OAuth client ID",
			Category:    "Zoom",
			Sources:     cli.EnvVars("SALES_HUB_ZOOM_CLIENT_ID"),
			Destination: &z.ClientID,
		},
		&cli.StringFlag{
			Name:        "zoom-client-secret",
			Usage:       "Zoom S2S OAuth client secret",
			Category:    "Zoom",
			Sources:     cli.EnvVars("SALES_HUB_ZOOM_CLIENT_SECRET"),
			Destination: &z.ClientSecret,
		},
	}
}

// Configure creates the video adapter
func (z *Zoom) Configure() *zoom.Service {
	return zoom.New(z.AccountID, z.ClientID, z.ClientSecret)
}

// LogValue returns structured log value
func (z Zoom) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("account_id", z.AccountID),
		slog.Bool("has_client_id", z.ClientID != ""),
		slog.Bool("has_client_secret", z.ClientSecret != ""),
	)
}
