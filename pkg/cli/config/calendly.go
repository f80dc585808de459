package config

import (
	"log/slog"

	"github.com/coldemails/sales-hub/pkg/service/calendly"
	"github.com/urfave/cli/v3"
)

// Calendly holds scheduling provider configuration
type Calendly struct {
	Token string
}

// Flags returns CLI flags for Calendly configuration
func (c *Calendly) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "calendly-token",
			Usage:       "Calendly personal access token",
			Category:    "Calendly",
			Sources:     cli.EnvVars("SALES_HUB_CALENDLY_TOKEN"),
			Destination: &c.Token,
		},
	}
}

// Configure creates the scheduling adapter
func (c *Calendly) Configure() *calendly.Service {
	return calendly.New(c.Token)
}

// LogValue returns structured log value
func (c Calendly) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_token", c.Token != ""),
	)
}
