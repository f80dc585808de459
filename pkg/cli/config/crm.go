package config

import (
	"log/slog"

	"github.com/coldemails/sales-hub/pkg/service/ghl"
	"github.com/urfave/cli/v3"
)

// CRM holds GoHighLevel configuration
type CRM struct {
	Token      string
	LocationID string
}

// Flags returns CLI flags for CRM configuration
func (c *CRM) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "crm-token",
			Usage:       "GoHighLevel API token",
			Category:    "CRM",
			Sources:     cli.EnvVars("SALES_HUB_CRM_TOKEN"),
			Destination: &c.Token,
		},
		&cli.StringFlag{
			Name:        "crm-location-id",
			Usage:       "GoHighLevel location (sub-account) ID",
			Category:    "CRM",
			Sources:     cli.EnvVars("SALES_HUB_CRM_LOCATION_ID"),
			Destination: &c.LocationID,
		},
	}
}

// Configure creates the CRM adapter
func (c *CRM) Configure() *ghl.Service {
	return ghl.New(c.Token, c.LocationID)
}

// LogValue returns structured log value
func (c CRM) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_token", c.Token != ""),
		slog.String("location_id", c.LocationID),
	)
}
