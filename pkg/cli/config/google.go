package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/coldemails/sales-hub/pkg/service/googleworkspace"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// GoogleWorkspace holds identity provider configuration. The service
// account needs domain-wide delegation for the Admin SDK directory
// scope and impersonates the admin user.
type GoogleWorkspace struct {
	ServiceAccountEmail string
	PrivateKey          string
	PrivateKeyFile      string
	AdminEmail          string
	CustomerID          string
	Domain              string
}

// Flags returns CLI flags for Google Workspace configuration
func (g *GoogleWorkspace) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "google-service-account",
			Usage:       "Service account email with domain-wide delegation",
			Category:    "Google Workspace",
			Sources:     cli.EnvVars("SALES_HUB_GOOGLE_SERVICE_ACCOUNT"),
			Destination: &g.ServiceAccountEmail,
		},
		&cli.StringFlag{
			Name:        "google-private-key",
			Usage:       "Service account private key (PEM)",
			Category:    "Google Workspace",
			Sources:     cli.EnvVars("SALES_HUB_GOOGLE_PRIVATE_KEY"),
			Destination: &g.PrivateKey,
		},
		&cli.StringFlag{
			Name:        "google-private-key-file",
			Usage:       "Path to the service account private key (PEM)",
			Category:    "Google Workspace",
			Sources:     cli.EnvVars("SALES_HUB_GOOGLE_PRIVATE_KEY_FILE"),
			Destination: &g.PrivateKeyFile,
		},
		&cli.StringFlag{
			Name:        "google-admin-email",
			Usage:       "Directory admin to impersonate",
			Category:    "Google Workspace",
			Sources:     cli.EnvVars("SALES_HUB_GOOGLE_ADMIN_EMAIL"),
			Destination: &g.AdminEmail,
		},
		&cli.StringFlag{
			Name:        "google-customer-id",
			Usage:       "Workspace customer ID",
			Category:    "Google Workspace",
			Sources:     cli.EnvVars("SALES_HUB_GOOGLE_CUSTOMER_ID"),
			Destination: &g.CustomerID,
		},
	}
}

// Configure creates the identity adapter. workspaceDomain is the
// reserved email domain from the provisioning policy.
func (g *GoogleWorkspace) Configure(workspaceDomain string) (*googleworkspace.Service, error) {
	key := g.PrivateKey
	if key == "" && g.PrivateKeyFile != "" {
		raw, err := os.ReadFile(g.PrivateKeyFile)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read private key file",
				goerr.V("path", g.PrivateKeyFile))
		}
		key = string(raw)
	}
	// Environment variables flatten newlines in PEM blocks
	key = strings.ReplaceAll(key, `\n`, "\n")

	return googleworkspace.New(g.ServiceAccountEmail, key, g.AdminEmail, g.CustomerID, workspaceDomain), nil
}

// LogValue returns structured log value
func (g GoogleWorkspace) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("service_account", g.ServiceAccountEmail),
		slog.Bool("has_private_key", g.PrivateKey != "" || g.PrivateKeyFile != ""),
		slog.String("admin_email", g.AdminEmail),
		slog.String("customer_id", g.CustomerID),
	)
}
