package config

import (
	"log/slog"
	"os"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Policy holds the provisioning policy source: either a YAML file or
// individual flags. File values win when both are given.
type Policy struct {
	FilePath        string
	WorkspaceDomain string
	NumberPrefixes  []string
	SearchLimit     int
}

// Flags returns CLI flags for Policy configuration
func (p *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "policy-file",
			Usage:       "Path to provisioning policy YAML",
			Category:    "Policy",
			Sources:     cli.EnvVars("SALES_HUB_POLICY_FILE"),
			Destination: &p.FilePath,
		},
		&cli.StringFlag{
			Name:        "workspace-domain",
			Usage:       "Reserved workspace email domain, e.g. example.com",
			Category:    "Policy",
			Sources:     cli.EnvVars("SALES_HUB_WORKSPACE_DOMAIN"),
			Destination: &p.WorkspaceDomain,
		},
		&cli.StringSliceFlag{
			Name:        "number-prefix",
			Usage:       "Reserved phone number prefix (repeatable)",
			Category:    "Policy",
			Sources:     cli.EnvVars("SALES_HUB_NUMBER_PREFIXES"),
			Destination: &p.NumberPrefixes,
		},
		&cli.IntFlag{
			Name:        "number-search-limit",
			Usage:       "Max available numbers per inventory search",
			Category:    "Policy",
			Value:       model.DefaultSearchLimit,
			Sources:     cli.EnvVars("SALES_HUB_NUMBER_SEARCH_LIMIT"),
			Destination: &p.SearchLimit,
		},
	}
}

// Configure builds and validates the provisioning policy
func (p *Policy) Configure() (*model.Policy, error) {
	policy := &model.Policy{
		WorkspaceDomain: p.WorkspaceDomain,
		NumberPrefixes:  p.NumberPrefixes,
		SearchLimit:     p.SearchLimit,
	}

	if p.FilePath != "" {
		raw, err := os.ReadFile(p.FilePath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read policy file", goerr.V("path", p.FilePath))
		}
		var fromFile model.Policy
		if err := yaml.Unmarshal(raw, &fromFile); err != nil {
			return nil, goerr.Wrap(err, "failed to parse policy file", goerr.V("path", p.FilePath))
		}
		if fromFile.WorkspaceDomain != "" {
			policy.WorkspaceDomain = fromFile.WorkspaceDomain
		}
		if len(fromFile.NumberPrefixes) > 0 {
			policy.NumberPrefixes = fromFile.NumberPrefixes
		}
		if fromFile.SearchLimit > 0 {
			policy.SearchLimit = fromFile.SearchLimit
		}
	}

	if err := policy.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid provisioning policy")
	}
	return policy, nil
}

// LogValue returns structured log value
func (p Policy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("file", p.FilePath),
		slog.String("workspace_domain", p.WorkspaceDomain),
		slog.Any("number_prefixes", p.NumberPrefixes),
		slog.Int("search_limit", p.SearchLimit),
	)
}
