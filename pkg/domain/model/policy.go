package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Policy holds the provisioning rules of the organization: which email
// domain marks a staff account and which number prefixes belong to the
// sales pool. It can be loaded from a YAML file or assembled from flags.
type Policy struct {
	// WorkspaceDomain is the reserved email domain, e.g. "example.com".
	// Only CRM records on this domain may be offboarded.
	WorkspaceDomain string `yaml:"workspace_domain"`

	// NumberPrefixes is the reserved prefix pool for sales numbers
	NumberPrefixes []string `yaml:"number_prefixes"`

	// SearchLimit caps how many available numbers one search may return
	SearchLimit int `yaml:"search_limit"`
}

// DefaultSearchLimit is applied when the policy does not set one
const DefaultSearchLimit = 5

// Validate checks the policy is usable
func (p *Policy) Validate() error {
	if p.WorkspaceDomain == "" {
		return goerr.New("workspace domain is required")
	}
	if strings.Contains(p.WorkspaceDomain, "@") {
		return goerr.New("workspace domain must not contain @", goerr.V("domain", p.WorkspaceDomain))
	}
	if len(p.NumberPrefixes) == 0 {
		return goerr.New("at least one number prefix is required")
	}
	for _, prefix := range p.NumberPrefixes {
		if prefix == "" {
			return goerr.New("number prefix must not be empty")
		}
		for _, r := range prefix {
			if r < '0' || r > '9' {
				return goerr.New("number prefix must be digits", goerr.V("prefix", prefix))
			}
		}
	}
	if p.SearchLimit < 0 {
		return goerr.New("search limit must not be negative")
	}
	return nil
}

// IsStaffEmail reports whether the email belongs to the reserved
// workspace domain
func (p *Policy) IsStaffEmail(email string) bool {
	return strings.HasSuffix(strings.ToLower(email), "@"+strings.ToLower(p.WorkspaceDomain))
}

// EffectiveSearchLimit returns the configured search limit or the default
func (p *Policy) EffectiveSearchLimit() int {
	if p.SearchLimit > 0 {
		return p.SearchLimit
	}
	return DefaultSearchLimit
}
