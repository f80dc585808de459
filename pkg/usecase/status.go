package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/coldemails/sales-hub/pkg/domain/model"
)

// configurable is implemented by adapters that can report whether
// their credentials are present without touching the network
type configurable interface {
	IsConfigured() bool
}

// IntegrationStatuses probes every platform and reports its health.
// Probes run in parallel; a broken platform shows up as "error" with
// its message, it never fails the whole status view.
func (u *Dashboard) IntegrationStatuses(ctx context.Context) []model.IntegrationStatus {
	type probe struct {
		platform string
		provider any
		check    func(ctx context.Context) (*model.LicenseInfo, string, error)
	}

	probes := []probe{
		{
			platform: "googleWorkspace",
			provider: u.identity,
			check: func(ctx context.Context) (*model.LicenseInfo, string, error) {
				// The directory API has no cheap read in the provider
				// surface; configuration presence is the health signal.
				return nil, "", nil
			},
		},
		{
			platform: "calendly",
			provider: u.scheduling,
			check: func(ctx context.Context) (*model.LicenseInfo, string, error) {
				license, err := u.scheduling.LicenseInfo(ctx)
				return license, "", err
			},
		},
		{
			platform: "zoom",
			provider: u.video,
			check: func(ctx context.Context) (*model.LicenseInfo, string, error) {
				license, err := u.video.LicenseInfo(ctx)
				return license, "", err
			},
		},
		{
			platform: "twilio",
			provider: u.telephony,
			check: func(ctx context.Context) (*model.LicenseInfo, string, error) {
				numbers, err := u.telephony.ListAll(ctx)
				if err != nil {
					return nil, "", err
				}
				return nil, fmt.Sprintf("%d numbers provisioned", len(numbers)), nil
			},
		},
		{
			platform: "crm",
			provider: u.crm,
			check: func(ctx context.Context) (*model.LicenseInfo, string, error) {
				users, err := u.crm.ListUsers(ctx)
				if err != nil {
					return nil, "", err
				}
				return nil, fmt.Sprintf("%d users", len(users)), nil
			},
		},
	}

	statuses := make([]model.IntegrationStatus, len(probes))
	var wg sync.WaitGroup
	for i, p := range probes {
		wg.Add(1)
		go func(i int, p probe) {
			defer wg.Done()
			statuses[i] = u.probeOne(ctx, p.platform, p.provider, p.check)
		}(i, p)
	}
	wg.Wait()

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Platform < statuses[j].Platform
	})
	return statuses
}

func (u *Dashboard) probeOne(ctx context.Context, platform string, provider any, check func(ctx context.Context) (*model.LicenseInfo, string, error)) model.IntegrationStatus {
	status := model.IntegrationStatus{
		Platform:  platform,
		CheckedAt: time.Now(),
	}

	if c, ok := provider.(configurable); ok && !c.IsConfigured() {
		status.Status = "unconfigured"
		return status
	}

	license, detail, err := check(ctx)
	switch {
	case err == nil:
		status.Status = "operational"
		status.License = license
		status.Detail = detail
	case errors.Is(err, model.ErrNotConfigured):
		status.Status = "unconfigured"
	default:
		status.Status = "error"
		status.Error = err.Error()
	}
	return status
}
