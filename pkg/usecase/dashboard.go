package usecase

import (
	"github.com/coldemails/sales-hub/pkg/domain/interfaces"
	"github.com/coldemails/sales-hub/pkg/domain/model"
)

// Dashboard serves the read-only console views: the closer roster, the
// number inventory, booked calls and integration health
type Dashboard struct {
	identity   interfaces.IdentityProvider
	scheduling interfaces.SchedulingProvider
	video      interfaces.VideoProvider
	telephony  interfaces.TelephonyProvider
	crm        interfaces.CRMProvider
	repo       interfaces.Repository
	policy     *model.Policy
}

// NewDashboard creates the dashboard use case
func NewDashboard(
	identity interfaces.IdentityProvider,
	scheduling interfaces.SchedulingProvider,
	video interfaces.VideoProvider,
	telephony interfaces.TelephonyProvider,
	crm interfaces.CRMProvider,
	repo interfaces.Repository,
	policy *model.Policy,
) *Dashboard {
	return &Dashboard{
		identity:   identity,
		scheduling: scheduling,
		video:      video,
		telephony:  telephony,
		crm:        crm,
		repo:       repo,
		policy:     policy,
	}
}
