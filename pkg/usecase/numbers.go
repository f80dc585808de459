package usecase

import (
	"context"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ListNumbers returns the full telephony inventory with each number's
// CRM registration state. Unlike the roster, a CRM outage fails this
// view: an inventory page silently claiming numbers are unregistered
// would invite manual cleanup of numbers that are in fact linked.
func (u *Dashboard) ListNumbers(ctx context.Context) ([]model.NumberStatus, error) {
	numbers, err := u.telephony.ListAll(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list owned numbers")
	}
	links, err := u.crm.ListNumberLinks(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list CRM number links")
	}

	linked := make(map[string]types.CRMUserID, len(links))
	for _, l := range links {
		linked[l.Number] = l.LinkedUserID
	}

	statuses := make([]model.NumberStatus, 0, len(numbers))
	for _, n := range numbers {
		status := model.NumberStatus{PhoneNumber: n}
		if userID, ok := linked[n.Number]; ok {
			status.InCRM = true
			status.LinkedUserID = userID
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
