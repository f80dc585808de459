package usecase

import (
	"context"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/utils/apperr"
	"github.com/m-mizutani/goerr/v2"
)

// ListClosers returns every CRM user on the reserved workspace domain,
// joined with their assigned reserved-prefix phone number. The roster
// is served even when the telephony side is down; in that case the
// phone columns are simply empty.
func (u *Dashboard) ListClosers(ctx context.Context) ([]model.Closer, error) {
	users, err := u.crm.ListUsers(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list CRM users")
	}

	numbers, err := u.telephony.ListAll(ctx)
	if err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to list numbers for roster"))
		numbers = nil
	}
	links, err := u.crm.ListNumberLinks(ctx)
	if err != nil {
		apperr.Handle(ctx, goerr.Wrap(err, "failed to list number links for roster"))
		links = nil
	}

	closers := make([]model.Closer, 0, len(users))
	for _, user := range users {
		if !u.policy.IsStaffEmail(user.Email) {
			continue
		}

		closer := model.Closer{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Name:      user.DisplayName(),
			Email:     user.Email,
			Role:      user.Role,
		}

		if owned := model.MatchOwnedNumbers(numbers, links, user.ID, u.policy.NumberPrefixes); len(owned) > 0 {
			closer.AssignedPhoneNumber = owned[0].Number
			closer.AssignedPhoneSID = string(owned[0].SID)
		}

		closers = append(closers, closer)
	}
	return closers, nil
}
