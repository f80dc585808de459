package usecase

import (
	"context"
	"time"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// ListCalls returns the booked calls in the given window
func (u *Dashboard) ListCalls(ctx context.Context, from, to time.Time) ([]model.ScheduledCall, error) {
	if !to.After(from) {
		return nil, goerr.New("invalid time window",
			goerr.V("from", from), goerr.V("to", to))
	}
	calls, err := u.scheduling.ListScheduledCalls(ctx, from, to)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list scheduled calls")
	}
	return calls, nil
}

// ListCallsToday returns the calls booked for the current local day
func (u *Dashboard) ListCallsToday(ctx context.Context) ([]model.ScheduledCall, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return u.ListCalls(ctx, start, start.AddDate(0, 0, 1))
}
