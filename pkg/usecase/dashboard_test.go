package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/coldemails/sales-hub/pkg/repository"
	"github.com/coldemails/sales-hub/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func (p *testProviders) dashboard() *usecase.Dashboard {
	return usecase.NewDashboard(
		p.identity, p.scheduling, p.video, p.telephony, p.crm,
		repository.NewMemory(), testPolicy())
}

func TestListClosers(t *testing.T) {
	ctx := context.Background()

	t.Run("only workspace-domain users with their numbers", func(t *testing.T) {
		p := newTestProviders()
		p.telephony.ListAllFunc = func(ctx context.Context) ([]model.PhoneNumber, error) {
			return []model.PhoneNumber{{SID: "PN100", Number: "+16505550100"}}, nil
		}
		p.crm.ListNumberLinksFunc = func(ctx context.Context) ([]model.NumberLink, error) {
			return []model.NumberLink{{Number: "+16505550100", LinkedUserID: "ghl-user-0001"}}, nil
		}

		closers, err := p.dashboard().ListClosers(ctx)
		gt.NoError(t, err).Required()
		gt.A(t, closers).Length(1)

		gt.Equal(t, types.CRMUserID("ghl-user-0001"), closers[0].ID)
		gt.Equal(t, "Jane Doe", closers[0].Name)
		gt.Equal(t, "+16505550100", closers[0].AssignedPhoneNumber)
		gt.Equal(t, "PN100", closers[0].AssignedPhoneSID)
	})

	t.Run("telephony outage leaves phone columns empty", func(t *testing.T) {
		p := newTestProviders()
		p.telephony.ListAllFunc = func(ctx context.Context) ([]model.PhoneNumber, error) {
			return nil, goerr.New("twilio down")
		}

		closers, err := p.dashboard().ListClosers(ctx)
		gt.NoError(t, err).Required()
		gt.A(t, closers).Length(1)
		gt.Equal(t, "", closers[0].AssignedPhoneNumber)
	})

	t.Run("CRM outage fails the roster", func(t *testing.T) {
		p := newTestProviders()
		p.crm.ListUsersFunc = func(ctx context.Context) ([]model.CRMUser, error) {
			return nil, goerr.New("CRM unreachable")
		}

		_, err := p.dashboard().ListClosers(ctx)
		gt.Error(t, err)
	})
}

func TestListNumbers(t *testing.T) {
	ctx := context.Background()

	t.Run("joins inventory with CRM registration", func(t *testing.T) {
		p := newTestProviders()
		p.telephony.ListAllFunc = func(ctx context.Context) ([]model.PhoneNumber, error) {
			return []model.PhoneNumber{
				{SID: "PN100", Number: "+16505550100"},
				{SID: "PN200", Number: "+16505550200"},
			}, nil
		}
		p.crm.ListNumberLinksFunc = func(ctx context.Context) ([]model.NumberLink, error) {
			return []model.NumberLink{{Number: "+16505550100", LinkedUserID: "ghl-user-0001"}}, nil
		}

		numbers, err := p.dashboard().ListNumbers(ctx)
		gt.NoError(t, err).Required()
		gt.A(t, numbers).Length(2)

		gt.True(t, numbers[0].InCRM)
		gt.Equal(t, types.CRMUserID("ghl-user-0001"), numbers[0].LinkedUserID)
		gt.False(t, numbers[1].InCRM)
	})

	t.Run("CRM outage fails the inventory view", func(t *testing.T) {
		p := newTestProviders()
		p.crm.ListNumberLinksFunc = func(ctx context.Context) ([]model.NumberLink, error) {
			return nil, goerr.New("CRM unreachable")
		}

		_, err := p.dashboard().ListNumbers(ctx)
		gt.Error(t, err)
	})
}

func TestListCalls(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates the window to the scheduling provider", func(t *testing.T) {
		p := newTestProviders()
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 0, 7)

		p.scheduling.ListScheduledCallsFunc = func(ctx context.Context, gotFrom, gotTo time.Time) ([]model.ScheduledCall, error) {
			gt.Equal(t, from, gotFrom)
			gt.Equal(t, to, gotTo)
			return []model.ScheduledCall{{Name: "Intro call", Status: "active"}}, nil
		}

		calls, err := p.dashboard().ListCalls(ctx, from, to)
		gt.NoError(t, err).Required()
		gt.A(t, calls).Length(1)
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		p := newTestProviders()
		now := time.Now()

		_, err := p.dashboard().ListCalls(ctx, now, now.Add(-time.Hour))
		gt.Error(t, err)
		gt.Equal(t, 0, len(p.scheduling.ListScheduledCallsCalls()))
	})

	t.Run("today's window spans the local day", func(t *testing.T) {
		p := newTestProviders()
		p.scheduling.ListScheduledCallsFunc = func(ctx context.Context, from, to time.Time) ([]model.ScheduledCall, error) {
			gt.Equal(t, 0, from.Hour())
			gt.Equal(t, 24*time.Hour, to.Sub(from))
			return nil, nil
		}

		_, err := p.dashboard().ListCallsToday(ctx)
		gt.NoError(t, err)
	})
}

func TestIntegrationStatuses(t *testing.T) {
	ctx := context.Background()

	t.Run("reports each platform independently", func(t *testing.T) {
		p := newTestProviders()
		p.scheduling.LicenseInfoFunc = func(ctx context.Context) (*model.LicenseInfo, error) {
			info := model.NewLicenseInfo("calendly", 25, 10)
			return &info, nil
		}
		p.video.LicenseInfoFunc = func(ctx context.Context) (*model.LicenseInfo, error) {
			return nil, goerr.New("zoom API down")
		}

		statuses := p.dashboard().IntegrationStatuses(ctx)
		gt.A(t, statuses).Length(5)

		byPlatform := make(map[string]model.IntegrationStatus)
		for _, s := range statuses {
			byPlatform[s.Platform] = s
		}

		gt.Equal(t, "operational", byPlatform["calendly"].Status)
		gt.V(t, byPlatform["calendly"].License).NotNil()
		gt.Equal(t, 10, byPlatform["calendly"].License.Used)

		gt.Equal(t, "error", byPlatform["zoom"].Status)
		gt.S(t, byPlatform["zoom"].Error).Contains("zoom API down")

		gt.Equal(t, "operational", byPlatform["twilio"].Status)
		gt.Equal(t, "operational", byPlatform["crm"].Status)
		gt.S(t, byPlatform["crm"].Detail).Contains("users")
	})

	t.Run("unconfigured provider is flagged, not errored", func(t *testing.T) {
		p := newTestProviders()
		p.crm.ListUsersFunc = func(ctx context.Context) ([]model.CRMUser, error) {
			return nil, goerr.Wrap(model.ErrNotConfigured, "CRM credentials missing")
		}

		statuses := p.dashboard().IntegrationStatuses(ctx)
		byPlatform := make(map[string]model.IntegrationStatus)
		for _, s := range statuses {
			byPlatform[s.Platform] = s
		}
		gt.Equal(t, "unconfigured", byPlatform["crm"].Status)
	})
}

func TestOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("list and get round-trip through the repository", func(t *testing.T) {
		p := newTestProviders()
		repo := repository.NewMemory()
		dash := usecase.NewDashboard(
			p.identity, p.scheduling, p.video, p.telephony, p.crm,
			repo, testPolicy())

		record := &model.OperationRecord{
			ID:         types.NewOperationID(),
			Kind:       types.OperationOnboard,
			TargetName: "Jane Doe",
			Summary:    model.Summary{Total: 5, Successful: 5},
			CreatedAt:  time.Now(),
		}
		gt.NoError(t, repo.PutOperation(ctx, record)).Required()

		records, err := dash.ListOperations(ctx, 0)
		gt.NoError(t, err).Required()
		gt.A(t, records).Length(1)

		got, err := dash.GetOperation(ctx, record.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, record.ID, got.ID)
	})

	t.Run("unknown record is a not-found error", func(t *testing.T) {
		p := newTestProviders()
		dash := p.dashboard()

		_, err := dash.GetOperation(ctx, "missing-id")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrOperationNotFound))
	})
}
