package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/coldemails/sales-hub/pkg/domain/interfaces/mocks"
	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/coldemails/sales-hub/pkg/repository"
	"github.com/coldemails/sales-hub/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func testPolicy() *model.Policy {
	return &model.Policy{
		WorkspaceDomain: "tjr-trades.com",
		NumberPrefixes:  []string{"650"},
	}
}

// testProviders bundles happy-path mocks so each test only overrides
// the behavior it cares about
type testProviders struct {
	identity   *mocks.IdentityProviderMock
	scheduling *mocks.SchedulingProviderMock
	video      *mocks.VideoProviderMock
	telephony  *mocks.TelephonyProviderMock
	crm        *mocks.CRMProviderMock
}

func newTestProviders() *testProviders {
	return &testProviders{
		identity: &mocks.IdentityProviderMock{
			CreateAccountFunc: func(ctx context.Context, firstName, lastName, email string) (*model.IdentityAccount, error) {
				return &model.IdentityAccount{
					Email:     "jane-d@tjr-trades.com",
					FirstName: firstName,
					LastName:  lastName,
				}, nil
			},
			DeleteAccountFunc: func(ctx context.Context, email string) error {
				return nil
			},
		},
		scheduling: &mocks.SchedulingProviderMock{
			InviteUserFunc: func(ctx context.Context, email, firstName, lastName string) (*model.SchedulingInvitation, error) {
				return &model.SchedulingInvitation{Email: email}, nil
			},
			RemoveUserFunc: func(ctx context.Context, email string) error {
				return nil
			},
		},
		video: &mocks.VideoProviderMock{
			CreateUserFunc: func(ctx context.Context, firstName, lastName, email string) (*model.VideoAccount, error) {
				return &model.VideoAccount{UserID: "zoom-1", Email: email}, nil
			},
			DeleteUserFunc: func(ctx context.Context, email, mode string) error {
				return nil
			},
		},
		telephony: &mocks.TelephonyProviderMock{
			SearchAvailableFunc: func(ctx context.Context, prefix string, limit int) ([]model.AvailableNumber, error) {
				return []model.AvailableNumber{{Number: "+16505550100"}}, nil
			},
			PurchaseFunc: func(ctx context.Context, number, friendlyName string) (*model.PhoneNumber, error) {
				return &model.PhoneNumber{SID: "PN001", Number: number, FriendlyName: friendlyName}, nil
			},
			AttachToRoutingGroupFunc: func(ctx context.Context, sid types.NumberSID) error {
				return nil
			},
			ListAllFunc: func(ctx context.Context) ([]model.PhoneNumber, error) {
				return nil, nil
			},
			ReleaseFunc: func(ctx context.Context, sid types.NumberSID) error {
				return nil
			},
		},
		crm: &mocks.CRMProviderMock{
			ListUsersFunc: func(ctx context.Context) ([]model.CRMUser, error) {
				return []model.CRMUser{
					{
						ID:        "ghl-user-0001",
						FirstName: "Jane",
						LastName:  "Doe",
						Email:     "jane-d@tjr-trades.com",
					},
					{
						ID:    "ghl-admin-001",
						Name:  "Admin Account",
						Email: "admin@elsewhere.example",
					},
				}, nil
			},
			RegisterUserFunc: func(ctx context.Context, firstName, lastName, email string) (*model.CRMRegistration, error) {
				return &model.CRMRegistration{UserID: "ghl-user-0001", Email: email, Status: "created"}, nil
			},
			DeleteUserFunc: func(ctx context.Context, id types.CRMUserID) error {
				return nil
			},
			ListNumberLinksFunc: func(ctx context.Context) ([]model.NumberLink, error) {
				return nil, nil
			},
		},
	}
}

func (p *testProviders) usecase(opts ...usecase.ProvisioningOption) *usecase.Provisioning {
	return usecase.NewProvisioning(
		p.identity, p.scheduling, p.video, p.telephony, p.crm,
		repository.NewMemory(), testPolicy(), opts...)
}

func onboardRequest() *model.OnboardRequest {
	return &model.OnboardRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@gmail.com",
	}
}

func stepNames(report *model.OperationReport) []types.StepName {
	names := make([]types.StepName, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		names = append(names, o.StepName)
	}
	return names
}

func TestOnboard(t *testing.T) {
	ctx := context.Background()

	t.Run("all steps succeed in fixed order", func(t *testing.T) {
		p := newTestProviders()
		uc := p.usecase()

		report, err := uc.Onboard(ctx, onboardRequest())
		gt.NoError(t, err).Required()
		gt.V(t, report).NotNil()

		gt.Equal(t, []types.StepName{
			types.StepIdentity,
			types.StepScheduling,
			types.StepVideo,
			types.StepTelephony,
			types.StepCRM,
		}, stepNames(report))

		for _, o := range report.Outcomes {
			gt.Equal(t, types.StepSuccess, o.Status)
			gt.Equal(t, "", o.Error)
		}

		gt.Equal(t, model.Summary{Total: 5, Successful: 5, Failed: 0}, report.Summary)
		gt.Equal(t, "Jane Doe", report.TargetName)
		gt.Equal(t, types.OperationOnboard, report.Kind)

		// purchased number carries the closer's name as label
		gt.Equal(t, 1, len(p.telephony.PurchaseCalls()))
		gt.Equal(t, "Jane Doe", p.telephony.PurchaseCalls()[0].FriendlyName)
		gt.Equal(t, 1, len(p.telephony.AttachToRoutingGroupCalls()))

		outcome, err := report.Outcome(types.StepTelephony)
		gt.NoError(t, err).Required()
		assigned := gt.Cast[*model.AssignedNumber](t, outcome.Data)
		gt.Equal(t, "+16505550100", assigned.Number)
		gt.Equal(t, types.NumberSID("PN001"), assigned.SID)
	})

	t.Run("empty number search fails only the telephony step", func(t *testing.T) {
		p := newTestProviders()
		p.telephony.SearchAvailableFunc = func(ctx context.Context, prefix string, limit int) ([]model.AvailableNumber, error) {
			return nil, nil
		}
		uc := p.usecase()

		report, err := uc.Onboard(ctx, onboardRequest())
		gt.NoError(t, err).Required()

		outcome, err := report.Outcome(types.StepTelephony)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.StepFailed, outcome.Status)
		gt.S(t, outcome.Error).Contains("no available numbers")
		gt.V(t, outcome.Data).Nil()

		// the CRM step still ran
		gt.Equal(t, 1, len(p.crm.RegisterUserCalls()))
		crmOutcome, err := report.Outcome(types.StepCRM)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.StepSuccess, crmOutcome.Status)

		gt.Equal(t, model.Summary{Total: 5, Successful: 4, Failed: 1}, report.Summary)
		gt.Equal(t, 0, len(p.telephony.PurchaseCalls()))
	})

	t.Run("purchase failure fails the telephony step without attach", func(t *testing.T) {
		p := newTestProviders()
		p.telephony.PurchaseFunc = func(ctx context.Context, number, friendlyName string) (*model.PhoneNumber, error) {
			return nil, goerr.New("carrier rejected the order")
		}
		uc := p.usecase()

		report, err := uc.Onboard(ctx, onboardRequest())
		gt.NoError(t, err).Required()

		outcome, err := report.Outcome(types.StepTelephony)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.StepFailed, outcome.Status)
		gt.S(t, outcome.Error).Contains("carrier rejected")
		gt.Equal(t, 0, len(p.telephony.AttachToRoutingGroupCalls()))
		gt.Equal(t, model.Summary{Total: 5, Successful: 4, Failed: 1}, report.Summary)
	})

	t.Run("first step failure does not abort the rest", func(t *testing.T) {
		p := newTestProviders()
		p.identity.CreateAccountFunc = func(ctx context.Context, firstName, lastName, email string) (*model.IdentityAccount, error) {
			return nil, goerr.New("directory unavailable")
		}
		uc := p.usecase()

		report, err := uc.Onboard(ctx, onboardRequest())
		gt.NoError(t, err).Required()

		outcome, err := report.Outcome(types.StepIdentity)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.StepFailed, outcome.Status)

		gt.Equal(t, 1, len(p.scheduling.InviteUserCalls()))
		gt.Equal(t, 1, len(p.video.CreateUserCalls()))
		gt.Equal(t, 1, len(p.crm.RegisterUserCalls()))
		gt.Equal(t, model.Summary{Total: 5, Successful: 4, Failed: 1}, report.Summary)
	})

	t.Run("panicking provider is contained as a step failure", func(t *testing.T) {
		p := newTestProviders()
		p.video.CreateUserFunc = func(ctx context.Context, firstName, lastName, email string) (*model.VideoAccount, error) {
			panic("nil session")
		}
		uc := p.usecase()

		report, err := uc.Onboard(ctx, onboardRequest())
		gt.NoError(t, err).Required()

		outcome, err := report.Outcome(types.StepVideo)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.StepFailed, outcome.Status)
		gt.S(t, outcome.Error).Contains("panic")

		gt.Equal(t, 1, len(p.crm.RegisterUserCalls()))
		gt.Equal(t, model.Summary{Total: 5, Successful: 4, Failed: 1}, report.Summary)
	})

	t.Run("invalid request runs no steps", func(t *testing.T) {
		p := newTestProviders()
		uc := p.usecase()

		report, err := uc.Onboard(ctx, &model.OnboardRequest{FirstName: "Jane"})
		gt.Error(t, err)
		gt.V(t, report).Nil()
		gt.Equal(t, 0, len(p.identity.CreateAccountCalls()))
	})

	t.Run("record is persisted after the run", func(t *testing.T) {
		p := newTestProviders()
		repo := repository.NewMemory()
		uc := usecase.NewProvisioning(
			p.identity, p.scheduling, p.video, p.telephony, p.crm,
			repo, testPolicy())

		report, err := uc.Onboard(ctx, onboardRequest())
		gt.NoError(t, err).Required()

		record, err := repo.GetOperation(ctx, report.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, report.ID, record.ID)
		gt.Equal(t, types.OperationOnboard, record.Kind)
		gt.Equal(t, report.Summary, record.Summary)
		gt.Equal(t, 5, len(record.Outcomes))
	})

	t.Run("repository failure does not fail the run", func(t *testing.T) {
		p := newTestProviders()
		repo := &mocks.RepositoryMock{
			PutOperationFunc: func(ctx context.Context, record *model.OperationRecord) error {
				return goerr.New("datastore down")
			},
		}
		uc := usecase.NewProvisioning(
			p.identity, p.scheduling, p.video, p.telephony, p.crm,
			repo, testPolicy())

		report, err := uc.Onboard(ctx, onboardRequest())
		gt.NoError(t, err).Required()
		gt.Equal(t, 5, report.Summary.Successful)
	})

	t.Run("concurrent onboarding of the same email conflicts", func(t *testing.T) {
		p := newTestProviders()

		entered := make(chan struct{})
		unblock := make(chan struct{})
		p.identity.CreateAccountFunc = func(ctx context.Context, firstName, lastName, email string) (*model.IdentityAccount, error) {
			close(entered)
			<-unblock
			return &model.IdentityAccount{Email: "jane-d@tjr-trades.com"}, nil
		}
		uc := p.usecase()

		done := make(chan error, 1)
		go func() {
			_, err := uc.Onboard(ctx, onboardRequest())
			done <- err
		}()

		<-entered
		_, err := uc.Onboard(ctx, onboardRequest())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrOperationInProgress))

		close(unblock)
		gt.NoError(t, <-done)
	})
}

func TestOffboard(t *testing.T) {
	ctx := context.Background()

	const targetID = types.CRMUserID("ghl-user-0001")

	t.Run("all steps succeed for a valid closer", func(t *testing.T) {
		p := newTestProviders()
		uc := p.usecase()

		report, err := uc.Offboard(ctx, targetID)
		gt.NoError(t, err).Required()
		gt.V(t, report).NotNil()

		gt.Equal(t, types.OperationOffboard, report.Kind)
		gt.Equal(t, "Jane Doe", report.TargetName)
		gt.Equal(t, "jane-d@tjr-trades.com", report.TargetEmail)
		gt.Equal(t, model.Summary{Total: 5, Successful: 5, Failed: 0}, report.Summary)

		gt.Equal(t, 1, len(p.identity.DeleteAccountCalls()))
		gt.Equal(t, "jane-d@tjr-trades.com", p.identity.DeleteAccountCalls()[0].Email)
		gt.Equal(t, 1, len(p.video.DeleteUserCalls()))
		gt.Equal(t, "disassociate", p.video.DeleteUserCalls()[0].Mode)
		gt.Equal(t, 1, len(p.crm.DeleteUserCalls()))
		gt.Equal(t, targetID, p.crm.DeleteUserCalls()[0].ID)
	})

	t.Run("short identifier is rejected before any provider call", func(t *testing.T) {
		p := newTestProviders()
		uc := p.usecase()

		report, err := uc.Offboard(ctx, "short")
		gt.Error(t, err)
		gt.V(t, report).Nil()

		var rejection *model.Rejection
		gt.True(t, errors.As(err, &rejection))
		gt.Equal(t, types.RejectInvalidIdentifier, rejection.Code)

		gt.Equal(t, 0, len(p.crm.ListUsersCalls()))
		gt.Equal(t, 0, len(p.identity.DeleteAccountCalls()))
		gt.Equal(t, 0, len(p.telephony.ReleaseCalls()))
		gt.Equal(t, 0, len(p.crm.DeleteUserCalls()))
	})

	t.Run("unknown user is rejected as not found", func(t *testing.T) {
		p := newTestProviders()
		uc := p.usecase()

		report, err := uc.Offboard(ctx, "ghl-user-9999")
		gt.Error(t, err)
		gt.V(t, report).Nil()

		var rejection *model.Rejection
		gt.True(t, errors.As(err, &rejection))
		gt.Equal(t, types.RejectNotFound, rejection.Code)
		gt.Equal(t, 0, len(p.identity.DeleteAccountCalls()))
	})

	t.Run("user outside the workspace domain is refused", func(t *testing.T) {
		p := newTestProviders()
		uc := p.usecase()

		report, err := uc.Offboard(ctx, "ghl-admin-001")
		gt.Error(t, err)
		gt.V(t, report).Nil()

		var rejection *model.Rejection
		gt.True(t, errors.As(err, &rejection))
		gt.Equal(t, types.RejectNotAuthorized, rejection.Code)

		gt.Equal(t, 0, len(p.identity.DeleteAccountCalls()))
		gt.Equal(t, 0, len(p.video.DeleteUserCalls()))
		gt.Equal(t, 0, len(p.telephony.ReleaseCalls()))
		gt.Equal(t, 0, len(p.crm.DeleteUserCalls()))
	})

	t.Run("releases only reserved-prefix numbers linked to the user", func(t *testing.T) {
		p := newTestProviders()
		p.telephony.ListAllFunc = func(ctx context.Context) ([]model.PhoneNumber, error) {
			return []model.PhoneNumber{
				{SID: "PN100", Number: "+16505550100"},
				{SID: "PN200", Number: "+16505550200"}, // linked to someone else
				{SID: "PN300", Number: "+12125550300"}, // wrong prefix
			}, nil
		}
		p.crm.ListNumberLinksFunc = func(ctx context.Context) ([]model.NumberLink, error) {
			return []model.NumberLink{
				{Number: "+16505550100", LinkedUserID: targetID},
				{Number: "+16505550200", LinkedUserID: "ghl-user-0002"},
				{Number: "+12125550300", LinkedUserID: targetID},
			}, nil
		}
		uc := p.usecase()

		report, err := uc.Offboard(ctx, targetID)
		gt.NoError(t, err).Required()

		gt.Equal(t, 1, len(p.telephony.ReleaseCalls()))
		gt.Equal(t, types.NumberSID("PN100"), p.telephony.ReleaseCalls()[0].Sid)

		outcome, err := report.Outcome(types.StepTelephony)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.StepSuccess, outcome.Status)
		result := gt.Cast[*model.ReleaseResult](t, outcome.Data)
		gt.Equal(t, 1, result.ReleasedCount)
		gt.Equal(t, []string{"+16505550100"}, result.ReleasedNumbers)
	})

	t.Run("owning no numbers is a success, not a failure", func(t *testing.T) {
		p := newTestProviders()
		uc := p.usecase()

		report, err := uc.Offboard(ctx, targetID)
		gt.NoError(t, err).Required()

		outcome, err := report.Outcome(types.StepTelephony)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.StepSuccess, outcome.Status)
		gt.Equal(t, "No numbers to release", outcome.Note)
		gt.Equal(t, 0, len(p.telephony.ReleaseCalls()))
		gt.Equal(t, model.Summary{Total: 5, Successful: 5, Failed: 0}, report.Summary)
	})

	t.Run("release failure fails the step but CRM removal proceeds", func(t *testing.T) {
		p := newTestProviders()
		p.telephony.ListAllFunc = func(ctx context.Context) ([]model.PhoneNumber, error) {
			return []model.PhoneNumber{{SID: "PN100", Number: "+16505550100"}}, nil
		}
		p.crm.ListNumberLinksFunc = func(ctx context.Context) ([]model.NumberLink, error) {
			return []model.NumberLink{{Number: "+16505550100", LinkedUserID: targetID}}, nil
		}
		p.telephony.ReleaseFunc = func(ctx context.Context, sid types.NumberSID) error {
			return goerr.New("number is locked")
		}
		uc := p.usecase()

		report, err := uc.Offboard(ctx, targetID)
		gt.NoError(t, err).Required()

		outcome, err := report.Outcome(types.StepTelephony)
		gt.NoError(t, err).Required()
		gt.Equal(t, types.StepFailed, outcome.Status)
		gt.S(t, outcome.Error).Contains("number is locked")

		gt.Equal(t, 1, len(p.crm.DeleteUserCalls()))
		gt.Equal(t, model.Summary{Total: 5, Successful: 4, Failed: 1}, report.Summary)
	})

	t.Run("CRM lookup failure aborts without running steps", func(t *testing.T) {
		p := newTestProviders()
		p.crm.ListUsersFunc = func(ctx context.Context) ([]model.CRMUser, error) {
			return nil, goerr.New("CRM unreachable")
		}
		uc := p.usecase()

		report, err := uc.Offboard(ctx, targetID)
		gt.Error(t, err)
		gt.V(t, report).Nil()

		var rejection *model.Rejection
		gt.False(t, errors.As(err, &rejection))
		gt.Equal(t, 0, len(p.identity.DeleteAccountCalls()))
	})
}
