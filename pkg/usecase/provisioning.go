package usecase

import (
	"context"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/coldemails/sales-hub/pkg/domain/interfaces"
	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/coldemails/sales-hub/pkg/utils/apperr"
	"github.com/coldemails/sales-hub/pkg/utils/async"
	"github.com/coldemails/sales-hub/pkg/utils/metrics"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// minCRMUserIDLength is the shortest identifier the offboarding gate
// accepts. Real CRM user IDs are long opaque strings; anything shorter
// is a typo or a truncated paste, and destructive steps must not run
// against it.
const minCRMUserIDLength = 10

// operationSteps is the fixed execution order shared by onboarding and
// offboarding. Offboarding intentionally reuses the onboarding order
// rather than reversing it, so both reports read the same way.
var operationSteps = []types.StepName{
	types.StepIdentity,
	types.StepScheduling,
	types.StepVideo,
	types.StepTelephony,
	types.StepCRM,
}

// Provisioning runs onboarding and offboarding across all platforms.
// Every step is contained: a failing provider marks its own outcome
// failed and the run continues to the next step.
type Provisioning struct {
	identity   interfaces.IdentityProvider
	scheduling interfaces.SchedulingProvider
	video      interfaces.VideoProvider
	telephony  interfaces.TelephonyProvider
	crm        interfaces.CRMProvider
	repo       interfaces.Repository
	policy     *model.Policy
	notifier   interfaces.Notifier
	metrics    *metrics.Metrics

	mu       sync.Mutex
	inflight map[string]struct{}
}

// ProvisioningOption is a functional option for Provisioning
type ProvisioningOption func(*Provisioning)

// WithNotifier sets the operator notification channel
func WithNotifier(n interfaces.Notifier) ProvisioningOption {
	return func(u *Provisioning) {
		u.notifier = n
	}
}

// WithMetrics enables operation metrics
func WithMetrics(m *metrics.Metrics) ProvisioningOption {
	return func(u *Provisioning) {
		u.metrics = m
	}
}

// NewProvisioning creates the provisioning use case
func NewProvisioning(
	identity interfaces.IdentityProvider,
	scheduling interfaces.SchedulingProvider,
	video interfaces.VideoProvider,
	telephony interfaces.TelephonyProvider,
	crm interfaces.CRMProvider,
	repo interfaces.Repository,
	policy *model.Policy,
	opts ...ProvisioningOption,
) *Provisioning {
	u := &Provisioning{
		identity:   identity,
		scheduling: scheduling,
		video:      video,
		telephony:  telephony,
		crm:        crm,
		repo:       repo,
		policy:     policy,
		inflight:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Onboard provisions a new closer on all five platforms in fixed
// order. It always returns a complete report when it runs at all;
// individual step failures are recorded in the report, not returned
// as errors.
func (u *Provisioning) Onboard(ctx context.Context, req *model.OnboardRequest) (*model.OperationReport, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := "onboard:" + strings.ToLower(req.Email)
	if !u.acquire(key) {
		return nil, goerr.Wrap(model.ErrOperationInProgress, "onboarding already running",
			goerr.V("email", req.Email))
	}
	defer u.release(key)

	report := model.NewOperationReport(types.OperationOnboard, operationSteps)
	report.TargetName = req.FullName()
	report.TargetEmail = req.Email

	ctx = ctxlog.With(ctx, ctxlog.From(ctx).With(
		"operationID", report.ID,
		"kind", report.Kind,
	))
	ctxlog.From(ctx).Info("starting onboarding",
		"name", report.TargetName, "email", report.TargetEmail)

	u.runStep(ctx, report, types.StepIdentity, func(ctx context.Context) (any, string, error) {
		account, err := u.identity.CreateAccount(ctx, req.FirstName, req.LastName, req.WorkspaceEmail)
		if err != nil {
			return nil, "", err
		}
		return account, "", nil
	})

	u.runStep(ctx, report, types.StepScheduling, func(ctx context.Context) (any, string, error) {
		invitation, err := u.scheduling.InviteUser(ctx, req.Email, req.FirstName, req.LastName)
		if err != nil {
			return nil, "", err
		}
		return invitation, "", nil
	})

	u.runStep(ctx, report, types.StepVideo, func(ctx context.Context) (any, string, error) {
		account, err := u.video.CreateUser(ctx, req.FirstName, req.LastName, req.Email)
		if err != nil {
			return nil, "", err
		}
		return account, "May require manual license assignment", nil
	})

	u.runStep(ctx, report, types.StepTelephony, func(ctx context.Context) (any, string, error) {
		return u.assignNumber(ctx, req.FullName())
	})

	u.runStep(ctx, report, types.StepCRM, func(ctx context.Context) (any, string, error) {
		registration, err := u.crm.RegisterUser(ctx, req.FirstName, req.LastName, req.Email)
		if err != nil {
			return nil, "", err
		}
		return registration, "", nil
	})

	u.finish(ctx, report)
	return report, nil
}

// Offboard removes a closer from all five platforms. Before any step
// runs, the safety gate verifies the identifier looks real, the user
// exists in the CRM, and the user is on the reserved workspace domain;
// a gate refusal is returned as a *model.Rejection error and no step
// executes.
func (u *Provisioning) Offboard(ctx context.Context, id types.CRMUserID) (*model.OperationReport, error) {
	if len(id) < minCRMUserIDLength {
		return nil, u.reject(model.NewRejection(types.RejectInvalidIdentifier,
			"user ID must be provided and valid"))
	}

	key := "offboard:" + string(id)
	if !u.acquire(key) {
		return nil, goerr.Wrap(model.ErrOperationInProgress, "offboarding already running",
			goerr.V("userID", id))
	}
	defer u.release(key)

	users, err := u.crm.ListUsers(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to verify user before offboarding",
			goerr.V("userID", id))
	}

	var target *model.CRMUser
	for i := range users {
		if users[i].ID == id {
			target = &users[i]
			break
		}
	}
	if target == nil {
		return nil, u.reject(model.NewRejection(types.RejectNotFound,
			"no CRM user found with ID: "+string(id)))
	}

	if !u.policy.IsStaffEmail(target.Email) {
		return nil, u.reject(model.NewRejection(types.RejectNotAuthorized,
			"user is not on the reserved workspace domain"))
	}

	report := model.NewOperationReport(types.OperationOffboard, operationSteps)
	report.TargetName = target.DisplayName()
	report.TargetEmail = target.Email

	ctx = ctxlog.With(ctx, ctxlog.From(ctx).With(
		"operationID", report.ID,
		"kind", report.Kind,
	))
	ctxlog.From(ctx).Info("starting offboarding",
		"name", report.TargetName, "email", report.TargetEmail, "userID", id)

	email := target.Email

	u.runStep(ctx, report, types.StepIdentity, func(ctx context.Context) (any, string, error) {
		return nil, "", u.identity.DeleteAccount(ctx, email)
	})

	u.runStep(ctx, report, types.StepScheduling, func(ctx context.Context) (any, string, error) {
		return nil, "", u.scheduling.RemoveUser(ctx, email)
	})

	u.runStep(ctx, report, types.StepVideo, func(ctx context.Context) (any, string, error) {
		return nil, "", u.video.DeleteUser(ctx, email, "disassociate")
	})

	u.runStep(ctx, report, types.StepTelephony, func(ctx context.Context) (any, string, error) {
		return u.releaseNumbers(ctx, id)
	})

	u.runStep(ctx, report, types.StepCRM, func(ctx context.Context) (any, string, error) {
		return nil, "", u.crm.DeleteUser(ctx, id)
	})

	u.finish(ctx, report)
	return report, nil
}

// assignNumber is the telephony onboarding sub-sequence: search the
// reserved prefix pool, purchase the first hit, attach it to the
// messaging route. Any sub-step error fails the whole telephony step.
func (u *Provisioning) assignNumber(ctx context.Context, friendlyName string) (any, string, error) {
	prefix := u.policy.NumberPrefixes[0]
	available, err := u.telephony.SearchAvailable(ctx, prefix, u.policy.EffectiveSearchLimit())
	if err != nil {
		return nil, "", goerr.Wrap(err, "number search failed", goerr.V("prefix", prefix))
	}
	if len(available) == 0 {
		return nil, "", goerr.Wrap(model.ErrNoAvailableNumbers, "number search returned no results",
			goerr.V("prefix", prefix))
	}

	purchased, err := u.telephony.Purchase(ctx, available[0].Number, friendlyName)
	if err != nil {
		return nil, "", goerr.Wrap(err, "number purchase failed",
			goerr.V("number", available[0].Number))
	}

	if err := u.telephony.AttachToRoutingGroup(ctx, purchased.SID); err != nil {
		return nil, "", goerr.Wrap(err, "failed to attach number to messaging route",
			goerr.V("sid", purchased.SID))
	}

	return &model.AssignedNumber{
		Number:       purchased.Number,
		SID:          purchased.SID,
		FriendlyName: purchased.FriendlyName,
	}, "", nil
}

// releaseNumbers is the telephony offboarding sub-sequence: release
// exactly the numbers linked to this CRM user on a reserved prefix.
// Owning no such numbers is a success, not a failure, so repeated
// offboarding stays idempotent.
func (u *Provisioning) releaseNumbers(ctx context.Context, id types.CRMUserID) (any, string, error) {
	numbers, err := u.telephony.ListAll(ctx)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to list owned numbers")
	}
	links, err := u.crm.ListNumberLinks(ctx)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to list CRM number links")
	}

	owned := model.MatchOwnedNumbers(numbers, links, id, u.policy.NumberPrefixes)
	if len(owned) == 0 {
		return nil, "No numbers to release", nil
	}

	result := &model.ReleaseResult{}
	for _, n := range owned {
		if err := u.telephony.Release(ctx, n.SID); err != nil {
			return nil, "", goerr.Wrap(err, "failed to release number",
				goerr.V("number", n.Number), goerr.V("sid", n.SID),
				goerr.V("released", result.ReleasedCount))
		}
		result.ReleasedCount++
		result.ReleasedNumbers = append(result.ReleasedNumbers, n.Number)
		ctxlog.From(ctx).Info("number released", "number", n.Number, "sid", n.SID)
	}
	return result, "", nil
}

// stepFunc executes one provisioning step and returns its success
// payload, an optional note, or an error
type stepFunc func(ctx context.Context) (any, string, error)

// runStep executes one step with failure containment: errors and
// panics are recorded in the step's outcome and never propagate
func (u *Provisioning) runStep(ctx context.Context, report *model.OperationReport, name types.StepName, fn stepFunc) {
	outcome, err := report.Outcome(name)
	if err != nil {
		apperr.Handle(ctx, err)
		return
	}

	data, note, err := func() (data any, note string, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = goerr.New("panic in provisioning step",
					goerr.V("step", name),
					goerr.V("recover", r),
					goerr.V("stack", string(debug.Stack())),
				)
			}
		}()
		return fn(ctx)
	}()

	if err != nil {
		outcome.Fail(err.Error())
		if u.metrics != nil {
			u.metrics.StepFailuresTotal.WithLabelValues(name.String()).Inc()
		}
		ctxlog.From(ctx).Error("step failed", "step", name, "error", err)
		return
	}

	outcome.Succeed(data)
	outcome.Note = note
	ctxlog.From(ctx).Info("step completed", "step", name)
}

// finish seals the report, records metrics, persists the audit entry
// and notifies operators. Persistence and notification failures are
// logged but never surface to the caller; the report is the source of
// truth for this run.
func (u *Provisioning) finish(ctx context.Context, report *model.OperationReport) {
	report.Finalize()

	if u.metrics != nil {
		u.metrics.OperationsTotal.WithLabelValues(report.Kind.String(), "completed").Inc()
		u.metrics.OperationDuration.WithLabelValues(report.Kind.String()).
			Observe(report.FinishedAt.Sub(report.StartedAt).Seconds())
	}

	ctxlog.From(ctx).Info("operation complete",
		"name", report.TargetName,
		"successful", report.Summary.Successful,
		"failed", report.Summary.Failed,
	)

	record := model.NewOperationRecord(report)
	if u.repo != nil {
		if err := u.repo.PutOperation(ctx, record); err != nil {
			apperr.Handle(ctx, goerr.Wrap(err, "failed to persist operation record",
				goerr.V("operationID", report.ID)))
		}
	}
	if u.notifier != nil {
		async.Dispatch(ctx, func(ctx context.Context) error {
			return u.notifier.NotifyOperation(ctx, record)
		})
	}
}

// reject counts a safety-gate refusal and returns it as the error
func (u *Provisioning) reject(r *model.Rejection) error {
	if u.metrics != nil {
		u.metrics.OperationsTotal.WithLabelValues(types.OperationOffboard.String(), "rejected").Inc()
	}
	return r
}

func (u *Provisioning) acquire(key string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, ok := u.inflight[key]; ok {
		return false
	}
	u.inflight[key] = struct{}{}
	return true
}

func (u *Provisioning) release(key string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.inflight, key)
}
