package interfaces

//go:generate moq -out mocks/identity_mock.go -pkg mocks . IdentityProvider
//go:generate moq -out mocks/scheduling_mock.go -pkg mocks . SchedulingProvider
//go:generate moq -out mocks/video_mock.go -pkg mocks . VideoProvider
//go:generate moq -out mocks/telephony_mock.go -pkg mocks . TelephonyProvider
//go:generate moq -out mocks/crm_mock.go -pkg mocks . CRMProvider

import (
	"context"
	"time"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/domain/types"
)

// IdentityProvider manages workspace email accounts (Google Workspace
// Admin SDK in production). CreateAccount with an empty email generates
// a unique workspace address from the name.
type IdentityProvider interface {
	CreateAccount(ctx context.Context, firstName, lastName, email string) (*model.IdentityAccount, error)
	DeleteAccount(ctx context.Context, email string) error
}

// SchedulingProvider manages the scheduling organization (Calendly in
// production) and exposes booked calls for the dashboard.
type SchedulingProvider interface {
	InviteUser(ctx context.Context, email, firstName, lastName string) (*model.SchedulingInvitation, error)
	RemoveUser(ctx context.Context, email string) error
	ListMembers(ctx context.Context) ([]model.SchedulingMember, error)
	ListScheduledCalls(ctx context.Context, from, to time.Time) ([]model.ScheduledCall, error)
	LicenseInfo(ctx context.Context) (*model.LicenseInfo, error)
}

// VideoProvider manages video-conferencing accounts (Zoom in production)
type VideoProvider interface {
	CreateUser(ctx context.Context, firstName, lastName, email string) (*model.VideoAccount, error)
	DeleteUser(ctx context.Context, email, mode string) error
	LicenseInfo(ctx context.Context) (*model.LicenseInfo, error)
}

// TelephonyProvider manages the phone-number inventory (Twilio in
// production). Each adapter owns its own credentials and is safe to
// reuse across sequential operation runs.
type TelephonyProvider interface {
	SearchAvailable(ctx context.Context, prefix string, limit int) ([]model.AvailableNumber, error)
	Purchase(ctx context.Context, number, friendlyName string) (*model.PhoneNumber, error)
	AttachToRoutingGroup(ctx context.Context, sid types.NumberSID) error
	ListAll(ctx context.Context) ([]model.PhoneNumber, error)
	Release(ctx context.Context, sid types.NumberSID) error
}

// CRMProvider manages user records in the CRM and exposes the phone
// number ownership links used for offboarding cleanup.
type CRMProvider interface {
	ListUsers(ctx context.Context) ([]model.CRMUser, error)
	RegisterUser(ctx context.Context, firstName, lastName, email string) (*model.CRMRegistration, error)
	DeleteUser(ctx context.Context, id types.CRMUserID) error
	ListNumberLinks(ctx context.Context) ([]model.NumberLink, error)
}
