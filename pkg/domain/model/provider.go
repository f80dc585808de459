package model

import (
	"strings"

	"github.com/coldemails/sales-hub/pkg/domain/types"
)

// IdentityAccount is the created workspace account descriptor
type IdentityAccount struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Suspended bool   `json:"suspended,omitempty"`
}

// SchedulingInvitation is the result of inviting a user to the
// scheduling organization
type SchedulingInvitation struct {
	Email         string `json:"email"`
	InvitationURI string `json:"invitationUri,omitempty"`
}

// SchedulingMember is one member of the scheduling organization
type SchedulingMember struct {
	URI   string `json:"uri"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
}

// VideoAccount is the created video-conferencing account descriptor
type VideoAccount struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// CRMUser is one user record in the CRM
type CRMUser struct {
	ID        types.CRMUserID `json:"id"`
	FirstName string          `json:"firstName,omitempty"`
	LastName  string          `json:"lastName,omitempty"`
	Name      string          `json:"name,omitempty"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone,omitempty"`
	Role      string          `json:"role,omitempty"`
}

// DisplayName returns the best available human-readable name
func (u *CRMUser) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// CRMRegistration is the result of registering a user in the CRM
type CRMRegistration struct {
	UserID types.CRMUserID `json:"userId"`
	Email  string          `json:"email"`
	Status string          `json:"status"`
}
