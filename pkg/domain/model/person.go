package model

import (
	"strings"

	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// OnboardRequest describes the person to provision across all platforms.
// Email is the person's personal contact address; WorkspaceEmail, when
// empty, is generated from the name by the identity provider.
type OnboardRequest struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	WorkspaceEmail string `json:"workspaceEmail,omitempty"`
}

// Validate checks required fields for onboarding
func (r *OnboardRequest) Validate() error {
	if strings.TrimSpace(r.FirstName) == "" {
		return goerr.New("first name is required")
	}
	if strings.TrimSpace(r.LastName) == "" {
		return goerr.New("last name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return goerr.New("email is required")
	}
	if !strings.Contains(r.Email, "@") {
		return goerr.New("email is malformed", goerr.V("email", r.Email))
	}
	return nil
}

// FullName returns the display name used for audit output and number labels
func (r *OnboardRequest) FullName() string {
	return strings.TrimSpace(r.FirstName + " " + r.LastName)
}

// Closer is one roster entry: a CRM user on the reserved workspace domain,
// joined with their assigned reserved-prefix phone number if any.
type Closer struct {
	ID                  types.CRMUserID `json:"id"`
	FirstName           string          `json:"firstName"`
	LastName            string          `json:"lastName"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	Role                string          `json:"role,omitempty"`
	AssignedPhoneNumber string          `json:"assignedPhoneNumber,omitempty"`
	AssignedPhoneSID    string          `json:"assignedPhoneSid,omitempty"`
}
