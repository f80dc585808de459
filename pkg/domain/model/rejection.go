package model

import (
	"github.com/coldemails/sales-hub/pkg/domain/types"
)

// Rejection is returned when the pre-flight safety gate refuses an
// offboarding request. It is an error so that callers can distinguish
// it from a completed report via errors.As, and no step runs once it
// is raised.
type Rejection struct {
	Code    types.RejectionCode `json:"reasonCode"`
	Message string              `json:"message"`
}

// Error implements the error interface
func (r *Rejection) Error() string {
	return r.Message
}

// NewRejection creates a Rejection with the given reason
func NewRejection(code types.RejectionCode, message string) *Rejection {
	return &Rejection{Code: code, Message: message}
}
