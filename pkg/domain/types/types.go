package types

import (
	"github.com/google/uuid"
)

// StepName identifies one provisioning step within an operation run
type StepName string

const (
	StepIdentity   StepName = "googleWorkspace"
	StepScheduling StepName = "calendly"
	StepVideo      StepName = "zoom"
	StepTelephony  StepName = "twilio"
	StepCRM        StepName = "crm"
)

// String returns the string representation
func (n StepName) String() string {
	return string(n)
}

// StepStatus represents the state of a single provisioning step
type StepStatus string

const (
	StepPending StepStatus = "pending"
	StepSuccess StepStatus = "success"
	StepFailed  StepStatus = "failed"
)

// String returns the string representation
func (s StepStatus) String() string {
	return string(s)
}

// OperationKind distinguishes onboarding from offboarding runs
type OperationKind string

const (
	OperationOnboard  OperationKind = "onboard"
	OperationOffboard OperationKind = "offboard"
)

// String returns the string representation
func (k OperationKind) String() string {
	return string(k)
}

// OperationID identifies one recorded operation run
type OperationID string

// String returns the string representation
func (id OperationID) String() string {
	return string(id)
}

// NewOperationID creates a new OperationID
func NewOperationID() OperationID {
	return OperationID(uuid.New().String())
}

// CRMUserID identifies a user within the CRM
type CRMUserID string

// String returns the string representation
func (id CRMUserID) String() string {
	return string(id)
}

// RejectionCode classifies why an offboarding request was refused
// before any step executed
type RejectionCode string

const (
	RejectInvalidIdentifier RejectionCode = "invalid-identifier"
	RejectNotFound          RejectionCode = "not-found"
	RejectNotAuthorized     RejectionCode = "not-authorized"
)

// String returns the string representation
func (c RejectionCode) String() string {
	return string(c)
}

// NumberSID identifies a provisioned telephony number at the provider
type NumberSID string

// String returns the string representation
func (s NumberSID) String() string {
	return string(s)
}
