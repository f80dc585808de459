package model

import (
	"github.com/coldemails/sales-hub/pkg/domain/types"
)

// StepOutcome is the recorded result of one provisioning step.
// Invariants: a failed outcome carries an error message and no data;
// a successful outcome carries no error message.
type StepOutcome struct {
	StepName types.StepName   `json:"stepName"`
	Status   types.StepStatus `json:"status"`
	Data     any              `json:"data,omitempty"`
	Error    string           `json:"error,omitempty"`
	Note     string           `json:"note,omitempty"`
}

// NewPendingOutcome creates an outcome for a step that has not run yet
func NewPendingOutcome(name types.StepName) *StepOutcome {
	return &StepOutcome{
		StepName: name,
		Status:   types.StepPending,
	}
}

// Succeed marks the outcome successful with the step's payload
func (o *StepOutcome) Succeed(data any) {
	o.Status = types.StepSuccess
	o.Data = data
	o.Error = ""
}

// Fail marks the outcome failed with a normalized error message
func (o *StepOutcome) Fail(msg string) {
	o.Status = types.StepFailed
	o.Data = nil
	o.Error = msg
}
