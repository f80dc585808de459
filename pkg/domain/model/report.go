package model

import (
	"time"

	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Summary carries the per-run success and failure counts.
// Successful + Failed == Total holds for any completed run.
type Summary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
}

// OperationReport aggregates the outcomes of one onboarding or
// offboarding run. Outcomes keep execution order and always contain
// one entry per step, initialized pending before any step executes.
type OperationReport struct {
	ID          types.OperationID   `json:"id"`
	Kind        types.OperationKind `json:"kind"`
	TargetName  string              `json:"targetName"`
	TargetEmail string              `json:"targetEmail"`
	Outcomes    []*StepOutcome      `json:"progress"`
	Summary     Summary             `json:"summary"`
	StartedAt   time.Time           `json:"startedAt"`
	FinishedAt  time.Time           `json:"finishedAt"`
}

// NewOperationReport creates a report with all steps pending, in the
// fixed execution order for the given operation kind
func NewOperationReport(kind types.OperationKind, steps []types.StepName) *OperationReport {
	outcomes := make([]*StepOutcome, 0, len(steps))
	for _, name := range steps {
		outcomes = append(outcomes, NewPendingOutcome(name))
	}
	return &OperationReport{
		ID:        types.NewOperationID(),
		Kind:      kind,
		Outcomes:  outcomes,
		StartedAt: time.Now(),
	}
}

// Outcome returns the outcome slot for the named step
func (r *OperationReport) Outcome(name types.StepName) (*StepOutcome, error) {
	for _, o := range r.Outcomes {
		if o.StepName == name {
			return o, nil
		}
	}
	return nil, goerr.New("unknown step", goerr.V("step", name))
}

// Finalize computes the summary counts and stamps completion time
func (r *OperationReport) Finalize() {
	s := Summary{Total: len(r.Outcomes)}
	for _, o := range r.Outcomes {
		switch o.Status {
		case types.StepSuccess:
			s.Successful++
		case types.StepFailed:
			s.Failed++
		}
	}
	r.Summary = s
	r.FinishedAt = time.Now()
}
