package model

import (
	"time"

	"github.com/coldemails/sales-hub/pkg/domain/types"
)

// OperationRecord is the audit entry persisted for one completed run.
// The system itself is stateless between runs; the record exists only
// so operators can review what happened.
type OperationRecord struct {
	ID          types.OperationID   `json:"id" firestore:"id"`
	Kind        types.OperationKind `json:"kind" firestore:"kind"`
	TargetName  string              `json:"targetName" firestore:"target_name"`
	TargetEmail string              `json:"targetEmail" firestore:"target_email"`
	Summary     Summary             `json:"summary" firestore:"summary"`
	Outcomes    []RecordedOutcome   `json:"progress" firestore:"outcomes"`
	CreatedAt   time.Time           `json:"createdAt" firestore:"created_at"`
}

// RecordedOutcome is the persisted form of a StepOutcome. The opaque
// success payload is reduced to a note so the record stays flat.
type RecordedOutcome struct {
	StepName types.StepName   `json:"stepName" firestore:"step_name"`
	Status   types.StepStatus `json:"status" firestore:"status"`
	Error    string           `json:"error,omitempty" firestore:"error,omitempty"`
	Note     string           `json:"note,omitempty" firestore:"note,omitempty"`
}

// NewOperationRecord converts a finalized report into its audit entry
func NewOperationRecord(report *OperationReport) *OperationRecord {
	outcomes := make([]RecordedOutcome, 0, len(report.Outcomes))
	for _, o := range report.Outcomes {
		outcomes = append(outcomes, RecordedOutcome{
			StepName: o.StepName,
			Status:   o.Status,
			Error:    o.Error,
			Note:     o.Note,
		})
	}
	return &OperationRecord{
		ID:          report.ID,
		Kind:        report.Kind,
		TargetName:  report.TargetName,
		TargetEmail: report.TargetEmail,
		Summary:     report.Summary,
		Outcomes:    outcomes,
		CreatedAt:   report.FinishedAt,
	}
}
