package model_test

import (
	"testing"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

var allSteps = []types.StepName{
	types.StepIdentity,
	types.StepScheduling,
	types.StepVideo,
	types.StepTelephony,
	types.StepCRM,
}

func TestOperationReport(t *testing.T) {
	t.Run("new report starts with every step pending", func(t *testing.T) {
		report := model.NewOperationReport(types.OperationOnboard, allSteps)

		gt.A(t, report.Outcomes).Length(5)
		for i, o := range report.Outcomes {
			gt.Equal(t, allSteps[i], o.StepName)
			gt.Equal(t, types.StepPending, o.Status)
		}
		gt.True(t, report.ID != "")
		gt.False(t, report.StartedAt.IsZero())
	})

	t.Run("finalize counts outcomes", func(t *testing.T) {
		report := model.NewOperationReport(types.OperationOffboard, allSteps)

		o, err := report.Outcome(types.StepIdentity)
		gt.NoError(t, err).Required()
		o.Succeed(nil)
		o, err = report.Outcome(types.StepTelephony)
		gt.NoError(t, err).Required()
		o.Fail("carrier error")

		report.Finalize()

		gt.Equal(t, model.Summary{Total: 5, Successful: 1, Failed: 1}, report.Summary)
		gt.False(t, report.FinishedAt.IsZero())
	})

	t.Run("unknown step is an error", func(t *testing.T) {
		report := model.NewOperationReport(types.OperationOnboard, allSteps)
		_, err := report.Outcome("mystery")
		gt.Error(t, err)
	})

	t.Run("failing clears data, succeeding clears error", func(t *testing.T) {
		o := model.NewPendingOutcome(types.StepVideo)

		o.Succeed(map[string]string{"id": "x"})
		gt.Equal(t, types.StepSuccess, o.Status)
		gt.V(t, o.Data).NotNil()

		o.Fail("boom")
		gt.Equal(t, types.StepFailed, o.Status)
		gt.V(t, o.Data).Nil()
		gt.Equal(t, "boom", o.Error)

		o.Succeed(nil)
		gt.Equal(t, "", o.Error)
	})
}

func TestNewOperationRecord(t *testing.T) {
	report := model.NewOperationReport(types.OperationOnboard, allSteps)
	report.TargetName = "Jane Doe"
	report.TargetEmail = "jane-d@tjr-trades.com"

	o, err := report.Outcome(types.StepTelephony)
	gt.NoError(t, err).Required()
	o.Succeed(&model.AssignedNumber{Number: "+16505550100", SID: "PN1"})
	o.Note = "assigned"
	report.Finalize()

	record := model.NewOperationRecord(report)

	gt.Equal(t, report.ID, record.ID)
	gt.Equal(t, report.Summary, record.Summary)
	gt.Equal(t, report.FinishedAt, record.CreatedAt)
	gt.A(t, record.Outcomes).Length(5)

	// the opaque payload is flattened to status and note
	for _, ro := range record.Outcomes {
		if ro.StepName == types.StepTelephony {
			gt.Equal(t, types.StepSuccess, ro.Status)
			gt.Equal(t, "assigned", ro.Note)
		}
	}
}
