package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/coldemails/sales-hub/pkg/repository"
	"github.com/m-mizutani/gt"
)

func newRecord(n int, createdAt time.Time) *model.OperationRecord {
	return &model.OperationRecord{
		ID:         types.OperationID(fmt.Sprintf("op-%04d", n)),
		Kind:       types.OperationOnboard,
		TargetName: fmt.Sprintf("Closer %d", n),
		Summary:    model.Summary{Total: 5, Successful: 5},
		CreatedAt:  createdAt,
	}
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("put and get round-trip", func(t *testing.T) {
		repo := repository.NewMemory()
		record := newRecord(1, time.Now())

		gt.NoError(t, repo.PutOperation(ctx, record)).Required()

		got, err := repo.GetOperation(ctx, record.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, record.ID, got.ID)
		gt.Equal(t, record.TargetName, got.TargetName)

		// stored copy is isolated from the caller's struct
		got.TargetName = "mutated"
		again, err := repo.GetOperation(ctx, record.ID)
		gt.NoError(t, err).Required()
		gt.Equal(t, record.TargetName, again.TargetName)
	})

	t.Run("get of unknown ID", func(t *testing.T) {
		repo := repository.NewMemory()
		_, err := repo.GetOperation(ctx, "op-missing")
		gt.Error(t, err)
	})

	t.Run("list is newest first and honors the limit", func(t *testing.T) {
		repo := repository.NewMemory()
		base := time.Now()
		for i := 0; i < 5; i++ {
			gt.NoError(t, repo.PutOperation(ctx, newRecord(i, base.Add(time.Duration(i)*time.Minute)))).Required()
		}

		records, err := repo.ListOperations(ctx, 3)
		gt.NoError(t, err).Required()
		gt.A(t, records).Length(3)
		gt.Equal(t, types.OperationID("op-0004"), records[0].ID)
		gt.Equal(t, types.OperationID("op-0002"), records[2].ID)

		all, err := repo.ListOperations(ctx, 0)
		gt.NoError(t, err).Required()
		gt.A(t, all).Length(5)
	})

	t.Run("put validates the record", func(t *testing.T) {
		repo := repository.NewMemory()
		gt.Error(t, repo.PutOperation(ctx, nil))
		gt.Error(t, repo.PutOperation(ctx, &model.OperationRecord{}))
	})
}
