package usecase

import (
	"context"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// defaultOperationLimit caps the audit listing when no limit is given
const defaultOperationLimit = 50

// ListOperations returns the most recent audit records, newest first
func (u *Dashboard) ListOperations(ctx context.Context, limit int) ([]*model.OperationRecord, error) {
	if limit <= 0 {
		limit = defaultOperationLimit
	}
	records, err := u.repo.ListOperations(ctx, limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list operation records")
	}
	return records, nil
}

// GetOperation returns one audit record by ID
func (u *Dashboard) GetOperation(ctx context.Context, id types.OperationID) (*model.OperationRecord, error) {
	record, err := u.repo.GetOperation(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get operation record", goerr.V("id", id))
	}
	return record, nil
}
