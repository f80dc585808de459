package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/domain/types"
)

// Repository persists the audit trail of operation runs
type Repository interface {
	// PutOperation saves a completed operation record
	PutOperation(ctx context.Context, record *model.OperationRecord) error

	// GetOperation retrieves one record by ID
	GetOperation(ctx context.Context, id types.OperationID) (*model.OperationRecord, error)

	// ListOperations returns the most recent records, newest first
	ListOperations(ctx context.Context, limit int) ([]*model.OperationRecord, error)

	// Close closes the repository connection
	Close() error
}
