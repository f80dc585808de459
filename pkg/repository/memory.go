package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/coldemails/sales-hub/pkg/domain/interfaces"
	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements Repository with in-memory storage. Used for tests
// and for deployments that do not need a durable audit trail.
type Memory struct {
	mu         sync.RWMutex
	operations map[types.OperationID]*model.OperationRecord
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		operations: make(map[types.OperationID]*model.OperationRecord),
	}
}

// PutOperation saves an operation record
func (m *Memory) PutOperation(ctx context.Context, record *model.OperationRecord) error {
	if record == nil {
		return goerr.New("record is nil")
	}
	if record.ID == "" {
		return goerr.New("record ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	recordCopy := *record
	m.operations[record.ID] = &recordCopy
	return nil
}

// GetOperation retrieves an operation record by ID
func (m *Memory) GetOperation(ctx context.Context, id types.OperationID) (*model.OperationRecord, error) {
	if id == "" {
		return nil, goerr.New("operation ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	record, exists := m.operations[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrOperationNotFound, "no such operation", goerr.V("id", id))
	}

	// Return a copy to prevent external modification
	recordCopy := *record
	return &recordCopy, nil
}

// ListOperations returns the most recent records, newest first
func (m *Memory) ListOperations(ctx context.Context, limit int) ([]*model.OperationRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*model.OperationRecord, 0, len(m.operations))
	for _, record := range m.operations {
		recordCopy := *record
		records = append(records, &recordCopy)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Close is a no-op for the memory repository
func (m *Memory) Close() error {
	return nil
}
