package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/coldemails/sales-hub/pkg/domain/interfaces"
	"github.com/coldemails/sales-hub/pkg/domain/model"
	"github.com/coldemails/sales-hub/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	operationsCollection = "operations"

	fieldCreatedAt = "created_at"
)

// Firestore implements Repository with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on bad project IDs or missing permissions
	_, err = client.Collection(operationsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("code", status.Code(err).String()),
			)
		}
		ctxlog.From(ctx).Warn("Firestore connectivity check returned an error, continuing",
			"error", err,
		)
	}

	return &Firestore{client: client}, nil
}

// PutOperation saves an operation record
func (f *Firestore) PutOperation(ctx context.Context, record *model.OperationRecord) error {
	if record == nil {
		return goerr.New("record is nil")
	}
	if record.ID == "" {
		return goerr.New("record ID is empty")
	}

	_, err := f.client.Collection(operationsCollection).Doc(record.ID.String()).Set(ctx, record)
	if err != nil {
		return goerr.Wrap(err, "failed to save operation record", goerr.V("id", record.ID))
	}
	return nil
}

// GetOperation retrieves an operation record by ID
func (f *Firestore) GetOperation(ctx context.Context, id types.OperationID) (*model.OperationRecord, error) {
	if id == "" {
		return nil, goerr.New("operation ID is empty")
	}

	doc, err := f.client.Collection(operationsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrOperationNotFound, "no such operation", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get operation record", goerr.V("id", id))
	}

	var record model.OperationRecord
	if err := doc.DataTo(&record); err != nil {
		return nil, goerr.Wrap(err, "failed to decode operation record", goerr.V("id", id))
	}
	return &record, nil
}

// ListOperations returns the most recent records, newest first
func (f *Firestore) ListOperations(ctx context.Context, limit int) ([]*model.OperationRecord, error) {
	query := f.client.Collection(operationsCollection).
		OrderBy(fieldCreatedAt, firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var records []*model.OperationRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate operation records")
		}

		var record model.OperationRecord
		if err := doc.DataTo(&record); err != nil {
			return nil, goerr.Wrap(err, "failed to decode operation record", goerr.V("doc", doc.Ref.ID))
		}
		records = append(records, &record)
	}
	return records, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
