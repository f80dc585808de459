package interfaces

//go:generate moq -out mocks/notifier_mock.go -pkg mocks . Notifier

import (
	"context"

	"github.com/coldemails/sales-hub/pkg/domain/model"
)

// Notifier announces a completed operation run to operators. A nil or
// failing notifier never affects the run itself.
type Notifier interface {
	NotifyOperation(ctx context.Context, record *model.OperationRecord) error
}
