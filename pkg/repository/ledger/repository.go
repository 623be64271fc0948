// Package ledger defines the data-access contract for the transaction
// ledger. Implementations live under infra; the reporting core depends only
// on this interface.
package ledger

import (
	"context"

	"github.com/courtside/ledger/pkg/dto"
	"github.com/google/uuid"
)

// Repository is the query contract every financially-aggregated read goes
// through. List methods always scope to the given owner and to completed
// transactions, ordered ascending by created_at, so day-bucket accumulation
// is reproducible. Callers never supply the owner scope from request input.
type Repository interface {
	// Create appends a new transaction record. Used by the upstream
	// booking/payment workflow, never by reporting.
	Create(ctx context.Context, create dto.TransactionCreate) error

	// UpdateStatus moves a transaction to a new lifecycle status.
	UpdateStatus(ctx context.Context, id uuid.UUID, update dto.TransactionUpdate) error

	// ListCompletedByOwner returns every completed transaction owned by
	// ownerID, ascending by created_at.
	ListCompletedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*dto.TransactionRead, error)

	// ListByOwner returns completed transactions owned by ownerID matching
	// the optional filter, ascending by created_at.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter dto.TransactionFilter) ([]*dto.TransactionRead, error)
}
