package dto

import (
	"time"

	"github.com/courtside/ledger/pkg/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRead is a read-optimized DTO for reporting queries. Amount is an
// exact decimal parsed from the persisted textual representation; reporting
// arithmetic never touches binary floats.
type TransactionRead struct {
	ID        uuid.UUID       // Unique transaction identifier
	OwnerID   uuid.UUID       // Principal who owns the transaction
	Amount    decimal.Decimal // Monetary amount, fixed precision
	Type      ledger.Type     // income or expense
	Category  *string         // Optional free-form label (e.g. "selling")
	Status    ledger.Status   // Lifecycle state
	CreatedAt time.Time       // Bucketing and fold-ordering key
}

// TransactionCreate is the DTO the upstream booking/payment workflow uses to
// append a new ledger entry. The reporting core never creates transactions.
type TransactionCreate struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	Amount   decimal.Decimal
	Type     ledger.Type
	Category *string
	Status   ledger.Status
}

// TransactionUpdate carries the only mutation the ledger permits: moving a
// pending transaction to a terminal status.
type TransactionUpdate struct {
	Status *ledger.Status
}

// TransactionFilter narrows an owner-scoped, completed-only reporting query.
// Owner and status scoping are mandatory and applied by the repository; the
// filter only adds optional equality and range constraints on top.
type TransactionFilter struct {
	Type     *ledger.Type
	Category *string
	From     *time.Time // inclusive lower bound on created_at
	To       *time.Time // exclusive upper bound on created_at
}
