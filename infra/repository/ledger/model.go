package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is the persisted ledger entry. Amount is stored as a
// fixed-precision decimal column and scanned as text; parsing into an exact
// decimal happens in the mapper so a corrupted row surfaces as an error
// instead of a wrong total.
type Transaction struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount    string    `gorm:"type:decimal(20,4);not null"`
	Type      string    `gorm:"type:varchar(16);not null"`
	Category  *string   `gorm:"type:varchar(64)"`
	Status    string    `gorm:"type:varchar(32);not null;default:'pending';index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}
