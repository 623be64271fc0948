// Package ledger provides the GORM-backed implementation of the transaction
// ledger repository.
package ledger

import (
	"context"
	"fmt"

	"github.com/courtside/ledger/pkg/dto"
	repo "github.com/courtside/ledger/pkg/repository/ledger"

	"github.com/courtside/ledger/pkg/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a transaction ledger repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements ledger.Repository.
func (r *repository) Create(
	ctx context.Context,
	create dto.TransactionCreate,
) error {
	tx := mapCreateDTOToModel(create)
	return r.db.WithContext(ctx).Create(&tx).Error
}

// UpdateStatus implements ledger.Repository.
func (r *repository) UpdateStatus(
	ctx context.Context,
	id uuid.UUID,
	update dto.TransactionUpdate,
) error {
	updates := make(map[string]any)
	if update.Status != nil {
		updates["status"] = string(*update.Status)
	}
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(
		ctx,
	).Model(
		&Transaction{},
	).Where(
		"id = ?",
		id,
	).Updates(
		updates,
	).Error
}

// ListCompletedByOwner implements ledger.Repository.
func (r *repository) ListCompletedByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
) ([]*dto.TransactionRead, error) {
	return r.ListByOwner(ctx, ownerID, dto.TransactionFilter{})
}

// ListByOwner implements ledger.Repository. Owner and completed-status
// scoping are applied unconditionally; the filter only narrows further.
func (r *repository) ListByOwner(
	ctx context.Context,
	ownerID uuid.UUID,
	filter dto.TransactionFilter,
) ([]*dto.TransactionRead, error) {
	q := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Where("status = ?", string(ledger.StatusCompleted))
	if filter.Type != nil {
		q = q.Where("type = ?", string(*filter.Type))
	}
	if filter.Category != nil {
		q = q.Where("category = ?", *filter.Category)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at < ?", *filter.To)
	}

	var txs []Transaction
	if err := q.Order("created_at ASC").Find(&txs).Error; err != nil {
		return nil, err
	}
	result := make([]*dto.TransactionRead, 0, len(txs))
	for i := range txs {
		read, err := mapModelToReadDTO(&txs[i])
		if err != nil {
			return nil, err
		}
		result = append(result, read)
	}
	return result, nil
}

// --- Mappers ---

func mapCreateDTOToModel(create dto.TransactionCreate) Transaction {
	return Transaction{
		ID:       create.ID,
		OwnerID:  create.OwnerID,
		Amount:   create.Amount.String(),
		Type:     string(create.Type),
		Category: create.Category,
		Status:   string(create.Status),
	}
}

func mapModelToReadDTO(tx *Transaction) (*dto.TransactionRead, error) {
	amount, err := decimal.NewFromString(tx.Amount)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w: %q", tx.ID, ledger.ErrMalformedAmount, tx.Amount)
	}
	return &dto.TransactionRead{
		ID:        tx.ID,
		OwnerID:   tx.OwnerID,
		Amount:    amount,
		Type:      ledger.Type(tx.Type),
		Category:  tx.Category,
		Status:    ledger.Status(tx.Status),
		CreatedAt: tx.CreatedAt,
	}, nil
}
