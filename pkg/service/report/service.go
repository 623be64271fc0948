// Package report derives aggregate financial views from the transaction
// ledger: day-bucketed cash flow, category-bucketed revenue and expenses,
// and scalar totals. Every read is owner-scoped and completed-only; scoping
// happens in the repository query, and the folds in this package never see
// unscoped data.
package report

import (
	"context"
	"log/slog"

	repo "github.com/courtside/ledger/pkg/repository/ledger"

	"github.com/courtside/ledger/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service computes report aggregates for a single authenticated owner.
type Service struct {
	ledger repo.Repository
	logger *slog.Logger
}

// New creates a report service backed by the given ledger repository.
func New(ledger repo.Repository, logger *slog.Logger) *Service {
	return &Service{ledger: ledger, logger: logger}
}

// CashFlow returns per-day sums of completed transactions owned by ownerID,
// optionally narrowed to a created_at range.
func (s *Service) CashFlow(
	ctx context.Context,
	ownerID uuid.UUID,
	filter dto.TransactionFilter,
) (flow map[string]decimal.Decimal, err error) {
	logger := s.logger.With("context", "CashFlow", "ownerID", ownerID)
	defer func() {
		if err != nil {
			logger.Error("CashFlow failed", "error", err)
		}
	}()
	txs, err := s.ledger.ListByOwner(ctx, ownerID, filter)
	if err != nil {
		return
	}
	flow = CashFlowByDay(txs)
	logger.Info("CashFlow computed", "transactions", len(txs), "days", len(flow))
	return
}

// RevenueByCategory returns per-category sums of completed income
// transactions owned by ownerID. Uncategorized income is excluded.
func (s *Service) RevenueByCategory(
	ctx context.Context,
	ownerID uuid.UUID,
) (revenue map[string]decimal.Decimal, err error) {
	logger := s.logger.With("context", "RevenueByCategory", "ownerID", ownerID)
	defer func() {
		if err != nil {
			logger.Error("RevenueByCategory failed", "error", err)
		}
	}()
	txs, err := s.ledger.ListCompletedByOwner(ctx, ownerID)
	if err != nil {
		return
	}
	revenue = RevenueByCategory(txs)
	logger.Info("RevenueByCategory computed", "transactions", len(txs), "categories", len(revenue))
	return
}

// ExpensesByCategory returns per-category sums of completed expense
// transactions owned by ownerID. Uncategorized expenses are bucketed under
// an explicit label.
func (s *Service) ExpensesByCategory(
	ctx context.Context,
	ownerID uuid.UUID,
) (expenses map[string]decimal.Decimal, err error) {
	logger := s.logger.With("context", "ExpensesByCategory", "ownerID", ownerID)
	defer func() {
		if err != nil {
			logger.Error("ExpensesByCategory failed", "error", err)
		}
	}()
	txs, err := s.ledger.ListCompletedByOwner(ctx, ownerID)
	if err != nil {
		return
	}
	expenses = ExpensesByCategory(txs)
	logger.Info("ExpensesByCategory computed", "transactions", len(txs), "categories", len(expenses))
	return
}

// TotalRevenue returns the sum over completed income transactions owned by
// ownerID.
func (s *Service) TotalRevenue(
	ctx context.Context,
	ownerID uuid.UUID,
) (total decimal.Decimal, err error) {
	logger := s.logger.With("context", "TotalRevenue", "ownerID", ownerID)
	defer func() {
		if err != nil {
			logger.Error("TotalRevenue failed", "error", err)
		}
	}()
	txs, err := s.ledger.ListCompletedByOwner(ctx, ownerID)
	if err != nil {
		return
	}
	total = TotalRevenue(txs)
	logger.Info("TotalRevenue computed", "transactions", len(txs))
	return
}

// TotalProfit returns selling revenue minus all expenses for ownerID. Both
// sides of the subtraction come from one fetch so a transaction completing
// mid-computation cannot skew the result.
func (s *Service) TotalProfit(
	ctx context.Context,
	ownerID uuid.UUID,
) (profit decimal.Decimal, err error) {
	logger := s.logger.With("context", "TotalProfit", "ownerID", ownerID)
	defer func() {
		if err != nil {
			logger.Error("TotalProfit failed", "error", err)
		}
	}()
	txs, err := s.ledger.ListCompletedByOwner(ctx, ownerID)
	if err != nil {
		return
	}
	profit = TotalProfit(txs)
	logger.Info("TotalProfit computed", "transactions", len(txs))
	return
}
