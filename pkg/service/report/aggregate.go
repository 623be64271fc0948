package report

import (
	"github.com/courtside/ledger/pkg/domain/ledger"
	"github.com/courtside/ledger/pkg/dto"
	"github.com/shopspring/decimal"
)

// UnknownDateKey is the cash-flow bucket for transactions whose timestamp is
// absent. Such transactions are counted, not dropped, so bucket sums always
// conserve the total.
const UnknownDateKey = "unknown"

// CashFlowByDay folds transactions into per-day sums keyed by the UTC
// calendar date of created_at ("2006-01-02"). UTC truncation is the
// canonical contract: truncating a timestamp to a date is lossy across
// timezones, so the bucketing timezone is fixed rather than host-dependent.
func CashFlowByDay(txs []*dto.TransactionRead) map[string]decimal.Decimal {
	flow := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		key := UnknownDateKey
		if !tx.CreatedAt.IsZero() {
			key = tx.CreatedAt.UTC().Format("2006-01-02")
		}
		flow[key] = flow[key].Add(tx.Amount)
	}
	return flow
}

// RevenueByCategory folds income transactions into per-category sums.
// Income entries without a category are dropped from the result; this is
// the revenue-specific policy and deliberately differs from
// ExpensesByCategory.
func RevenueByCategory(txs []*dto.TransactionRead) map[string]decimal.Decimal {
	revenue := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != ledger.TypeIncome {
			continue
		}
		if tx.Category == nil || *tx.Category == "" {
			continue
		}
		revenue[*tx.Category] = revenue[*tx.Category].Add(tx.Amount)
	}
	return revenue
}

// ExpensesByCategory folds expense transactions into per-category sums.
// Expense entries without a category are bucketed under UncategorizedLabel,
// asymmetric with RevenueByCategory.
func ExpensesByCategory(txs []*dto.TransactionRead) map[string]decimal.Decimal {
	expenses := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != ledger.TypeExpense {
			continue
		}
		key := ledger.UncategorizedLabel
		if tx.Category != nil && *tx.Category != "" {
			key = *tx.Category
		}
		expenses[key] = expenses[key].Add(tx.Amount)
	}
	return expenses
}

// TotalRevenue sums the amounts of income transactions, regardless of
// category.
func TotalRevenue(txs []*dto.TransactionRead) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Type != ledger.TypeIncome {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}

// TotalProfit computes selling revenue minus all expenses over a single
// transaction slice, so both sides of the subtraction see the same snapshot.
// The business rule is category-specific: only "selling" transactions count
// toward the revenue side, while every expense counts against it.
func TotalProfit(txs []*dto.TransactionRead) decimal.Decimal {
	selling := decimal.Zero
	expenses := decimal.Zero
	for _, tx := range txs {
		if tx.Category != nil && *tx.Category == ledger.CategorySelling {
			selling = selling.Add(tx.Amount)
		}
		if tx.Type == ledger.TypeExpense {
			expenses = expenses.Add(tx.Amount)
		}
	}
	return selling.Sub(expenses)
}
