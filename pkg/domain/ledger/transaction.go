// Package ledger holds the domain model for the financial transaction ledger.
// Transactions are append-oriented: upstream booking and payment workflows
// create them, and once a transaction reaches a terminal status it is treated
// as immutable input to reporting.
package ledger

// Type classifies the direction of money movement.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Status is the lifecycle state of a transaction. Only completed
// transactions participate in financial aggregates.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// CategorySelling is the category convention used by the total-profit
// computation: profit is selling revenue minus all expenses.
const CategorySelling = "selling"

// UncategorizedLabel is the bucket expense-by-category uses for entries
// without a category. Revenue-by-category drops such entries instead; the
// asymmetry is intentional and must not be unified without a product
// decision.
const UncategorizedLabel = "Uncategorized"
