package report

import (
	"encoding/json"
	"time"

	"github.com/courtside/ledger/pkg/dto"
	"github.com/shopspring/decimal"
)

//revive:disable

// CashFlowQuery holds the optional date range for the cash-flow report.
type CashFlowQuery struct {
	From string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// CashFlowResponse is the body of GET /reports/cashflow.
type CashFlowResponse struct {
	CashFlow map[string]json.Number `json:"cashFlow"`
}

// TotalProfitResponse is the body of GET /reports/profit/total.
type TotalProfitResponse struct {
	TotalProfit json.Number `json:"totalProfit"`
}

// RevenueByCategoryResponse is the body of GET /reports/revenue/category.
type RevenueByCategoryResponse struct {
	RevenueByCategory map[string]json.Number `json:"revenueByCategory"`
}

// TotalRevenueResponse is the body of GET /reports/revenue/total.
type TotalRevenueResponse struct {
	TotalRevenue json.Number `json:"totalRevenue"`
}

// ExpensesByCategoryResponse is the body of GET /reports/expenses/category.
type ExpensesByCategoryResponse struct {
	ExpensesByCategory map[string]json.Number `json:"expensesByCategory"`
}

//revive:enable

// ToFilter converts the validated query into a repository filter. The upper
// bound is exclusive and advanced by one day so `to` is inclusive of that
// calendar date, matching how users read a date range.
func (q CashFlowQuery) ToFilter() (dto.TransactionFilter, error) {
	var filter dto.TransactionFilter
	if q.From != "" {
		from, err := time.ParseInLocation("2006-01-02", q.From, time.UTC)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := time.ParseInLocation("2006-01-02", q.To, time.UTC)
		if err != nil {
			return filter, err
		}
		to = to.AddDate(0, 0, 1)
		filter.To = &to
	}
	return filter, nil
}

// toNumber renders a decimal as a raw JSON number, avoiding both the quoted
// string form and a lossy float round-trip.
func toNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func toNumberMap(m map[string]decimal.Decimal) map[string]json.Number {
	out := make(map[string]json.Number, len(m))
	for k, v := range m {
		out[k] = toNumber(v)
	}
	return out
}
