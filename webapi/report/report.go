// Package report exposes the financial reporting endpoints. Every route is
// behind the JWT gate, derives its owner scope from the verified token
// only, performs exactly one ledger query, and returns the aggregate as
// JSON. Reads are idempotent and side-effect-free.
package report

import (
	"github.com/courtside/ledger/pkg/config"
	"github.com/courtside/ledger/pkg/middleware"
	authsvc "github.com/courtside/ledger/pkg/service/auth"
	reportsvc "github.com/courtside/ledger/pkg/service/report"
	"github.com/courtside/ledger/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Routes registers the reporting endpoints:
//   - GET /reports/cashflow          : Daily cash flow, optional from/to range.
//   - GET /reports/profit/total     : Selling revenue minus all expenses.
//   - GET /reports/revenue/category : Revenue grouped by category.
//   - GET /reports/revenue/total    : Total revenue over income transactions.
//   - GET /reports/expenses/category: Expenses grouped by category.
func Routes(app *fiber.App, reportSvc *reportsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Get("/reports/cashflow", middleware.JwtProtected(&cfg.Jwt), CashFlow(reportSvc, authSvc))
	app.Get("/reports/profit/total", middleware.JwtProtected(&cfg.Jwt), TotalProfit(reportSvc, authSvc))
	app.Get("/reports/revenue/category", middleware.JwtProtected(&cfg.Jwt), RevenueByCategory(reportSvc, authSvc))
	app.Get("/reports/revenue/total", middleware.JwtProtected(&cfg.Jwt), TotalRevenue(reportSvc, authSvc))
	app.Get("/reports/expenses/category", middleware.JwtProtected(&cfg.Jwt), ExpensesByCategory(reportSvc, authSvc))
}

// currentOwner resolves the authenticated principal from the verified token
// the middleware stored in the request context. The owner scope is never
// taken from a request parameter.
func currentOwner(c *fiber.Ctx, authSvc *authsvc.Service) (uuid.UUID, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		common.ErrorResponseJSON(c, fiber.StatusUnauthorized, "Unauthorized", "missing user context") //nolint: errcheck
		return uuid.Nil, false
	}
	ownerID, err := authSvc.GetCurrentUserID(token)
	if err != nil {
		common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Unauthorized", err.Error()) //nolint: errcheck
		return uuid.Nil, false
	}
	return ownerID, true
}

// CashFlow returns a handler for the daily cash-flow report.
// @Summary Daily cash flow
// @Description Sums completed transactions per UTC calendar day for the authenticated owner. Accepts optional from/to date bounds.
// @Tags reports
// @Produce json
// @Param from query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param to query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Success 200 {object} CashFlowResponse
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /reports/cashflow [get]
// @Security Bearer
func CashFlow(reportSvc *reportsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, ok := currentOwner(c, authSvc)
		if !ok {
			return nil
		}
		input, err := common.BindAndValidateQuery[CashFlowQuery](c)
		if input == nil {
			return err // error response already written
		}
		filter, err := input.ToFilter()
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid date range", err.Error())
		}
		flow, err := reportSvc.CashFlow(c.UserContext(), ownerID, filter)
		if err != nil {
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to compute cash flow", err.Error())
		}
		return c.JSON(CashFlowResponse{CashFlow: toNumberMap(flow)})
	}
}

// TotalProfit returns a handler for the total-profit report. Both sides of
// the profit subtraction are computed from one ledger fetch.
// @Summary Total profit
// @Description Selling-category revenue minus all expenses for the authenticated owner.
// @Tags reports
// @Produce json
// @Success 200 {object} TotalProfitResponse
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /reports/profit/total [get]
// @Security Bearer
func TotalProfit(reportSvc *reportsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, ok := currentOwner(c, authSvc)
		if !ok {
			return nil
		}
		profit, err := reportSvc.TotalProfit(c.UserContext(), ownerID)
		if err != nil {
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to compute total profit", err.Error())
		}
		return c.JSON(TotalProfitResponse{TotalProfit: toNumber(profit)})
	}
}

// RevenueByCategory returns a handler for the revenue-by-category report.
// Uncategorized income is excluded from the result.
// @Summary Revenue by category
// @Tags reports
// @Produce json
// @Success 200 {object} RevenueByCategoryResponse
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /reports/revenue/category [get]
// @Security Bearer
func RevenueByCategory(reportSvc *reportsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, ok := currentOwner(c, authSvc)
		if !ok {
			return nil
		}
		revenue, err := reportSvc.RevenueByCategory(c.UserContext(), ownerID)
		if err != nil {
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to compute revenue by category", err.Error())
		}
		return c.JSON(RevenueByCategoryResponse{RevenueByCategory: toNumberMap(revenue)})
	}
}

// TotalRevenue returns a handler for the total-revenue report.
// @Summary Total revenue
// @Tags reports
// @Produce json
// @Success 200 {object} TotalRevenueResponse
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /reports/revenue/total [get]
// @Security Bearer
func TotalRevenue(reportSvc *reportsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, ok := currentOwner(c, authSvc)
		if !ok {
			return nil
		}
		total, err := reportSvc.TotalRevenue(c.UserContext(), ownerID)
		if err != nil {
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to compute total revenue", err.Error())
		}
		return c.JSON(TotalRevenueResponse{TotalRevenue: toNumber(total)})
	}
}

// ExpensesByCategory returns a handler for the expenses-by-category report.
// Uncategorized expenses are grouped under an explicit label.
// @Summary Expenses by category
// @Tags reports
// @Produce json
// @Success 200 {object} ExpensesByCategoryResponse
// @Failure 401 {object} common.ProblemDetails "Unauthorized"
// @Failure 500 {object} common.ProblemDetails "Internal server error"
// @Router /reports/expenses/category [get]
// @Security Bearer
func ExpensesByCategory(reportSvc *reportsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, ok := currentOwner(c, authSvc)
		if !ok {
			return nil
		}
		expenses, err := reportSvc.ExpensesByCategory(c.UserContext(), ownerID)
		if err != nil {
			return common.ErrorResponseJSON(c, common.ErrorToStatusCode(err), "Failed to compute expenses by category", err.Error())
		}
		return c.JSON(ExpensesByCategoryResponse{ExpensesByCategory: toNumberMap(expenses)})
	}
}
