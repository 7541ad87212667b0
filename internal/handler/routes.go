package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handlers groups every HTTP handler the API serves
type Handlers struct {
	Account     *AccountHandler
	Transaction *TransactionHandler
	Category    *CategoryHandler
	Recurring   *RecurringHandler
	SavingsGoal *SavingsGoalHandler
	Budget      *BudgetHandler
	Projection  *ProjectionHandler
	NetWorth    *NetWorthHandler
	Settings    *SettingsHandler
	Activity    *ActivityHandler
	Backup      *BackupHandler
	WebSocket   *WebSocketHandler
}

// RegisterRoutes sets up all API routes. Extra middleware, such as rate limiting, applies
// to the REST API but not to the websocket feed.
func RegisterRoutes(e *echo.Echo, h Handlers, apiMiddleware ...echo.MiddlewareFunc) {
	e.GET("/health", Health)

	// API version 1
	v1 := e.Group("/api/v1")
	v1.GET("/ws", h.WebSocket.HandleWS)

	api := v1.Group("", apiMiddleware...)

	accounts := api.Group("/accounts")
	accounts.POST("", h.Account.CreateAccount)
	accounts.GET("", h.Account.GetAccounts)
	accounts.GET("/:id", h.Account.GetAccount)
	accounts.PUT("/:id", h.Account.UpdateAccount)
	accounts.DELETE("/:id", h.Account.DeleteAccount)

	transactions := api.Group("/transactions")
	transactions.POST("", h.Transaction.CreateTransaction)
	transactions.GET("", h.Transaction.GetTransactions)
	transactions.POST("/transfers", h.Transaction.CreateTransfer)
	transactions.GET("/:id", h.Transaction.GetTransaction)
	transactions.PUT("/:id", h.Transaction.UpdateTransaction)
	transactions.DELETE("/:id", h.Transaction.DeleteTransaction)
	transactions.PATCH("/:id/toggle-completed", h.Transaction.ToggleCompleted)

	categories := api.Group("/categories")
	categories.POST("", h.Category.CreateCategory)
	categories.GET("", h.Category.GetCategories)
	categories.PUT("/:id", h.Category.UpdateCategory)
	categories.DELETE("/:id", h.Category.DeleteCategory)

	expenses := api.Group("/recurring-expenses")
	expenses.POST("", h.Recurring.CreateExpense)
	expenses.GET("", h.Recurring.GetExpenses)
	expenses.PUT("/:id", h.Recurring.UpdateExpense)
	expenses.DELETE("/:id", h.Recurring.DeleteExpense)

	sources := api.Group("/income-sources")
	sources.POST("", h.Recurring.CreateSource)
	sources.GET("", h.Recurring.GetSources)
	sources.PUT("/:id", h.Recurring.UpdateSource)
	sources.DELETE("/:id", h.Recurring.DeleteSource)

	goals := api.Group("/savings-goals")
	goals.POST("", h.SavingsGoal.CreateGoal)
	goals.GET("", h.SavingsGoal.GetGoals)
	goals.GET("/:id", h.SavingsGoal.GetGoal)
	goals.PUT("/:id", h.SavingsGoal.UpdateGoal)
	goals.DELETE("/:id", h.SavingsGoal.DeleteGoal)
	goals.POST("/:id/transfers", h.SavingsGoal.GenerateTransfer)

	api.GET("/budget/:year/:month", h.Budget.GetBreakdown)
	api.GET("/projections", h.Projection.GetProjection)

	netWorth := api.Group("/net-worth")
	netWorth.GET("", h.NetWorth.GetCurrent)
	netWorth.GET("/history", h.NetWorth.GetHistory)
	netWorth.POST("/snapshots", h.NetWorth.RecordSnapshot)

	api.GET("/settings", h.Settings.GetSettings)
	api.PUT("/settings", h.Settings.UpdateSettings)

	api.GET("/activity", h.Activity.GetActivity)

	backups := api.Group("/backups")
	backups.POST("", h.Backup.CreateBackup)
	backups.GET("", h.Backup.ListBackups)
	backups.GET("/:id/:document", h.Backup.GetDownloadURL)
}

// Health handles GET /health
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
