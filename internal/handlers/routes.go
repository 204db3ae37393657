package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the API, health and metrics endpoints on e.
// The dev endpoints are mounted only when dev is non-nil.
func RegisterRoutes(e *echo.Echo, transactions *TransactionHandler, pending *PendingHandler, health *HealthCheckHandler, metrics http.Handler, dev *DevHandler) {
	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics))

	api := e.Group("/api")
	api.GET("/transactions", transactions.ListTransactions)
	api.GET("/transactions/export", transactions.ExportTransactions)
	api.GET("/transactions/summary", transactions.GetSummary)
	api.GET("/transactions/:id", transactions.GetTransaction)

	api.GET("/pending", pending.ListPending)
	api.POST("/pending", pending.StagePending)
	api.DELETE("/pending", pending.ClearPending)
	api.POST("/pending/confirm", pending.ConfirmPending)
	api.PATCH("/pending/:id", pending.UpdatePending)
	api.DELETE("/pending/:id", pending.DeletePending)

	if dev != nil {
		api.POST("/dev/regenerate", dev.RegenerateDataset)
		api.DELETE("/dev/transactions", dev.ClearTransactions)
	}
}
