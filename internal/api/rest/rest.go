package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes.
// middlewares are applied to the /api group only.
func SetupRoutes(router *gin.Engine, handler Handler, middlewares ...gin.HandlerFunc) {
	// Health check endpoint (no rate limit, no prefix)
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api", middlewares...)
	{
		api.POST("/tables", handler.CreateTable)
		api.GET("/tables", handler.ListTables)
		api.GET("/tables/:id", handler.GetTable)
		api.DELETE("/tables/:id", handler.DeleteTable)

		api.POST("/players", handler.CreatePlayer)
		api.GET("/players", handler.ListPlayers)
		api.GET("/players/:id", handler.GetPlayer)
		api.GET("/players/:id/stats", handler.GetPlayerStats)

		api.POST("/hands", handler.CreateHand)
		api.GET("/hands/:id", handler.GetHand)
		api.POST("/hands/:id/actions", handler.AddAction)
		api.PATCH("/hands/:id/complete", handler.CompleteHand)
		api.PATCH("/hands/:id/settle", handler.SettleHand)
	}
}
