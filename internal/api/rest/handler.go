package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/poker-hand-logger/internal/api/shared/dto"
	"github.com/feral-file/poker-hand-logger/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// CreateTable creates a table
	// POST /api/tables
	CreateTable(c *gin.Context)
	// ListTables lists every table, newest first
	// GET /api/tables
	ListTables(c *gin.Context)
	// GetTable retrieves a table with its 10 most recent hands
	// GET /api/tables/:id
	GetTable(c *gin.Context)
	// DeleteTable deletes a table and its hands
	// DELETE /api/tables/:id
	DeleteTable(c *gin.Context)

	// CreatePlayer registers a player
	// POST /api/players
	CreatePlayer(c *gin.Context)
	// ListPlayers lists every player with their totals
	// GET /api/players
	ListPlayers(c *gin.Context)
	// GetPlayer retrieves a player with their 20 most recent hands
	// GET /api/players/:id
	GetPlayer(c *gin.Context)
	// GetPlayerStats retrieves the lifetime statistics of a player
	// GET /api/players/:id/stats
	GetPlayerStats(c *gin.Context)

	// CreateHand creates a hand with its seats
	// POST /api/hands
	CreateHand(c *gin.Context)
	// GetHand retrieves a hand with its seats and actions
	// GET /api/hands/:id
	GetHand(c *gin.Context)
	// AddAction appends a betting action to a hand
	// POST /api/hands/:id/actions
	AddAction(c *gin.Context)
	// CompleteHand completes a hand and computes its rake
	// PATCH /api/hands/:id/complete
	CompleteHand(c *gin.Context)
	// SettleHand records the outcome of a completed hand
	// PATCH /api/hands/:id/settle
	SettleHand(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

// validatable is a request body that can check itself
type validatable interface {
	Validate() error
}

// bindRequest decodes and validates a JSON body, responding on failure
func bindRequest(c *gin.Context, req validatable) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return false
	}
	if err := req.Validate(); err != nil {
		respondError(c, err, "Invalid request body")
		return false
	}
	return true
}

func (h *handler) CreateTable(c *gin.Context) {
	var req dto.CreateTableRequest
	if !bindRequest(c, &req) {
		return
	}

	table, err := h.executor.CreateTable(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create table")
		return
	}
	respondCreated(c, table)
}

func (h *handler) ListTables(c *gin.Context) {
	tables, err := h.executor.ListTables(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list tables")
		return
	}
	respondOK(c, tables)
}

func (h *handler) GetTable(c *gin.Context) {
	table, err := h.executor.GetTable(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get table")
		return
	}
	if table == nil {
		respondNotFound(c, "Table not found")
		return
	}
	respondOK(c, table)
}

func (h *handler) DeleteTable(c *gin.Context) {
	table, err := h.executor.DeleteTable(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to delete table")
		return
	}
	respondOK(c, table)
}

func (h *handler) CreatePlayer(c *gin.Context) {
	var req dto.CreatePlayerRequest
	if !bindRequest(c, &req) {
		return
	}

	player, err := h.executor.CreatePlayer(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create player")
		return
	}
	respondCreated(c, player)
}

func (h *handler) ListPlayers(c *gin.Context) {
	players, err := h.executor.ListPlayers(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list players")
		return
	}
	respondOK(c, players)
}

func (h *handler) GetPlayer(c *gin.Context) {
	player, err := h.executor.GetPlayer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get player")
		return
	}
	if player == nil {
		respondNotFound(c, "Player not found")
		return
	}
	respondOK(c, player)
}

func (h *handler) GetPlayerStats(c *gin.Context) {
	stats, err := h.executor.GetPlayerStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get player stats")
		return
	}
	if stats == nil {
		respondNotFound(c, "Player not found")
		return
	}
	respondOK(c, stats)
}

func (h *handler) CreateHand(c *gin.Context) {
	var req dto.CreateHandRequest
	if !bindRequest(c, &req) {
		return
	}

	hand, err := h.executor.CreateHand(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "Failed to create hand")
		return
	}
	respondCreated(c, hand)
}

func (h *handler) GetHand(c *gin.Context) {
	hand, err := h.executor.GetHand(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to get hand")
		return
	}
	if hand == nil {
		respondNotFound(c, "Hand not found")
		return
	}
	respondOK(c, hand)
}

func (h *handler) AddAction(c *gin.Context) {
	var req dto.AddActionRequest
	if !bindRequest(c, &req) {
		return
	}

	action, err := h.executor.AddAction(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Failed to add action")
		return
	}
	respondCreated(c, action)
}

func (h *handler) CompleteHand(c *gin.Context) {
	result, err := h.executor.CompleteHand(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to complete hand")
		return
	}
	respondOK(c, result)
}

func (h *handler) SettleHand(c *gin.Context) {
	var req dto.SettleHandRequest
	if !bindRequest(c, &req) {
		return
	}

	hand, err := h.executor.SettleHand(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "Failed to settle hand")
		return
	}
	respondOK(c, hand)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	health, err := h.executor.Health(c.Request.Context())
	if err != nil {
		respondError(c, err, "Health check failed")
		return
	}
	respondOK(c, health)
}
