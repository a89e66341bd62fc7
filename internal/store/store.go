package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/poker-hand-logger/internal/domain"
	"github.com/feral-file/poker-hand-logger/internal/store/schema"
)

// CreateTableInput represents the data needed to create a table
type CreateTableInput struct {
	Name       string
	GameType   domain.GameType
	SmallBlind decimal.Decimal
	BigBlind   decimal.Decimal
	MaxPlayers int
}

// CreatePlayerInput represents the data needed to register a player
type CreatePlayerInput struct {
	Name  string
	Email *string
}

// SeatInput represents one seat assignment of a new hand
type SeatInput struct {
	PlayerID      string
	Position      domain.Position
	StartingChips decimal.Decimal
	Cards         []string
}

// CreateHandInput represents the data needed to create a hand with its seats
type CreateHandInput struct {
	TableID    string
	HandNumber int64
	Seats      []SeatInput
}

// AppendActionInput represents a betting action to append to a hand
type AppendActionInput struct {
	HandID     string
	PlayerID   string
	Street     domain.Street
	ActionType domain.ActionType
	Amount     decimal.Decimal
	Timestamp  time.Time
}

// AppendActionResult holds the stored action and the hand with its updated pot
type AppendActionResult struct {
	Action *schema.Action
	Hand   *schema.Hand
}

// CompleteHandResult holds the completed hand and its rake breakdown
type CompleteHandResult struct {
	Hand *schema.Hand
	Rake domain.RakeResult
}

// SeatSettlement represents the outcome of one seat
type SeatSettlement struct {
	PlayerID    string
	EndingChips decimal.Decimal
	Won         decimal.Decimal
	ShowedDown  bool
}

// SettleHandInput represents the settlement of a completed hand
type SettleHandInput struct {
	HandID  string
	Results []SeatSettlement
}

// PlayerWithTotals is a player with aggregates derived from their seats
type PlayerWithTotals struct {
	schema.Player `gorm:"embedded"`
	// TotalHands is the number of hands the player was seated in
	TotalHands int64 `gorm:"column:total_hands"`
	// TotalWinnings is the sum of ending minus starting chips over every seat
	TotalWinnings decimal.Decimal `gorm:"column:total_winnings"`
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Ping checks that the database is reachable
	Ping(ctx context.Context) error

	// CreateTable creates a table, failing with domain.ErrTableNameTaken on a duplicate name
	CreateTable(ctx context.Context, input CreateTableInput) (*schema.Table, error)
	// ListTables retrieves every table, newest first
	ListTables(ctx context.Context) ([]schema.Table, error)
	// GetTableByID retrieves a table by ID, returning nil when absent
	GetTableByID(ctx context.Context, id string) (*schema.Table, error)
	// GetRecentHandsByTableID retrieves the most recent hands of a table, newest first
	GetRecentHandsByTableID(ctx context.Context, tableID string, limit int) ([]schema.Hand, error)
	// DeleteTable deletes a table and, by cascade, its hands, failing with domain.ErrTableNotFound when absent
	DeleteTable(ctx context.Context, id string) (*schema.Table, error)

	// CreatePlayer registers a player, failing with domain.ErrPlayerNameTaken or domain.ErrPlayerEmailTaken
	CreatePlayer(ctx context.Context, input CreatePlayerInput) (*schema.Player, error)
	// ListPlayers retrieves every player with their totals, newest first
	ListPlayers(ctx context.Context) ([]PlayerWithTotals, error)
	// GetPlayerByID retrieves a player with their totals, returning nil when absent
	GetPlayerByID(ctx context.Context, id string) (*PlayerWithTotals, error)
	// GetRecentSeatsByPlayerID retrieves the player's most recent seats with hand and table, newest first
	GetRecentSeatsByPlayerID(ctx context.Context, playerID string, limit int) ([]schema.PlayerInHand, error)
	// GetSeatResultsByPlayerID retrieves the outcome of every seat the player had
	GetSeatResultsByPlayerID(ctx context.Context, playerID string) ([]domain.SeatResult, error)

	// CreateHand creates a hand and its seats atomically
	CreateHand(ctx context.Context, input CreateHandInput) (*schema.Hand, error)
	// GetHandByID retrieves a hand with its seats and ordered actions, returning nil when absent
	GetHandByID(ctx context.Context, id string) (*schema.Hand, error)
	// AppendAction appends an action with the next sequence number and grows the pot atomically
	AppendAction(ctx context.Context, input AppendActionInput) (*AppendActionResult, error)
	// CompleteHand moves a hand to showdown and records its rake
	CompleteHand(ctx context.Context, handID string) (*CompleteHandResult, error)
	// SettleHand records ending chips and winnings of a completed hand
	SettleHand(ctx context.Context, input SettleHandInput) (*schema.Hand, error)
}
