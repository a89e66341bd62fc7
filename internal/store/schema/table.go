package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/poker-hand-logger/internal/domain"
)

// Table represents the tables table - a poker table that hands are played at
type Table struct {
	// ID is the UUID primary key
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// Name is the unique display name of the table
	Name string `gorm:"column:name;not null;uniqueIndex:uq_tables_name;type:varchar(100)"`
	// GameType is the game variant (CASH, TOURNAMENT, SIT_AND_GO)
	GameType domain.GameType `gorm:"column:game_type;not null;type:text"`
	// SmallBlind is the small blind amount
	SmallBlind decimal.Decimal `gorm:"column:small_blind;not null;type:numeric(20,4)"`
	// BigBlind is the big blind amount, never below the small blind
	BigBlind decimal.Decimal `gorm:"column:big_blind;not null;type:numeric(20,4)"`
	// MaxPlayers is the number of seats, between 2 and 10
	MaxPlayers int `gorm:"column:max_players;not null"`
	// CreatedAt is the timestamp when the table was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when the table was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Hands []Hand `gorm:"foreignKey:TableID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Table model
func (Table) TableName() string {
	return "tables"
}
