package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/poker-hand-logger/internal/domain"
)

// Hand represents the hands table - a single hand played at a table
type Hand struct {
	// ID is the UUID primary key
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// TableID references the table the hand was played at
	TableID string `gorm:"column:table_id;not null;type:uuid;uniqueIndex:uq_hands_table_hand_number,priority:1"`
	// HandNumber is the positive sequence number of the hand, unique per table
	HandNumber int64 `gorm:"column:hand_number;not null;uniqueIndex:uq_hands_table_hand_number,priority:2"`
	// Street is the current betting round; SHOWDOWN once the hand is completed
	Street domain.Street `gorm:"column:street;not null;type:text"`
	// Pot is the sum of every chip-moving action amount
	Pot decimal.Decimal `gorm:"column:pot;not null;type:numeric(20,4);default:0"`
	// Rake is the house commission, set when the hand is completed
	Rake decimal.Decimal `gorm:"column:rake;not null;type:numeric(20,4);default:0"`
	// CreatedAt is the timestamp when the hand was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when the hand was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Table   *Table         `gorm:"foreignKey:TableID"`
	Players []PlayerInHand `gorm:"foreignKey:HandID;constraint:OnDelete:CASCADE"`
	Actions []Action       `gorm:"foreignKey:HandID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Hand model
func (Hand) TableName() string {
	return "hands"
}

// Completed reports whether the hand has reached showdown
func (h *Hand) Completed() bool {
	return h.Street == domain.StreetShowdown
}
