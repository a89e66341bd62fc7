package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/poker-hand-logger/internal/domain"
)

// Action represents the actions table - an append-only log of betting actions
type Action struct {
	// ID is the UUID primary key
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// HandID references the owning hand
	HandID string `gorm:"column:hand_id;not null;type:uuid;uniqueIndex:uq_actions_hand_sequence,priority:1"`
	// PlayerID references the acting player
	PlayerID string `gorm:"column:player_id;not null;type:uuid;index"`
	// Street is the betting round the action belongs to
	Street domain.Street `gorm:"column:street;not null;type:text"`
	// ActionType is the kind of action (FOLD, CHECK, CALL, BET, RAISE, ALL_IN)
	ActionType domain.ActionType `gorm:"column:action_type;not null;type:text"`
	// Amount is the chips committed by the action
	Amount decimal.Decimal `gorm:"column:amount;not null;type:numeric(20,4);default:0"`
	// Sequence is the 1-based position of the action within its hand
	Sequence int64 `gorm:"column:sequence;not null;uniqueIndex:uq_actions_hand_sequence,priority:2"`
	// Timestamp is when the action was recorded
	Timestamp time.Time `gorm:"column:timestamp;not null;default:now()"`

	// Associations
	Player *Player `gorm:"foreignKey:PlayerID"`
}

// TableName specifies the table name for the Action model
func (Action) TableName() string {
	return "actions"
}
