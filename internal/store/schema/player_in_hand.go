package schema

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/feral-file/poker-hand-logger/internal/domain"
)

// PlayerInHand represents the player_in_hands table - one player's seat in one hand
type PlayerInHand struct {
	// ID is the UUID primary key
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// HandID references the owning hand
	HandID string `gorm:"column:hand_id;not null;type:uuid;uniqueIndex:uq_player_in_hands_hand_player,priority:1;uniqueIndex:uq_player_in_hands_hand_position,priority:1"`
	// PlayerID references the seated player
	PlayerID string `gorm:"column:player_id;not null;type:uuid;uniqueIndex:uq_player_in_hands_hand_player,priority:2;index"`
	// Position is the canonical seat label
	Position domain.Position `gorm:"column:position;not null;type:text;uniqueIndex:uq_player_in_hands_hand_position,priority:2"`
	// StartingChips is the stack at the start of the hand
	StartingChips decimal.Decimal `gorm:"column:starting_chips;not null;type:numeric(20,4)"`
	// EndingChips is the stack after settlement; equals StartingChips until the hand is settled
	EndingChips decimal.Decimal `gorm:"column:ending_chips;not null;type:numeric(20,4)"`
	// Cards is the optional hole card pair as a JSON array (e.g., ["As","Kh"])
	Cards datatypes.JSON `gorm:"column:cards;type:jsonb"`
	// Won is the amount collected from the pot
	Won decimal.Decimal `gorm:"column:won;not null;type:numeric(20,4);default:0"`
	// ShowedDown indicates whether the player reached showdown
	ShowedDown bool `gorm:"column:showed_down;not null;default:false"`

	// Associations
	Hand   *Hand   `gorm:"foreignKey:HandID"`
	Player *Player `gorm:"foreignKey:PlayerID"`
}

// TableName specifies the table name for the PlayerInHand model
func (PlayerInHand) TableName() string {
	return "player_in_hands"
}

// HoleCards decodes the stored hole cards, returning nil when none were recorded
func (p *PlayerInHand) HoleCards() []string {
	if len(p.Cards) == 0 {
		return nil
	}
	var cards []string
	if err := json.Unmarshal(p.Cards, &cards); err != nil {
		return nil
	}
	return cards
}

// EncodeHoleCards encodes hole cards for storage, returning nil for an empty pair
func EncodeHoleCards(cards []string) (datatypes.JSON, error) {
	if len(cards) == 0 {
		return nil, nil
	}
	raw, err := json.Marshal(cards)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
