package schema

import (
	"time"
)

// Player represents the players table
type Player struct {
	// ID is the UUID primary key
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// Name is the unique display name of the player
	Name string `gorm:"column:name;not null;uniqueIndex:uq_players_name;type:varchar(50)"`
	// Email is the optional contact address, unique when present (stored lowercased)
	Email *string `gorm:"column:email;uniqueIndex:uq_players_email;type:text"`
	// CreatedAt is the timestamp when the player was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp when the player was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Player model
func (Player) TableName() string {
	return "players"
}
