package dto

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apierrors "github.com/feral-file/poker-hand-logger/internal/api/shared/errors"
	"github.com/feral-file/poker-hand-logger/internal/domain"
)

// CreateTableRequest represents the request body for creating a table
type CreateTableRequest struct {
	Name       string          `json:"name"`
	GameType   domain.GameType `json:"gameType"`
	SmallBlind decimal.Decimal `json:"smallBlind"`
	BigBlind   decimal.Decimal `json:"bigBlind"`
	MaxPlayers int             `json:"maxPlayers"`
}

// Validate validates the request body
func (r *CreateTableRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	v := &domain.ValidationError{}
	domain.ValidateName(v, "name", r.Name, domain.TableNameMinLength, domain.TableNameMaxLength)
	if !domain.IsValidGameType(r.GameType) {
		v.Add("gameType", "must be one of CASH, TOURNAMENT, SIT_AND_GO")
	}
	// blinds are only compared once both are known to be in range
	before := len(v.Fields)
	domain.ValidateAmount(v, "smallBlind", r.SmallBlind, true)
	domain.ValidateAmount(v, "bigBlind", r.BigBlind, true)
	if len(v.Fields) == before && r.BigBlind.LessThan(r.SmallBlind) {
		v.Add("bigBlind", "must be greater than or equal to smallBlind")
	}
	if r.MaxPlayers < domain.MinPlayersPerTable || r.MaxPlayers > domain.MaxPlayersPerTable {
		v.Addf("maxPlayers", "must be between %d and %d", domain.MinPlayersPerTable, domain.MaxPlayersPerTable)
	}
	return toAPIError(v)
}

// CreatePlayerRequest represents the request body for registering a player
type CreatePlayerRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

// Validate validates the request body and normalizes the email
func (r *CreatePlayerRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)

	v := &domain.ValidationError{}
	domain.ValidateName(v, "name", r.Name, domain.PlayerNameMinLength, domain.PlayerNameMaxLength)
	if r.Email != nil {
		email := domain.NormalizeEmail(*r.Email)
		if email == "" {
			r.Email = nil
		} else {
			domain.ValidateEmail(v, "email", email)
			r.Email = &email
		}
	}
	return toAPIError(v)
}

// SeatRequest represents one player seated in a new hand
type SeatRequest struct {
	PlayerID      string          `json:"playerId"`
	Position      domain.Position `json:"position"`
	StartingChips decimal.Decimal `json:"startingChips"`
	Cards         []string        `json:"cards,omitempty"`
}

// CreateHandRequest represents the request body for creating a hand
type CreateHandRequest struct {
	TableID    string        `json:"tableId"`
	HandNumber int64         `json:"handNumber"`
	Players    []SeatRequest `json:"players"`
}

// Validate validates the request body
func (r *CreateHandRequest) Validate() error {
	v := &domain.ValidationError{}
	validateID(v, "tableId", r.TableID)
	if r.HandNumber <= 0 {
		v.Add("handNumber", "must be a positive integer")
	}
	if len(r.Players) < domain.MinPlayersPerTable || len(r.Players) > domain.MaxPlayersPerTable {
		v.Addf("players", "must contain between %d and %d players", domain.MinPlayersPerTable, domain.MaxPlayersPerTable)
	}

	players := make(map[string]struct{}, len(r.Players))
	positions := make(map[domain.Position]struct{}, len(r.Players))
	dealt := domain.CardSet{}
	for i, seat := range r.Players {
		prefix := fmt.Sprintf("players[%d]", i)

		validateID(v, prefix+".playerId", seat.PlayerID)
		if _, dup := players[seat.PlayerID]; dup && seat.PlayerID != "" {
			v.Add(prefix+".playerId", "player is already seated in this hand")
		}
		players[seat.PlayerID] = struct{}{}

		if !domain.IsValidPosition(seat.Position) {
			v.Addf(prefix+".position", "invalid position: %s", seat.Position)
		} else if _, dup := positions[seat.Position]; dup {
			v.Add(prefix+".position", "position is already taken in this hand")
		}
		positions[seat.Position] = struct{}{}

		domain.ValidateAmount(v, prefix+".startingChips", seat.StartingChips, true)
		if seat.Cards != nil {
			domain.ValidateHoleCards(v, prefix+".cards", seat.Cards, dealt)
		}
	}
	return toAPIError(v)
}

// AddActionRequest represents the request body for appending an action to a hand
type AddActionRequest struct {
	PlayerID   string            `json:"playerId"`
	Street     domain.Street     `json:"street"`
	ActionType domain.ActionType `json:"actionType"`
	Amount     decimal.Decimal   `json:"amount"`
}

// Validate validates the request body
func (r *AddActionRequest) Validate() error {
	v := &domain.ValidationError{}
	validateID(v, "playerId", r.PlayerID)
	if !domain.IsValidStreet(r.Street) {
		v.Add("street", "must be one of PREFLOP, FLOP, TURN, RIVER, SHOWDOWN")
	}
	if !domain.IsValidActionType(r.ActionType) {
		v.Add("actionType", "must be one of FOLD, CHECK, CALL, BET, RAISE, ALL_IN")
	}
	domain.ValidateAmount(v, "amount", r.Amount, false)
	return toAPIError(v)
}

// SeatResultRequest represents the outcome of one seat
type SeatResultRequest struct {
	PlayerID    string          `json:"playerId"`
	EndingChips decimal.Decimal `json:"endingChips"`
	Won         decimal.Decimal `json:"won"`
	ShowedDown  bool            `json:"showedDown"`
}

// SettleHandRequest represents the request body for settling a completed hand
type SettleHandRequest struct {
	Results []SeatResultRequest `json:"results"`
}

// Validate validates the request body
func (r *SettleHandRequest) Validate() error {
	v := &domain.ValidationError{}
	if len(r.Results) == 0 {
		v.Add("results", "at least one result is required")
	}
	seen := make(map[string]struct{}, len(r.Results))
	for i, res := range r.Results {
		prefix := fmt.Sprintf("results[%d]", i)
		validateID(v, prefix+".playerId", res.PlayerID)
		if _, dup := seen[res.PlayerID]; dup && res.PlayerID != "" {
			v.Add(prefix+".playerId", "duplicate result for player")
		}
		seen[res.PlayerID] = struct{}{}
		domain.ValidateAmount(v, prefix+".endingChips", res.EndingChips, false)
		domain.ValidateAmount(v, prefix+".won", res.Won, false)
	}
	return toAPIError(v)
}

// IsValidID reports whether id is a well-formed UUID
func IsValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func validateID(v *domain.ValidationError, field, id string) {
	if id == "" {
		v.Add(field, "is required")
		return
	}
	if !IsValidID(id) {
		v.Add(field, "must be a valid UUID")
	}
}

// toAPIError returns nil when v holds no field errors
func toAPIError(v *domain.ValidationError) error {
	if err := v.Err(); err != nil {
		return apierrors.FromDomain(context.Background(), err, "validate request")
	}
	return nil
}
