package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/poker-hand-logger/internal/domain"
	"github.com/feral-file/poker-hand-logger/internal/store"
	"github.com/feral-file/poker-hand-logger/internal/store/schema"
)

// TableResponse represents a table
type TableResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	GameType    domain.GameType `json:"gameType"`
	SmallBlind  decimal.Decimal `json:"smallBlind"`
	BigBlind    decimal.Decimal `json:"bigBlind"`
	MaxPlayers  int             `json:"maxPlayers"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	RecentHands []HandResponse  `json:"recentHands,omitempty"`
}

// TableDeletedPayload is broadcast when a table is deleted
type TableDeletedPayload struct {
	Table   TableResponse `json:"table"`
	Deleted bool          `json:"deleted"`
}

// PlayerResponse represents a player with their aggregates
type PlayerResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         *string         `json:"email,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	TotalHands    int64           `json:"totalHands"`
	TotalWinnings decimal.Decimal `json:"totalWinnings"`
	RecentHands   []SeatResponse  `json:"recentHands,omitempty"`
}

// PlayerStatsResponse represents the lifetime statistics of a player
type PlayerStatsResponse struct {
	PlayerID         string          `json:"playerId"`
	TotalHands       int64           `json:"totalHands"`
	TotalWon         decimal.Decimal `json:"totalWon"`
	TotalProfit      decimal.Decimal `json:"totalProfit"`
	HandsWon         int64           `json:"handsWon"`
	TotalShowdowns   int64           `json:"totalShowdowns"`
	ShowdownsWon     int64           `json:"showdownsWon"`
	WinRate          decimal.Decimal `json:"winRate"`
	ShowdownWinRate  decimal.Decimal `json:"showdownWinRate"`
	AvgProfitPerHand decimal.Decimal `json:"avgProfitPerHand"`
}

// HandResponse represents a hand without its seats and actions
type HandResponse struct {
	ID         string          `json:"id"`
	TableID    string          `json:"tableId"`
	HandNumber int64           `json:"handNumber"`
	Street     domain.Street   `json:"street"`
	Pot        decimal.Decimal `json:"pot"`
	Rake       decimal.Decimal `json:"rake"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
	Table      *TableResponse  `json:"table,omitempty"`
}

// SeatResponse represents one player's seat in a hand
type SeatResponse struct {
	ID            string          `json:"id"`
	HandID        string          `json:"handId"`
	PlayerID      string          `json:"playerId"`
	PlayerName    string          `json:"playerName,omitempty"`
	Position      domain.Position `json:"position"`
	StartingChips decimal.Decimal `json:"startingChips"`
	EndingChips   decimal.Decimal `json:"endingChips"`
	Cards         []string        `json:"cards,omitempty"`
	Won           decimal.Decimal `json:"won"`
	ShowedDown    bool            `json:"showedDown"`
	Hand          *HandResponse   `json:"hand,omitempty"`
}

// ActionResponse represents a betting action
type ActionResponse struct {
	ID         string            `json:"id"`
	HandID     string            `json:"handId"`
	PlayerID   string            `json:"playerId"`
	PlayerName string            `json:"playerName,omitempty"`
	Street     domain.Street     `json:"street"`
	ActionType domain.ActionType `json:"actionType"`
	Amount     decimal.Decimal   `json:"amount"`
	Sequence   int64             `json:"sequence"`
	Timestamp  time.Time         `json:"timestamp"`
}

// HandDetailResponse represents a hand with its seats and ordered actions
type HandDetailResponse struct {
	Hand    HandResponse     `json:"hand"`
	Players []SeatResponse   `json:"players"`
	Actions []ActionResponse `json:"actions"`
}

// ActionAddedPayload is broadcast when an action is appended to a hand
type ActionAddedPayload struct {
	HandID string         `json:"handId"`
	Action ActionResponse `json:"action"`
}

// CompleteHandResponse represents the rake breakdown of a completed hand
type CompleteHandResponse struct {
	HandID       string          `json:"handId"`
	Pot          decimal.Decimal `json:"pot"`
	Rake         decimal.Decimal `json:"rake"`
	PotAfterRake decimal.Decimal `json:"potAfterRake"`
}

// HealthResponse represents the health check result
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// MapTableToDTO maps a schema.Table to TableResponse
func MapTableToDTO(t *schema.Table) *TableResponse {
	if t == nil {
		return nil
	}
	return &TableResponse{
		ID:         t.ID,
		Name:       t.Name,
		GameType:   t.GameType,
		SmallBlind: t.SmallBlind,
		BigBlind:   t.BigBlind,
		MaxPlayers: t.MaxPlayers,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// MapTablesToDTO maps a list of tables
func MapTablesToDTO(tables []schema.Table) []TableResponse {
	out := make([]TableResponse, 0, len(tables))
	for i := range tables {
		out = append(out, *MapTableToDTO(&tables[i]))
	}
	return out
}

// MapPlayerToDTO maps a player with totals to PlayerResponse
func MapPlayerToDTO(p *store.PlayerWithTotals) *PlayerResponse {
	if p == nil {
		return nil
	}
	return &PlayerResponse{
		ID:            p.ID,
		Name:          p.Name,
		Email:         p.Email,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		TotalHands:    p.TotalHands,
		TotalWinnings: p.TotalWinnings,
	}
}

// MapNewPlayerToDTO maps a freshly registered player, whose totals are zero
func MapNewPlayerToDTO(p *schema.Player) *PlayerResponse {
	if p == nil {
		return nil
	}
	return MapPlayerToDTO(&store.PlayerWithTotals{Player: *p, TotalWinnings: decimal.Zero})
}

// MapPlayersToDTO maps a list of players with totals
func MapPlayersToDTO(players []store.PlayerWithTotals) []PlayerResponse {
	out := make([]PlayerResponse, 0, len(players))
	for i := range players {
		out = append(out, *MapPlayerToDTO(&players[i]))
	}
	return out
}

// MapPlayerStatsToDTO maps computed statistics
func MapPlayerStatsToDTO(playerID string, s domain.PlayerStats) *PlayerStatsResponse {
	return &PlayerStatsResponse{
		PlayerID:         playerID,
		TotalHands:       s.TotalHands,
		TotalWon:         s.TotalWon,
		TotalProfit:      s.TotalProfit,
		HandsWon:         s.HandsWon,
		TotalShowdowns:   s.TotalShowdowns,
		ShowdownsWon:     s.ShowdownsWon,
		WinRate:          s.WinRate,
		ShowdownWinRate:  s.ShowdownWinRate,
		AvgProfitPerHand: s.AvgProfitPerHand,
	}
}

// MapHandToDTO maps a schema.Hand to HandResponse, including its table when loaded
func MapHandToDTO(h *schema.Hand) *HandResponse {
	if h == nil {
		return nil
	}
	return &HandResponse{
		ID:         h.ID,
		TableID:    h.TableID,
		HandNumber: h.HandNumber,
		Street:     h.Street,
		Pot:        h.Pot,
		Rake:       h.Rake,
		CreatedAt:  h.CreatedAt,
		UpdatedAt:  h.UpdatedAt,
		Table:      MapTableToDTO(h.Table),
	}
}

// MapHandsToDTO maps a list of hands
func MapHandsToDTO(hands []schema.Hand) []HandResponse {
	out := make([]HandResponse, 0, len(hands))
	for i := range hands {
		out = append(out, *MapHandToDTO(&hands[i]))
	}
	return out
}

// MapSeatToDTO maps a schema.PlayerInHand to SeatResponse
func MapSeatToDTO(s *schema.PlayerInHand) *SeatResponse {
	if s == nil {
		return nil
	}
	seat := &SeatResponse{
		ID:            s.ID,
		HandID:        s.HandID,
		PlayerID:      s.PlayerID,
		Position:      s.Position,
		StartingChips: s.StartingChips,
		EndingChips:   s.EndingChips,
		Cards:         s.HoleCards(),
		Won:           s.Won,
		ShowedDown:    s.ShowedDown,
		Hand:          MapHandToDTO(s.Hand),
	}
	if s.Player != nil {
		seat.PlayerName = s.Player.Name
	}
	return seat
}

// MapSeatsToDTO maps a list of seats
func MapSeatsToDTO(seats []schema.PlayerInHand) []SeatResponse {
	out := make([]SeatResponse, 0, len(seats))
	for i := range seats {
		out = append(out, *MapSeatToDTO(&seats[i]))
	}
	return out
}

// MapActionToDTO maps a schema.Action to ActionResponse
func MapActionToDTO(a *schema.Action) *ActionResponse {
	if a == nil {
		return nil
	}
	action := &ActionResponse{
		ID:         a.ID,
		HandID:     a.HandID,
		PlayerID:   a.PlayerID,
		Street:     a.Street,
		ActionType: a.ActionType,
		Amount:     a.Amount,
		Sequence:   a.Sequence,
		Timestamp:  a.Timestamp,
	}
	if a.Player != nil {
		action.PlayerName = a.Player.Name
	}
	return action
}

// MapActionsToDTO maps a list of actions
func MapActionsToDTO(actions []schema.Action) []ActionResponse {
	out := make([]ActionResponse, 0, len(actions))
	for i := range actions {
		out = append(out, *MapActionToDTO(&actions[i]))
	}
	return out
}

// MapHandDetailToDTO maps a hand with its preloaded seats and actions
func MapHandDetailToDTO(h *schema.Hand) *HandDetailResponse {
	if h == nil {
		return nil
	}
	return &HandDetailResponse{
		Hand:    *MapHandToDTO(h),
		Players: MapSeatsToDTO(h.Players),
		Actions: MapActionsToDTO(h.Actions),
	}
}

// MapCompleteHandToDTO maps the rake breakdown of a completed hand
func MapCompleteHandToDTO(r *store.CompleteHandResult) *CompleteHandResponse {
	if r == nil || r.Hand == nil {
		return nil
	}
	return &CompleteHandResponse{
		HandID:       r.Hand.ID,
		Pot:          r.Rake.Pot,
		Rake:         r.Rake.Rake,
		PotAfterRake: r.Rake.PotAfterRake,
	}
}
