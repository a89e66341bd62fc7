package domain

// GameType represents the table's game variant
type GameType string

const (
	GameTypeCash       GameType = "CASH"
	GameTypeTournament GameType = "TOURNAMENT"
	GameTypeSitAndGo   GameType = "SIT_AND_GO"
)

// IsValidGameType checks if a game type is valid
func IsValidGameType(gameType GameType) bool {
	return gameType == GameTypeCash ||
		gameType == GameTypeTournament ||
		gameType == GameTypeSitAndGo
}

// Street represents a betting round
type Street string

const (
	StreetPreflop  Street = "PREFLOP"
	StreetFlop     Street = "FLOP"
	StreetTurn     Street = "TURN"
	StreetRiver    Street = "RIVER"
	StreetShowdown Street = "SHOWDOWN"
)

// streetOrder maps each street to its position in the hand
var streetOrder = map[Street]int{
	StreetPreflop:  0,
	StreetFlop:     1,
	StreetTurn:     2,
	StreetRiver:    3,
	StreetShowdown: 4,
}

// IsValidStreet checks if a street is valid
func IsValidStreet(street Street) bool {
	_, ok := streetOrder[street]
	return ok
}

// Before reports whether s comes strictly before other in a hand
func (s Street) Before(other Street) bool {
	return streetOrder[s] < streetOrder[other]
}

// ActionType represents a betting action
type ActionType string

const (
	ActionFold  ActionType = "FOLD"
	ActionCheck ActionType = "CHECK"
	ActionCall  ActionType = "CALL"
	ActionBet   ActionType = "BET"
	ActionRaise ActionType = "RAISE"
	ActionAllIn ActionType = "ALL_IN"
)

// IsValidActionType checks if an action type is valid
func IsValidActionType(actionType ActionType) bool {
	switch actionType {
	case ActionFold, ActionCheck, ActionCall, ActionBet, ActionRaise, ActionAllIn:
		return true
	default:
		return false
	}
}

// AddsToPot reports whether the action's amount is added to the hand's pot.
// FOLD and CHECK never move chips.
func (a ActionType) AddsToPot() bool {
	switch a {
	case ActionCall, ActionBet, ActionRaise, ActionAllIn:
		return true
	default:
		return false
	}
}

// Position represents a canonical seat label, in turn order for a full ring
type Position string

const (
	PositionSB   Position = "SB"
	PositionBB   Position = "BB"
	PositionUTG  Position = "UTG"
	PositionUTG1 Position = "UTG+1"
	PositionUTG2 Position = "UTG+2"
	PositionMP   Position = "MP"
	PositionMP1  Position = "MP+1"
	PositionHJ   Position = "HJ"
	PositionCO   Position = "CO"
	PositionBTN  Position = "BTN"
)

// PositionOrder lists all positions in turn order
var PositionOrder = []Position{
	PositionSB,
	PositionBB,
	PositionUTG,
	PositionUTG1,
	PositionUTG2,
	PositionMP,
	PositionMP1,
	PositionHJ,
	PositionCO,
	PositionBTN,
}

// IsValidPosition checks if a position is valid
func IsValidPosition(position Position) bool {
	return position.Seat() > 0
}

// Seat returns the 1-based seat number of the position, or 0 when unknown
func (p Position) Seat() int {
	for i, pos := range PositionOrder {
		if pos == p {
			return i + 1
		}
	}
	return 0
}

const (
	// MinPlayersPerTable is the smallest table and the fewest seats a hand may have
	MinPlayersPerTable = 2
	// MaxPlayersPerTable is the largest table and the most seats a hand may have
	MaxPlayersPerTable = 10
	// CardsPerPlayer is the number of hole cards dealt to each seat
	CardsPerPlayer = 2

	// TableNameMinLength and TableNameMaxLength bound table names
	TableNameMinLength = 3
	TableNameMaxLength = 100
	// PlayerNameMinLength and PlayerNameMaxLength bound player names
	PlayerNameMinLength = 2
	PlayerNameMaxLength = 50

	// RecentHandsPerTable is how many hands are embedded in a table lookup
	RecentHandsPerTable = 10
	// RecentHandsPerPlayer is how many seats are embedded in a player lookup
	RecentHandsPerPlayer = 20
)
