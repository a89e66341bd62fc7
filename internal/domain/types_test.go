package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidGameType(t *testing.T) {
	tests := []struct {
		name     string
		gameType GameType
		expected bool
	}{
		{name: "cash", gameType: GameTypeCash, expected: true},
		{name: "tournament", gameType: GameTypeTournament, expected: true},
		{name: "sit and go", gameType: GameTypeSitAndGo, expected: true},
		{name: "lowercase is invalid", gameType: GameType("cash"), expected: false},
		{name: "empty", gameType: GameType(""), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidGameType(tt.gameType))
		})
	}
}

func TestStreet(t *testing.T) {
	t.Run("valid streets", func(t *testing.T) {
		for _, s := range []Street{StreetPreflop, StreetFlop, StreetTurn, StreetRiver, StreetShowdown} {
			assert.True(t, IsValidStreet(s), s)
		}
		assert.False(t, IsValidStreet(Street("DEAL")))
	})

	t.Run("order", func(t *testing.T) {
		assert.True(t, StreetPreflop.Before(StreetFlop))
		assert.True(t, StreetRiver.Before(StreetShowdown))
		assert.False(t, StreetShowdown.Before(StreetShowdown))
		assert.False(t, StreetTurn.Before(StreetFlop))
	})
}

func TestActionType_AddsToPot(t *testing.T) {
	tests := []struct {
		action    ActionType
		valid     bool
		addsToPot bool
	}{
		{action: ActionFold, valid: true, addsToPot: false},
		{action: ActionCheck, valid: true, addsToPot: false},
		{action: ActionCall, valid: true, addsToPot: true},
		{action: ActionBet, valid: true, addsToPot: true},
		{action: ActionRaise, valid: true, addsToPot: true},
		{action: ActionAllIn, valid: true, addsToPot: true},
		{action: ActionType("MUCK"), valid: false, addsToPot: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidActionType(tt.action))
			assert.Equal(t, tt.addsToPot, tt.action.AddsToPot())
		})
	}
}

func TestPosition(t *testing.T) {
	assert.Len(t, PositionOrder, MaxPlayersPerTable)
	assert.Equal(t, 1, PositionSB.Seat())
	assert.Equal(t, 4, PositionUTG1.Seat())
	assert.Equal(t, 10, PositionBTN.Seat())
	assert.Equal(t, 0, Position("UTG+3").Seat())
	assert.True(t, IsValidPosition(PositionMP1))
	assert.False(t, IsValidPosition(Position("utg")))
}

func TestCalculateRake(t *testing.T) {
	tests := []struct {
		name         string
		pot          string
		rake         string
		potAfterRake string
	}{
		{name: "empty pot", pot: "0", rake: "0", potAfterRake: "0"},
		{name: "small pot", pot: "50", rake: "2.5", potAfterRake: "47.5"},
		{name: "exactly at cap", pot: "200", rake: "10", potAfterRake: "190"},
		{name: "just under cap", pot: "199.99", rake: "9.9995", potAfterRake: "189.9905"},
		{name: "capped", pot: "1000", rake: "10", potAfterRake: "990"},
		{name: "fractional pot", pot: "0.01", rake: "0.0005", potAfterRake: "0.0095"},
		{name: "negative pot treated as empty", pot: "-5", rake: "0", potAfterRake: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateRake(decimal.RequireFromString(tt.pot))
			assert.True(t, decimal.RequireFromString(tt.rake).Equal(result.Rake), "rake: got %s", result.Rake)
			assert.True(t, decimal.RequireFromString(tt.potAfterRake).Equal(result.PotAfterRake), "potAfterRake: got %s", result.PotAfterRake)
			assert.True(t, result.Pot.Equal(result.Rake.Add(result.PotAfterRake)))
		})
	}
}

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		positive bool
		valid    bool
	}{
		{name: "zero allowed", amount: "0", positive: false, valid: true},
		{name: "zero rejected when positive required", amount: "0", positive: true, valid: false},
		{name: "negative", amount: "-1", positive: false, valid: false},
		{name: "two decimals", amount: "12.34", positive: true, valid: true},
		{name: "three decimals", amount: "12.345", positive: true, valid: false},
		{name: "at max", amount: "1000000000", positive: true, valid: true},
		{name: "over max", amount: "1000000000.01", positive: true, valid: false},
		{name: "trailing zeros", amount: "12.3400", positive: true, valid: true},
		{name: "tiny exponent", amount: "1e-20000000", positive: true, valid: false},
		{name: "huge exponent", amount: "1e20000000", positive: true, valid: false},
		{name: "zero with huge exponent", amount: "0e20000000", positive: false, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &ValidationError{}
			start := time.Now()
			ValidateAmount(v, "amount", decimal.RequireFromString(tt.amount), tt.positive)
			assert.Less(t, time.Since(start), 100*time.Millisecond)
			if tt.valid {
				assert.NoError(t, v.Err())
			} else {
				require.Error(t, v.Err())
				assert.Equal(t, "amount", v.Fields[0].Field)
			}
		})
	}
}

func TestValidateAmount_JSONExponent(t *testing.T) {
	var body struct {
		Amount decimal.Decimal `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"amount":1e-20000000}`), &body))

	v := &ValidationError{}
	start := time.Now()
	ValidateAmount(v, "amount", body.Amount, true)
	assert.Less(t, time.Since(start), 100*time.Millisecond)
	require.Error(t, v.Err())
	assert.Equal(t, "must have at most 2 decimal places", v.Fields[0].Message)
}

func TestParseCard(t *testing.T) {
	valid := []string{"As", "Kh", "Qd", "Jc", "Ts", "9h", "2c"}
	for _, code := range valid {
		t.Run(code, func(t *testing.T) {
			_, err := ParseCard(code)
			assert.NoError(t, err)
		})
	}

	invalid := []string{"", "A", "1s", "10s", "as", "AS", "Ax", "Ahh"}
	for _, code := range invalid {
		t.Run("invalid "+code, func(t *testing.T) {
			_, err := ParseCard(code)
			assert.Error(t, err)
		})
	}

	t.Run("distinct cards differ", func(t *testing.T) {
		a, err := ParseCard("As")
		require.NoError(t, err)
		b, err := ParseCard("Ah")
		require.NoError(t, err)
		c, err := ParseCard("As")
		require.NoError(t, err)
		assert.NotEqual(t, a, b)
		assert.Equal(t, a, c)
	})
}

func TestValidateHoleCards(t *testing.T) {
	t.Run("valid pair", func(t *testing.T) {
		v := &ValidationError{}
		dealt := CardSet{}
		ValidateHoleCards(v, "players[0].cards", []string{"As", "Kd"}, dealt)
		assert.NoError(t, v.Err())
		assert.Len(t, dealt, 2)
	})

	t.Run("wrong count", func(t *testing.T) {
		v := &ValidationError{}
		ValidateHoleCards(v, "players[0].cards", []string{"As"}, CardSet{})
		require.Error(t, v.Err())
		assert.Equal(t, "players[0].cards", v.Fields[0].Field)
	})

	t.Run("duplicate across seats", func(t *testing.T) {
		v := &ValidationError{}
		dealt := CardSet{}
		ValidateHoleCards(v, "players[0].cards", []string{"As", "Kd"}, dealt)
		ValidateHoleCards(v, "players[1].cards", []string{"Qs", "As"}, dealt)
		require.Error(t, v.Err())
		require.Len(t, v.Fields, 1)
		assert.Equal(t, "players[1].cards", v.Fields[0].Field)
	})

	t.Run("pocket pair of the same card", func(t *testing.T) {
		v := &ValidationError{}
		ValidateHoleCards(v, "cards", []string{"7c", "7c"}, CardSet{})
		assert.Error(t, v.Err())
	})
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "ascii", input: "High Stakes 1", valid: true},
		{name: "hangul", input: "포커 테이블", valid: true},
		{name: "underscore and hyphen", input: "main_table-2", valid: true},
		{name: "too short", input: "ab", valid: false},
		{name: "whitespace padded", input: "  a  ", valid: false},
		{name: "too long", input: string(make([]byte, 101)), valid: false},
		{name: "punctuation", input: "table!", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &ValidationError{}
			ValidateName(v, "name", tt.input, TableNameMinLength, TableNameMaxLength)
			assert.Equal(t, tt.valid, v.Err() == nil, v.Fields)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{email: "", valid: true},
		{email: "player@example.com", valid: true},
		{email: "player@example", valid: false},
		{email: "player example@x.com", valid: false},
		{email: "@example.com", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			v := &ValidationError{}
			ValidateEmail(v, "email", tt.email)
			assert.Equal(t, tt.valid, v.Err() == nil)
		})
	}

	assert.Equal(t, "player@example.com", NormalizeEmail("  Player@Example.COM "))
}

func TestComputePlayerStats(t *testing.T) {
	d := decimal.RequireFromString

	t.Run("no hands", func(t *testing.T) {
		stats := ComputePlayerStats(nil)
		assert.Equal(t, int64(0), stats.TotalHands)
		assert.True(t, stats.WinRate.IsZero())
		assert.True(t, stats.ShowdownWinRate.IsZero())
		assert.True(t, stats.AvgProfitPerHand.IsZero())
	})

	t.Run("mixed results", func(t *testing.T) {
		stats := ComputePlayerStats([]SeatResult{
			{StartingChips: d("100"), EndingChips: d("150"), Won: d("60"), ShowedDown: true},
			{StartingChips: d("150"), EndingChips: d("120"), Won: d("0"), ShowedDown: true},
			{StartingChips: d("120"), EndingChips: d("120"), Won: d("0"), ShowedDown: false},
		})

		assert.Equal(t, int64(3), stats.TotalHands)
		assert.Equal(t, int64(1), stats.HandsWon)
		assert.Equal(t, int64(2), stats.TotalShowdowns)
		assert.Equal(t, int64(1), stats.ShowdownsWon)
		assert.True(t, d("60").Equal(stats.TotalWon))
		assert.True(t, d("20").Equal(stats.TotalProfit))
		assert.True(t, d("33.33").Equal(stats.WinRate), stats.WinRate.String())
		assert.True(t, d("50").Equal(stats.ShowdownWinRate), stats.ShowdownWinRate.String())
		assert.True(t, d("6.67").Equal(stats.AvgProfitPerHand), stats.AvgProfitPerHand.String())
	})
}

func TestErrorFamilies(t *testing.T) {
	assert.ErrorIs(t, ErrTableNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrPlayerNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrHandNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrHandNumberTaken, ErrConflict)
	assert.ErrorIs(t, ErrHandCompleted, ErrConflict)
	assert.NotErrorIs(t, ErrHandCompleted, ErrNotFound)

	wrapped := fmt.Errorf("failed to create hand: %w", NewValidationError("handNumber", "must be positive"))
	assert.ErrorIs(t, wrapped, ErrValidation)

	var vErr *ValidationError
	require.True(t, errors.As(wrapped, &vErr))
	assert.Equal(t, "handNumber", vErr.Fields[0].Field)
	assert.Contains(t, wrapped.Error(), "handNumber: must be positive")

	var empty *ValidationError
	assert.NoError(t, empty.Err())
}
