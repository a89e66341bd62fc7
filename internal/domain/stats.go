package domain

import (
	"github.com/shopspring/decimal"
)

// SeatResult is the outcome of one player's seat in one hand
type SeatResult struct {
	StartingChips decimal.Decimal
	EndingChips   decimal.Decimal
	Won           decimal.Decimal
	ShowedDown    bool
}

// Profit is the net chip change of the seat
func (r SeatResult) Profit() decimal.Decimal {
	return r.EndingChips.Sub(r.StartingChips)
}

// PlayerStats are the lifetime aggregates of a player
type PlayerStats struct {
	TotalHands       int64
	TotalWon         decimal.Decimal
	TotalProfit      decimal.Decimal
	HandsWon         int64
	TotalShowdowns   int64
	ShowdownsWon     int64
	WinRate          decimal.Decimal // percent of hands with a positive win
	ShowdownWinRate  decimal.Decimal // percent of showdowns with a positive win
	AvgProfitPerHand decimal.Decimal
}

// statsPrecision is the number of fractional digits kept on rates and averages
const statsPrecision = 2

var hundred = decimal.NewFromInt(100)

// ComputePlayerStats aggregates a player's seat results
func ComputePlayerStats(results []SeatResult) PlayerStats {
	stats := PlayerStats{
		TotalWon:         decimal.Zero,
		TotalProfit:      decimal.Zero,
		WinRate:          decimal.Zero,
		ShowdownWinRate:  decimal.Zero,
		AvgProfitPerHand: decimal.Zero,
	}

	for _, r := range results {
		stats.TotalHands++
		stats.TotalWon = stats.TotalWon.Add(r.Won)
		stats.TotalProfit = stats.TotalProfit.Add(r.Profit())
		won := r.Won.IsPositive()
		if won {
			stats.HandsWon++
		}
		if r.ShowedDown {
			stats.TotalShowdowns++
			if won {
				stats.ShowdownsWon++
			}
		}
	}

	if stats.TotalHands > 0 {
		hands := decimal.NewFromInt(stats.TotalHands)
		stats.WinRate = percent(stats.HandsWon, stats.TotalHands)
		stats.AvgProfitPerHand = stats.TotalProfit.DivRound(hands, statsPrecision)
	}
	if stats.TotalShowdowns > 0 {
		stats.ShowdownWinRate = percent(stats.ShowdownsWon, stats.TotalShowdowns)
	}

	return stats
}

func percent(part, whole int64) decimal.Decimal {
	return decimal.NewFromInt(part).Mul(hundred).DivRound(decimal.NewFromInt(whole), statsPrecision)
}
