package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/poker-hand-logger/internal/domain"
	"github.com/feral-file/poker-hand-logger/internal/logger"
	"github.com/feral-file/poker-hand-logger/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// Ping checks that the database is reachable
func (s *pgStore) Ping(ctx context.Context) error {
	if err := s.db.WithContext(ctx).Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// =============================================================================
// Tables
// =============================================================================

// CreateTable creates a table
func (s *pgStore) CreateTable(ctx context.Context, input CreateTableInput) (*schema.Table, error) {
	table := schema.Table{
		ID:         uuid.NewString(),
		Name:       input.Name,
		GameType:   input.GameType,
		SmallBlind: input.SmallBlind,
		BigBlind:   input.BigBlind,
		MaxPlayers: input.MaxPlayers,
	}

	// A transaction scopes a unique violation to this insert (a savepoint when already in one)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&table).Error
	})
	if err != nil {
		if translated := translateConstraintError(err); translated != nil {
			return nil, translated
		}
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &table, nil
}

// ListTables retrieves every table, newest first
func (s *pgStore) ListTables(ctx context.Context) ([]schema.Table, error) {
	var tables []schema.Table
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id").
		Find(&tables).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}

// GetTableByID retrieves a table by ID
func (s *pgStore) GetTableByID(ctx context.Context, id string) (*schema.Table, error) {
	var table schema.Table
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&table).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}
	return &table, nil
}

// GetRecentHandsByTableID retrieves the most recent hands of a table
func (s *pgStore) GetRecentHandsByTableID(ctx context.Context, tableID string, limit int) ([]schema.Hand, error) {
	var hands []schema.Hand
	err := s.db.WithContext(ctx).
		Where("table_id = ?", tableID).
		Order("created_at DESC").
		Order("hand_number DESC").
		Limit(limit).
		Find(&hands).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent hands: %w", err)
	}
	return hands, nil
}

// DeleteTable deletes a table; hands, seats and actions go with it through ON DELETE CASCADE
func (s *pgStore) DeleteTable(ctx context.Context, id string) (*schema.Table, error) {
	var table schema.Table
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&table).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTableNotFound
			}
			return fmt.Errorf("failed to lock table: %w", err)
		}

		if err := tx.Where("id = ?", id).Delete(&schema.Table{}).Error; err != nil {
			return fmt.Errorf("failed to delete table: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// =============================================================================
// Players
// =============================================================================

// CreatePlayer registers a player
func (s *pgStore) CreatePlayer(ctx context.Context, input CreatePlayerInput) (*schema.Player, error) {
	player := schema.Player{
		ID:    uuid.NewString(),
		Name:  input.Name,
		Email: input.Email,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&player).Error
	})
	if err != nil {
		if translated := translateConstraintError(err); translated != nil {
			return nil, translated
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return &player, nil
}

// playersWithTotals builds the aggregate query shared by ListPlayers and GetPlayerByID
func (s *pgStore) playersWithTotals(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("players AS p").
		Select(`p.id, p.name, p.email, p.created_at, p.updated_at,
			COUNT(pih.id) AS total_hands,
			COALESCE(SUM(pih.ending_chips - pih.starting_chips), 0) AS total_winnings`).
		Joins("LEFT JOIN player_in_hands AS pih ON pih.player_id = p.id").
		Group("p.id")
}

// ListPlayers retrieves every player with their totals, newest first
func (s *pgStore) ListPlayers(ctx context.Context) ([]PlayerWithTotals, error) {
	var players []PlayerWithTotals
	err := s.playersWithTotals(ctx).
		Order("p.created_at DESC").
		Order("p.id").
		Scan(&players).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

// GetPlayerByID retrieves a player with their totals
func (s *pgStore) GetPlayerByID(ctx context.Context, id string) (*PlayerWithTotals, error) {
	var players []PlayerWithTotals
	err := s.playersWithTotals(ctx).
		Where("p.id = ?", id).
		Scan(&players).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if len(players) == 0 {
		return nil, nil
	}
	return &players[0], nil
}

// GetRecentSeatsByPlayerID retrieves the player's most recent seats with hand and table
func (s *pgStore) GetRecentSeatsByPlayerID(ctx context.Context, playerID string, limit int) ([]schema.PlayerInHand, error) {
	var seats []schema.PlayerInHand
	err := s.db.WithContext(ctx).
		Select("player_in_hands.*").
		Joins("JOIN hands ON hands.id = player_in_hands.hand_id").
		Where("player_in_hands.player_id = ?", playerID).
		Order("hands.created_at DESC").
		Order("hands.hand_number DESC").
		Limit(limit).
		Preload("Hand.Table").
		Find(&seats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get recent seats: %w", err)
	}
	return seats, nil
}

// GetSeatResultsByPlayerID retrieves the outcome of every seat the player had
func (s *pgStore) GetSeatResultsByPlayerID(ctx context.Context, playerID string) ([]domain.SeatResult, error) {
	var seats []schema.PlayerInHand
	err := s.db.WithContext(ctx).
		Select("starting_chips", "ending_chips", "won", "showed_down").
		Where("player_id = ?", playerID).
		Find(&seats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get seat results: %w", err)
	}

	results := make([]domain.SeatResult, 0, len(seats))
	for _, seat := range seats {
		results = append(results, domain.SeatResult{
			StartingChips: seat.StartingChips,
			EndingChips:   seat.EndingChips,
			Won:           seat.Won,
			ShowedDown:    seat.ShowedDown,
		})
	}
	return results, nil
}

// =============================================================================
// Hands
// =============================================================================

// CreateHand creates a hand and its seats in a single transaction.
// Nothing is persisted when the table or any player is missing, or the hand number is taken.
func (s *pgStore) CreateHand(ctx context.Context, input CreateHandInput) (*schema.Hand, error) {
	var hand schema.Hand
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. The table must exist and have enough seats
		var table schema.Table
		if err := tx.Select("id", "max_players").Where("id = ?", input.TableID).First(&table).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTableNotFound
			}
			return fmt.Errorf("failed to get table: %w", err)
		}
		if len(input.Seats) > table.MaxPlayers {
			return domain.NewValidationError("players",
				fmt.Sprintf("table seats at most %d players", table.MaxPlayers))
		}

		// 2. Every seated player must exist
		playerIDs := make([]string, 0, len(input.Seats))
		for _, seat := range input.Seats {
			playerIDs = append(playerIDs, seat.PlayerID)
		}
		var found []string
		if err := tx.Model(&schema.Player{}).Where("id IN ?", playerIDs).Pluck("id", &found).Error; err != nil {
			return fmt.Errorf("failed to get players: %w", err)
		}
		if missing := firstMissing(playerIDs, found); missing != "" {
			return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, missing)
		}

		// 3. The hand number must be free for this table
		var existing int64
		if err := tx.Model(&schema.Hand{}).
			Where("table_id = ? AND hand_number = ?", input.TableID, input.HandNumber).
			Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check hand number: %w", err)
		}
		if existing > 0 {
			return domain.ErrHandNumberTaken
		}

		// 4. Create the hand
		hand = schema.Hand{
			ID:         uuid.NewString(),
			TableID:    input.TableID,
			HandNumber: input.HandNumber,
			Street:     domain.StreetPreflop,
			Pot:        decimal.Zero,
			Rake:       decimal.Zero,
		}
		if err := tx.Omit(clause.Associations).Create(&hand).Error; err != nil {
			if translated := translateConstraintError(err); translated != nil {
				return translated
			}
			return fmt.Errorf("failed to create hand: %w", err)
		}

		// 5. Seat the players; ending chips start at the starting stack
		seats := make([]schema.PlayerInHand, 0, len(input.Seats))
		for _, seat := range input.Seats {
			cards, err := schema.EncodeHoleCards(seat.Cards)
			if err != nil {
				return fmt.Errorf("failed to encode hole cards: %w", err)
			}
			seats = append(seats, schema.PlayerInHand{
				ID:            uuid.NewString(),
				HandID:        hand.ID,
				PlayerID:      seat.PlayerID,
				Position:      seat.Position,
				StartingChips: seat.StartingChips,
				EndingChips:   seat.StartingChips,
				Cards:         cards,
				Won:           decimal.Zero,
				ShowedDown:    false,
			})
		}
		if err := tx.Omit(clause.Associations).Create(&seats).Error; err != nil {
			if translated := translateConstraintError(err); translated != nil {
				return translated
			}
			return fmt.Errorf("failed to create seats: %w", err)
		}

		hand.Players = seats
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortSeats(hand.Players)
	return &hand, nil
}

// GetHandByID retrieves a hand with its seats and ordered actions
func (s *pgStore) GetHandByID(ctx context.Context, id string) (*schema.Hand, error) {
	var hand schema.Hand
	err := s.db.WithContext(ctx).
		Preload("Table").
		Preload("Players.Player").
		Preload("Actions", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		}).
		Preload("Actions.Player").
		Where("id = ?", id).
		First(&hand).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hand: %w", err)
	}

	sortSeats(hand.Players)
	return &hand, nil
}

// AppendAction appends an action to a hand.
// The hand row is locked for the whole transaction so concurrent appends to the same hand
// are serialized; the sequence is max+1 and uq_actions_hand_sequence backs it.
func (s *pgStore) AppendAction(ctx context.Context, input AppendActionInput) (*AppendActionResult, error) {
	var result AppendActionResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the hand
		hand, err := lockHand(tx, input.HandID)
		if err != nil {
			return err
		}
		if hand.Completed() {
			return domain.ErrHandCompleted
		}

		// 2. The acting player must exist and be seated
		var players int64
		if err := tx.Model(&schema.Player{}).Where("id = ?", input.PlayerID).Count(&players).Error; err != nil {
			return fmt.Errorf("failed to get player: %w", err)
		}
		if players == 0 {
			return fmt.Errorf("%w: %s", domain.ErrPlayerNotFound, input.PlayerID)
		}
		var seats int64
		if err := tx.Model(&schema.PlayerInHand{}).
			Where("hand_id = ? AND player_id = ?", input.HandID, input.PlayerID).
			Count(&seats).Error; err != nil {
			return fmt.Errorf("failed to get seat: %w", err)
		}
		if seats == 0 {
			return domain.NewValidationError("playerId", "player is not seated in this hand")
		}

		// 3. Next sequence number
		var maxSequence int64
		if err := tx.Model(&schema.Action{}).
			Where("hand_id = ?", input.HandID).
			Select("COALESCE(MAX(sequence), 0)").
			Scan(&maxSequence).Error; err != nil {
			return fmt.Errorf("failed to get last sequence: %w", err)
		}

		// 4. Insert the action
		action := schema.Action{
			ID:         uuid.NewString(),
			HandID:     input.HandID,
			PlayerID:   input.PlayerID,
			Street:     input.Street,
			ActionType: input.ActionType,
			Amount:     input.Amount,
			Sequence:   maxSequence + 1,
			Timestamp:  input.Timestamp,
		}
		if err := tx.Omit(clause.Associations).Create(&action).Error; err != nil {
			return fmt.Errorf("failed to create action: %w", err)
		}

		// 5. Grow the pot for chip-moving actions
		if input.ActionType.AddsToPot() && input.Amount.IsPositive() {
			if err := tx.Model(&schema.Hand{}).
				Where("id = ?", input.HandID).
				Updates(map[string]any{
					"pot":        gorm.Expr("pot + ?", input.Amount),
					"updated_at": input.Timestamp,
				}).Error; err != nil {
				return fmt.Errorf("failed to update pot: %w", err)
			}
			if err := tx.Where("id = ?", input.HandID).First(hand).Error; err != nil {
				return fmt.Errorf("failed to reload hand: %w", err)
			}
		}

		result.Action = &action
		result.Hand = hand
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CompleteHand moves a hand to showdown and records rake computed from its current pot
func (s *pgStore) CompleteHand(ctx context.Context, handID string) (*CompleteHandResult, error) {
	var result CompleteHandResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hand, err := lockHand(tx, handID)
		if err != nil {
			return err
		}

		rake := domain.CalculateRake(hand.Pot)
		if err := tx.Model(&schema.Hand{}).
			Where("id = ?", handID).
			Updates(map[string]any{
				"street":     domain.StreetShowdown,
				"rake":       rake.Rake,
				"updated_at": gorm.Expr("now()"),
			}).Error; err != nil {
			return fmt.Errorf("failed to complete hand: %w", err)
		}
		if err := tx.Where("id = ?", handID).First(hand).Error; err != nil {
			return fmt.Errorf("failed to reload hand: %w", err)
		}

		result.Hand = hand
		result.Rake = rake
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// SettleHand records ending chips and winnings of a completed hand
func (s *pgStore) SettleHand(ctx context.Context, input SettleHandInput) (*schema.Hand, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hand, err := lockHand(tx, input.HandID)
		if err != nil {
			return err
		}
		if !hand.Completed() {
			return domain.ErrHandNotCompleted
		}

		var seats []schema.PlayerInHand
		if err := tx.Where("hand_id = ?", input.HandID).Find(&seats).Error; err != nil {
			return fmt.Errorf("failed to get seats: %w", err)
		}
		seated := make(map[string]string, len(seats))
		for _, seat := range seats {
			seated[seat.PlayerID] = seat.ID
		}

		verr := &domain.ValidationError{}
		totalWon := decimal.Zero
		for i, r := range input.Results {
			if _, ok := seated[r.PlayerID]; !ok {
				verr.Addf(fmt.Sprintf("results[%d].playerId", i), "player %s is not seated in this hand", r.PlayerID)
			}
			totalWon = totalWon.Add(r.Won)
		}
		if available := hand.Pot.Sub(hand.Rake); totalWon.GreaterThan(available) {
			verr.Addf("results", "total won %s exceeds pot after rake %s", totalWon.String(), available.String())
		}
		if err := verr.Err(); err != nil {
			return err
		}

		for _, r := range input.Results {
			if err := tx.Model(&schema.PlayerInHand{}).
				Where("id = ?", seated[r.PlayerID]).
				Updates(map[string]any{
					"ending_chips": r.EndingChips,
					"won":          r.Won,
					"showed_down":  r.ShowedDown,
				}).Error; err != nil {
				return fmt.Errorf("failed to settle seat: %w", err)
			}
		}

		if err := tx.Model(&schema.Hand{}).
			Where("id = ?", input.HandID).
			Update("updated_at", gorm.Expr("now()")).Error; err != nil {
			return fmt.Errorf("failed to touch hand: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	hand, err := s.GetHandByID(ctx, input.HandID)
	if err != nil {
		return nil, err
	}
	if hand == nil {
		// Deleted along with its table right after settling
		logger.WarnCtx(ctx, "Settled hand disappeared before reload", zap.String("handID", input.HandID))
		return nil, domain.ErrHandNotFound
	}
	return hand, nil
}

// lockHand selects a hand FOR UPDATE inside tx
func lockHand(tx *gorm.DB, handID string) (*schema.Hand, error) {
	var hand schema.Hand
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", handID).
		First(&hand).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHandNotFound
		}
		return nil, fmt.Errorf("failed to lock hand: %w", err)
	}
	return &hand, nil
}

// firstMissing returns the first ID in want that is not in have
func firstMissing(want, have []string) string {
	present := make(map[string]struct{}, len(have))
	for _, id := range have {
		present[id] = struct{}{}
	}
	for _, id := range want {
		if _, ok := present[id]; !ok {
			return id
		}
	}
	return ""
}

// sortSeats orders seats by position in turn order
func sortSeats(seats []schema.PlayerInHand) {
	sort.SliceStable(seats, func(i, j int) bool {
		return seats[i].Position.Seat() < seats[j].Position.Seat()
	})
}
