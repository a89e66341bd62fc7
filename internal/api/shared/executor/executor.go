package executor

import (
	"context"

	"go.uber.org/zap"

	"github.com/feral-file/poker-hand-logger/internal/adapter"
	"github.com/feral-file/poker-hand-logger/internal/api/shared/dto"
	apierrors "github.com/feral-file/poker-hand-logger/internal/api/shared/errors"
	"github.com/feral-file/poker-hand-logger/internal/domain"
	"github.com/feral-file/poker-hand-logger/internal/logger"
	"github.com/feral-file/poker-hand-logger/internal/realtime"
	"github.com/feral-file/poker-hand-logger/internal/store"
)

// Executor is the interface for the API executor.
// Get methods return (nil, nil) when the resource does not exist; mutations return
// an *apierrors.APIError for every failure.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/executor.go -package=mocks -mock_names=Executor=MockExecutor
type Executor interface {
	// Health checks that the database is reachable
	Health(ctx context.Context) (*dto.HealthResponse, error)

	// CreateTable creates a table
	CreateTable(ctx context.Context, req *dto.CreateTableRequest) (*dto.TableResponse, error)
	// ListTables retrieves every table, newest first
	ListTables(ctx context.Context) ([]dto.TableResponse, error)
	// GetTable retrieves a table with its most recent hands
	GetTable(ctx context.Context, id string) (*dto.TableResponse, error)
	// DeleteTable deletes a table with all of its hands
	DeleteTable(ctx context.Context, id string) (*dto.TableResponse, error)

	// CreatePlayer registers a player
	CreatePlayer(ctx context.Context, req *dto.CreatePlayerRequest) (*dto.PlayerResponse, error)
	// ListPlayers retrieves every player with their totals, newest first
	ListPlayers(ctx context.Context) ([]dto.PlayerResponse, error)
	// GetPlayer retrieves a player with their totals and most recent hands
	GetPlayer(ctx context.Context, id string) (*dto.PlayerResponse, error)
	// GetPlayerStats computes the lifetime statistics of a player
	GetPlayerStats(ctx context.Context, id string) (*dto.PlayerStatsResponse, error)

	// CreateHand creates a hand with its seats
	CreateHand(ctx context.Context, req *dto.CreateHandRequest) (*dto.HandDetailResponse, error)
	// GetHand retrieves a hand with its seats and ordered actions
	GetHand(ctx context.Context, id string) (*dto.HandDetailResponse, error)
	// AddAction appends a betting action to a hand
	AddAction(ctx context.Context, handID string, req *dto.AddActionRequest) (*dto.ActionResponse, error)
	// CompleteHand moves a hand to showdown and computes its rake
	CompleteHand(ctx context.Context, handID string) (*dto.CompleteHandResponse, error)
	// SettleHand records the outcome of every seat of a completed hand
	SettleHand(ctx context.Context, handID string, req *dto.SettleHandRequest) (*dto.HandDetailResponse, error)
}

type executor struct {
	store       store.Store
	broadcaster realtime.Broadcaster
	clock       adapter.Clock
}

func NewExecutor(store store.Store, broadcaster realtime.Broadcaster, clock adapter.Clock) Executor {
	return &executor{store: store, broadcaster: broadcaster, clock: clock}
}

func (e *executor) Health(ctx context.Context) (*dto.HealthResponse, error) {
	if err := e.store.Ping(ctx); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("action", "ping database"))
		return nil, apierrors.NewDatabaseError("Database is unreachable")
	}
	return &dto.HealthResponse{Status: "ok", Timestamp: e.clock.Now()}, nil
}

func (e *executor) CreateTable(ctx context.Context, req *dto.CreateTableRequest) (*dto.TableResponse, error) {
	table, err := e.store.CreateTable(ctx, store.CreateTableInput{
		Name:       req.Name,
		GameType:   req.GameType,
		SmallBlind: req.SmallBlind,
		BigBlind:   req.BigBlind,
		MaxPlayers: req.MaxPlayers,
	})
	if err != nil {
		return nil, apierrors.FromDomain(ctx, err, "create table")
	}
	return dto.MapTableToDTO(table), nil
}

func (e *executor) ListTables(ctx context.Context) ([]dto.TableResponse, error) {
	tables, err := e.store.ListTables(ctx)
	if err != nil {
		return nil, apierrors.FromDomain(ctx, err, "list tables")
	}
	return dto.MapTablesToDTO(tables), nil
}

func (e *executor) GetTable(ctx context.Context, id string) (*dto.TableResponse, error) {
	if !dto.IsValidID(id) {
		return nil, nil
	}

	table, err := e.store.GetTableByID(ctx, id)
	if err != nil {
		return nil, apierrors.FromDomain(ctx, err, "get table")
	}
	if table == nil {
		return nil, nil
	}

	hands, err := e.store.GetRecentHandsByTableID(ctx, id, domain.RecentHandsPerTable)
	if err != nil {
		return nil, apierrors.FromDomain(ctx, err, "get table hands")
	}

	tableDTO := dto.MapTableToDTO(table)
	tableDTO.RecentHands = dto.MapHandsToDTO(hands)
	return tableDTO, nil
}

func (e *executor) DeleteTable(ctx context.Context, id string) (*dto.TableResponse, error) {
	if !dto.IsValidID(id) {
		return nil, apierrors.FromDomain(ctx, domain.ErrTableNotFound, "delete table")
	}

	table, err := e.store.DeleteTable(ctx, id)
	if err != nil {
		return nil, apierrors.FromDomain(ctx, err, "delete table")
	}

	tableDTO := dto.MapTableToDTO(table)
	e.broadcast(ctx, table.ID, domain.EventTableUpdated, dto.TableDeletedPayload{Table: *tableDTO, Deleted: true})
	return tableDTO, nil
}

func (e *executor) CreatePlayer(ctx context.Context, req *dto.CreatePlayerRequest) (*dto.PlayerResponse, error) {
	player, err := e.store.CreatePlayer(ctx, store.CreatePlayerInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return nil, apierrors.FromDomain(ctx, err, "create player")
	}
	return dto.MapNewPlayerToDTO(player), nil
}

func (e *executor) ListPlayers(ctx context.Context) ([]dto.PlayerResponse, error) {
	players, err := e.store.ListPlayers(ctx)
	if err != nil {
		return nil, apierrors.FromDomain(ctx, err, "list players")
	}
	return dto.MapPlayersToDTO(players), nil
}

func (e *executor) GetPlayer(ctx context.Context, id string) (*dto.PlayerResponse, error) {
	if !dto.IsValidID(id) {
		return nil, nil
	}

	player, err := e.store.GetPlayerByID(ctx, id)
	if err != nil {
		return nil, apierrors.FromDomain(ctx, err, "get player")
	}
	if player == nil {
		return nil, nil
	}

	seats, err := e.store.GetRecentSeatsByPlayerID(ctx, id, domain.RecentHandsPerPlayer)
	if err != nil {
		return nil, apierrors.FromDomain(ctx, err, "get player hands")
	}

	playerDTO := dto.MapPlayerToDTO(player)
	playerDTO.RecentHands = dto.MapSeatsToDTO(seats)
	return playerDTO, nil
}

func (e *executor) GetPlayerStats(ctx context.Context, id string) (*dto.PlayerStatsResponse, error) {
	if !dto.IsValidID(id) {
		return nil, nil
	}

	player, err := e.store.GetPlayerByID(ctx, id)
	if err != nil {
		return nil, apierrors.FromDomain(ctx, err, "get player")
	}
	if player == nil {
		return nil, nil
	}

	results, err := e.store.GetSeatResultsByPlayerID(ctx, id)
	if err != nil {
		return nil, apierrors.FromDomain(ctx, err, "get player results")
	}
	return dto.MapPlayerStatsToDTO(id, domain.ComputePlayerStats(results)), nil
}

func (e *executor) CreateHand(ctx context.Context, req *dto.CreateHandRequest) (*dto.HandDetailResponse, error) {
	seats := make([]store.SeatInput, 0, len(req.Players))
	for _, p := range req.Players {
		seats = append(seats, store.SeatInput{
			PlayerID:      p.PlayerID,
			Position:      p.Position,
			StartingChips: p.StartingChips,
			Cards:         p.Cards,
		})
	}

	hand, err := e.store.CreateHand(ctx, store.CreateHandInput{
		TableID:    req.TableID,
		HandNumber: req.HandNumber,
		Seats:      seats,
	})
	if err != nil {
		return nil, apierrors.FromDomain(ctx, err, "create hand")
	}

	handDTO := dto.MapHandDetailToDTO(hand)
	e.broadcast(ctx, hand.TableID, domain.EventHandCreated, handDTO)
	return handDTO, nil
}

func (e *executor) GetHand(ctx context.Context, id string) (*dto.HandDetailResponse, error) {
	if !dto.IsValidID(id) {
		return nil, nil
	}

	hand, err := e.store.GetHandByID(ctx, id)
	if err != nil {
		return nil, apierrors.FromDomain(ctx, err, "get hand")
	}
	return dto.MapHandDetailToDTO(hand), nil
}

func (e *executor) AddAction(ctx context.Context, handID string, req *dto.AddActionRequest) (*dto.ActionResponse, error) {
	if !dto.IsValidID(handID) {
		return nil, apierrors.FromDomain(ctx, domain.ErrHandNotFound, "add action")
	}

	result, err := e.store.AppendAction(ctx, store.AppendActionInput{
		HandID:     handID,
		PlayerID:   req.PlayerID,
		Street:     req.Street,
		ActionType: req.ActionType,
		Amount:     req.Amount,
		Timestamp:  e.clock.Now(),
	})
	if err != nil {
		return nil, apierrors.FromDomain(ctx, err, "add action")
	}

	actionDTO := dto.MapActionToDTO(result.Action)
	tableID := result.Hand.TableID
	e.broadcast(ctx, tableID, domain.EventActionAdded, dto.ActionAddedPayload{HandID: handID, Action: *actionDTO})
	e.broadcast(ctx, tableID, domain.EventHandUpdated, dto.MapHandToDTO(result.Hand))
	return actionDTO, nil
}

func (e *executor) CompleteHand(ctx context.Context, handID string) (*dto.CompleteHandResponse, error) {
	if !dto.IsValidID(handID) {
		return nil, apierrors.FromDomain(ctx, domain.ErrHandNotFound, "complete hand")
	}

	result, err := e.store.CompleteHand(ctx, handID)
	if err != nil {
		return nil, apierrors.FromDomain(ctx, err, "complete hand")
	}

	completeDTO := dto.MapCompleteHandToDTO(result)
	e.broadcast(ctx, result.Hand.TableID, domain.EventHandCompleted, completeDTO)
	return completeDTO, nil
}

func (e *executor) SettleHand(ctx context.Context, handID string, req *dto.SettleHandRequest) (*dto.HandDetailResponse, error) {
	if !dto.IsValidID(handID) {
		return nil, apierrors.FromDomain(ctx, domain.ErrHandNotFound, "settle hand")
	}

	results := make([]store.SeatSettlement, 0, len(req.Results))
	for _, r := range req.Results {
		results = append(results, store.SeatSettlement{
			PlayerID:    r.PlayerID,
			EndingChips: r.EndingChips,
			Won:         r.Won,
			ShowedDown:  r.ShowedDown,
		})
	}

	hand, err := e.store.SettleHand(ctx, store.SettleHandInput{HandID: handID, Results: results})
	if err != nil {
		return nil, apierrors.FromDomain(ctx, err, "settle hand")
	}

	handDTO := dto.MapHandDetailToDTO(hand)
	e.broadcast(ctx, hand.TableID, domain.EventHandUpdated, handDTO)
	return handDTO, nil
}

// broadcast publishes a table event. Failures are logged and never fail the request.
func (e *executor) broadcast(ctx context.Context, tableID string, kind domain.EventKind, payload any) {
	if err := e.broadcaster.Publish(ctx, tableID, kind, payload); err != nil {
		logger.WarnCtx(ctx, "Failed to broadcast table event",
			zap.String("tableID", tableID),
			zap.String("event", string(kind)),
			zap.Error(err),
		)
	}
}
