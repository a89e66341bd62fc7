package executor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/poker-hand-logger/internal/api/shared/dto"
	apierrors "github.com/feral-file/poker-hand-logger/internal/api/shared/errors"
	"github.com/feral-file/poker-hand-logger/internal/api/shared/executor"
	"github.com/feral-file/poker-hand-logger/internal/domain"
	"github.com/feral-file/poker-hand-logger/internal/mocks"
	"github.com/feral-file/poker-hand-logger/internal/store"
	"github.com/feral-file/poker-hand-logger/internal/store/schema"
)

const (
	tableID  = "0b6f3a52-1f5e-4a7b-8d33-5d2c7e9a4f10"
	handID   = "7c0e1d2a-3b4c-4d5e-8f60-718293a4b5c6"
	playerID = "6f1c2f7e-8f0a-4c55-9d0e-3f4b8a1b2c01"
)

type testExecutorMocks struct {
	ctrl        *gomock.Controller
	store       *mocks.MockStore
	broadcaster *mocks.MockBroadcaster
	clock       *mocks.MockClock
	executor    executor.Executor
}

func setupTestExecutor(t *testing.T) *testExecutorMocks {
	ctrl := gomock.NewController(t)
	tm := &testExecutorMocks{
		ctrl:        ctrl,
		store:       mocks.NewMockStore(ctrl),
		broadcaster: mocks.NewMockBroadcaster(ctrl),
		clock:       mocks.NewMockClock(ctrl),
	}
	tm.executor = executor.NewExecutor(tm.store, tm.broadcaster, tm.clock)
	return tm
}

func requireAPIError(t *testing.T, err error, code apierrors.ErrorCode) *apierrors.APIError {
	t.Helper()
	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, code, apiErr.Code)
	return apiErr
}

func testHand() *schema.Hand {
	return &schema.Hand{
		ID:         handID,
		TableID:    tableID,
		HandNumber: 1,
		Street:     domain.StreetPreflop,
		Pot:        decimal.NewFromInt(30),
		Rake:       decimal.Zero,
	}
}

func TestExecutor_Health(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.store.EXPECT().Ping(gomock.Any()).Return(nil)
	tm.clock.EXPECT().Now().Return(now)

	health, err := tm.executor.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, now, health.Timestamp)

	tm.store.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	_, err = tm.executor.Health(context.Background())
	apiErr := requireAPIError(t, err, apierrors.ErrCodeDatabaseError)
	assert.Equal(t, "Database is unreachable", apiErr.Message)
	assert.Empty(t, apiErr.Details)
}

func TestExecutor_CreateTable(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	req := &dto.CreateTableRequest{
		Name:       "High Stakes",
		GameType:   domain.GameTypeCash,
		SmallBlind: decimal.NewFromInt(1),
		BigBlind:   decimal.NewFromInt(2),
		MaxPlayers: 6,
	}
	tm.store.EXPECT().CreateTable(gomock.Any(), store.CreateTableInput{
		Name:       req.Name,
		GameType:   req.GameType,
		SmallBlind: req.SmallBlind,
		BigBlind:   req.BigBlind,
		MaxPlayers: req.MaxPlayers,
	}).Return(&schema.Table{ID: tableID, Name: req.Name, GameType: req.GameType, MaxPlayers: 6}, nil)

	table, err := tm.executor.CreateTable(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, tableID, table.ID)
	assert.Equal(t, "High Stakes", table.Name)

	tm.store.EXPECT().CreateTable(gomock.Any(), gomock.Any()).Return(nil, domain.ErrTableNameTaken)
	_, err = tm.executor.CreateTable(context.Background(), req)
	apiErr := requireAPIError(t, err, apierrors.ErrCodeConflict)
	assert.Equal(t, "Table name already exists", apiErr.Message)
}

func TestExecutor_GetTable(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().GetTableByID(gomock.Any(), tableID).Return(&schema.Table{ID: tableID, Name: "High Stakes"}, nil)
	tm.store.EXPECT().GetRecentHandsByTableID(gomock.Any(), tableID, domain.RecentHandsPerTable).
		Return([]schema.Hand{*testHand()}, nil)

	table, err := tm.executor.GetTable(context.Background(), tableID)
	require.NoError(t, err)
	require.Len(t, table.RecentHands, 1)
	assert.Equal(t, handID, table.RecentHands[0].ID)

	// Absent
	tm.store.EXPECT().GetTableByID(gomock.Any(), tableID).Return(nil, nil)
	table, err = tm.executor.GetTable(context.Background(), tableID)
	require.NoError(t, err)
	assert.Nil(t, table)

	// Malformed IDs never reach the store
	table, err = tm.executor.GetTable(context.Background(), "not-a-uuid")
	require.NoError(t, err)
	assert.Nil(t, table)
}

func TestExecutor_DeleteTable(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().DeleteTable(gomock.Any(), tableID).Return(&schema.Table{ID: tableID, Name: "High Stakes"}, nil)
	tm.broadcaster.EXPECT().Publish(gomock.Any(), tableID, domain.EventTableUpdated, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, _ domain.EventKind, payload any) error {
			deleted, ok := payload.(dto.TableDeletedPayload)
			require.True(t, ok)
			assert.True(t, deleted.Deleted)
			assert.Equal(t, tableID, deleted.Table.ID)
			return nil
		})

	table, err := tm.executor.DeleteTable(context.Background(), tableID)
	require.NoError(t, err)
	assert.Equal(t, tableID, table.ID)

	tm.store.EXPECT().DeleteTable(gomock.Any(), tableID).Return(nil, domain.ErrTableNotFound)
	_, err = tm.executor.DeleteTable(context.Background(), tableID)
	requireAPIError(t, err, apierrors.ErrCodeNotFound)

	_, err = tm.executor.DeleteTable(context.Background(), "42")
	requireAPIError(t, err, apierrors.ErrCodeNotFound)
}

func TestExecutor_CreatePlayer(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	email := "alice@example.com"
	tm.store.EXPECT().CreatePlayer(gomock.Any(), store.CreatePlayerInput{Name: "alice", Email: &email}).
		Return(&schema.Player{ID: playerID, Name: "alice", Email: &email}, nil)

	player, err := tm.executor.CreatePlayer(context.Background(), &dto.CreatePlayerRequest{Name: "alice", Email: &email})
	require.NoError(t, err)
	assert.Equal(t, playerID, player.ID)
	assert.Zero(t, player.TotalHands)
	assert.True(t, player.TotalWinnings.IsZero())

	tm.store.EXPECT().CreatePlayer(gomock.Any(), gomock.Any()).Return(nil, domain.ErrPlayerEmailTaken)
	_, err = tm.executor.CreatePlayer(context.Background(), &dto.CreatePlayerRequest{Name: "alice2", Email: &email})
	requireAPIError(t, err, apierrors.ErrCodeConflict)
}

func TestExecutor_GetPlayer(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().GetPlayerByID(gomock.Any(), playerID).Return(&store.PlayerWithTotals{
		Player:        schema.Player{ID: playerID, Name: "alice"},
		TotalHands:    3,
		TotalWinnings: decimal.NewFromInt(25),
	}, nil)
	tm.store.EXPECT().GetRecentSeatsByPlayerID(gomock.Any(), playerID, domain.RecentHandsPerPlayer).
		Return([]schema.PlayerInHand{{ID: "seat-1", HandID: handID, PlayerID: playerID, Hand: testHand()}}, nil)

	player, err := tm.executor.GetPlayer(context.Background(), playerID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), player.TotalHands)
	require.Len(t, player.RecentHands, 1)
	require.NotNil(t, player.RecentHands[0].Hand)
	assert.Equal(t, handID, player.RecentHands[0].Hand.ID)

	tm.store.EXPECT().GetPlayerByID(gomock.Any(), playerID).Return(nil, errors.New("boom"))
	_, err = tm.executor.GetPlayer(context.Background(), playerID)
	apiErr := requireAPIError(t, err, apierrors.ErrCodeDatabaseError)
	assert.Equal(t, "Failed to get player", apiErr.Message)
}

func TestExecutor_GetPlayerStats(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.store.EXPECT().GetPlayerByID(gomock.Any(), playerID).Return(&store.PlayerWithTotals{Player: schema.Player{ID: playerID}}, nil)
	tm.store.EXPECT().GetSeatResultsByPlayerID(gomock.Any(), playerID).Return([]domain.SeatResult{
		{StartingChips: decimal.NewFromInt(100), EndingChips: decimal.NewFromInt(150), Won: decimal.NewFromInt(50), ShowedDown: true},
		{StartingChips: decimal.NewFromInt(100), EndingChips: decimal.NewFromInt(80), ShowedDown: true},
	}, nil)

	stats, err := tm.executor.GetPlayerStats(context.Background(), playerID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalHands)
	assert.Equal(t, int64(1), stats.HandsWon)
	assert.True(t, stats.WinRate.Equal(decimal.NewFromInt(50)))
	assert.True(t, stats.TotalProfit.Equal(decimal.NewFromInt(30)))
	assert.True(t, stats.AvgProfitPerHand.Equal(decimal.NewFromInt(15)))

	tm.store.EXPECT().GetPlayerByID(gomock.Any(), playerID).Return(nil, nil)
	stats, err = tm.executor.GetPlayerStats(context.Background(), playerID)
	require.NoError(t, err)
	assert.Nil(t, stats)
}

func TestExecutor_CreateHand(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	req := &dto.CreateHandRequest{
		TableID:    tableID,
		HandNumber: 1,
		Players: []dto.SeatRequest{
			{PlayerID: playerID, Position: domain.PositionSB, StartingChips: decimal.NewFromInt(100), Cards: []string{"As", "Kh"}},
		},
	}
	hand := testHand()
	hand.Players = []schema.PlayerInHand{{ID: "seat-1", HandID: handID, PlayerID: playerID, Position: domain.PositionSB}}

	tm.store.EXPECT().CreateHand(gomock.Any(), store.CreateHandInput{
		TableID:    tableID,
		HandNumber: 1,
		Seats: []store.SeatInput{
			{PlayerID: playerID, Position: domain.PositionSB, StartingChips: decimal.NewFromInt(100), Cards: []string{"As", "Kh"}},
		},
	}).Return(hand, nil)
	tm.broadcaster.EXPECT().Publish(gomock.Any(), tableID, domain.EventHandCreated, gomock.Any()).Return(nil)

	created, err := tm.executor.CreateHand(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, handID, created.Hand.ID)
	require.Len(t, created.Players, 1)
	assert.Empty(t, created.Actions)
}

func TestExecutor_CreateHandErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code apierrors.ErrorCode
	}{
		{"missing table", domain.ErrTableNotFound, apierrors.ErrCodeNotFound},
		{"missing player", domain.ErrPlayerNotFound, apierrors.ErrCodeNotFound},
		{"duplicate hand number", domain.ErrHandNumberTaken, apierrors.ErrCodeConflict},
		{"too many seats", domain.NewValidationError("players", "table seats at most 2 players"), apierrors.ErrCodeValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestExecutor(t)
			defer tm.ctrl.Finish()

			tm.store.EXPECT().CreateHand(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			_, err := tm.executor.CreateHand(context.Background(), &dto.CreateHandRequest{TableID: tableID, HandNumber: 1})
			requireAPIError(t, err, tt.code)
		})
	}
}

func TestExecutor_AddAction(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	hand := testHand()
	action := &schema.Action{
		ID:         "action-1",
		HandID:     handID,
		PlayerID:   playerID,
		Street:     domain.StreetPreflop,
		ActionType: domain.ActionBet,
		Amount:     decimal.NewFromInt(10),
		Sequence:   3,
		Timestamp:  now,
	}

	tm.clock.EXPECT().Now().Return(now)
	tm.store.EXPECT().AppendAction(gomock.Any(), store.AppendActionInput{
		HandID:     handID,
		PlayerID:   playerID,
		Street:     domain.StreetPreflop,
		ActionType: domain.ActionBet,
		Amount:     decimal.NewFromInt(10),
		Timestamp:  now,
	}).Return(&store.AppendActionResult{Action: action, Hand: hand}, nil)

	gomock.InOrder(
		tm.broadcaster.EXPECT().Publish(gomock.Any(), tableID, domain.EventActionAdded, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _ domain.EventKind, payload any) error {
				added, ok := payload.(dto.ActionAddedPayload)
				require.True(t, ok)
				assert.Equal(t, handID, added.HandID)
				assert.Equal(t, int64(3), added.Action.Sequence)
				return nil
			}),
		tm.broadcaster.EXPECT().Publish(gomock.Any(), tableID, domain.EventHandUpdated, gomock.Any()).Return(nil),
	)

	result, err := tm.executor.AddAction(context.Background(), handID, &dto.AddActionRequest{
		PlayerID:   playerID,
		Street:     domain.StreetPreflop,
		ActionType: domain.ActionBet,
		Amount:     decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "action-1", result.ID)
	assert.Equal(t, int64(3), result.Sequence)
}

func TestExecutor_AddActionBroadcastFailureIsSwallowed(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	tm.clock.EXPECT().Now().Return(time.Now())
	tm.store.EXPECT().AppendAction(gomock.Any(), gomock.Any()).
		Return(&store.AppendActionResult{Action: &schema.Action{ID: "action-1", HandID: handID}, Hand: testHand()}, nil)
	tm.broadcaster.EXPECT().Publish(gomock.Any(), tableID, gomock.Any(), gomock.Any()).
		Return(errors.New("hub closed")).Times(2)

	result, err := tm.executor.AddAction(context.Background(), handID, &dto.AddActionRequest{PlayerID: playerID})
	require.NoError(t, err)
	assert.Equal(t, "action-1", result.ID)
}

func TestExecutor_AddActionErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code apierrors.ErrorCode
	}{
		{"missing hand", domain.ErrHandNotFound, apierrors.ErrCodeNotFound},
		{"completed hand", domain.ErrHandCompleted, apierrors.ErrCodeConflict},
		{"unseated player", domain.NewValidationError("playerId", "player is not seated in this hand"), apierrors.ErrCodeValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestExecutor(t)
			defer tm.ctrl.Finish()

			tm.clock.EXPECT().Now().Return(time.Now())
			tm.store.EXPECT().AppendAction(gomock.Any(), gomock.Any()).Return(nil, tt.err)
			_, err := tm.executor.AddAction(context.Background(), handID, &dto.AddActionRequest{PlayerID: playerID})
			requireAPIError(t, err, tt.code)
		})
	}

	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()
	_, err := tm.executor.AddAction(context.Background(), "nope", &dto.AddActionRequest{PlayerID: playerID})
	requireAPIError(t, err, apierrors.ErrCodeNotFound)
}

func TestExecutor_CompleteHand(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	hand := testHand()
	hand.Street = domain.StreetShowdown
	rake := domain.CalculateRake(decimal.NewFromInt(50))
	hand.Rake = rake.Rake

	tm.store.EXPECT().CompleteHand(gomock.Any(), handID).Return(&store.CompleteHandResult{Hand: hand, Rake: rake}, nil)
	tm.broadcaster.EXPECT().Publish(gomock.Any(), tableID, domain.EventHandCompleted, gomock.Any()).Return(nil)

	result, err := tm.executor.CompleteHand(context.Background(), handID)
	require.NoError(t, err)
	assert.Equal(t, handID, result.HandID)
	assert.True(t, result.Pot.Equal(decimal.NewFromInt(50)))
	assert.True(t, result.Rake.Equal(decimal.RequireFromString("2.5")))
	assert.True(t, result.PotAfterRake.Equal(decimal.RequireFromString("47.5")))

	tm.store.EXPECT().CompleteHand(gomock.Any(), handID).Return(nil, domain.ErrHandNotFound)
	_, err = tm.executor.CompleteHand(context.Background(), handID)
	requireAPIError(t, err, apierrors.ErrCodeNotFound)
}

func TestExecutor_SettleHand(t *testing.T) {
	tm := setupTestExecutor(t)
	defer tm.ctrl.Finish()

	req := &dto.SettleHandRequest{Results: []dto.SeatResultRequest{
		{PlayerID: playerID, EndingChips: decimal.NewFromInt(150), Won: decimal.NewFromInt(50), ShowedDown: true},
	}}
	hand := testHand()
	hand.Street = domain.StreetShowdown

	tm.store.EXPECT().SettleHand(gomock.Any(), store.SettleHandInput{
		HandID: handID,
		Results: []store.SeatSettlement{
			{PlayerID: playerID, EndingChips: decimal.NewFromInt(150), Won: decimal.NewFromInt(50), ShowedDown: true},
		},
	}).Return(hand, nil)
	tm.broadcaster.EXPECT().Publish(gomock.Any(), tableID, domain.EventHandUpdated, gomock.Any()).Return(nil)

	settled, err := tm.executor.SettleHand(context.Background(), handID, req)
	require.NoError(t, err)
	assert.Equal(t, domain.StreetShowdown, settled.Hand.Street)

	tm.store.EXPECT().SettleHand(gomock.Any(), gomock.Any()).Return(nil, domain.ErrHandNotCompleted)
	_, err = tm.executor.SettleHand(context.Background(), handID, req)
	requireAPIError(t, err, apierrors.ErrCodeConflict)
}
