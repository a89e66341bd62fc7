package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/poker-hand-logger/internal/api/rest"
	"github.com/feral-file/poker-hand-logger/internal/api/shared/dto"
	apierrors "github.com/feral-file/poker-hand-logger/internal/api/shared/errors"
	"github.com/feral-file/poker-hand-logger/internal/domain"
	"github.com/feral-file/poker-hand-logger/internal/mocks"
)

const (
	tableID  = "0b6f3a52-1f5e-4a7b-8d33-5d2c7e9a4f10"
	handID   = "7c0e1d2a-3b4c-4d5e-8f60-718293a4b5c6"
	playerA  = "6f1c2f7e-8f0a-4c55-9d0e-3f4b8a1b2c01"
	playerB  = "6f1c2f7e-8f0a-4c55-9d0e-3f4b8a1b2c02"
	jsonType = "application/json"
)

type envelope struct {
	Success          bool                   `json:"success"`
	Data             json.RawMessage        `json:"data"`
	Error            string                 `json:"error"`
	Code             apierrors.ErrorCode    `json:"code"`
	ValidationErrors []apierrors.FieldError `json:"validationErrors"`
}

type testHandlerMocks struct {
	ctrl     *gomock.Controller
	executor *mocks.MockExecutor
	router   *gin.Engine
}

func setupTestHandler(t *testing.T) *testHandlerMocks {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	tm := &testHandlerMocks{
		ctrl:     ctrl,
		executor: mocks.NewMockExecutor(ctrl),
		router:   gin.New(),
	}
	rest.SetupRoutes(tm.router, rest.NewHandler(tm.executor))
	return tm
}

func (tm *testHandlerMocks) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", jsonType)
	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestHandler_HealthCheck(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tm.executor.EXPECT().Health(gomock.Any()).Return(&dto.HealthResponse{Status: "ok", Timestamp: now}, nil)

	w, env := tm.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"status":"ok","timestamp":"2026-03-01T12:00:00Z"}`, string(env.Data))
}

func TestHandler_CreateTable(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.executor.EXPECT().CreateTable(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req *dto.CreateTableRequest) (*dto.TableResponse, error) {
			assert.Equal(t, "High Stakes", req.Name)
			assert.True(t, req.BigBlind.Equal(decimal.NewFromInt(2)))
			return &dto.TableResponse{ID: tableID, Name: req.Name, GameType: req.GameType, SmallBlind: req.SmallBlind, BigBlind: req.BigBlind, MaxPlayers: req.MaxPlayers}, nil
		})

	w, env := tm.do(t, http.MethodPost, "/api/tables", map[string]any{
		"name": "High Stakes", "gameType": "CASH", "smallBlind": 1, "bigBlind": 2, "maxPlayers": 6,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var table map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &table))
	assert.Equal(t, tableID, table["id"])
	// Amounts are JSON numbers
	assert.Equal(t, float64(2), table["bigBlind"])
}

func TestHandler_CreateTableValidation(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	w, env := tm.do(t, http.MethodPost, "/api/tables", map[string]any{
		"name": "x", "gameType": "CASH", "smallBlind": 1, "bigBlind": 2, "maxPlayers": 12,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, env.Code)
	require.Len(t, env.ValidationErrors, 2)
	assert.Equal(t, "name", env.ValidationErrors[0].Field)
	assert.Equal(t, "maxPlayers", env.ValidationErrors[1].Field)
}

func TestHandler_MalformedBody(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	w, env := tm.do(t, http.MethodPost, "/api/players", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierrors.ErrCodeBadRequest, env.Code)
}

func TestHandler_CreatePlayerConflict(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.executor.EXPECT().CreatePlayer(gomock.Any(), gomock.Any()).
		Return(nil, apierrors.FromDomain(context.Background(), domain.ErrPlayerNameTaken, "create player"))

	w, env := tm.do(t, http.MethodPost, "/api/players", map[string]any{"name": "alice"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apierrors.ErrCodeConflict, env.Code)
	assert.Equal(t, "Player name already exists", env.Error)
}

func TestHandler_GetNotFound(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.executor.EXPECT().GetTable(gomock.Any(), tableID).Return(nil, nil)
	tm.executor.EXPECT().GetPlayer(gomock.Any(), playerA).Return(nil, nil)
	tm.executor.EXPECT().GetPlayerStats(gomock.Any(), playerA).Return(nil, nil)
	tm.executor.EXPECT().GetHand(gomock.Any(), "not-a-uuid").Return(nil, nil)

	for path, message := range map[string]string{
		"/api/tables/" + tableID:             "Table not found",
		"/api/players/" + playerA:            "Player not found",
		"/api/players/" + playerA + "/stats": "Player not found",
		"/api/hands/not-a-uuid":              "Hand not found",
	} {
		w, env := tm.do(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Equal(t, apierrors.ErrCodeNotFound, env.Code, path)
		assert.Equal(t, message, env.Error, path)
	}
}

func TestHandler_ListTables(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.executor.EXPECT().ListTables(gomock.Any()).Return([]dto.TableResponse{{ID: tableID}}, nil)

	w, env := tm.do(t, http.MethodGet, "/api/tables", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var tables []dto.TableResponse
	require.NoError(t, json.Unmarshal(env.Data, &tables))
	require.Len(t, tables, 1)
}

func TestHandler_DeleteTable(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.executor.EXPECT().DeleteTable(gomock.Any(), tableID).Return(&dto.TableResponse{ID: tableID}, nil)
	w, _ := tm.do(t, http.MethodDelete, "/api/tables/"+tableID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	tm.executor.EXPECT().DeleteTable(gomock.Any(), tableID).
		Return(nil, apierrors.FromDomain(context.Background(), domain.ErrTableNotFound, "delete table"))
	w, env := tm.do(t, http.MethodDelete, "/api/tables/"+tableID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Table not found", env.Error)
}

func TestHandler_CreateHand(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	body := map[string]any{
		"tableId":    tableID,
		"handNumber": 1,
		"players": []map[string]any{
			{"playerId": playerA, "position": "SB", "startingChips": 100, "cards": []string{"As", "Kh"}},
			{"playerId": playerB, "position": "BB", "startingChips": 100},
		},
	}
	tm.executor.EXPECT().CreateHand(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, req *dto.CreateHandRequest) (*dto.HandDetailResponse, error) {
			require.Len(t, req.Players, 2)
			assert.Equal(t, []string{"As", "Kh"}, req.Players[0].Cards)
			return &dto.HandDetailResponse{Hand: dto.HandResponse{ID: handID, TableID: tableID}}, nil
		})

	w, env := tm.do(t, http.MethodPost, "/api/hands", body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	// Same card twice never reaches the executor
	body["players"].([]map[string]any)[1]["cards"] = []string{"Kh", "2c"}
	w, env = tm.do(t, http.MethodPost, "/api/hands", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, env.Code)
}

func TestHandler_AddAction(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	body := map[string]any{"playerId": playerA, "street": "PREFLOP", "actionType": "BET", "amount": 10}
	tm.executor.EXPECT().AddAction(gomock.Any(), handID, gomock.Any()).
		Return(&dto.ActionResponse{ID: "action-1", HandID: handID, Sequence: 1}, nil)

	w, env := tm.do(t, http.MethodPost, "/api/hands/"+handID+"/actions", body)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	tm.executor.EXPECT().AddAction(gomock.Any(), handID, gomock.Any()).
		Return(nil, apierrors.FromDomain(context.Background(), domain.ErrHandCompleted, "add action"))
	w, env = tm.do(t, http.MethodPost, "/api/hands/"+handID+"/actions", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Hand is already completed", env.Error)
}

func TestHandler_CompleteAndSettleHand(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.executor.EXPECT().CompleteHand(gomock.Any(), handID).Return(&dto.CompleteHandResponse{
		HandID:       handID,
		Pot:          decimal.NewFromInt(50),
		Rake:         decimal.RequireFromString("2.5"),
		PotAfterRake: decimal.RequireFromString("47.5"),
	}, nil)

	w, env := tm.do(t, http.MethodPatch, "/api/hands/"+handID+"/complete", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"handId":"`+handID+`","pot":50,"rake":2.5,"potAfterRake":47.5}`, string(env.Data))

	tm.executor.EXPECT().SettleHand(gomock.Any(), handID, gomock.Any()).
		Return(nil, apierrors.FromDomain(context.Background(), domain.ErrHandNotCompleted, "settle hand"))
	w, env = tm.do(t, http.MethodPatch, "/api/hands/"+handID+"/settle", map[string]any{
		"results": []map[string]any{{"playerId": playerA, "endingChips": 150, "won": 50, "showedDown": true}},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apierrors.ErrCodeConflict, env.Code)
}

func TestHandler_InternalErrorHidesDetails(t *testing.T) {
	tm := setupTestHandler(t)
	defer tm.ctrl.Finish()

	tm.executor.EXPECT().ListPlayers(gomock.Any()).
		Return(nil, apierrors.FromDomain(context.Background(), errors.New("pq: connection reset"), "list players"))

	w, _ := tm.do(t, http.MethodGet, "/api/players", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection reset")
	assert.Contains(t, w.Body.String(), "Failed to list players")
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusTooManyRequests, rest.StatusCode(apierrors.ErrCodeTooManyRequests))
	assert.Equal(t, http.StatusInternalServerError, rest.StatusCode(apierrors.ErrorCode("unknown")))
}
