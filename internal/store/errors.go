package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/feral-file/poker-hand-logger/internal/domain"
)

// PostgreSQL error codes handled by the store
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// constraintErrors maps constraint names to the domain error they represent
var constraintErrors = map[string]error{
	"uq_tables_name":                   domain.ErrTableNameTaken,
	"uq_players_name":                  domain.ErrPlayerNameTaken,
	"uq_players_email":                 domain.ErrPlayerEmailTaken,
	"uq_hands_table_hand_number":       domain.ErrHandNumberTaken,
	"hands_table_id_fkey":              domain.ErrTableNotFound,
	"player_in_hands_player_id_fkey":   domain.ErrPlayerNotFound,
	"actions_player_id_fkey":           domain.ErrPlayerNotFound,
	"uq_player_in_hands_hand_player":   domain.NewValidationError("players", "a player may only be seated once per hand"),
	"uq_player_in_hands_hand_position": domain.NewValidationError("players", "a position may only be taken once per hand"),
}

// translateConstraintError converts unique and foreign key violations on known constraints
// into domain errors. It returns nil for any other error.
func translateConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	if pgErr.Code != pgUniqueViolation && pgErr.Code != pgForeignKeyViolation {
		return nil
	}
	if translated, ok := constraintErrors[pgErr.ConstraintName]; ok {
		return translated
	}
	return nil
}
