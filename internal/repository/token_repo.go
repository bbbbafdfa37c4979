package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"notesapi/internal/models"
)

type TokenSQLite struct {
	db *sql.DB
}

func NewTokenSQLite(db *sql.DB) *TokenSQLite {
	return &TokenSQLite{db: db}
}

var _ Tokens = (*TokenSQLite)(nil)

const (
	insertTokenSQL         = `INSERT INTO tokens (key, user_id) VALUES (?, ?)`
	selectTokenByUserIDSQL = `SELECT key, user_id FROM tokens WHERE user_id = ?`
	selectTokenByKeySQL    = `SELECT key, user_id FROM tokens WHERE key = ?`
)

// Create stores the token key for a user. The user_id column is unique,
// so a second token for the same user fails.
func (r *TokenSQLite) Create(userID int, key string) error {
	if _, err := r.db.Exec(insertTokenSQL, key, userID); err != nil {
		return fmt.Errorf("insert token for user %d: %w", userID, err)
	}
	return nil
}

// GetByUserID fetches the token of a user. Returns (nil, nil) if not found.
func (r *TokenSQLite) GetByUserID(userID int) (*models.Token, error) {
	t, err := scanToken(r.db.QueryRow(selectTokenByUserIDSQL, userID))
	if err != nil {
		return nil, fmt.Errorf("select token for user %d: %w", userID, err)
	}
	return t, nil
}

// GetByKey resolves a bearer key to its token row. Returns (nil, nil) if
// the key is unknown.
func (r *TokenSQLite) GetByKey(key string) (*models.Token, error) {
	t, err := scanToken(r.db.QueryRow(selectTokenByKeySQL, key))
	if err != nil {
		return nil, fmt.Errorf("select token by key: %w", err)
	}
	return t, nil
}

func scanToken(row *sql.Row) (*models.Token, error) {
	var t models.Token
	err := row.Scan(&t.Key, &t.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}
