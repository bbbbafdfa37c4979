package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"notesapi/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserSQLite)(nil)

const (
	insertUserSQL = `INSERT INTO users (username, email, password_hash, first_name, last_name) VALUES (?, ?, ?, ?, ?)`

	selectUserByUsernameSQL = `SELECT id, username, email, password_hash, first_name, last_name FROM users WHERE username = ?`
	selectUserByEmailSQL    = `SELECT id, username, email, password_hash, first_name, last_name FROM users WHERE email = ?`
)

// Create inserts a new user and returns its ID.
func (r *UserSQLite) Create(u models.User) (int, error) {
	res, err := r.db.Exec(insertUserSQL, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName)
	if err != nil {
		return 0, fmt.Errorf("insert user %q: %w", u.Username, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Username, err)
	}
	return int(lastID), nil
}

// GetByUsername fetches a user by username. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByUsername(username string) (*models.User, error) {
	u, err := r.scanUser(r.db.QueryRow(selectUserByUsernameSQL, username))
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", username, err)
	}
	return u, nil
}

// GetByEmail fetches a user by email. Email is not unique; the first row
// in insertion order wins. Returns (nil, nil) if not found.
func (r *UserSQLite) GetByEmail(email string) (*models.User, error) {
	u, err := r.scanUser(r.db.QueryRow(selectUserByEmailSQL, email))
	if err != nil {
		return nil, fmt.Errorf("select user by email %q: %w", email, err)
	}
	return u, nil
}

func (r *UserSQLite) scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
