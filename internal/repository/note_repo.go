package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"notesapi/internal/models"
)

type NoteSQLite struct {
	db *sql.DB
}

func NewNoteSQLite(db *sql.DB) *NoteSQLite {
	return &NoteSQLite{db: db}
}

var _ Notes = (*NoteSQLite)(nil)

const (
	insertNoteSQL     = `INSERT INTO notes (user_id, content) VALUES (?, ?)`
	selectNoteByIDSQL = `SELECT id, user_id, content FROM notes WHERE id = ?`
	selectNotesSQL    = `SELECT id, user_id, content FROM notes ORDER BY id ASC`
	updateNoteSQL     = `UPDATE notes SET content = ? WHERE id = ?`
	deleteNoteSQL     = `DELETE FROM notes WHERE id = ?`
	// instr keeps the match case-sensitive regardless of LIKE pragmas.
	searchNotesSQL = `SELECT id, user_id, content FROM notes WHERE user_id = ? AND instr(content, ?) > 0 ORDER BY id ASC`
)

// Create inserts a note owned by userID and returns the new note ID.
func (r *NoteSQLite) Create(ctx context.Context, userID int, content string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertNoteSQL, userID, content)
	if err != nil {
		return 0, fmt.Errorf("insert note for user %d: %w", userID, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for note: %w", err)
	}
	return int(lastID), nil
}

// GetByID fetches a note by ID. Returns (nil, nil) if not found.
func (r *NoteSQLite) GetByID(ctx context.Context, id int) (*models.Note, error) {
	var n models.Note
	err := r.db.QueryRowContext(ctx, selectNoteByIDSQL, id).Scan(&n.ID, &n.UserID, &n.Content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select note %d: %w", id, err)
	}
	return &n, nil
}

// List returns every note in the store in insertion order.
func (r *NoteSQLite) List(ctx context.Context) ([]models.Note, error) {
	rows, err := r.db.QueryContext(ctx, selectNotesSQL)
	if err != nil {
		return nil, fmt.Errorf("select notes: %w", err)
	}
	return collectNotes(rows)
}

// UpdateContent replaces the content of a note. Returns the number of
// affected rows so callers can distinguish a missing note.
func (r *NoteSQLite) UpdateContent(ctx context.Context, id int, content string) (int64, error) {
	res, err := r.db.ExecContext(ctx, updateNoteSQL, content, id)
	if err != nil {
		return 0, fmt.Errorf("update note %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for note %d: %w", id, err)
	}
	return affected, nil
}

// Delete removes a note permanently. Returns the number of affected rows.
func (r *NoteSQLite) Delete(ctx context.Context, id int) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteNoteSQL, id)
	if err != nil {
		return 0, fmt.Errorf("delete note %d: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for note %d: %w", id, err)
	}
	return affected, nil
}

// SearchByOwner returns userID's notes containing query as a substring,
// in insertion order.
func (r *NoteSQLite) SearchByOwner(ctx context.Context, userID int, query string) ([]models.Note, error) {
	rows, err := r.db.QueryContext(ctx, searchNotesSQL, userID, query)
	if err != nil {
		return nil, fmt.Errorf("search notes for user %d: %w", userID, err)
	}
	return collectNotes(rows)
}

func collectNotes(rows *sql.Rows) ([]models.Note, error) {
	defer rows.Close()

	out := make([]models.Note, 0, 16)
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Content); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
