package repository

import (
	"context"
	"database/sql"

	"notesapi/internal/models"
)

type Users interface {
	Create(u models.User) (int, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

type Tokens interface {
	Create(userID int, key string) error
	GetByUserID(userID int) (*models.Token, error)
	GetByKey(key string) (*models.Token, error)
}

type Notes interface {
	Create(ctx context.Context, userID int, content string) (int, error)
	GetByID(ctx context.Context, id int) (*models.Note, error)
	List(ctx context.Context) ([]models.Note, error)
	UpdateContent(ctx context.Context, id int, content string) (int64, error)
	Delete(ctx context.Context, id int) (int64, error)
	SearchByOwner(ctx context.Context, userID int, query string) ([]models.Note, error)
}

type Repository struct {
	Users  Users
	Tokens Tokens
	Notes  Notes
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:  NewUserSQLite(db),
		Tokens: NewTokenSQLite(db),
		Notes:  NewNoteSQLite(db),
	}
}
