package service

import (
	"context"

	"notesapi/internal/models"
	"notesapi/internal/repository"
)

// SignupParams carries the signup input. Names default to "" when the
// client omits them.
type SignupParams struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

type Authorization interface {
	SignUp(p SignupParams) error
	Login(username, email, password string) (string, error)
	Authenticate(tokenKey string) (int, error)
}

// Notes exposes note CRUD, duplicate-on-write sharing and substring search.
type Notes interface {
	List(ctx context.Context) ([]models.Note, error)
	Get(ctx context.Context, id int) (models.Note, error)
	Create(ctx context.Context, userID int, content string) (models.Note, error)
	Update(ctx context.Context, id int, content string) error
	Delete(ctx context.Context, id int) error
	Share(ctx context.Context, noteID int, recipientUsername string) (models.Note, error)
	Search(ctx context.Context, userID int, query string) ([]models.Note, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Notes
	Authorization
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Notes:         NewNotesService(repos.Notes, repos.Users),
		Authorization: NewAuthService(repos.Users, repos.Tokens),
	}
}
