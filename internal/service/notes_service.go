package service

import (
	"context"
	"errors"

	"notesapi/internal/models"
	"notesapi/internal/repository"
)

// Domain errors for note flows.
var (
	ErrNoteNotFound = errors.New("note not found")
	ErrUserNotFound = errors.New("user not found")
	ErrEmptyContent = errors.New("content is required")
)

// NotesService implements note CRUD plus sharing and search. Sharing copies
// the note content into a new row owned by the recipient; the source note
// is never touched and ownership is never reassigned.
type NotesService struct {
	notes repository.Notes
	users repository.Users
}

func NewNotesService(notes repository.Notes, users repository.Users) *NotesService {
	return &NotesService{notes: notes, users: users}
}

// List returns every note in the store, in insertion order. Results are
// deliberately not scoped to the caller, matching the original contract.
func (s *NotesService) List(ctx context.Context) ([]models.Note, error) {
	return s.notes.List(ctx)
}

// Get fetches one note by ID.
func (s *NotesService) Get(ctx context.Context, id int) (models.Note, error) {
	n, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return models.Note{}, err
	}
	if n == nil {
		return models.Note{}, ErrNoteNotFound
	}
	return *n, nil
}

// Create stores a new note owned by userID.
func (s *NotesService) Create(ctx context.Context, userID int, content string) (models.Note, error) {
	if content == "" {
		return models.Note{}, ErrEmptyContent
	}
	id, err := s.notes.Create(ctx, userID, content)
	if err != nil {
		return models.Note{}, err
	}
	return models.Note{ID: id, UserID: userID, Content: content}, nil
}

// Update replaces the content of an existing note in place.
func (s *NotesService) Update(ctx context.Context, id int, content string) error {
	if content == "" {
		return ErrEmptyContent
	}
	affected, err := s.notes.UpdateContent(ctx, id, content)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

// Delete removes a note permanently.
func (s *NotesService) Delete(ctx context.Context, id int) error {
	affected, err := s.notes.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

// Share copies the note's content into a new note owned by the user named
// recipientUsername and returns that new note.
func (s *NotesService) Share(ctx context.Context, noteID int, recipientUsername string) (models.Note, error) {
	src, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		return models.Note{}, err
	}
	if src == nil {
		return models.Note{}, ErrNoteNotFound
	}

	recipient, err := s.users.GetByUsername(recipientUsername)
	if err != nil {
		return models.Note{}, err
	}
	if recipient == nil {
		return models.Note{}, ErrUserNotFound
	}

	id, err := s.notes.Create(ctx, recipient.ID, src.Content)
	if err != nil {
		return models.Note{}, err
	}
	return models.Note{ID: id, UserID: recipient.ID, Content: src.Content}, nil
}

// Search returns the caller's notes containing query as a case-sensitive
// substring, in insertion order. An empty result is not an error.
func (s *NotesService) Search(ctx context.Context, userID int, query string) ([]models.Note, error) {
	return s.notes.SearchByOwner(ctx, userID, query)
}
