package service

import (
	"context"

	"notesapi/internal/models"
)

// Lightweight in-test mocks for the repository interfaces.

type mockUserRepo struct {
	CreateFn        func(u models.User) (int, error)
	GetByUsernameFn func(username string) (*models.User, error)
	GetByEmailFn    func(email string) (*models.User, error)

	createCalls   []models.User
	getUserCalls  []string
	getEmailCalls []string
}

func (m *mockUserRepo) Create(u models.User) (int, error) {
	m.createCalls = append(m.createCalls, u)
	return m.CreateFn(u)
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	m.getUserCalls = append(m.getUserCalls, username)
	if m.GetByUsernameFn == nil {
		return nil, nil
	}
	return m.GetByUsernameFn(username)
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	m.getEmailCalls = append(m.getEmailCalls, email)
	if m.GetByEmailFn == nil {
		return nil, nil
	}
	return m.GetByEmailFn(email)
}

type mockTokenRepo struct {
	CreateFn      func(userID int, key string) error
	GetByUserIDFn func(userID int) (*models.Token, error)
	GetByKeyFn    func(key string) (*models.Token, error)

	createCalls []struct {
		userID int
		key    string
	}
}

func (m *mockTokenRepo) Create(userID int, key string) error {
	m.createCalls = append(m.createCalls, struct {
		userID int
		key    string
	}{userID: userID, key: key})
	if m.CreateFn == nil {
		return nil
	}
	return m.CreateFn(userID, key)
}

func (m *mockTokenRepo) GetByUserID(userID int) (*models.Token, error) {
	if m.GetByUserIDFn == nil {
		return nil, nil
	}
	return m.GetByUserIDFn(userID)
}

func (m *mockTokenRepo) GetByKey(key string) (*models.Token, error) {
	if m.GetByKeyFn == nil {
		return nil, nil
	}
	return m.GetByKeyFn(key)
}

type mockNoteRepo struct {
	CreateFn        func(userID int, content string) (int, error)
	GetByIDFn       func(id int) (*models.Note, error)
	ListFn          func() ([]models.Note, error)
	UpdateContentFn func(id int, content string) (int64, error)
	DeleteFn        func(id int) (int64, error)
	SearchByOwnerFn func(userID int, query string) ([]models.Note, error)

	createCalls []struct {
		userID  int
		content string
	}
}

func (m *mockNoteRepo) Create(_ context.Context, userID int, content string) (int, error) {
	m.createCalls = append(m.createCalls, struct {
		userID  int
		content string
	}{userID: userID, content: content})
	return m.CreateFn(userID, content)
}

func (m *mockNoteRepo) GetByID(_ context.Context, id int) (*models.Note, error) {
	return m.GetByIDFn(id)
}

func (m *mockNoteRepo) List(_ context.Context) ([]models.Note, error) {
	return m.ListFn()
}

func (m *mockNoteRepo) UpdateContent(_ context.Context, id int, content string) (int64, error) {
	return m.UpdateContentFn(id, content)
}

func (m *mockNoteRepo) Delete(_ context.Context, id int) (int64, error) {
	return m.DeleteFn(id)
}

func (m *mockNoteRepo) SearchByOwner(_ context.Context, userID int, query string) ([]models.Note, error) {
	return m.SearchByOwnerFn(userID, query)
}
