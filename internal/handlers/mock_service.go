package handlers

import (
	"context"
	"net/http"

	"notesapi/internal/models"
	"notesapi/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpErr error
	loginKey  string
	loginErr  error
	authID    int
	authErr   error

	lastSignUp   service.SignupParams
	lastUsername string
	lastEmail    string
	lastPassword string
	lastAuthKey  string

	signUpCalls int
	loginCalls  int
}

func (m *mockAuth) SignUp(p service.SignupParams) error {
	m.signUpCalls++
	m.lastSignUp = p
	return m.signUpErr
}

func (m *mockAuth) Login(username, email, password string) (string, error) {
	m.loginCalls++
	m.lastUsername = username
	m.lastEmail = email
	m.lastPassword = password
	return m.loginKey, m.loginErr
}

func (m *mockAuth) Authenticate(tokenKey string) (int, error) {
	m.lastAuthKey = tokenKey
	return m.authID, m.authErr
}

type mockNotes struct {
	listResp   []models.Note
	listErr    error
	getResp    models.Note
	getErr     error
	createResp models.Note
	createErr  error
	updateErr  error
	deleteErr  error
	shareResp  models.Note
	shareErr   error
	searchResp []models.Note
	searchErr  error

	lastGetID      int
	lastCreateUser int
	lastContent    string
	lastUpdateID   int
	lastDeleteID   int
	lastShareID    int
	lastRecipient  string
	lastSearchUser int
	lastQuery      string

	createCalls int
	updateCalls int
	deleteCalls int
	shareCalls  int
}

func (m *mockNotes) List(ctx context.Context) ([]models.Note, error) {
	return m.listResp, m.listErr
}

func (m *mockNotes) Get(ctx context.Context, id int) (models.Note, error) {
	m.lastGetID = id
	return m.getResp, m.getErr
}

func (m *mockNotes) Create(ctx context.Context, userID int, content string) (models.Note, error) {
	m.createCalls++
	m.lastCreateUser = userID
	m.lastContent = content
	return m.createResp, m.createErr
}

func (m *mockNotes) Update(ctx context.Context, id int, content string) error {
	m.updateCalls++
	m.lastUpdateID = id
	m.lastContent = content
	return m.updateErr
}

func (m *mockNotes) Delete(ctx context.Context, id int) error {
	m.deleteCalls++
	m.lastDeleteID = id
	return m.deleteErr
}

func (m *mockNotes) Share(ctx context.Context, noteID int, recipientUsername string) (models.Note, error) {
	m.shareCalls++
	m.lastShareID = noteID
	m.lastRecipient = recipientUsername
	return m.shareResp, m.shareErr
}

func (m *mockNotes) Search(ctx context.Context, userID int, query string) ([]models.Note, error) {
	m.lastSearchUser = userID
	m.lastQuery = query
	return m.searchResp, m.searchErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func tokenHeader(key string) http.Header {
	h := http.Header{}
	if key != "" {
		h.Set("Authorization", "Token "+key)
	}
	return h
}
