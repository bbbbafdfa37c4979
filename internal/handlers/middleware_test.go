package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"notesapi/internal/service"

	"github.com/gin-gonic/gin"
)

// minimal router wiring only the middleware + a protected endpoint
func newMiddlewareOnlyRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/secure", h.userIDMiddleware, func(c *gin.Context) {
		uid, _ := c.Get("userId")
		c.JSON(http.StatusOK, gin.H{"ok": true, "userId": uid})
	})
	return r
}

func TestUserIDMiddleware_Errors(t *testing.T) {
	type want struct {
		code   int
		errMsg string
	}
	cases := []struct {
		name    string
		header  string
		authErr error
		want    want
	}{
		{
			name:   "missing header",
			header: "",
			want:   want{code: http.StatusUnauthorized, errMsg: "missing Authorization header"},
		},
		{
			name:   "wrong scheme",
			header: "Bearer abc",
			want:   want{code: http.StatusUnauthorized, errMsg: "invalid Authorization header format"},
		},
		{
			name:   "scheme without key",
			header: "Token",
			want:   want{code: http.StatusUnauthorized, errMsg: "invalid Authorization header format"},
		},
		{
			name:    "unknown key",
			header:  "Token bogus",
			authErr: service.ErrInvalidToken,
			want:    want{code: http.StatusUnauthorized, errMsg: "invalid token"},
		},
	}

	for _, tc := range cases {
		tc := tc // capture
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{authErr: tc.authErr}
			s := &service.Service{Authorization: auth}
			r := newMiddlewareOnlyRouter(s)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			r.ServeHTTP(w, req)

			if w.Code != tc.want.code {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.want.code, w.Body.String())
			}

			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error != tc.want.errMsg {
				t.Fatalf("error message: got %q, want %q", out.Error, tc.want.errMsg)
			}
		})
	}
}

func TestUserIDMiddleware_SuccessSetsUserIDAndProceeds(t *testing.T) {
	auth := &mockAuth{authID: 123}
	s := &service.Service{Authorization: auth}
	r := newMiddlewareOnlyRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header = tokenHeader("good-key")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body=%s", w.Code, http.StatusOK, w.Body.String())
	}

	var resp struct {
		OK     bool `json:"ok"`
		UserID int  `json:"userId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !resp.OK || resp.UserID != 123 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if auth.lastAuthKey != "good-key" {
		t.Fatalf("Authenticate got %q, want %q", auth.lastAuthKey, "good-key")
	}
}

func TestProtectedRoutes_RejectMissingToken(t *testing.T) {
	notes := &mockNotes{}
	auth := &mockAuth{authErr: service.ErrInvalidToken}
	r := newTestRouter(&service.Service{Authorization: auth, Notes: notes})

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/notes/"},
		{http.MethodGet, "/notes/1"},
		{http.MethodPost, "/notes/"},
		{http.MethodPut, "/notes/1"},
		{http.MethodDelete, "/notes/1"},
		{http.MethodPost, "/notes/1/share"},
		{http.MethodGet, "/search/test"},
	}

	for _, p := range paths {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(p.method, p.path, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", p.method, p.path, w.Code)
		}
	}

	// no store mutations happened
	if notes.createCalls+notes.updateCalls+notes.deleteCalls+notes.shareCalls != 0 {
		t.Fatalf("unauthenticated calls must not reach the service")
	}
}

func TestRequestIDMiddleware_SetsHeader(t *testing.T) {
	auth := &mockAuth{}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected X-Request-Id header to be set")
	}

	// a caller-provided id is echoed back
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "req-1")
	r.ServeHTTP(w, req)
	if got := w.Header().Get("X-Request-Id"); got != "req-1" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}
