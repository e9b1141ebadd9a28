package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samridhisinghh987188/saas-contract-dashboard/middleware"
	"github.com/samridhisinghh987188/saas-contract-dashboard/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// memoryKV is a test double for the session key-value store.
type memoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryKV) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memoryKV) Close() error { return nil }

func newAuthTestHandler(t *testing.T) (*AuthHandler, *service.SessionManager) {
	t.Helper()
	manager := service.NewSessionManager(newMemoryKV(), 7*24*time.Hour)
	manager.WaitReady()
	return NewAuthHandler(manager), manager
}

func TestAuthHandlerLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
	}{
		{
			name:           "valid login",
			body:           map[string]string{"username": "alice"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty username",
			body:           map[string]string{"username": ""},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing username",
			body:           map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := newAuthTestHandler(t)

			router := gin.New()
			router.POST("/login", handler.Login)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if tt.expectedStatus == http.StatusOK {
				var response LoginResponse
				if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
					t.Fatalf("Failed to parse response: %v", err)
				}
				if response.Token == "" {
					t.Error("Expected token in response")
				}
				if response.Username != tt.body["username"] {
					t.Errorf("Expected username %s, got %s", tt.body["username"], response.Username)
				}
				if response.ExpiresAt == "" {
					t.Error("Expected expires_at in response")
				}
			}
		})
	}
}

func TestAuthHandlerLogout(t *testing.T) {
	handler, manager := newAuthTestHandler(t)

	if _, err := manager.Login("alice"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	router := gin.New()
	router.POST("/logout", handler.Logout)

	req := httptest.NewRequest("POST", "/logout", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if manager.Current() != nil {
		t.Error("Expected session to be cleared after logout")
	}
}

func TestAuthHandlerGetCurrentUser(t *testing.T) {
	handler, manager := newAuthTestHandler(t)

	user, err := manager.Login("bob")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	router := gin.New()
	router.GET("/me", middleware.SessionAuth(), handler.GetCurrentUser)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+user.Token)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["username"] != "bob" {
		t.Errorf("Expected username bob, got %s", response["username"])
	}
	if response["role"] != "user" {
		t.Errorf("Expected role user, got %s", response["role"])
	}
}

func TestAuthHandlerGetSession(t *testing.T) {
	handler, manager := newAuthTestHandler(t)

	router := gin.New()
	router.GET("/session", handler.GetSession)

	// Unauthenticated
	req := httptest.NewRequest("GET", "/session", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["authenticated"] != false {
		t.Error("Expected authenticated false before login")
	}
	if response["is_loading"] != false {
		t.Error("Expected is_loading false after restore")
	}

	// Authenticated
	if _, err := manager.Login("carol"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/session", nil))

	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["authenticated"] != true {
		t.Error("Expected authenticated true after login")
	}
	if response["username"] != "carol" {
		t.Errorf("Expected username carol, got %v", response["username"])
	}
}
