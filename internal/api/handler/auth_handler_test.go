package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/brygada/work-manager/internal/core/domain"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, login, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, login, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, login, password)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, login, password string) (string, *domain.User, error) {
			if login != "brygadzista" || password != "brygadzista123" {
				t.Fatalf("unexpected args: %s %s", login, password)
			}
			return "tok", &domain.User{
				ID:           "1",
				Login:        login,
				PasswordHash: "should-not-leak",
				Role:         domain.RoleCrewLead,
				DisplayName:  "Brygadzista",
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"login":"brygadzista","haslo":"brygadzista123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok" {
		t.Fatalf("expected token in response, got %+v", resp)
	}

	user, ok := resp["uzytkownik"].(map[string]any)
	if !ok {
		t.Fatalf("expected uzytkownik in response")
	}
	if user["login"] != "brygadzista" || user["rola"] != domain.RoleCrewLead || user["nazwa"] != "Brygadzista" {
		t.Fatalf("unexpected profile payload: %+v", user)
	}
	if _, leaked := user["haslo"]; leaked {
		t.Fatalf("password hash leaked into response")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, login, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"login":"x","haslo":"y"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// The error propagates to the central error handler.
	if err := handler.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, login, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
