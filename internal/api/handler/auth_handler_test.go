package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/fieldline/crm-api/internal/core/domain"
	"github.com/fieldline/crm-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.LoginResult, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			if input.Name != "Alice" || input.Role != domain.RoleEmployee {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: 1, Name: input.Name, Email: input.Email, PasswordHash: "hash", Role: input.Role}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"name":"Alice","email":"alice@example.com","password":"12345678","role":"EMPLOYEE"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "Alice" || resp["role"] != "EMPLOYEE" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	// The password hash must never be serialized.
	if _, leaked := resp["password"]; leaked {
		t.Fatalf("password leaked in response")
	}
	if strings.Contains(rec.Body.String(), "hash") {
		t.Fatalf("password hash leaked in response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_CollectsAllViolations(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	// Missing name, malformed email, four-character password.
	c, _ := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"email":"not-an-email","password":"1234","role":"EMPLOYEE"}`)

	err := h.Register(c)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(ve.Details) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(ve.Details), ve.Details)
	}
}

func TestAuthHandler_Register_Conflict(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			return nil, domain.Conflict("Email already exists")
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"name":"Bob","email":"bob@example.com","password":"12345678","role":"ADMIN"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register", "not-json")

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return &ports.LoginResult{
				AccessToken: "token-123",
				User:        &domain.User{ID: 1, Email: email, Role: domain.RoleAdmin},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"12345678"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["accessToken"] != "token-123" {
		t.Fatalf("missing access token: %+v", resp)
	}
}

func TestAuthHandler_Login_Unauthorized(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return nil, domain.Unauthorized("Invalid credentials")
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrongpass"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
