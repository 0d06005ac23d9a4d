package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/tracking-system/internal/core/domain"
	"github.com/99minutos/tracking-system/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, in ports.RegisterInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.registerFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			if in.Email != "alice@example.com" || in.Role != "client" || in.ClientID != "client_1" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{Username: in.Username, Email: in.Email, Role: in.Role, ClientID: in.ClientID}, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/auth/register",
		`{"username":"alice","password":"secret-pw","email":"alice@example.com","role":"client","client_id":"client_1"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "alice@example.com" || user["role"] != "client" || user["client_id"] != "client_1" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["PasswordHash"]; leaked {
		t.Fatalf("password hash leaked: %+v", user)
	}
}

func TestAuthHandler_Register_UserExists(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/auth/register",
		`{"password":"secret-pw","email":"bob@example.com","role":"admin"}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Register(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	cases := map[string]string{
		"not json":          "not-json",
		"missing email":     `{"password":"secret-pw","role":"admin"}`,
		"short password":    `{"email":"a@example.com","password":"x","role":"admin"}`,
		"unknown role":      `{"email":"a@example.com","password":"secret-pw","role":"root"}`,
		"client without id": `{"email":"a@example.com","password":"secret-pw","role":"client"}`,
		"malformed email":   `{"email":"nope","password":"secret-pw","role":"admin"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			e := newEcho()
			stub := &stubAuthService{
				registerFn: func(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
					t.Fatalf("should not be called")
					return nil, nil
				},
			}
			handler := NewAuthHandler(stub)

			rec := httptest.NewRecorder()
			c := e.NewContext(jsonRequest(http.MethodPost, "/auth/register", body), rec)

			_ = handler.Register(c)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", &domain.User{Username: "alice", Role: "admin"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"secret"}`)
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

	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["username"] != "alice" || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

func TestAuthHandler_Login_Errors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEcho()
			stub := &stubAuthService{
				loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
					return "", nil, tc.err
				},
			}
			handler := NewAuthHandler(stub)

			req := jsonRequest(http.MethodPost, "/auth/login", `{"email":"ghost@example.com","password":"pwd"}`)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			_ = handler.Login(c)

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := jsonRequest(http.MethodPost, "/auth/login", "not-json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
