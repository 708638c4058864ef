package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/eappleew/Chat-Cheappt/internal/domain/user"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/handlers/authhandler"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/responses"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/routes/auth"
	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
)

type MockUserRepository struct {
	CreateFunc      func(ctx context.Context, usr *user.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*user.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, usr *user.User) error {
	return m.CreateFunc(ctx, usr)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return m.FindByEmailFunc(ctx, email)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return nil, nil
}

func setupRouter(repo *MockUserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	route := auth.NewAuthRoute(authhandler.NewAuthHandler(user.NewService(repo, 10)))
	route.RegisterRouter(engine)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestSignupSuccess(t *testing.T) {
	repo := &MockUserRepository{
		CreateFunc: func(ctx context.Context, usr *user.User) error {
			usr.ID = 1
			return nil
		},
	}
	engine := setupRouter(repo)

	rec := doJSON(t, engine, http.MethodPost, "/signup",
		`{"name":"Ann","email":"ann@x.com","password":"pw1","apiKey":"sk-xxx"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["message"] != "signup successful" {
		t.Errorf("message = %q", body["message"])
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := &MockUserRepository{
		CreateFunc: func(ctx context.Context, usr *user.User) error {
			return platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeConflict,
				"email already registered",
				nil,
				"7c5b1f0a-0000-4000-8000-000000000000",
			)
		},
	}
	engine := setupRouter(repo)

	rec := doJSON(t, engine, http.MethodPost, "/signup",
		`{"name":"Ann","email":"ann@x.com","password":"pw1","apiKey":"sk-xxx"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body responses.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Message != "signup failed" {
		t.Errorf("message = %q, want the generic message", body.Message)
	}
	if strings.Contains(rec.Body.String(), "already registered") {
		t.Error("internal error detail leaked to the client")
	}
}

func TestSignupInvalidBody(t *testing.T) {
	engine := setupRouter(&MockUserRepository{})

	rec := doJSON(t, engine, http.MethodPost, "/signup", `{"name":"Ann","email":"not-an-email"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}
	repo := &MockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			if email == "ann@x.com" {
				return &user.User{ID: 1, Name: "Ann", Email: email, PasswordHash: string(hash), APIKey: "sk-secret"}, nil
			}
			return nil, nil
		},
	}
	engine := setupRouter(repo)

	t.Run("success", func(t *testing.T) {
		rec := doJSON(t, engine, http.MethodPost, "/login",
			`{"email":"ann@x.com","password":"pw1"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
		}
		if strings.Contains(rec.Body.String(), "sk-secret") {
			t.Error("API key leaked in login response")
		}
		var body struct {
			Message string `json:"message"`
			User    struct {
				ID   uint   `json:"id"`
				Name string `json:"name"`
			} `json:"user"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatal(err)
		}
		if body.User.ID != 1 || body.User.Name != "Ann" {
			t.Errorf("user = %+v", body.User)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := doJSON(t, engine, http.MethodPost, "/login",
			`{"email":"ann@x.com","password":"nope"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := doJSON(t, engine, http.MethodPost, "/login",
			`{"email":"bob@x.com","password":"pw1"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})
}
