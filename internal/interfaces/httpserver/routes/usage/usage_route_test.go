package usage_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/eappleew/Chat-Cheappt/internal/config"
	"github.com/eappleew/Chat-Cheappt/internal/domain/conversation"
	"github.com/eappleew/Chat-Cheappt/internal/domain/genimage"
	domainusage "github.com/eappleew/Chat-Cheappt/internal/domain/usage"
	"github.com/eappleew/Chat-Cheappt/internal/domain/user"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/handlers/usagehandler"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/routes/usage"
)

type MockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, usr *user.User) error { return nil }
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return m.FindByIDFunc(ctx, id)
}

type MockConversationRepository struct {
	messageCount int64
	costUSD      decimal.Decimal
}

func (m *MockConversationRepository) CreateWithFirstMessage(ctx context.Context, conv *conversation.Conversation, msg *conversation.Message) error {
	return nil
}
func (m *MockConversationRepository) FindByID(ctx context.Context, id uint) (*conversation.Conversation, error) {
	return nil, nil
}
func (m *MockConversationRepository) ListByUser(ctx context.Context, userID uint) ([]*conversation.Conversation, error) {
	return nil, nil
}
func (m *MockConversationRepository) AddMessage(ctx context.Context, msg *conversation.Message) error {
	return nil
}
func (m *MockConversationRepository) ListMessages(ctx context.Context, conversationID uint) ([]*conversation.Message, error) {
	return nil, nil
}
func (m *MockConversationRepository) DeleteCascade(ctx context.Context, id uint) error { return nil }
func (m *MockConversationRepository) CountMessagesByUser(ctx context.Context, userID uint) (int64, error) {
	return m.messageCount, nil
}
func (m *MockConversationRepository) SumMessageCostByUser(ctx context.Context, userID uint) (decimal.Decimal, error) {
	return m.costUSD, nil
}

type MockImageRepository struct {
	imageCount int64
}

func (m *MockImageRepository) Create(ctx context.Context, img *genimage.GeneratedImage) error {
	return nil
}
func (m *MockImageRepository) ListByUser(ctx context.Context, userID uint) ([]*genimage.GeneratedImage, error) {
	return nil, nil
}
func (m *MockImageRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return m.imageCount, nil
}

func setupRouter(users user.Repository, convs conversation.Repository, images genimage.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{ExchangeRate: 1400}
	route := usage.NewUsageRoute(usagehandler.NewUsageHandler(domainusage.NewService(users, convs, images), cfg))
	engine := gin.New()
	route.RegisterRouter(engine)
	return engine
}

func TestGetUsage(t *testing.T) {
	joined := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	users := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return &user.User{ID: id, CreatedAt: joined}, nil
		},
	}
	convs := &MockConversationRepository{
		messageCount: 10,
		costUSD:      decimal.RequireFromString("0.05"),
	}
	images := &MockImageRepository{imageCount: 2}
	engine := setupRouter(users, convs, images)

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/1/usage", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Cost          decimal.Decimal `json:"cost"`
		MessageCount  int64           `json:"messageCount"`
		ImageCount    int64           `json:"imageCount"`
		APICostDollar decimal.Decimal `json:"apiCostDollar"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	// 0.05 USD at rate 1400
	if !body.Cost.Equal(decimal.RequireFromString("70")) {
		t.Errorf("cost = %s, want 70", body.Cost)
	}
	if !body.APICostDollar.Equal(decimal.RequireFromString("0.05")) {
		t.Errorf("apiCostDollar = %s, want 0.05", body.APICostDollar)
	}
	if body.MessageCount != 10 || body.ImageCount != 2 {
		t.Errorf("counts = %d/%d, want 10/2", body.MessageCount, body.ImageCount)
	}
}

func TestGetUsageUnknownUser(t *testing.T) {
	users := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, nil
		},
	}
	engine := setupRouter(users, &MockConversationRepository{}, &MockImageRepository{})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/99/usage", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
