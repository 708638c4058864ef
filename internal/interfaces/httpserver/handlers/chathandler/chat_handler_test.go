package chathandler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/shopspring/decimal"

	"github.com/eappleew/Chat-Cheappt/internal/config"
	"github.com/eappleew/Chat-Cheappt/internal/domain/conversation"
	"github.com/eappleew/Chat-Cheappt/internal/domain/genimage"
	"github.com/eappleew/Chat-Cheappt/internal/domain/user"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/inference"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/storage"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/handlers/chathandler"
	chatrequests "github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/requests/chat"
	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
	"github.com/rs/zerolog"
)

type MockUserRepository struct {
	users map[uint]*user.User
}

func (m *MockUserRepository) Create(ctx context.Context, usr *user.User) error { return nil }
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return m.users[id], nil
}

// MockConversationRepository keeps conversations and messages in memory,
// preserving insertion order.
type MockConversationRepository struct {
	nextID        uint
	conversations map[uint]*conversation.Conversation
	messages      map[uint][]*conversation.Message
}

func NewMockConversationRepository() *MockConversationRepository {
	return &MockConversationRepository{
		nextID:        1,
		conversations: map[uint]*conversation.Conversation{},
		messages:      map[uint][]*conversation.Message{},
	}
}

func (m *MockConversationRepository) CreateWithFirstMessage(ctx context.Context, conv *conversation.Conversation, msg *conversation.Message) error {
	conv.ID = m.nextID
	m.nextID++
	m.conversations[conv.ID] = conv
	msg.ConversationID = conv.ID
	m.messages[conv.ID] = append(m.messages[conv.ID], msg)
	return nil
}

func (m *MockConversationRepository) FindByID(ctx context.Context, id uint) (*conversation.Conversation, error) {
	return m.conversations[id], nil
}

func (m *MockConversationRepository) ListByUser(ctx context.Context, userID uint) ([]*conversation.Conversation, error) {
	var out []*conversation.Conversation
	for _, c := range m.conversations {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *MockConversationRepository) AddMessage(ctx context.Context, msg *conversation.Message) error {
	m.messages[msg.ConversationID] = append(m.messages[msg.ConversationID], msg)
	return nil
}

func (m *MockConversationRepository) ListMessages(ctx context.Context, conversationID uint) ([]*conversation.Message, error) {
	return m.messages[conversationID], nil
}

func (m *MockConversationRepository) DeleteCascade(ctx context.Context, id uint) error {
	delete(m.conversations, id)
	delete(m.messages, id)
	return nil
}

func (m *MockConversationRepository) CountMessagesByUser(ctx context.Context, userID uint) (int64, error) {
	var n int64
	for id, c := range m.conversations {
		if c.UserID == userID {
			n += int64(len(m.messages[id]))
		}
	}
	return n, nil
}

func (m *MockConversationRepository) SumMessageCostByUser(ctx context.Context, userID uint) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type MockImageRepository struct {
	recorded []*genimage.GeneratedImage
}

func (m *MockImageRepository) Create(ctx context.Context, img *genimage.GeneratedImage) error {
	m.recorded = append(m.recorded, img)
	return nil
}
func (m *MockImageRepository) ListByUser(ctx context.Context, userID uint) ([]*genimage.GeneratedImage, error) {
	return m.recorded, nil
}
func (m *MockImageRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	return int64(len(m.recorded)), nil
}

type MockCompletionClient struct {
	CreateChatCompletionFunc func(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateImageFunc          func(ctx context.Context, request openai.ImageRequest) (openai.ImageResponse, error)
}

func (m *MockCompletionClient) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return m.CreateChatCompletionFunc(ctx, request)
}

func (m *MockCompletionClient) CreateImage(ctx context.Context, request openai.ImageRequest) (openai.ImageResponse, error) {
	return m.CreateImageFunc(ctx, request)
}

type MockClientProvider struct {
	client inference.CompletionClient
}

func (m *MockClientProvider) ClientForKey(ctx context.Context, apiKey string) (inference.CompletionClient, error) {
	if apiKey == "" {
		return nil, errors.New("missing api key")
	}
	return m.client, nil
}

type fixture struct {
	handler *chathandler.ChatHandler
	convs   *MockConversationRepository
	images  *MockImageRepository
}

func newFixture(t *testing.T, client inference.CompletionClient) *fixture {
	t.Helper()

	cfg := &config.Config{
		ExchangeRate:     1400,
		BcryptCost:       10,
		ImageStoragePath: t.TempDir(),
	}

	users := &MockUserRepository{users: map[uint]*user.User{
		1: {ID: 1, Name: "Ann", Email: "ann@x.com", APIKey: "sk-test"},
	}}
	convs := NewMockConversationRepository()
	images := &MockImageRepository{}

	store, err := storage.NewLocalStorage(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	handler := chathandler.NewChatHandler(
		user.NewService(users, cfg.BcryptCost),
		conversation.NewService(convs),
		genimage.NewService(images),
		&MockClientProvider{client: client},
		inference.NewAssetDownloader(),
		store,
		cfg,
	)
	return &fixture{handler: handler, convs: convs, images: images}
}

func completionResponse(content string, promptTokens, completionTokens int) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
		Usage: openai.Usage{
			PromptTokens:     promptTokens,
			CompletionTokens: completionTokens,
			TotalTokens:      promptTokens + completionTokens,
		},
	}
}

func TestChatNewConversation(t *testing.T) {
	var sent openai.ChatCompletionRequest
	client := &MockCompletionClient{
		CreateChatCompletionFunc: func(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			sent = request
			return completionResponse("hello there", 10, 20), nil
		},
	}
	f := newFixture(t, client)

	resp, err := f.handler.Chat(context.Background(), chatrequests.ChatRequest{
		UserID:  1,
		Message: "hi",
		Model:   "gpt-4o",
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}

	if resp.Reply != "hello there" {
		t.Errorf("Reply = %q, want %q", resp.Reply, "hello there")
	}
	if resp.Tokens == nil || *resp.Tokens != 30 {
		t.Errorf("Tokens = %v, want 30", resp.Tokens)
	}
	// (10*2.50 + 20*10.00)/1e6 USD at rate 1400, rounded to 2 places.
	if !resp.Cost.Equal(decimal.RequireFromString("0.32")) {
		t.Errorf("Cost = %s, want 0.32", resp.Cost)
	}

	conv := f.convs.conversations[resp.ConversationID]
	if conv == nil {
		t.Fatal("conversation was not created")
	}
	if conv.Title != "hi" {
		t.Errorf("Title = %q, want %q", conv.Title, "hi")
	}

	msgs := f.convs.messages[conv.ID]
	if len(msgs) != 2 {
		t.Fatalf("got %d persisted messages, want 2", len(msgs))
	}
	if msgs[0].Role != conversation.RoleUser || msgs[0].Content != "hi" {
		t.Errorf("first message = %s %q", msgs[0].Role, msgs[0].Content)
	}
	assistant := msgs[1]
	if assistant.Role != conversation.RoleAssistant || assistant.Content != "hello there" {
		t.Errorf("second message = %s %q", assistant.Role, assistant.Content)
	}
	if assistant.Cost == nil || !assistant.Cost.Equal(decimal.RequireFromString("0.000225")) {
		t.Errorf("persisted cost = %v, want 0.000225 USD", assistant.Cost)
	}
	if assistant.Model == nil || *assistant.Model != "gpt-4o" {
		t.Errorf("persisted model = %v, want gpt-4o", assistant.Model)
	}

	if len(sent.Messages) != 2 {
		t.Fatalf("upstream got %d messages, want system + user", len(sent.Messages))
	}
	if sent.Messages[0].Role != openai.ChatMessageRoleSystem {
		t.Errorf("first upstream message role = %q, want system", sent.Messages[0].Role)
	}
	if sent.Messages[1].Content != "hi" {
		t.Errorf("upstream user turn = %q, want %q", sent.Messages[1].Content, "hi")
	}
}

func TestChatExistingConversationSendsHistory(t *testing.T) {
	var sent openai.ChatCompletionRequest
	client := &MockCompletionClient{
		CreateChatCompletionFunc: func(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			sent = request
			return completionResponse("second reply", 5, 5), nil
		},
	}
	f := newFixture(t, client)

	conv := &conversation.Conversation{UserID: 1, Title: "earlier"}
	first := &conversation.Message{Role: conversation.RoleUser, Content: "earlier question"}
	if err := f.convs.CreateWithFirstMessage(context.Background(), conv, first); err != nil {
		t.Fatal(err)
	}
	if err := f.convs.AddMessage(context.Background(), &conversation.Message{
		ConversationID: conv.ID,
		Role:           conversation.RoleAssistant,
		Content:        "earlier answer",
	}); err != nil {
		t.Fatal(err)
	}

	resp, err := f.handler.Chat(context.Background(), chatrequests.ChatRequest{
		UserID:         1,
		Message:        "follow up",
		ConversationID: &conv.ID,
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if resp.ConversationID != conv.ID {
		t.Errorf("ConversationID = %d, want %d", resp.ConversationID, conv.ID)
	}

	// system + two prior turns + the new user turn
	if len(sent.Messages) != 4 {
		t.Fatalf("upstream got %d messages, want 4", len(sent.Messages))
	}
	if sent.Messages[1].Content != "earlier question" || sent.Messages[2].Content != "earlier answer" {
		t.Errorf("history not forwarded in order: %q, %q", sent.Messages[1].Content, sent.Messages[2].Content)
	}
	if sent.Messages[3].Content != "follow up" {
		t.Errorf("new turn = %q, want %q", sent.Messages[3].Content, "follow up")
	}

	msgs := f.convs.messages[conv.ID]
	if len(msgs) != 4 {
		t.Fatalf("got %d persisted messages, want 4", len(msgs))
	}
}

func TestChatUnknownConversation(t *testing.T) {
	f := newFixture(t, &MockCompletionClient{})

	missing := uint(99)
	_, err := f.handler.Chat(context.Background(), chatrequests.ChatRequest{
		UserID:         1,
		Message:        "hi",
		ConversationID: &missing,
	})
	if err == nil {
		t.Fatal("expected an error for an unknown conversation")
	}
	var perr *platformerrors.PlatformError
	if !errors.As(err, &perr) || perr.GetErrorType() != platformerrors.ErrorTypeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestChatUnknownUser(t *testing.T) {
	f := newFixture(t, &MockCompletionClient{})

	_, err := f.handler.Chat(context.Background(), chatrequests.ChatRequest{
		UserID:  99,
		Message: "hi",
	})
	if err == nil {
		t.Fatal("expected an error for an unknown user")
	}
	var perr *platformerrors.PlatformError
	if !errors.As(err, &perr) || perr.GetErrorType() != platformerrors.ErrorTypeNotFound {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestChatImageAttachmentMarksMessage(t *testing.T) {
	var sent openai.ChatCompletionRequest
	client := &MockCompletionClient{
		CreateChatCompletionFunc: func(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
			sent = request
			return completionResponse("a cat", 100, 10), nil
		},
	}
	f := newFixture(t, client)

	resp, err := f.handler.Chat(context.Background(), chatrequests.ChatRequest{
		UserID:  1,
		Message: "what is in this picture?",
		Model:   "gpt-4o",
		Image:   "data:image/png;base64,AAAA",
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}

	conv := f.convs.conversations[resp.ConversationID]
	if conv.Title != conversation.ImageSessionTitle {
		t.Errorf("Title = %q, want %q", conv.Title, conversation.ImageSessionTitle)
	}

	userTurn := f.convs.messages[conv.ID][0]
	if !strings.HasPrefix(userTurn.Content, conversation.AttachmentMarker) {
		t.Errorf("user turn %q lacks attachment marker", userTurn.Content)
	}

	last := sent.Messages[len(sent.Messages)-1]
	if len(last.MultiContent) != 2 {
		t.Fatalf("got %d content parts, want text + image", len(last.MultiContent))
	}
	if last.MultiContent[1].ImageURL == nil || last.MultiContent[1].ImageURL.URL != "data:image/png;base64,AAAA" {
		t.Error("image part does not carry the attachment")
	}
}

func TestChatImageGenerationFailureDegrades(t *testing.T) {
	client := &MockCompletionClient{
		CreateImageFunc: func(ctx context.Context, request openai.ImageRequest) (openai.ImageResponse, error) {
			return openai.ImageResponse{}, errors.New("upstream down")
		},
	}
	f := newFixture(t, client)

	resp, err := f.handler.Chat(context.Background(), chatrequests.ChatRequest{
		UserID:  1,
		Message: "a red balloon",
		Model:   "dall-e-3",
	})
	if err != nil {
		t.Fatalf("image failure must not fail the turn, got %v", err)
	}

	if !strings.HasPrefix(resp.Reply, "Sorry, the image could not be generated") {
		t.Errorf("Reply = %q, want the failure notice", resp.Reply)
	}
	if !resp.Cost.IsZero() {
		t.Errorf("Cost = %s, want zero for a failed generation", resp.Cost)
	}
	if len(f.images.recorded) != 0 {
		t.Error("failed generation must not record an image row")
	}

	msgs := f.convs.messages[resp.ConversationID]
	if len(msgs) != 2 {
		t.Fatalf("got %d persisted messages, want user + assistant", len(msgs))
	}
	if msgs[1].Cost == nil || !msgs[1].Cost.IsZero() {
		t.Errorf("persisted cost = %v, want zero", msgs[1].Cost)
	}
}

func TestChatImageModelForwarded(t *testing.T) {
	var requested string
	client := &MockCompletionClient{
		CreateImageFunc: func(ctx context.Context, request openai.ImageRequest) (openai.ImageResponse, error) {
			requested = request.Model
			return openai.ImageResponse{}, errors.New("upstream down")
		},
	}
	f := newFixture(t, client)

	_, err := f.handler.Chat(context.Background(), chatrequests.ChatRequest{
		UserID:  1,
		Message: "a red balloon",
		Model:   "dall-e-2",
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}
	if requested != "dall-e-2" {
		t.Errorf("upstream model = %q, want dall-e-2", requested)
	}
}

func TestChatImageGenerationSuccess(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}
	assets := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(png)
	}))
	defer assets.Close()

	client := &MockCompletionClient{
		CreateImageFunc: func(ctx context.Context, request openai.ImageRequest) (openai.ImageResponse, error) {
			if request.Prompt != "a red balloon" {
				t.Errorf("Prompt = %q, want the user message", request.Prompt)
			}
			if request.Model != openai.CreateImageModelDallE3 {
				t.Errorf("Model = %q, want dall-e-3", request.Model)
			}
			return openai.ImageResponse{Data: []openai.ImageResponseDataInner{{URL: assets.URL}}}, nil
		},
	}

	cfg := &config.Config{ExchangeRate: 1400, BcryptCost: 10, ImageStoragePath: t.TempDir()}
	users := &MockUserRepository{users: map[uint]*user.User{
		1: {ID: 1, Name: "Ann", Email: "ann@x.com", APIKey: "sk-test"},
	}}
	convs := NewMockConversationRepository()
	images := &MockImageRepository{}
	store, err := storage.NewLocalStorage(cfg, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	handler := chathandler.NewChatHandler(
		user.NewService(users, cfg.BcryptCost),
		conversation.NewService(convs),
		genimage.NewService(images),
		&MockClientProvider{client: client},
		inference.NewAssetDownloader(),
		store,
		cfg,
	)

	resp, err := handler.Chat(context.Background(), chatrequests.ChatRequest{
		UserID:  1,
		Message: "a red balloon",
		Model:   "dall-e-3",
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}

	if !strings.HasPrefix(resp.Reply, "![Generated image](/generated/img_") || !strings.HasSuffix(resp.Reply, ".png)") {
		t.Errorf("Reply = %q, want a markdown image link", resp.Reply)
	}
	// 0.040 USD per dall-e-3 image at rate 1400.
	if !resp.Cost.Equal(decimal.RequireFromString("56")) {
		t.Errorf("Cost = %s, want 56", resp.Cost)
	}

	if len(images.recorded) != 1 {
		t.Fatalf("got %d recorded images, want 1", len(images.recorded))
	}
	rec := images.recorded[0]
	if rec.UserID != 1 || rec.Prompt != "a red balloon" {
		t.Errorf("recorded image = %+v", rec)
	}

	stored, err := os.ReadFile(filepath.Join(cfg.ImageStoragePath, rec.FilePath))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(stored) != string(png) {
		t.Error("stored bytes differ from downloaded bytes")
	}
}
