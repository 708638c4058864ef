package conversationresponses

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/eappleew/Chat-Cheappt/internal/domain/conversation"
	"github.com/eappleew/Chat-Cheappt/internal/domain/pricing"
)

// ConversationResponse is one conversation row.
type ConversationResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageResponse is one message row. Cost is the display-currency value
// rounded to two decimals; the stored cost stays in USD.
type MessageResponse struct {
	ID               uint            `json:"id"`
	Role             string          `json:"role"`
	Content          string          `json:"content"`
	PromptTokens     *int            `json:"prompt_tokens,omitempty"`
	CompletionTokens *int            `json:"completion_tokens,omitempty"`
	Cost             decimal.Decimal `json:"cost"`
	Model            *string         `json:"model,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ConversationDeletedResponse confirms a delete.
type ConversationDeletedResponse struct {
	Message string `json:"message"`
}

// NewConversationResponse creates a response from a domain conversation
func NewConversationResponse(conv *conversation.Conversation) ConversationResponse {
	return ConversationResponse{
		ID:        conv.ID,
		Title:     conv.Title,
		CreatedAt: conv.CreatedAt,
		UpdatedAt: conv.UpdatedAt,
	}
}

// NewConversationListResponse creates a conversation list response
func NewConversationListResponse(conversations []*conversation.Conversation) []ConversationResponse {
	data := make([]ConversationResponse, 0, len(conversations))
	for _, conv := range conversations {
		data = append(data, NewConversationResponse(conv))
	}
	return data
}

// NewMessageListResponse converts messages, applying the display-currency
// conversion to each persisted USD cost.
func NewMessageListResponse(messages []*conversation.Message, exchangeRate decimal.Decimal) []MessageResponse {
	data := make([]MessageResponse, 0, len(messages))
	for _, msg := range messages {
		cost := decimal.Zero
		if msg.Cost != nil {
			cost = pricing.ToDisplay(*msg.Cost, exchangeRate)
		}
		data = append(data, MessageResponse{
			ID:               msg.ID,
			Role:             string(msg.Role),
			Content:          msg.Content,
			PromptTokens:     msg.PromptTokens,
			CompletionTokens: msg.CompletionTokens,
			Cost:             cost,
			Model:            msg.Model,
			CreatedAt:        msg.CreatedAt,
		})
	}
	return data
}
