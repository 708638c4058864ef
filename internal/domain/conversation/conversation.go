// Package conversation provides conversation and message domain models.
package conversation

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Role identifies which side of the dialogue produced a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Conversation is a titled thread of messages belonging to one user.
type Conversation struct {
	ID        uint
	UserID    uint
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Message is one turn within a conversation. Cost is the persisted USD cost
// of the upstream call that produced an assistant turn; user turns carry no
// cost. Messages are immutable once inserted.
type Message struct {
	ID               uint
	ConversationID   uint
	Role             Role
	Content          string
	PromptTokens     *int
	CompletionTokens *int
	Cost             *decimal.Decimal
	Model            *string
	CreatedAt        time.Time
}

// Repository defines storage operations for conversations and their messages.
// CreateWithFirstMessage and DeleteCascade are transactional: either every
// row change applies or none does.
type Repository interface {
	CreateWithFirstMessage(ctx context.Context, conv *Conversation, msg *Message) error
	FindByID(ctx context.Context, id uint) (*Conversation, error)
	ListByUser(ctx context.Context, userID uint) ([]*Conversation, error)
	AddMessage(ctx context.Context, msg *Message) error
	ListMessages(ctx context.Context, conversationID uint) ([]*Message, error)
	DeleteCascade(ctx context.Context, id uint) error
	CountMessagesByUser(ctx context.Context, userID uint) (int64, error)
	SumMessageCostByUser(ctx context.Context, userID uint) (decimal.Decimal, error)
}
