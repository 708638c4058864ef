package dbschema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/eappleew/Chat-Cheappt/internal/domain/conversation"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/database"
)

func init() {
	database.RegisterSchemaForAutoMigrate(Conversation{})
	database.RegisterSchemaForAutoMigrate(Message{})
}

// Conversation represents the database schema for conversations
type Conversation struct {
	BaseModel
	UserID uint   `gorm:"index:idx_conversations_user_id;not null"`
	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Title  string `gorm:"type:varchar(255);not null"`

	Messages []Message `gorm:"foreignKey:ConversationID"`
}

// Message represents one turn stored inside a conversation. Token counts,
// cost and model are only set on assistant turns.
type Message struct {
	ID               uint             `gorm:"primarykey"`
	ConversationID   uint             `gorm:"index:idx_messages_conversation_id;not null"`
	Conversation     Conversation     `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE"`
	Role             string           `gorm:"type:varchar(32);not null"`
	Content          string           `gorm:"type:text;not null"`
	PromptTokens     *int             `gorm:"type:integer"`
	CompletionTokens *int             `gorm:"type:integer"`
	Cost             *decimal.Decimal `gorm:"type:numeric(20,10)"`
	Model            *string          `gorm:"type:varchar(64)"`
	CreatedAt        time.Time
}

// NewSchemaConversation creates a database schema from a domain conversation
func NewSchemaConversation(c *conversation.Conversation) *Conversation {
	if c == nil {
		return nil
	}

	return &Conversation{
		BaseModel: BaseModel{
			ID:        c.ID,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
		},
		UserID: c.UserID,
		Title:  c.Title,
	}
}

// EtoD converts database schema to domain conversation (Entity to Domain)
func (c *Conversation) EtoD() *conversation.Conversation {
	if c == nil {
		return nil
	}

	return &conversation.Conversation{
		ID:        c.ID,
		UserID:    c.UserID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// NewSchemaMessage creates a database schema from a domain message
func NewSchemaMessage(m *conversation.Message) *Message {
	if m == nil {
		return nil
	}

	return &Message{
		ID:               m.ID,
		ConversationID:   m.ConversationID,
		Role:             string(m.Role),
		Content:          m.Content,
		PromptTokens:     m.PromptTokens,
		CompletionTokens: m.CompletionTokens,
		Cost:             m.Cost,
		Model:            m.Model,
		CreatedAt:        m.CreatedAt,
	}
}

// EtoD converts database schema to domain message (Entity to Domain)
func (m *Message) EtoD() *conversation.Message {
	if m == nil {
		return nil
	}

	return &conversation.Message{
		ID:               m.ID,
		ConversationID:   m.ConversationID,
		Role:             conversation.Role(m.Role),
		Content:          m.Content,
		PromptTokens:     m.PromptTokens,
		CompletionTokens: m.CompletionTokens,
		Cost:             m.Cost,
		Model:            m.Model,
		CreatedAt:        m.CreatedAt,
	}
}
