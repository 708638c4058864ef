package conversation

import (
	"context"
	"strings"
)

const (
	// titleRuneLimit is how much of the first message becomes the title.
	titleRuneLimit = 20

	// ImageSessionTitle is the fixed title for conversations opened with an
	// image attachment.
	ImageSessionTitle = "Image analysis"

	// AttachmentMarker prefixes the persisted content of user turns that
	// carried an image attachment.
	AttachmentMarker = "[image] "
)

// Service wraps conversation persistence with the gateway's threading rules.
type Service struct {
	repo Repository
}

// NewService constructs a Service with required dependencies.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// TitleFor derives a conversation title from its first message: the fixed
// image-session label when an attachment is present, otherwise the first 20
// characters of the message.
func TitleFor(message string, hasImage bool) string {
	if hasImage {
		return ImageSessionTitle
	}
	title := strings.TrimSpace(message)
	runes := []rune(title)
	if len(runes) > titleRuneLimit {
		title = string(runes[:titleRuneLimit])
	}
	return title
}

// Start creates a conversation together with its first message in one
// transactional step.
func (s *Service) Start(ctx context.Context, userID uint, title string, first *Message) (*Conversation, error) {
	conv := &Conversation{UserID: userID, Title: title}
	if err := s.repo.CreateWithFirstMessage(ctx, conv, first); err != nil {
		return nil, err
	}
	return conv, nil
}

// Get returns the conversation with the given id, or nil when absent.
func (s *Service) Get(ctx context.Context, id uint) (*Conversation, error) {
	return s.repo.FindByID(ctx, id)
}

// ListByUser returns a user's conversations, newest first.
func (s *Service) ListByUser(ctx context.Context, userID uint) ([]*Conversation, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Append inserts a message into an existing conversation.
func (s *Service) Append(ctx context.Context, msg *Message) error {
	return s.repo.AddMessage(ctx, msg)
}

// History returns a conversation's messages, oldest first.
func (s *Service) History(ctx context.Context, conversationID uint) ([]*Message, error) {
	return s.repo.ListMessages(ctx, conversationID)
}

// Delete removes a conversation and all of its messages atomically.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteCascade(ctx, id)
}
