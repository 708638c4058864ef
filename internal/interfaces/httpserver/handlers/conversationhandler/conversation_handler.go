package conversationhandler

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/eappleew/Chat-Cheappt/internal/config"
	"github.com/eappleew/Chat-Cheappt/internal/domain/conversation"
	conversationresponses "github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/responses/conversation"
	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
)

// ConversationHandler handles conversation listing, message history and
// deletion.
type ConversationHandler struct {
	conversationService *conversation.Service
	exchangeRate        decimal.Decimal
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(conversationService *conversation.Service, cfg *config.Config) *ConversationHandler {
	return &ConversationHandler{
		conversationService: conversationService,
		exchangeRate:        decimal.NewFromFloat(cfg.ExchangeRate),
	}
}

// ListConversations returns a user's conversations, newest first.
func (h *ConversationHandler) ListConversations(ctx context.Context, userID uint) ([]conversationresponses.ConversationResponse, error) {
	conversations, err := h.conversationService.ListByUser(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list conversations")
	}
	return conversationresponses.NewConversationListResponse(conversations), nil
}

// ListMessages returns a conversation's messages oldest first, costs
// converted to display currency.
func (h *ConversationHandler) ListMessages(ctx context.Context, conversationID uint) ([]conversationresponses.MessageResponse, error) {
	messages, err := h.conversationService.History(ctx, conversationID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to list messages")
	}
	return conversationresponses.NewMessageListResponse(messages, h.exchangeRate), nil
}

// DeleteConversation removes a conversation and its messages.
func (h *ConversationHandler) DeleteConversation(ctx context.Context, conversationID uint) (*conversationresponses.ConversationDeletedResponse, error) {
	conv, err := h.conversationService.Get(ctx, conversationID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to delete conversation")
	}
	if conv == nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerHandler,
			platformerrors.ErrorTypeNotFound,
			"conversation not found",
			nil,
			"b3f8d1a6-7e25-4c90-a4b2-9d6f0e3c8a51",
		)
	}

	if err := h.conversationService.Delete(ctx, conversationID); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to delete conversation")
	}
	return &conversationresponses.ConversationDeletedResponse{Message: "conversation deleted"}, nil
}
