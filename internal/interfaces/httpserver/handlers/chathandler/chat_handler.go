package chathandler

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/shopspring/decimal"

	"github.com/eappleew/Chat-Cheappt/internal/config"
	"github.com/eappleew/Chat-Cheappt/internal/domain/conversation"
	"github.com/eappleew/Chat-Cheappt/internal/domain/genimage"
	"github.com/eappleew/Chat-Cheappt/internal/domain/pricing"
	"github.com/eappleew/Chat-Cheappt/internal/domain/user"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/inference"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/logger"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/metrics"
	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/storage"
	chatrequests "github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/requests/chat"
	chatresponses "github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/responses/chat"
	"github.com/eappleew/Chat-Cheappt/internal/utils/idgen"
	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
)

// imageFailureReply is recorded as the assistant turn when image generation
// cannot complete. Upstream detail stays in the server log.
const imageFailureReply = "Sorry, the image could not be generated. Please try again later."

// ChatHandler orchestrates one chat turn: resolve the user and their API
// key, thread the conversation, call the upstream model and persist both
// sides of the exchange.
type ChatHandler struct {
	userService         *user.Service
	conversationService *conversation.Service
	genImageService     *genimage.Service
	inferenceProvider   inference.ClientProvider
	assetDownloader     *inference.AssetDownloader
	imageStore          *storage.LocalStorage
	systemPrompt        string
	exchangeRate        decimal.Decimal
}

// NewChatHandler creates a new chat handler
func NewChatHandler(
	userService *user.Service,
	conversationService *conversation.Service,
	genImageService *genimage.Service,
	inferenceProvider inference.ClientProvider,
	assetDownloader *inference.AssetDownloader,
	imageStore *storage.LocalStorage,
	cfg *config.Config,
) *ChatHandler {
	return &ChatHandler{
		userService:         userService,
		conversationService: conversationService,
		genImageService:     genImageService,
		inferenceProvider:   inferenceProvider,
		assetDownloader:     assetDownloader,
		imageStore:          imageStore,
		systemPrompt:        cfg.SystemPrompt,
		exchangeRate:        decimal.NewFromFloat(cfg.ExchangeRate),
	}
}

// Chat runs one turn of the gateway.
func (h *ChatHandler) Chat(ctx context.Context, req chatrequests.ChatRequest) (*chatresponses.ChatResponse, error) {
	usr, err := h.userService.Get(ctx, req.UserID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to resolve user")
	}
	if usr == nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerHandler,
			platformerrors.ErrorTypeNotFound,
			"user not found",
			nil,
			"f2b6d8a4-0e37-4c51-9a82-7d5f1b3e6c09",
		)
	}

	client, err := h.inferenceProvider.ClientForKey(ctx, usr.APIKey)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to build upstream client")
	}

	model := req.Model
	if model == "" {
		model = pricing.DefaultModel
	}
	hasImage := req.Image != ""

	// History precedes the new turn, so capture it before persisting.
	var history []*conversation.Message
	conv, err := h.resolveConversation(ctx, req, hasImage, &history)
	if err != nil {
		return nil, err
	}

	var (
		reply            string
		cost             decimal.Decimal
		promptTokens     *int
		completionTokens *int
		totalTokens      *int
	)

	if pricing.IsImageModel(model) {
		reply, cost = h.generateImage(ctx, client, usr.ID, model, req.Message)
	} else {
		start := time.Now()
		resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    model,
			Messages: h.buildTranscript(model, history, req.Message, req.Image),
		})
		if err != nil {
			metrics.RecordUpstreamError("chat_completion")
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerHandler,
				platformerrors.ErrorTypeExternal,
				"chat completion failed",
				err,
				"a8e4c2f0-6b19-4d73-8f05-3c7a9e1b5d62",
			)
		}
		metrics.RecordCompletionDuration(model, time.Since(start).Seconds())

		if len(resp.Choices) == 0 {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerHandler,
				platformerrors.ErrorTypeExternal,
				"chat completion returned no choices",
				nil,
				"c1d7f3a9-5e80-4b26-a9d4-8b2e6f0c4a17",
			)
		}

		reply = resp.Choices[0].Message.Content
		pt, ct, tt := resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.TotalTokens
		promptTokens, completionTokens, totalTokens = &pt, &ct, &tt
		cost = pricing.CompletionCost(model, pt, ct)
		metrics.RecordTokens(model, pt, ct)
	}

	assistantMsg := &conversation.Message{
		ConversationID:   conv.ID,
		Role:             conversation.RoleAssistant,
		Content:          reply,
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		Cost:             &cost,
		Model:            &model,
	}
	if err := h.conversationService.Append(ctx, assistantMsg); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to persist assistant message")
	}

	return &chatresponses.ChatResponse{
		Reply:          reply,
		ConversationID: conv.ID,
		Cost:           pricing.ToDisplay(cost, h.exchangeRate),
		Tokens:         totalTokens,
	}, nil
}

// resolveConversation finds or lazily creates the conversation and persists
// the incoming user turn. Creation and first insert share one transaction.
// For existing conversations the prior history is loaded into *history
// before the new turn is written.
func (h *ChatHandler) resolveConversation(
	ctx context.Context,
	req chatrequests.ChatRequest,
	hasImage bool,
	history *[]*conversation.Message,
) (*conversation.Conversation, error) {
	content := req.Message
	if hasImage {
		content = conversation.AttachmentMarker + req.Message
	}
	userMsg := &conversation.Message{Role: conversation.RoleUser, Content: content}

	if req.ConversationID == nil {
		title := conversation.TitleFor(req.Message, hasImage)
		conv, err := h.conversationService.Start(ctx, req.UserID, title, userMsg)
		if err != nil {
			return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to create conversation")
		}
		metrics.ConversationsCreatedTotal.Inc()
		return conv, nil
	}

	conv, err := h.conversationService.Get(ctx, *req.ConversationID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to resolve conversation")
	}
	if conv == nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerHandler,
			platformerrors.ErrorTypeNotFound,
			"conversation not found",
			nil,
			"d6a2e8c4-9f51-4b07-8d36-1e4b7a9c2f85",
		)
	}

	prior, err := h.conversationService.History(ctx, conv.ID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to load history")
	}
	*history = prior

	userMsg.ConversationID = conv.ID
	if err := h.conversationService.Append(ctx, userMsg); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to persist user message")
	}
	return conv, nil
}

// buildTranscript assembles the upstream message list: system instruction,
// prior history in order, then the new turn. An attached image splits the
// new turn into a text part and an image part.
func (h *ChatHandler) buildTranscript(model string, history []*conversation.Message, message, image string) []openai.ChatCompletionMessage {
	systemPrompt := h.systemPrompt
	if systemPrompt == "" {
		systemPrompt = fmt.Sprintf("You are a helpful assistant powered by %s.", model)
	}

	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range history {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	if image != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: message},
				{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: image}},
			},
		})
	} else {
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: message,
		})
	}
	return msgs
}

// generateImage runs the image branch. Failures degrade to a reply string
// with zero cost instead of failing the turn.
func (h *ChatHandler) generateImage(ctx context.Context, client inference.CompletionClient, userID uint, model, prompt string) (string, decimal.Decimal) {
	log := logger.GetLogger()

	resp, err := client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          model,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		metrics.RecordUpstreamError("image_generation")
		log.Error().Err(err).Uint("user_id", userID).Msg("image generation failed")
		return imageFailureReply, decimal.Zero
	}
	if len(resp.Data) == 0 {
		metrics.RecordUpstreamError("image_generation")
		log.Error().Uint("user_id", userID).Msg("image generation returned no data")
		return imageFailureReply, decimal.Zero
	}

	data, err := h.assetDownloader.Download(ctx, resp.Data[0].URL)
	if err != nil {
		log.Error().Err(err).Uint("user_id", userID).Msg("generated image download failed")
		return imageFailureReply, decimal.Zero
	}

	id, err := idgen.GenerateSecureID("img", 16)
	if err != nil {
		log.Error().Err(err).Uint("user_id", userID).Msg("image id generation failed")
		return imageFailureReply, decimal.Zero
	}
	fileName := id + ".png"
	if _, err := h.imageStore.Save(ctx, fileName, data); err != nil {
		log.Error().Err(err).Uint("user_id", userID).Msg("generated image store failed")
		return imageFailureReply, decimal.Zero
	}

	if err := h.genImageService.Record(ctx, &genimage.GeneratedImage{
		UserID:   userID,
		Prompt:   prompt,
		FilePath: fileName,
	}); err != nil {
		log.Error().Err(err).Uint("user_id", userID).Msg("generated image record failed")
		return imageFailureReply, decimal.Zero
	}

	metrics.ImagesGeneratedTotal.Inc()
	return fmt.Sprintf("![Generated image](/generated/%s)", fileName), pricing.ImageCost(model)
}
