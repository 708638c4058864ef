package conversation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/handlers/conversationhandler"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/handlers/imagehandler"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/requests"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/responses"
	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
)

type ConversationRoute struct {
	handler      *conversationhandler.ConversationHandler
	imageHandler *imagehandler.ImageHandler
}

func NewConversationRoute(
	handler *conversationhandler.ConversationHandler,
	imageHandler *imagehandler.ImageHandler,
) *ConversationRoute {
	return &ConversationRoute{
		handler:      handler,
		imageHandler: imageHandler,
	}
}

func (route *ConversationRoute) RegisterRouter(router gin.IRouter) {
	conversations := router.Group("/conversations")
	conversations.GET("/:id", route.listConversations)
	conversations.GET("/:id/messages", route.listMessages)
	conversations.DELETE("/:id", route.deleteConversation)

	router.GET("/images/:id", route.listImages)
}

// listConversations returns the conversations of the user named by :id,
// newest first.
func (route *ConversationRoute) listConversations(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	userID, ok := requests.ParseUintParam(reqCtx, "id")
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid user id", "0f6b2d8c-4a17-49e3-b5f0-8c2e6a9d1b37")
		return
	}

	resp, err := route.handler.ListConversations(ctx, userID)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to list conversations")
		return
	}
	reqCtx.JSON(http.StatusOK, resp)
}

// listMessages returns the messages of the conversation named by :id,
// oldest first.
func (route *ConversationRoute) listMessages(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	conversationID, ok := requests.ParseUintParam(reqCtx, "id")
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid conversation id", "5a9d3f1e-7c28-40b6-a2e5-9d4f8b0c6e71")
		return
	}

	resp, err := route.handler.ListMessages(ctx, conversationID)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to list messages")
		return
	}
	reqCtx.JSON(http.StatusOK, resp)
}

func (route *ConversationRoute) deleteConversation(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	conversationID, ok := requests.ParseUintParam(reqCtx, "id")
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid conversation id", "e1c8a4f2-3d60-4b97-8a15-6f9b2e0d4c83")
		return
	}

	resp, err := route.handler.DeleteConversation(ctx, conversationID)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to delete conversation")
		return
	}
	reqCtx.JSON(http.StatusOK, resp)
}

func (route *ConversationRoute) listImages(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	userID, ok := requests.ParseUintParam(reqCtx, "id")
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid user id", "7b3e9c5d-1f84-42a0-b6c9-0d8a4e2f6b15")
		return
	}

	resp, err := route.imageHandler.ListImages(ctx, userID)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to list generated images")
		return
	}
	reqCtx.JSON(http.StatusOK, resp)
}
