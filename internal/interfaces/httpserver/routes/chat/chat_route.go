package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/handlers/chathandler"
	chatrequests "github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/requests/chat"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/responses"
	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
)

type ChatRoute struct {
	handler *chathandler.ChatHandler
}

func NewChatRoute(handler *chathandler.ChatHandler) *ChatRoute {
	return &ChatRoute{handler: handler}
}

func (route *ChatRoute) RegisterRouter(router gin.IRouter) {
	router.POST("/chat", route.chat)
}

func (route *ChatRoute) chat(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req chatrequests.ChatRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "9c1f5a3e-8d72-4b06-a4e9-2b6d0f8c4a57")
		return
	}

	resp, err := route.handler.Chat(ctx, req)
	if err != nil {
		responses.HandleError(reqCtx, err, "chat request failed")
		return
	}
	reqCtx.JSON(http.StatusOK, resp)
}
