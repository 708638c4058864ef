package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eappleew/Chat-Cheappt/internal/config"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/routes/auth"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/routes/chat"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/routes/conversation"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/routes/usage"
)

// APIRoute groups every route under /api.
type APIRoute struct {
	auth         *auth.AuthRoute
	conversation *conversation.ConversationRoute
	chat         *chat.ChatRoute
	usage        *usage.UsageRoute
}

func NewAPIRoute(
	authRoute *auth.AuthRoute,
	conversationRoute *conversation.ConversationRoute,
	chatRoute *chat.ChatRoute,
	usageRoute *usage.UsageRoute,
) *APIRoute {
	return &APIRoute{
		auth:         authRoute,
		conversation: conversationRoute,
		chat:         chatRoute,
		usage:        usageRoute,
	}
}

func (apiRoute *APIRoute) RegisterRouter(router gin.IRouter) {
	apiRouter := router.Group("/api")
	apiRouter.GET("/version", GetVersion)

	apiRoute.auth.RegisterRouter(apiRouter)
	apiRoute.conversation.RegisterRouter(apiRouter)
	apiRoute.chat.RegisterRouter(apiRouter)
	apiRoute.usage.RegisterRouter(apiRouter)
}

func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": config.Version})
}
