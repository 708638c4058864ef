package routes

import (
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/handlers/authhandler"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/handlers/chathandler"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/handlers/conversationhandler"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/handlers/imagehandler"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/handlers/usagehandler"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/routes/auth"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/routes/chat"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/routes/conversation"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/routes/usage"

	"github.com/google/wire"
)

var RouteProvider = wire.NewSet(
	// Handlers
	authhandler.NewAuthHandler,
	chathandler.NewChatHandler,
	conversationhandler.NewConversationHandler,
	imagehandler.NewImageHandler,
	usagehandler.NewUsageHandler,

	// Routes
	auth.NewAuthRoute,
	chat.NewChatRoute,
	conversation.NewConversationRoute,
	usage.NewUsageRoute,
	NewAPIRoute,
)
