package usage

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/handlers/usagehandler"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/requests"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/responses"
	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
)

type UsageRoute struct {
	handler *usagehandler.UsageHandler
}

func NewUsageRoute(handler *usagehandler.UsageHandler) *UsageRoute {
	return &UsageRoute{handler: handler}
}

func (route *UsageRoute) RegisterRouter(router gin.IRouter) {
	router.GET("/user/:id/usage", route.getUsage)
}

func (route *UsageRoute) getUsage(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	userID, ok := requests.ParseUintParam(reqCtx, "id")
	if !ok {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid user id", "3e7a1d9f-6b40-4c82-95e1-8d2c4f6a0b93")
		return
	}

	resp, err := route.handler.GetUsage(ctx, userID)
	if err != nil {
		responses.HandleError(reqCtx, err, "failed to compute usage")
		return
	}
	reqCtx.JSON(http.StatusOK, resp)
}
