package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/metrics"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/handlers/authhandler"
	authrequests "github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/requests/auth"
	"github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/responses"
	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
)

type AuthRoute struct {
	handler *authhandler.AuthHandler
}

func NewAuthRoute(handler *authhandler.AuthHandler) *AuthRoute {
	return &AuthRoute{handler: handler}
}

func (route *AuthRoute) RegisterRouter(router gin.IRouter) {
	router.POST("/signup", route.signup)
	router.POST("/login", route.login)
}

func (route *AuthRoute) signup(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req authrequests.SignupRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "4b0a8d2e-6c93-47f5-b1a8-9e3d5c7f0b26")
		return
	}

	resp, err := route.handler.Signup(ctx, req)
	if err != nil {
		metrics.RecordAuthRequest("signup", "failure")
		responses.HandleError(reqCtx, err, "signup failed")
		return
	}

	metrics.RecordAuthRequest("signup", "success")
	reqCtx.JSON(http.StatusCreated, resp)
}

func (route *AuthRoute) login(reqCtx *gin.Context) {
	ctx := reqCtx.Request.Context()

	var req authrequests.LoginRequest
	if err := reqCtx.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(reqCtx, platformerrors.ErrorTypeValidation, "invalid request body", "8d5f1c7a-2e69-4b04-a3d7-6f0b8e4c2a95")
		return
	}

	resp, err := route.handler.Login(ctx, req)
	if err != nil {
		metrics.RecordAuthRequest("login", "failure")
		responses.HandleError(reqCtx, err, "login failed")
		return
	}

	metrics.RecordAuthRequest("login", "success")
	reqCtx.JSON(http.StatusOK, resp)
}
