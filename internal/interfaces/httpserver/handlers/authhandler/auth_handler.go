package authhandler

import (
	"context"
	"errors"

	"github.com/eappleew/Chat-Cheappt/internal/domain/user"
	authrequests "github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/requests/auth"
	authresponses "github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/responses/auth"
	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
)

// AuthHandler handles signup and login requests
type AuthHandler struct {
	userService *user.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService *user.Service) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Signup registers a new account.
func (h *AuthHandler) Signup(ctx context.Context, req authrequests.SignupRequest) (*authresponses.SignupResponse, error) {
	if _, err := h.userService.Signup(ctx, req.Name, req.Email, req.Password, req.APIKey); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "signup failed")
	}
	return &authresponses.SignupResponse{Message: "signup successful"}, nil
}

// Login authenticates an email/password pair. Unknown emails and wrong
// passwords both map to the same unauthorized response.
func (h *AuthHandler) Login(ctx context.Context, req authrequests.LoginRequest) (*authresponses.LoginResponse, error) {
	usr, err := h.userService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerHandler,
				platformerrors.ErrorTypeUnauthorized,
				"login failed",
				err,
				"e7d1b3f5-9a28-4c64-b0e7-5f2a8c6d3b91",
			)
		}
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "login failed")
	}
	return authresponses.NewLoginResponse(usr), nil
}
