package responses

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eappleew/Chat-Cheappt/internal/infrastructure/logger"
	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
)

// ErrorResponse is the JSON error body. Only the generic message and the
// error code leave the server; internal error text goes to the log.
type ErrorResponse struct {
	Code      string `json:"code,omitempty"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleError logs the full error server-side and responds with the generic
// client-facing message only.
func HandleError(reqCtx *gin.Context, err error, message string) {
	log := logger.GetLogger()

	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		statusCode := platformerrors.ErrorTypeToHTTPStatus(platformErr.GetErrorType())

		log.Error().
			Err(platformErr).
			Str("error_code", platformErr.GetUUID()).
			Str("error_type", string(platformErr.GetErrorType())).
			Str("layer", string(platformErr.Layer)).
			Int("status", statusCode).
			Msg(message)

		reqCtx.AbortWithStatusJSON(statusCode, ErrorResponse{
			Code:      platformErr.GetUUID(),
			Message:   message,
			RequestID: platformErr.GetRequestID(),
		})
		return
	}

	log.Error().Err(err).Msg(message)
	reqCtx.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Message: message,
	})
}

// HandleNewError creates a new typed error at the route layer and handles it
func HandleNewError(reqCtx *gin.Context, errorType platformerrors.ErrorType, message string, uuid string) {
	ctx := reqCtx.Request.Context()
	err := platformerrors.NewError(ctx, platformerrors.LayerRoute, errorType, message, nil, uuid)
	HandleError(reqCtx, err, message)
}
