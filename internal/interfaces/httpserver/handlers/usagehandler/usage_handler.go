package usagehandler

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/eappleew/Chat-Cheappt/internal/config"
	"github.com/eappleew/Chat-Cheappt/internal/domain/pricing"
	"github.com/eappleew/Chat-Cheappt/internal/domain/usage"
	usageresponses "github.com/eappleew/Chat-Cheappt/internal/interfaces/httpserver/responses/usage"
	"github.com/eappleew/Chat-Cheappt/internal/utils/platformerrors"
)

// UsageHandler handles the usage dashboard endpoint
type UsageHandler struct {
	usageService *usage.Service
	exchangeRate decimal.Decimal
}

// NewUsageHandler creates a new usage handler
func NewUsageHandler(usageService *usage.Service, cfg *config.Config) *UsageHandler {
	return &UsageHandler{
		usageService: usageService,
		exchangeRate: decimal.NewFromFloat(cfg.ExchangeRate),
	}
}

// GetUsage aggregates a user's persisted costs and counters.
func (h *UsageHandler) GetUsage(ctx context.Context, userID uint) (*usageresponses.UsageResponse, error) {
	summary, err := h.usageService.Summarize(ctx, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerHandler, err, "failed to compute usage")
	}
	if summary == nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerHandler,
			platformerrors.ErrorTypeNotFound,
			"user not found",
			nil,
			"2a9c7e5b-1d83-46f0-9b47-6e0d8f2a4c13",
		)
	}

	return &usageresponses.UsageResponse{
		Cost:          pricing.ToDisplay(summary.CostUSD, h.exchangeRate),
		MessageCount:  summary.MessageCount,
		ImageCount:    summary.ImageCount,
		APICostDollar: summary.CostUSD,
		JoinDate:      summary.JoinedAt,
	}, nil
}
