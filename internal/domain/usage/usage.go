// Package usage aggregates per-user spend and activity counters for the
// usage dashboard.
package usage

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eappleew/Chat-Cheappt/internal/domain/conversation"
	"github.com/eappleew/Chat-Cheappt/internal/domain/genimage"
	"github.com/eappleew/Chat-Cheappt/internal/domain/user"
)

// Summary is the aggregate view returned by the dashboard endpoint. CostUSD
// is the sum of every persisted per-message cost; image turns already carry
// their per-image cost on the assistant message, so nothing is recomputed
// from counts.
type Summary struct {
	CostUSD      decimal.Decimal
	MessageCount int64
	ImageCount   int64
	JoinedAt     time.Time
}

// Service computes usage summaries from persisted rows.
type Service struct {
	users  user.Repository
	convs  conversation.Repository
	images genimage.Repository
}

// NewService constructs a Service with required dependencies.
func NewService(users user.Repository, convs conversation.Repository, images genimage.Repository) *Service {
	return &Service{users: users, convs: convs, images: images}
}

// Summarize aggregates a user's persisted costs and counters. Returns nil
// when the user does not exist.
func (s *Service) Summarize(ctx context.Context, userID uint) (*Summary, error) {
	usr, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, nil
	}

	cost, err := s.convs.SumMessageCostByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	messageCount, err := s.convs.CountMessagesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	imageCount, err := s.images.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		CostUSD:      cost,
		MessageCount: messageCount,
		ImageCount:   imageCount,
		JoinedAt:     usr.CreatedAt,
	}, nil
}
