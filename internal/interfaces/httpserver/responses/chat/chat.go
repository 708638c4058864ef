package chatresponses

import "github.com/shopspring/decimal"

// ChatResponse is the chat gateway reply. Cost is in display currency,
// rounded to two decimals.
type ChatResponse struct {
	Reply          string          `json:"reply"`
	ConversationID uint            `json:"conversationId"`
	Cost           decimal.Decimal `json:"cost"`
	Tokens         *int            `json:"tokens,omitempty"`
}
