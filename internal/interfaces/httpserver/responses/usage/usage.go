package usageresponses

import (
	"time"

	"github.com/shopspring/decimal"
)

// UsageResponse is the usage dashboard body. Cost is display currency,
// APICostDollar the raw USD total.
type UsageResponse struct {
	Cost          decimal.Decimal `json:"cost"`
	MessageCount  int64           `json:"messageCount"`
	ImageCount    int64           `json:"imageCount"`
	APICostDollar decimal.Decimal `json:"apiCostDollar"`
	JoinDate      time.Time       `json:"joinDate"`
}
