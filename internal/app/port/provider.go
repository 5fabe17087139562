package port

import (
	"context"

	"wallet_intel/internal/domain/entity"
)

// MarketProvider returns the current STX unit price in USD. It never fails:
// when every source is down it answers with the last known or a fallback price.
type MarketProvider interface {
	STXPrice(ctx context.Context) float64
}

// AccountProvider resolves account level data. Failures yield 0 and nil.
type AccountProvider interface {
	STXBalance(ctx context.Context, address string) float64
	BNSName(ctx context.Context, address string) *string
}

// HoldingsProvider lists fungible and non-fungible holdings. Failures yield empty lists.
type HoldingsProvider interface {
	TokenHoldings(ctx context.Context, address string) []entity.TokenHolding
	NFTHoldings(ctx context.Context, address string) []entity.NFTHolding
}

// ActivityProvider lists recent transactions. Failures yield an empty list.
type ActivityProvider interface {
	Transactions(ctx context.Context, address string) []entity.Transaction
}
