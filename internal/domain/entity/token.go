package entity

// TokenCategory groups fungible tokens for allocation and risk purposes.
type TokenCategory string

const (
	CategoryBlueChip TokenCategory = "blue-chip"
	CategoryDeFi     TokenCategory = "defi"
	CategoryMeme     TokenCategory = "meme"
	CategoryOther    TokenCategory = "other"
)

// TokenHolding is a single fungible token balance held by a wallet, valued in USD.
type TokenHolding struct {
	Symbol           string        `json:"symbol"`
	Name             string        `json:"name"`
	Contract         string        `json:"contract"`
	Balance          string        `json:"balance"`
	BalanceFormatted float64       `json:"balanceFormatted"`
	ValueUSD         float64       `json:"valueUsd"`
	PriceUSD         float64       `json:"priceUsd"`
	Change24h        *float64      `json:"change24h"`
	Category         TokenCategory `json:"category"`
}
