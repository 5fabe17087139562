package entity

// TeneroHoldings is the response of /v1/stacks/wallets/{address}/holdings.
type TeneroHoldings struct {
	Data *TeneroHoldingsData `json:"data"`
}

// TeneroHoldingsData wraps the holding rows.
type TeneroHoldingsData struct {
	Rows []TeneroHolding `json:"rows"`
}

// TeneroHolding is one fungible token balance row.
type TeneroHolding struct {
	Token            *TeneroToken `json:"token"`
	TokenAddress     string       `json:"token_address"`
	Balance          NumberString `json:"balance"`
	BalanceFormatted NumberString `json:"balance_formatted"`
	ValueUSD         NumberString `json:"value_usd"`
}

// TeneroToken is token metadata embedded in holdings and token lookups.
type TeneroToken struct {
	Symbol    string       `json:"symbol"`
	Name      string       `json:"name"`
	PriceUSD  NumberString `json:"price_usd"`
	Change24h NumberString `json:"change_24h"`
}

// TeneroTokenResponse is the response of /v1/stacks/tokens/{contract}.
type TeneroTokenResponse struct {
	Data *TeneroToken `json:"data"`
}
