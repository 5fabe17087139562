package entity

// QuickHolding is a display-ready entry of the quick summary.
type QuickHolding struct {
	Symbol    string  `json:"symbol"`
	Value     string  `json:"value"`
	Change24h *string `json:"change24h"`
}

// QuickSummary holds pre-formatted totals.
type QuickSummary struct {
	TotalValueUSD string         `json:"totalValueUsd"`
	STXBalance    string         `json:"stxBalance"`
	STXPrice      string         `json:"stxPrice"`
	TokenCount    int            `json:"tokenCount"`
	TopHoldings   []QuickHolding `json:"topHoldings"`
}

// QuickReport is the reduced projection of a wallet served by the quick endpoint.
type QuickReport struct {
	Address   string       `json:"address"`
	BNSName   *string      `json:"bnsName"`
	Timestamp string       `json:"timestamp"`
	Summary   QuickSummary `json:"summary"`
}
