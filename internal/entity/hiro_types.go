package entity

// HiroSTXBalance is the response of /extended/v1/address/{principal}/stx.
type HiroSTXBalance struct {
	Balance NumberString `json:"balance"` // micro-STX
}

// HiroNames is the response of /v1/addresses/stacks/{principal}.
type HiroNames struct {
	Names []string `json:"names"`
}

// HiroNFTHoldings is the response of /extended/v1/tokens/nft/holdings.
type HiroNFTHoldings struct {
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
	Total   int              `json:"total"`
	Results []HiroNFTHolding `json:"results"`
}

// HiroNFTHolding is a single NFT asset owned by the principal.
type HiroNFTHolding struct {
	AssetIdentifier string      `json:"asset_identifier"`
	Value           HiroClarity `json:"value"`
	TxID            string      `json:"tx_id"`
	BlockHeight     int64       `json:"block_height"`
}

// HiroClarity is a Clarity value as rendered by the API.
type HiroClarity struct {
	Hex  string `json:"hex"`
	Repr string `json:"repr"`
}

// HiroTransactions is the response of /extended/v1/address/{principal}/transactions.
type HiroTransactions struct {
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
	Total   int               `json:"total"`
	Results []HiroTransaction `json:"results"`
}

// HiroTransaction is a transaction as returned by both the history and the lookup endpoints.
type HiroTransaction struct {
	TxID             string            `json:"tx_id"`
	TxType           string            `json:"tx_type"`
	TxStatus         string            `json:"tx_status"`
	SenderAddress    string            `json:"sender_address"`
	BurnBlockTimeISO string            `json:"burn_block_time_iso"`
	ContractCall     *HiroContractCall `json:"contract_call,omitempty"`
}

// HiroContractCall describes the target of a contract_call transaction.
type HiroContractCall struct {
	ContractID   string `json:"contract_id"`
	FunctionName string `json:"function_name"`
}
