package entity

// PaymentVerification is the outcome of checking a payment transaction.
type PaymentVerification struct {
	Valid  bool   `json:"valid"`
	Error  string `json:"error,omitempty"`
	Caller string `json:"caller,omitempty"`
}

// TokenContract identifies a fungible token contract by deployer and name.
type TokenContract struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// PaymentRequirement is returned with HTTP 402 when a request carries no payment.
type PaymentRequirement struct {
	Error             string        `json:"error"`
	Code              string        `json:"code"`
	Resource          string        `json:"resource"`
	Nonce             string        `json:"nonce"`
	ExpiresAt         string        `json:"expiresAt"`
	Network           string        `json:"network"`
	MaxAmountRequired string        `json:"maxAmountRequired"`
	PayTo             string        `json:"payTo"`
	TokenType         string        `json:"tokenType"`
	TokenContract     TokenContract `json:"tokenContract"`
	Instructions      []string      `json:"instructions"`
}
