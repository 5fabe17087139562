package entity

import "time"

// TxTypeContractCall is the transaction type tag of a contract call.
const TxTypeContractCall = "contract_call"

// Transaction is a normalized entry of an account's transaction history.
type Transaction struct {
	TxID       string
	Type       string
	Status     string
	Sender     string
	ContractID string // empty unless Type is a contract call
	Timestamp  time.Time
	// TimestampISO is the upstream timestamp string, reported back verbatim.
	TimestampISO string
}
