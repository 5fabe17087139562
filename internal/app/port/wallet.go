package port

import "wallet_intel/internal/domain/entity"

// WalletProvider defines the interface for fetching wallet addresses queued for analysis.
type WalletProvider interface {
	GetWallets() ([]entity.Wallet, error)
}
