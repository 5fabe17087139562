package provider

import (
	"context"

	"wallet_intel/internal/app/analysis"
	"wallet_intel/internal/app/port"
	"wallet_intel/internal/client"
	"wallet_intel/internal/domain/entity"
)

// TransactionHistoryLimit is the number of most recent transactions fetched per address.
const TransactionHistoryLimit = 100

type activityProviderImpl struct {
	hiro   client.HiroClient
	logger port.Logger
}

// NewActivityProvider creates an ActivityProvider backed by the Hiro API.
func NewActivityProvider(hiro client.HiroClient, logger port.Logger) port.ActivityProvider {
	return &activityProviderImpl{hiro: hiro, logger: logger}
}

// Transactions implements port.ActivityProvider.
func (p *activityProviderImpl) Transactions(ctx context.Context, address string) []entity.Transaction {
	raw, err := p.hiro.GetTransactions(ctx, address, TransactionHistoryLimit)
	if err != nil {
		recordFallback(p.logger, sourceTransactions, "address", address, "error", err)
		return []entity.Transaction{}
	}
	return analysis.NormalizeTransactions(raw.Results)
}
