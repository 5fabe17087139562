package provider

import (
	"context"

	"wallet_intel/internal/app/analysis"
	"wallet_intel/internal/app/port"
	"wallet_intel/internal/client"
)

type accountProviderImpl struct {
	hiro   client.HiroClient
	logger port.Logger
}

// NewAccountProvider creates an AccountProvider backed by the Hiro API.
func NewAccountProvider(hiro client.HiroClient, logger port.Logger) port.AccountProvider {
	return &accountProviderImpl{hiro: hiro, logger: logger}
}

// STXBalance implements port.AccountProvider.
func (p *accountProviderImpl) STXBalance(ctx context.Context, address string) float64 {
	raw, err := p.hiro.GetSTXBalance(ctx, address)
	if err != nil {
		recordFallback(p.logger, sourceBalance, "address", address, "error", err)
		return 0
	}
	return analysis.NormalizeSTXBalance(*raw)
}

// BNSName implements port.AccountProvider.
func (p *accountProviderImpl) BNSName(ctx context.Context, address string) *string {
	raw, err := p.hiro.GetNames(ctx, address)
	if err != nil {
		recordFallback(p.logger, sourceNames, "address", address, "error", err)
		return nil
	}
	return analysis.NormalizeBNSName(*raw)
}
