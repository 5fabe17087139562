package provider

import (
	"context"

	"wallet_intel/internal/app/analysis"
	"wallet_intel/internal/app/port"
	"wallet_intel/internal/client"
	"wallet_intel/internal/domain/entity"
)

// NFTHoldingsLimit is the page size requested from the NFT holdings endpoint.
const NFTHoldingsLimit = 100

type holdingsProviderImpl struct {
	tenero client.TeneroClient
	hiro   client.HiroClient
	tables *analysis.ClassificationTables
	logger port.Logger
}

// NewHoldingsProvider creates a HoldingsProvider: fungible tokens from Tenero, NFTs from Hiro.
func NewHoldingsProvider(tenero client.TeneroClient, hiro client.HiroClient, tables *analysis.ClassificationTables, logger port.Logger) port.HoldingsProvider {
	return &holdingsProviderImpl{tenero: tenero, hiro: hiro, tables: tables, logger: logger}
}

// TokenHoldings implements port.HoldingsProvider.
func (p *holdingsProviderImpl) TokenHoldings(ctx context.Context, address string) []entity.TokenHolding {
	raw, err := p.tenero.GetWalletHoldings(ctx, address)
	if err != nil {
		recordFallback(p.logger, sourceTokens, "address", address, "error", err)
		return []entity.TokenHolding{}
	}
	if raw.Data == nil {
		return []entity.TokenHolding{}
	}
	return analysis.NormalizeTokenHoldings(raw.Data.Rows, p.tables)
}

// NFTHoldings implements port.HoldingsProvider.
func (p *holdingsProviderImpl) NFTHoldings(ctx context.Context, address string) []entity.NFTHolding {
	raw, err := p.hiro.GetNFTHoldings(ctx, address, NFTHoldingsLimit)
	if err != nil {
		recordFallback(p.logger, sourceNFTs, "address", address, "error", err)
		return []entity.NFTHolding{}
	}
	return analysis.GroupNFTHoldings(raw.Results)
}
