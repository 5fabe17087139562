package provider

import (
	"wallet_intel/internal/app/port"
	"wallet_intel/internal/pkg/metrics"
)

// Fallback sources, used as metric labels.
const (
	sourcePrice        = "price"
	sourceCoinGecko    = "coingecko"
	sourceTeneroPrice  = "tenero_price"
	sourceBalance      = "hiro_balance"
	sourceNames        = "hiro_names"
	sourceTokens       = "tenero_holdings"
	sourceNFTs         = "hiro_nft_holdings"
	sourceTransactions = "hiro_transactions"
)

// recordFallback logs and counts an upstream failure that was replaced by a default value.
func recordFallback(logger port.Logger, source string, args ...any) {
	metrics.UpstreamFallbacks.WithLabelValues(source).Inc()
	logger.Warn("Upstream call failed, using default value", append([]any{"source", source}, args...)...)
}
