package provider

import (
	"context"
	"errors"
	"time"

	"wallet_intel/internal/app/port"
	"wallet_intel/internal/client"
	"wallet_intel/internal/pkg/utils"

	"github.com/patrickmn/go-cache"
)

const (
	stxCoinGeckoID     = "blockstack"
	usdCurrency        = "usd"
	wrappedSTXContract = "SP1Y5YSTAHZ88XYK1VPDH24GY0HPX5J4JECTMY4A1.wstx"

	priceCacheKey     = "stx_usd"
	lastKnownPriceKey = "stx_usd_last_known"

	// DefaultPriceTTL is how long a fetched STX price is served from cache.
	DefaultPriceTTL = 5 * time.Minute
	// DefaultFallbackPrice is used when no source ever answered.
	DefaultFallbackPrice = 0.85
)

var errNoPrice = errors.New("no positive price in response")

// marketProviderImpl implements port.MarketProvider.
// Refreshes are not serialized: concurrent callers after expiry may all refresh, last write wins.
type marketProviderImpl struct {
	coinGecko     client.CoinGeckoClient
	tenero        client.TeneroClient
	prices        *cache.Cache
	fallbackPrice float64
	logger        port.Logger
}

// NewMarketProvider creates a MarketProvider trying CoinGecko first, then Tenero.
func NewMarketProvider(
	cg client.CoinGeckoClient,
	tenero client.TeneroClient,
	ttl time.Duration,
	fallbackPrice float64,
	logger port.Logger,
) port.MarketProvider {
	if ttl <= 0 {
		ttl = DefaultPriceTTL
	}
	if fallbackPrice <= 0 {
		fallbackPrice = DefaultFallbackPrice
	}
	return &marketProviderImpl{
		coinGecko:     cg,
		tenero:        tenero,
		prices:        cache.New(ttl, 2*ttl),
		fallbackPrice: fallbackPrice,
		logger:        logger,
	}
}

// STXPrice implements port.MarketProvider.
func (p *marketProviderImpl) STXPrice(ctx context.Context) float64 {
	if cached, ok := p.prices.Get(priceCacheKey); ok {
		return cached.(float64)
	}

	if price, ok := p.fetchPrice(ctx); ok {
		p.prices.Set(priceCacheKey, price, cache.DefaultExpiration)
		p.prices.Set(lastKnownPriceKey, price, cache.NoExpiration)
		p.logger.Debug("STX price refreshed", "price", price)
		return price
	}

	if last, ok := p.prices.Get(lastKnownPriceKey); ok {
		recordFallback(p.logger, sourcePrice, "price", last, "reason", "last known price")
		return last.(float64)
	}
	recordFallback(p.logger, sourcePrice, "price", p.fallbackPrice, "reason", "fallback price")
	return p.fallbackPrice
}

func (p *marketProviderImpl) fetchPrice(ctx context.Context) (float64, bool) {
	prices, err := p.coinGecko.GetSimplePrice(ctx, []string{stxCoinGeckoID}, usdCurrency)
	if err == nil {
		if price := prices[stxCoinGeckoID][usdCurrency]; price > 0 {
			return price, true
		}
		err = errNoPrice
	}
	recordFallback(p.logger, sourceCoinGecko, "error", err)

	token, err := p.tenero.GetToken(ctx, wrappedSTXContract)
	if err == nil {
		if token.Data != nil {
			if price := utils.ParseFloatOrZero(token.Data.PriceUSD.String()); price > 0 {
				return price, true
			}
		}
		err = errNoPrice
	}
	recordFallback(p.logger, sourceTeneroPrice, "error", err)
	return 0, false
}
