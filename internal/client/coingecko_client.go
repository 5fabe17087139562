package client

import (
	"context"
	"net/url"
	"strings"

	"wallet_intel/internal/entity"

	"go.uber.org/zap"
)

// CoinGeckoAPIKeyHeader carries the demo API key when one is configured.
const CoinGeckoAPIKeyHeader = "x-cg-demo-api-key"

// CoinGeckoClient defines the CoinGecko endpoints the service reads.
type CoinGeckoClient interface {
	GetSimplePrice(ctx context.Context, ids []string, vsCurrency string) (entity.CoinGeckoSimplePrice, error)
}

type coinGeckoClientImpl struct {
	rest *restClient
}

// NewCoinGeckoClient creates a CoinGecko client. An empty apiKey sends no key header.
func NewCoinGeckoClient(opts Options, apiKey string, logger *zap.Logger) CoinGeckoClient {
	if apiKey != "" {
		headers := make(map[string]string, len(opts.Headers)+1)
		for k, v := range opts.Headers {
			headers[k] = v
		}
		headers[CoinGeckoAPIKeyHeader] = apiKey
		opts.Headers = headers
	}
	return &coinGeckoClientImpl{rest: newRestClient(opts, logger.Named("CoinGeckoClient"))}
}

func (c *coinGeckoClientImpl) GetSimplePrice(ctx context.Context, ids []string, vsCurrency string) (entity.CoinGeckoSimplePrice, error) {
	query := url.Values{}
	query.Set("ids", strings.Join(ids, ","))
	query.Set("vs_currencies", vsCurrency)

	var out entity.CoinGeckoSimplePrice
	if err := c.rest.getJSON(ctx, "/simple/price", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}
