package client

import (
	"context"
	"net/url"

	"wallet_intel/internal/entity"

	"go.uber.org/zap"
)

// TeneroClient defines the Tenero market data endpoints the service reads.
type TeneroClient interface {
	GetWalletHoldings(ctx context.Context, address string) (*entity.TeneroHoldings, error)
	GetToken(ctx context.Context, contract string) (*entity.TeneroTokenResponse, error)
}

type teneroClientImpl struct {
	rest *restClient
}

// NewTeneroClient creates a Tenero API client.
func NewTeneroClient(opts Options, logger *zap.Logger) TeneroClient {
	return &teneroClientImpl{rest: newRestClient(opts, logger.Named("TeneroClient"))}
}

func (c *teneroClientImpl) GetWalletHoldings(ctx context.Context, address string) (*entity.TeneroHoldings, error) {
	var out entity.TeneroHoldings
	if err := c.rest.getJSON(ctx, "/v1/stacks/wallets/"+url.PathEscape(address)+"/holdings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *teneroClientImpl) GetToken(ctx context.Context, contract string) (*entity.TeneroTokenResponse, error) {
	var out entity.TeneroTokenResponse
	if err := c.rest.getJSON(ctx, "/v1/stacks/tokens/"+url.PathEscape(contract), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
