package client

import (
	"context"
	"net/url"
	"strconv"

	"wallet_intel/internal/entity"

	"go.uber.org/zap"
)

// HiroClient defines the Hiro Stacks API endpoints the service reads.
type HiroClient interface {
	GetSTXBalance(ctx context.Context, principal string) (*entity.HiroSTXBalance, error)
	GetNames(ctx context.Context, principal string) (*entity.HiroNames, error)
	GetNFTHoldings(ctx context.Context, principal string, limit int) (*entity.HiroNFTHoldings, error)
	GetTransactions(ctx context.Context, principal string, limit int) (*entity.HiroTransactions, error)
	GetTransaction(ctx context.Context, txID string) (*entity.HiroTransaction, error)
}

type hiroClientImpl struct {
	rest *restClient
}

// NewHiroClient creates a Hiro API client.
func NewHiroClient(opts Options, logger *zap.Logger) HiroClient {
	return &hiroClientImpl{rest: newRestClient(opts, logger.Named("HiroClient"))}
}

func (c *hiroClientImpl) GetSTXBalance(ctx context.Context, principal string) (*entity.HiroSTXBalance, error) {
	var out entity.HiroSTXBalance
	if err := c.rest.getJSON(ctx, "/extended/v1/address/"+url.PathEscape(principal)+"/stx", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *hiroClientImpl) GetNames(ctx context.Context, principal string) (*entity.HiroNames, error) {
	var out entity.HiroNames
	if err := c.rest.getJSON(ctx, "/v1/addresses/stacks/"+url.PathEscape(principal), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *hiroClientImpl) GetNFTHoldings(ctx context.Context, principal string, limit int) (*entity.HiroNFTHoldings, error) {
	query := url.Values{}
	query.Set("principal", principal)
	query.Set("limit", strconv.Itoa(limit))

	var out entity.HiroNFTHoldings
	if err := c.rest.getJSON(ctx, "/extended/v1/tokens/nft/holdings", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *hiroClientImpl) GetTransactions(ctx context.Context, principal string, limit int) (*entity.HiroTransactions, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var out entity.HiroTransactions
	if err := c.rest.getJSON(ctx, "/extended/v1/address/"+url.PathEscape(principal)+"/transactions", query, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *hiroClientImpl) GetTransaction(ctx context.Context, txID string) (*entity.HiroTransaction, error) {
	var out entity.HiroTransaction
	if err := c.rest.getJSON(ctx, "/extended/v1/tx/"+url.PathEscape(txID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
