package main

import (
	"fmt"
	"time"

	"wallet_intel/internal/app/port"
	"wallet_intel/internal/app/provider"
	"wallet_intel/internal/app/service"
	"wallet_intel/internal/client"
	"wallet_intel/internal/config"
	"wallet_intel/internal/domain/entity"
	"wallet_intel/internal/infrastructure/restapi"
	"wallet_intel/internal/infrastructure/tableloader"
	"wallet_intel/internal/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// application holds the wired services shared by the subcommands.
type application struct {
	reports  port.ReportService
	payments port.PaymentVerifier
}

func newApplication(cfg *config.Config, zapLogger *zap.Logger) (*application, error) {
	tablesLog := logger.FromZap(zapLogger, "TableLoader")
	tables, err := tableloader.NewTableLoader(cfg.Tables.File, tablesLog.Info, tablesLog.Warn).GetTables()
	if err != nil {
		return nil, fmt.Errorf("failed to load classification tables: %w", err)
	}

	timeout := cfg.RequestTimeout()
	hiro := client.NewHiroClient(client.Options{
		BaseURL: cfg.Hiro.BaseURL,
		Timeout: timeout,
		Limiter: newLimiter(cfg),
	}, zapLogger)
	tenero := client.NewTeneroClient(client.Options{
		BaseURL: cfg.Tenero.BaseURL,
		Timeout: timeout,
		Limiter: newLimiter(cfg),
	}, zapLogger)
	coinGecko := client.NewCoinGeckoClient(client.Options{
		BaseURL: cfg.CoinGecko.BaseURL,
		Timeout: timeout,
		Limiter: newLimiter(cfg),
	}, cfg.CoinGecko.ApiKey, zapLogger)
	zapLogger.Info("Upstream clients initialized",
		zap.String("hiro", cfg.Hiro.BaseURL),
		zap.String("tenero", cfg.Tenero.BaseURL),
		zap.String("coingecko", cfg.CoinGecko.BaseURL),
		zap.Duration("timeout", timeout))

	market := provider.NewMarketProvider(coinGecko, tenero, cfg.PriceTTL(), cfg.PriceCache.FallbackPrice,
		logger.FromZap(zapLogger, "MarketProvider"))
	account := provider.NewAccountProvider(hiro, logger.FromZap(zapLogger, "AccountProvider"))
	holdings := provider.NewHoldingsProvider(tenero, hiro, tables, logger.FromZap(zapLogger, "HoldingsProvider"))
	activity := provider.NewActivityProvider(hiro, logger.FromZap(zapLogger, "ActivityProvider"))

	reports := service.NewReportService(market, account, holdings, activity, tables,
		logger.FromZap(zapLogger, "ReportService"), time.Now)
	payments := service.NewPaymentService(hiro, cfg.Payment.Mode, cfg.Payment.Contract,
		logger.FromZap(zapLogger, "PaymentService"))

	return &application{reports: reports, payments: payments}, nil
}

// newLimiter returns a limiter for one upstream, or nil when limiting is disabled.
func newLimiter(cfg *config.Config) *rate.Limiter {
	if cfg.Upstream.RateLimit <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(cfg.Upstream.RateLimit), cfg.Upstream.Burst)
}

func paymentGateConfig(cfg *config.Config) restapi.PaymentGateConfig {
	return restapi.PaymentGateConfig{
		Enabled:   cfg.Payment.Enabled,
		Network:   cfg.Payment.Network,
		PayTo:     cfg.Payment.PayTo,
		Contract:  cfg.Payment.Contract,
		TokenType: cfg.Payment.TokenType,
		TokenContract: entity.TokenContract{
			Address: cfg.Payment.TokenContract.Address,
			Name:    cfg.Payment.TokenContract.Name,
		},
		FullPrice:  cfg.Payment.FullPrice,
		QuickPrice: cfg.Payment.QuickPrice,
	}
}
