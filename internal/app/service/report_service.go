package service

import (
	"context"
	"time"

	"wallet_intel/internal/app/analysis"
	"wallet_intel/internal/app/port"
	"wallet_intel/internal/domain/entity"
	"wallet_intel/internal/pkg/metrics"

	"golang.org/x/sync/errgroup"
)

const (
	reportKindFull  = "full"
	reportKindQuick = "quick"
)

// ReportServiceImpl implements port.ReportService.
type ReportServiceImpl struct {
	market   port.MarketProvider
	account  port.AccountProvider
	holdings port.HoldingsProvider
	activity port.ActivityProvider
	tables   *analysis.ClassificationTables
	logger   port.Logger
	now      func() time.Time
}

// NewReportService creates a new instance of ReportServiceImpl.
// A nil clock defaults to time.Now, nil tables to analysis.DefaultTables.
func NewReportService(
	market port.MarketProvider,
	account port.AccountProvider,
	holdings port.HoldingsProvider,
	activity port.ActivityProvider,
	tables *analysis.ClassificationTables,
	l port.Logger,
	now func() time.Time,
) port.ReportService {
	if now == nil {
		now = time.Now
	}
	if tables == nil {
		tables = analysis.DefaultTables()
	}
	return &ReportServiceImpl{
		market:   market,
		account:  account,
		holdings: holdings,
		activity: activity,
		tables:   tables,
		logger:   l,
		now:      now,
	}
}

// GenerateReport fetches all six inputs concurrently and assembles the full report.
// Adapters never fail, so the group only serves as a join point.
func (s *ReportServiceImpl) GenerateReport(ctx context.Context, address string) entity.WalletReport {
	start := s.now()
	s.logger.Debug("Generating report", "address", address)

	in := analysis.ReportInputs{Address: address}
	var g errgroup.Group
	g.Go(func() error {
		in.STXPrice = s.market.STXPrice(ctx)
		return nil
	})
	g.Go(func() error {
		in.BNSName = s.account.BNSName(ctx, address)
		return nil
	})
	g.Go(func() error {
		in.STXBalance = s.account.STXBalance(ctx, address)
		return nil
	})
	g.Go(func() error {
		in.Tokens = s.holdings.TokenHoldings(ctx, address)
		return nil
	})
	g.Go(func() error {
		in.NFTs = s.holdings.NFTHoldings(ctx, address)
		return nil
	})
	g.Go(func() error {
		in.Transactions = s.activity.Transactions(ctx, address)
		return nil
	})
	_ = g.Wait()

	report := analysis.BuildReport(in, s.tables, s.now())
	s.observe(reportKindFull, start)
	s.logger.Info("Report generated",
		"address", address,
		"total_value_usd", report.Summary.TotalValueUSD,
		"risk_score", report.Summary.RiskScore,
		"insights", len(report.Insights))
	return report
}

// GenerateQuickReport fetches price, name, balance and tokens and builds the quick projection.
func (s *ReportServiceImpl) GenerateQuickReport(ctx context.Context, address string) entity.QuickReport {
	start := s.now()
	s.logger.Debug("Generating quick report", "address", address)

	in := analysis.ReportInputs{Address: address}
	var g errgroup.Group
	g.Go(func() error {
		in.STXPrice = s.market.STXPrice(ctx)
		return nil
	})
	g.Go(func() error {
		in.BNSName = s.account.BNSName(ctx, address)
		return nil
	})
	g.Go(func() error {
		in.STXBalance = s.account.STXBalance(ctx, address)
		return nil
	})
	g.Go(func() error {
		in.Tokens = s.holdings.TokenHoldings(ctx, address)
		return nil
	})
	_ = g.Wait()

	report := analysis.BuildQuickReport(in, s.now())
	s.observe(reportKindQuick, start)
	s.logger.Info("Quick report generated", "address", address, "total_value_usd", report.Summary.TotalValueUSD)
	return report
}

func (s *ReportServiceImpl) observe(kind string, start time.Time) {
	metrics.ReportDuration.WithLabelValues(kind).Observe(s.now().Sub(start).Seconds())
}
