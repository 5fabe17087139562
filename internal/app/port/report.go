package port

import (
	"context"

	"wallet_intel/internal/domain/entity"
)

//go:generate mockgen -destination mocks/mock_port.go -package mock_port wallet_intel/internal/app/port ReportService,MarketProvider,AccountProvider,HoldingsProvider,ActivityProvider,PaymentVerifier

// ReportService builds wallet intelligence reports. Both methods always return a
// report: upstream failures only leave fields at their zero or empty values.
type ReportService interface {
	GenerateReport(ctx context.Context, address string) entity.WalletReport
	GenerateQuickReport(ctx context.Context, address string) entity.QuickReport
}
