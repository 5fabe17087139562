package analysis

import (
	"time"

	"wallet_intel/internal/domain/entity"
	"wallet_intel/internal/pkg/utils"
)

// QuickTopHoldings caps the holdings listed in a quick report.
const QuickTopHoldings = 5

// ReportInputs is everything the provider adapters produced for one address.
type ReportInputs struct {
	Address      string
	BNSName      *string
	STXPrice     float64
	STXBalance   float64
	Tokens       []entity.TokenHolding
	NFTs         []entity.NFTHolding
	Transactions []entity.Transaction
}

// BuildReport aggregates the inputs, scores them and attaches insights last,
// once the rest of the report is complete.
func BuildReport(in ReportInputs, tables *ClassificationTables, now time.Time) entity.WalletReport {
	tokens := SortTokensByValue(in.Tokens)
	nfts := SortNFTsByCount(in.NFTs)
	totals := ComputeTotals(tokens, in.STXBalance, in.STXPrice)
	allocation := ComputeAllocation(tokens, totals)
	activity := SummarizeActivity(in.Transactions, tables, now)
	risk := AssessRisk(tokens, allocation, totals.TotalValueUSD)

	report := entity.WalletReport{
		Address:   in.Address,
		BNSName:   in.BNSName,
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Summary: entity.ReportSummary{
			TotalValueUSD:   totals.TotalValueUSD,
			STXBalance:      in.STXBalance,
			STXPrice:        in.STXPrice,
			TokenCount:      len(tokens),
			NFTCount:        CountNFTs(nfts),
			DeFiProtocols:   len(activity.Positions),
			RiskScore:       risk.Score,
			RiskLevel:       risk.Level,
			ActivityLevel:   ClassifyActivity(activity.TxCount30d, totals.TotalValueUSD),
			PortfolioHealth: AssessHealth(allocation, len(tokens)),
		},
		Allocation: allocation,
		Tokens:     tokens,
		NFTs:       nfts,
		DeFi:       activity.Positions,
		RecentActivity: entity.RecentActivity{
			TxCount30d:      activity.TxCount30d,
			LastActive:      activity.LastActive,
			TopInteractions: activity.TopInteractions,
		},
	}
	report.Insights = GenerateInsights(&report, tables)
	return report
}

// BuildQuickReport projects the inputs to display strings and the largest holdings.
// NFTs and transactions are ignored.
func BuildQuickReport(in ReportInputs, now time.Time) entity.QuickReport {
	tokens := SortTokensByValue(in.Tokens)
	totals := ComputeTotals(tokens, in.STXBalance, in.STXPrice)

	top := make([]entity.QuickHolding, 0, QuickTopHoldings)
	for i := 0; i < len(tokens) && i < QuickTopHoldings; i++ {
		t := tokens[i]
		h := entity.QuickHolding{
			Symbol: t.Symbol,
			Value:  utils.FormatUSD(t.ValueUSD, 2),
		}
		if t.Change24h != nil {
			change := utils.FormatSignedPercent(*t.Change24h)
			h.Change24h = &change
		}
		top = append(top, h)
	}

	return entity.QuickReport{
		Address:   in.Address,
		BNSName:   in.BNSName,
		Timestamp: now.UTC().Format(time.RFC3339Nano),
		Summary: entity.QuickSummary{
			TotalValueUSD: utils.FormatUSD(totals.TotalValueUSD, 2),
			STXBalance:    utils.FormatFixed(in.STXBalance, 2) + " STX",
			STXPrice:      utils.FormatUSD(in.STXPrice, 4),
			TokenCount:    len(tokens),
			TopHoldings:   top,
		},
	}
}
