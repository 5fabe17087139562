package analysis

import (
	"testing"

	"wallet_intel/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func insightTitles(insights []entity.Insight) []string {
	titles := make([]string, 0, len(insights))
	for _, i := range insights {
		titles = append(titles, i.Title)
	}
	return titles
}

func TestGenerateInsights(t *testing.T) {
	tables := DefaultTables()

	t.Run("rules fire in fixed order", func(t *testing.T) {
		report := &entity.WalletReport{
			Summary: entity.ReportSummary{
				TotalValueUSD: 52345.5,
				STXBalance:    50,
				RiskLevel:     entity.RiskHigh,
				ActivityLevel: entity.ActivityInactive,
				NFTCount:      12,
			},
			Allocation: entity.Allocation{STX: 0.05, BlueChip: 0.6, Meme: 0.35},
			Tokens:     []entity.TokenHolding{{Symbol: "USDA", ValueUSD: 40000}},
			NFTs:       []entity.NFTHolding{{Count: 10}, {Count: 1}, {Count: 1}},
		}

		got := GenerateInsights(report, tables)
		require.Equal(t, []string{
			"Large Portfolio",
			"High Risk Profile",
			"Concentration Risk",
			"Low STX Balance",
			"sBTC Consideration",
			"Dormant Wallet",
			"NFT Collector",
		}, insightTitles(got))

		require.Equal(t, entity.InsightInfo, got[0].Type)
		require.Equal(t, "Portfolio value of $52,345.5 puts you in the top tier of Stacks holders.", got[0].Description)
		require.Empty(t, got[0].Action)
		require.Equal(t, entity.InsightRisk, got[1].Type)
		require.Equal(t, "35% of your portfolio is in high-volatility tokens.", got[1].Description)
		require.Equal(t, "76% of your portfolio is in USDA.", got[2].Description)
		require.Equal(t, entity.InsightOpportunity, got[4].Type)
		require.Equal(t, "Holding 12 NFTs across 3 collections.", got[6].Description)
	})

	t.Run("any defi position suppresses the idle balance insight", func(t *testing.T) {
		report := &entity.WalletReport{
			Summary:    entity.ReportSummary{TotalValueUSD: 600, STXBalance: 1000, ActivityLevel: entity.ActivityLow},
			Allocation: entity.Allocation{STX: 1},
			DeFi:       []entity.DeFiPosition{{Protocol: "Velar", Type: entity.PositionDEX, Interactions: 1}},
		}

		got := GenerateInsights(report, tables)
		require.Equal(t, []string{"Stacking Available"}, insightTitles(got))
		require.Equal(t, "Your 1000 STX could earn ~8-10% APY through stacking.", got[0].Description)
	})

	t.Run("staking position suppresses the stacking insight", func(t *testing.T) {
		report := &entity.WalletReport{
			Summary:    entity.ReportSummary{TotalValueUSD: 600, STXBalance: 1000, ActivityLevel: entity.ActivityLow},
			Allocation: entity.Allocation{STX: 1},
			DeFi:       []entity.DeFiPosition{{Protocol: "StackingDAO", Type: entity.PositionStaking, Interactions: 3}},
		}
		require.Empty(t, GenerateInsights(report, tables))
	})

	t.Run("holding the yield asset suppresses the suggestion", func(t *testing.T) {
		report := &entity.WalletReport{
			Summary:    entity.ReportSummary{TotalValueUSD: 1000, ActivityLevel: entity.ActivityLow},
			Allocation: entity.Allocation{STX: 0.2, BlueChip: 0.8},
			Tokens: []entity.TokenHolding{
				{Symbol: "USDA", ValueUSD: 500},
				{Symbol: "SBTC", ValueUSD: 300},
			},
		}
		require.Empty(t, GenerateInsights(report, tables))
	})

	t.Run("small low stx portfolio is not warned", func(t *testing.T) {
		report := &entity.WalletReport{
			Summary:    entity.ReportSummary{TotalValueUSD: 100, ActivityLevel: entity.ActivityModerate},
			Allocation: entity.Allocation{Other: 1},
			Tokens:     []entity.TokenHolding{{Symbol: "A", ValueUSD: 50}, {Symbol: "B", ValueUSD: 50}},
		}
		require.Empty(t, GenerateInsights(report, tables))
	})

	t.Run("no insights is an empty list", func(t *testing.T) {
		got := GenerateInsights(&entity.WalletReport{Summary: entity.ReportSummary{ActivityLevel: entity.ActivityHigh}}, tables)
		require.NotNil(t, got)
		require.Empty(t, got)
	})
}

func TestLocaleAmount(t *testing.T) {
	require.Equal(t, "52,345.5", localeAmount(52345.5))
	require.Equal(t, "50,001", localeAmount(50001))
	require.Equal(t, "1,234,567.892", localeAmount(1234567.8915))
	require.Equal(t, "0.3", localeAmount(0.1+0.2))
	require.Equal(t, "75,000", localeAmount(74999.9999))

	report := &entity.WalletReport{Summary: entity.ReportSummary{TotalValueUSD: 50001, ActivityLevel: entity.ActivityHigh}}
	got := GenerateInsights(report, DefaultTables())
	require.Equal(t, "Portfolio value of $50,001 puts you in the top tier of Stacks holders.", got[0].Description)
}
