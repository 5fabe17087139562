package analysis

import (
	"testing"

	"wallet_intel/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

func TestAssessRisk(t *testing.T) {
	t.Run("no tokens and no value", func(t *testing.T) {
		got := AssessRisk(nil, entity.Allocation{}, 0)
		require.Equal(t, RiskAssessment{Score: 0, Level: entity.RiskLow}, got)
	})

	t.Run("single token concentration", func(t *testing.T) {
		tokens := []entity.TokenHolding{{Symbol: "FOO", ValueUSD: 9000, Category: entity.CategoryOther}}
		// 9000/10000.01*30 ~ 27 plus 20 for holding a single token
		got := AssessRisk(tokens, entity.Allocation{STX: 0.1, Other: 0.9}, 10000)
		require.Equal(t, RiskAssessment{Score: 47, Level: entity.RiskMedium}, got)
	})

	t.Run("meme heavy single token", func(t *testing.T) {
		tokens := []entity.TokenHolding{{Symbol: "WELSH", ValueUSD: 1000, Category: entity.CategoryMeme}}
		got := AssessRisk(tokens, entity.Allocation{Meme: 0.6, STX: 0.4}, 1000)
		require.Equal(t, RiskAssessment{Score: 90, Level: entity.RiskHigh}, got)
	})

	t.Run("volatility", func(t *testing.T) {
		var calm, wild []entity.TokenHolding
		for i := 0; i < 6; i++ {
			calm = append(calm, entity.TokenHolding{ValueUSD: 100, Category: entity.CategoryOther, Change24h: float64Ptr(-3)})
			wild = append(wild, entity.TokenHolding{ValueUSD: 100, Category: entity.CategoryOther, Change24h: float64Ptr(-25)})
		}
		allocation := entity.Allocation{Other: 1}

		require.Equal(t, 5, AssessRisk(calm, allocation, 600).Score)
		require.Equal(t, 15, AssessRisk(wild, allocation, 600).Score)
	})

	t.Run("missing changes count as zero", func(t *testing.T) {
		tokens := []entity.TokenHolding{
			{ValueUSD: 100, Change24h: float64Ptr(50)},
			{ValueUSD: 100},
			{ValueUSD: 100},
		}
		// mean |change| = 16.7, below the threshold
		require.Equal(t, 20, AssessRisk(tokens, entity.Allocation{Other: 1}, 300).Score)
	})

	t.Run("clamped to 100", func(t *testing.T) {
		tokens := []entity.TokenHolding{{ValueUSD: 1000, Category: entity.CategoryMeme, Change24h: float64Ptr(80)}}
		got := AssessRisk(tokens, entity.Allocation{Meme: 1}, 1000)
		require.Equal(t, 100, got.Score)

		got = AssessRisk(tokens, entity.Allocation{Meme: 1}, 0)
		require.Equal(t, 100, got.Score)
		require.Equal(t, entity.RiskHigh, got.Level)
	})

	t.Run("monotonic in meme allocation", func(t *testing.T) {
		tokens := []entity.TokenHolding{
			{ValueUSD: 300, Category: entity.CategoryMeme},
			{ValueUSD: 200, Category: entity.CategoryOther},
			{ValueUSD: 100, Category: entity.CategoryBlueChip},
		}
		previous := -1
		for meme := 0.0; meme <= 1.0; meme += 0.05 {
			score := AssessRisk(tokens, entity.Allocation{Meme: meme}, 600).Score
			require.GreaterOrEqual(t, score, previous)
			require.LessOrEqual(t, score, 100)
			previous = score
		}
	})
}

func TestRiskLevel(t *testing.T) {
	require.Equal(t, entity.RiskLow, riskLevel(0))
	require.Equal(t, entity.RiskLow, riskLevel(29))
	require.Equal(t, entity.RiskMedium, riskLevel(30))
	require.Equal(t, entity.RiskMedium, riskLevel(59))
	require.Equal(t, entity.RiskHigh, riskLevel(60))
	require.Equal(t, entity.RiskHigh, riskLevel(100))
}

func TestClassifyActivity(t *testing.T) {
	cases := []struct {
		txCount int
		total   float64
		want    entity.ActivityLevel
	}{
		{txCount: 0, total: 100_000.01, want: entity.ActivityWhale},
		{txCount: 50, total: 2_000_000, want: entity.ActivityWhale},
		{txCount: 0, total: 100_000, want: entity.ActivityInactive},
		{txCount: 1, total: 10, want: entity.ActivityLow},
		{txCount: 4, total: 10, want: entity.ActivityLow},
		{txCount: 5, total: 10, want: entity.ActivityModerate},
		{txCount: 19, total: 10, want: entity.ActivityModerate},
		{txCount: 20, total: 10, want: entity.ActivityHigh},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ClassifyActivity(tc.txCount, tc.total), "tx=%d total=%v", tc.txCount, tc.total)
	}
}

func TestAssessHealth(t *testing.T) {
	cases := []struct {
		name       string
		allocation entity.Allocation
		tokens     int
		want       entity.PortfolioHealth
	}{
		{name: "all checks", allocation: entity.Allocation{STX: 0.3, BlueChip: 0.5, Other: 0.2}, tokens: 6, want: entity.HealthExcellent},
		{name: "three checks", allocation: entity.Allocation{STX: 0.3, BlueChip: 0.5, Other: 0.2}, tokens: 2, want: entity.HealthGood},
		{name: "two checks", allocation: entity.Allocation{STX: 1}, tokens: 0, want: entity.HealthFair},
		{name: "empty wallet", allocation: entity.Allocation{}, tokens: 0, want: entity.HealthPoor},
		{name: "meme only", allocation: entity.Allocation{Meme: 1}, tokens: 1, want: entity.HealthPoor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, AssessHealth(tc.allocation, tc.tokens))
		})
	}
}
