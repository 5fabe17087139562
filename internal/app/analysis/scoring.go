package analysis

import (
	"math"

	"wallet_intel/internal/domain/entity"

	"github.com/montanaflynn/stats"
)

const (
	memeWeight            = 80.0
	memeCap               = 40.0
	concentrationWeight   = 30.0
	concentrationEpsilon  = 0.01
	volatilityThreshold   = 20.0
	volatilityPenalty     = 10.0
	highRiskThreshold     = 60
	mediumRiskThreshold   = 30
	whaleThresholdUSD     = 100_000.0
	diversifiedTokenCount = 5
)

// RiskAssessment is a 0-100 risk score and its level.
type RiskAssessment struct {
	Score int
	Level entity.RiskLevel
}

// AssessRisk scores meme exposure, concentration in the largest token, lack of
// diversification and 24h volatility. The score is rounded and clamped to [0, 100].
// A wallet without tokens carries no token risk: only the meme share can contribute.
func AssessRisk(tokens []entity.TokenHolding, allocation entity.Allocation, totalValueUSD float64) RiskAssessment {
	score := math.Min(allocation.Meme*memeWeight, memeCap)

	if len(tokens) > 0 {
		values := make(stats.Float64Data, 0, len(tokens))
		for _, t := range tokens {
			values = append(values, t.ValueUSD)
		}
		if largest, err := stats.Max(values); err == nil {
			score += largest / (totalValueUSD + concentrationEpsilon) * concentrationWeight
		}
	}

	switch n := len(tokens); {
	case n == 0:
	case n <= 2:
		score += 20
	case n <= diversifiedTokenCount:
		score += 10
	}

	if averageAbsChange(tokens) > volatilityThreshold {
		score += volatilityPenalty
	}

	rounded := int(math.Round(score))
	rounded = max(0, min(rounded, 100))
	return RiskAssessment{Score: rounded, Level: riskLevel(rounded)}
}

// ClassifyActivity buckets a wallet by its 30-day transaction count. Wallets
// worth more than the whale threshold are whales regardless of activity.
func ClassifyActivity(txCount30d int, totalValueUSD float64) entity.ActivityLevel {
	switch {
	case totalValueUSD > whaleThresholdUSD:
		return entity.ActivityWhale
	case txCount30d <= 0:
		return entity.ActivityInactive
	case txCount30d < 5:
		return entity.ActivityLow
	case txCount30d < 20:
		return entity.ActivityModerate
	default:
		return entity.ActivityHigh
	}
}

// AssessHealth rates a portfolio by how many of four composition checks it passes.
func AssessHealth(allocation entity.Allocation, tokenCount int) entity.PortfolioHealth {
	checks := []bool{
		tokenCount >= diversifiedTokenCount,
		allocation.Meme < 0.2,
		allocation.BlueChip > 0.3,
		allocation.STX > 0.1,
	}
	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}

	switch {
	case passed >= 4:
		return entity.HealthExcellent
	case passed == 3:
		return entity.HealthGood
	case passed == 2:
		return entity.HealthFair
	default:
		return entity.HealthPoor
	}
}

func riskLevel(score int) entity.RiskLevel {
	switch {
	case score >= highRiskThreshold:
		return entity.RiskHigh
	case score >= mediumRiskThreshold:
		return entity.RiskMedium
	default:
		return entity.RiskLow
	}
}

// averageAbsChange is the mean absolute 24h change; tokens without a change count as 0.
func averageAbsChange(tokens []entity.TokenHolding) float64 {
	changes := make(stats.Float64Data, 0, len(tokens))
	for _, t := range tokens {
		var c float64
		if t.Change24h != nil {
			c = math.Abs(*t.Change24h)
		}
		changes = append(changes, c)
	}
	mean, err := stats.Mean(changes)
	if err != nil {
		return 0
	}
	return mean
}
