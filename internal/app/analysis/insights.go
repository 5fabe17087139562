package analysis

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"wallet_intel/internal/domain/entity"
	"wallet_intel/internal/pkg/utils"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	largePortfolioUSD      = 50_000.0
	concentrationShare     = 0.6
	lowSTXAllocation       = 0.1
	lowSTXMinPortfolioUSD  = 100.0
	idleSTXBalance         = 100.0
	stackingSTXBalance     = 500.0
	blueChipHeavyShare     = 0.5
	nftCollectorItemsCount = 10
)

var amountPrinter = message.NewPrinter(language.English)

// localeAmount groups thousands and keeps at most three fraction digits, without trailing zeros.
func localeAmount(v float64) string {
	whole, frac, _ := strings.Cut(decimal.NewFromFloat(v).Round(3).String(), ".")
	n, _ := strconv.ParseInt(whole, 10, 64)
	out := amountPrinter.Sprintf("%d", n)
	if frac != "" {
		out += "." + frac
	}
	return out
}

// insightRule inspects an assembled report and returns at most one insight.
type insightRule func(r *entity.WalletReport, t *ClassificationTables) (entity.Insight, bool)

// insightRules run in this order; each rule is independent of the others.
var insightRules = []insightRule{
	largePortfolioInsight,
	highRiskInsight,
	concentrationInsight,
	lowSTXInsight,
	idleBalanceInsight,
	stackingInsight,
	yieldAssetInsight,
	dormantWalletInsight,
	nftCollectorInsight,
}

// GenerateInsights evaluates every rule against the report, in a fixed order.
func GenerateInsights(report *entity.WalletReport, tables *ClassificationTables) []entity.Insight {
	insights := make([]entity.Insight, 0)
	for _, rule := range insightRules {
		if insight, ok := rule(report, tables); ok {
			insights = append(insights, insight)
		}
	}
	return insights
}

func largePortfolioInsight(r *entity.WalletReport, _ *ClassificationTables) (entity.Insight, bool) {
	if r.Summary.TotalValueUSD <= largePortfolioUSD {
		return entity.Insight{}, false
	}
	return entity.Insight{
		Type:        entity.InsightInfo,
		Title:       "Large Portfolio",
		Description: fmt.Sprintf("Portfolio value of $%s puts you in the top tier of Stacks holders.", localeAmount(r.Summary.TotalValueUSD)),
	}, true
}

func highRiskInsight(r *entity.WalletReport, _ *ClassificationTables) (entity.Insight, bool) {
	if r.Summary.RiskLevel != entity.RiskHigh {
		return entity.Insight{}, false
	}
	return entity.Insight{
		Type:        entity.InsightRisk,
		Title:       "High Risk Profile",
		Description: fmt.Sprintf("%d%% of your portfolio is in high-volatility tokens.", percent(r.Allocation.Meme)),
		Action:      "Consider rebalancing into stable assets like STX, sBTC, or USDA.",
	}, true
}

func concentrationInsight(r *entity.WalletReport, _ *ClassificationTables) (entity.Insight, bool) {
	if len(r.Tokens) == 0 || r.Summary.TotalValueUSD <= 0 {
		return entity.Insight{}, false
	}
	top := r.Tokens[0]
	for _, t := range r.Tokens[1:] {
		if t.ValueUSD > top.ValueUSD {
			top = t
		}
	}
	share := top.ValueUSD / r.Summary.TotalValueUSD
	if share <= concentrationShare {
		return entity.Insight{}, false
	}
	return entity.Insight{
		Type:        entity.InsightWarning,
		Title:       "Concentration Risk",
		Description: fmt.Sprintf("%d%% of your portfolio is in %s.", percent(share), top.Symbol),
		Action:      "Diversification could reduce volatility.",
	}, true
}

func lowSTXInsight(r *entity.WalletReport, _ *ClassificationTables) (entity.Insight, bool) {
	if r.Allocation.STX >= lowSTXAllocation || r.Summary.TotalValueUSD <= lowSTXMinPortfolioUSD {
		return entity.Insight{}, false
	}
	return entity.Insight{
		Type:        entity.InsightWarning,
		Title:       "Low STX Balance",
		Description: "STX is needed for transaction fees and stacking rewards.",
		Action:      "Consider holding at least 10% in STX for gas and stacking.",
	}, true
}

func idleBalanceInsight(r *entity.WalletReport, _ *ClassificationTables) (entity.Insight, bool) {
	if len(r.DeFi) > 0 || r.Summary.STXBalance <= idleSTXBalance {
		return entity.Insight{}, false
	}
	return entity.Insight{
		Type:        entity.InsightOpportunity,
		Title:       "DeFi Opportunities",
		Description: "You have STX that could be earning yield.",
		Action:      "Explore stacking via StackingDAO or liquidity provision on ALEX.",
	}, true
}

func stackingInsight(r *entity.WalletReport, _ *ClassificationTables) (entity.Insight, bool) {
	if r.Summary.STXBalance <= stackingSTXBalance {
		return entity.Insight{}, false
	}
	for _, p := range r.DeFi {
		if p.Type == entity.PositionStaking {
			return entity.Insight{}, false
		}
	}
	return entity.Insight{
		Type:        entity.InsightOpportunity,
		Title:       "Stacking Available",
		Description: fmt.Sprintf("Your %s STX could earn ~8-10%% APY through stacking.", utils.FormatFixed(r.Summary.STXBalance, 0)),
		Action:      "Stack directly or use liquid stacking protocols like StackingDAO.",
	}, true
}

func yieldAssetInsight(r *entity.WalletReport, t *ClassificationTables) (entity.Insight, bool) {
	if r.Allocation.BlueChip <= blueChipHeavyShare {
		return entity.Insight{}, false
	}
	for _, token := range r.Tokens {
		if t.IsYieldAsset(token.Symbol) {
			return entity.Insight{}, false
		}
	}
	asset := t.YieldAsset()
	return entity.Insight{
		Type:        entity.InsightOpportunity,
		Title:       asset + " Consideration",
		Description: asset + " offers Bitcoin exposure with DeFi utility on Stacks.",
		Action:      "Consider allocating some portfolio to " + asset + " for yield opportunities.",
	}, true
}

func dormantWalletInsight(r *entity.WalletReport, _ *ClassificationTables) (entity.Insight, bool) {
	if r.Summary.ActivityLevel != entity.ActivityInactive {
		return entity.Insight{}, false
	}
	return entity.Insight{
		Type:        entity.InsightInfo,
		Title:       "Dormant Wallet",
		Description: "No transactions in the last 30 days.",
		Action:      "Your assets may be missing yield opportunities.",
	}, true
}

func nftCollectorInsight(r *entity.WalletReport, _ *ClassificationTables) (entity.Insight, bool) {
	if r.Summary.NFTCount <= nftCollectorItemsCount {
		return entity.Insight{}, false
	}
	return entity.Insight{
		Type:        entity.InsightInfo,
		Title:       "NFT Collector",
		Description: fmt.Sprintf("Holding %d NFTs across %d collections.", r.Summary.NFTCount, len(r.NFTs)),
	}, true
}

func percent(share float64) int {
	return int(math.Round(share * 100))
}
