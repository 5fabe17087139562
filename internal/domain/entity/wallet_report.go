package entity

// RiskLevel buckets a risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// ActivityLevel classifies how active (or how large) a wallet is.
type ActivityLevel string

const (
	ActivityInactive ActivityLevel = "inactive"
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
	ActivityWhale    ActivityLevel = "whale"
)

// PortfolioHealth is a coarse rating of portfolio composition.
type PortfolioHealth string

const (
	HealthPoor      PortfolioHealth = "poor"
	HealthFair      PortfolioHealth = "fair"
	HealthGood      PortfolioHealth = "good"
	HealthExcellent PortfolioHealth = "excellent"
)

// Allocation holds the share of total USD value per bucket.
// The fields sum to 1 when the total value is positive and are all 0 otherwise.
type Allocation struct {
	STX      float64 `json:"stx"`
	BlueChip float64 `json:"blueChip"`
	DeFi     float64 `json:"defi"`
	Meme     float64 `json:"meme"`
	Other    float64 `json:"other"`
}

// ReportSummary is the headline block of a WalletReport.
type ReportSummary struct {
	TotalValueUSD   float64         `json:"totalValueUsd"`
	STXBalance      float64         `json:"stxBalance"`
	STXPrice        float64         `json:"stxPrice"`
	TokenCount      int             `json:"tokenCount"`
	NFTCount        int             `json:"nftCount"`
	DeFiProtocols   int             `json:"defiProtocols"`
	RiskScore       int             `json:"riskScore"`
	RiskLevel       RiskLevel       `json:"riskLevel"`
	ActivityLevel   ActivityLevel   `json:"activityLevel"`
	PortfolioHealth PortfolioHealth `json:"portfolioHealth"`
}

// RecentActivity summarizes the fetched transaction window.
type RecentActivity struct {
	TxCount30d      int      `json:"txCount30d"`
	LastActive      *string  `json:"lastActive"`
	TopInteractions []string `json:"topInteractions"`
}

// WalletReport is the full intelligence report for one address.
type WalletReport struct {
	Address        string         `json:"address"`
	BNSName        *string        `json:"bnsName"`
	Timestamp      string         `json:"timestamp"`
	Summary        ReportSummary  `json:"summary"`
	Allocation     Allocation     `json:"allocation"`
	Tokens         []TokenHolding `json:"tokens"`
	NFTs           []NFTHolding   `json:"nfts"`
	DeFi           []DeFiPosition `json:"defi"`
	RecentActivity RecentActivity `json:"recentActivity"`
	Insights       []Insight      `json:"insights"`
}
