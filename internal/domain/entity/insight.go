package entity

// InsightType classifies an insight for presentation.
type InsightType string

const (
	InsightInfo        InsightType = "info"
	InsightWarning     InsightType = "warning"
	InsightOpportunity InsightType = "opportunity"
	InsightRisk        InsightType = "risk"
)

// Insight is a generated observation about a wallet, optionally with a suggested action.
type Insight struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Action      string      `json:"action,omitempty"`
}
