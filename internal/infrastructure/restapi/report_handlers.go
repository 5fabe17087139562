package restapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"wallet_intel/internal/app/port"

	"github.com/gin-gonic/gin"
)

const (
	apiName        = "Wallet Intelligence API"
	apiVersion     = "2.0.0"
	apiDescription = "Deep analysis of any Stacks wallet - holdings, DeFi positions, risk score, actionable insights"

	x402Version           = 1
	x402Scheme            = "exact"
	x402Network           = "stacks"
	x402MaxTimeoutSeconds = 300
)

var apiFeatures = []string{
	"Real-time token valuations with live STX price",
	"BNS name resolution",
	"DeFi position detection (ALEX, Velar, Arkadiko, StackingDAO)",
	"NFT inventory grouped by collection",
	"Portfolio allocation breakdown",
	"Risk score (0-100) with level assessment",
	"Actionable insights and opportunities",
}

var apiDataSources = []string{"Hiro API", "Tenero API", "CoinGecko", "On-chain analysis"}

// EndpointInfo describes a single route in the API info document.
type EndpointInfo struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Price       string `json:"price,omitempty"`
	Description string `json:"description"`
}

// EndpointGroup splits the routes by whether they require payment.
type EndpointGroup struct {
	Paid []EndpointInfo `json:"paid"`
	Free []EndpointInfo `json:"free"`
}

// APIInfoResponse is served on the root route.
type APIInfoResponse struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Version     string        `json:"version"`
	Contract    string        `json:"contract"`
	Endpoints   EndpointGroup `json:"endpoints"`
	Features    []string      `json:"features"`
	DataSources []string      `json:"data_sources"`
}

// X402Accept is one payable resource of the discovery document.
type X402Accept struct {
	Scheme            string `json:"scheme"`
	Network           string `json:"network"`
	MaxAmountRequired string `json:"maxAmountRequired"`
	Resource          string `json:"resource"`
	Description       string `json:"description"`
	MimeType          string `json:"mimeType"`
	PayTo             string `json:"payTo"`
	MaxTimeoutSeconds int    `json:"maxTimeoutSeconds"`
	Asset             string `json:"asset"`
	OutputSchema      gin.H  `json:"outputSchema"`
}

// X402Discovery is served on /.well-known/x402.
type X402Discovery struct {
	X402Version int          `json:"x402Version"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Accepts     []X402Accept `json:"accepts"`
}

// ReportHandler serves the report routes and the free informational routes.
type ReportHandler struct {
	reportService port.ReportService
	payment       PaymentGateConfig
	now           func() time.Time
}

// NewReportHandler creates a new instance of ReportHandler. A nil clock defaults to time.Now.
func NewReportHandler(rs port.ReportService, payment PaymentGateConfig, now func() time.Time) *ReportHandler {
	if now == nil {
		now = time.Now
	}
	return &ReportHandler{reportService: rs, payment: payment, now: now}
}

// AnalyzeHandler returns the full report for :address.
func (h *ReportHandler) AnalyzeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.GenerateReport(c.Request.Context(), c.Param(addressParam)))
}

// QuickHandler returns the quick report for :address.
func (h *ReportHandler) QuickHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.reportService.GenerateQuickReport(c.Request.Context(), c.Param(addressParam)))
}

// HealthHandler reports liveness.
func (h *ReportHandler) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": h.now().UTC().Format(time.RFC3339Nano),
	})
}

// InfoHandler describes the API, its prices and its data sources.
func (h *ReportHandler) InfoHandler(c *gin.Context) {
	resp := APIInfoResponse{
		Name:        apiName,
		Description: apiDescription,
		Version:     apiVersion,
		Contract:    h.payment.Contract,
		Features:    apiFeatures,
		DataSources: apiDataSources,
	}
	resp.Endpoints.Paid = []EndpointInfo{
		{Path: "/analyze/:address", Method: http.MethodGet, Price: h.priceLabel(h.payment.FullPrice), Description: "Full wallet intelligence report"},
		{Path: "/quick/:address", Method: http.MethodGet, Price: h.priceLabel(h.payment.QuickPrice), Description: "Quick portfolio summary"},
	}
	resp.Endpoints.Free = []EndpointInfo{
		{Path: "/", Method: http.MethodGet, Description: "API info"},
		{Path: "/health", Method: http.MethodGet, Description: "Health check"},
		{Path: "/.well-known/x402", Method: http.MethodGet, Description: "x402 discovery document"},
	}
	c.JSON(http.StatusOK, resp)
}

// DiscoveryHandler serves the x402 discovery document.
func (h *ReportHandler) DiscoveryHandler(c *gin.Context) {
	c.JSON(http.StatusOK, X402Discovery{
		X402Version: x402Version,
		Name:        "Wallet Intelligence",
		Description: apiDescription,
		Accepts: []X402Accept{
			h.accept("/quick/:address", h.payment.QuickPrice,
				"Quick wallet summary with total value, STX balance, and top holdings", quickReportSchema),
			h.accept("/analyze/:address", h.payment.FullPrice,
				"Full wallet intelligence report with risk score, DeFi positions, NFTs, and insights", fullReportSchema),
		},
	})
}

func (h *ReportHandler) accept(resource string, price int64, description string, output gin.H) X402Accept {
	return X402Accept{
		Scheme:            x402Scheme,
		Network:           x402Network,
		MaxAmountRequired: strconv.FormatInt(price, 10),
		Resource:          resource,
		Description:       description,
		MimeType:          "application/json",
		PayTo:             h.payment.PayTo,
		MaxTimeoutSeconds: x402MaxTimeoutSeconds,
		Asset:             h.payment.TokenType,
		OutputSchema: gin.H{
			"input": gin.H{
				"type": "object",
				"properties": gin.H{
					"address": gin.H{"type": "string", "description": "Stacks wallet address (SP... or SM...)"},
				},
				"required": []string{"address"},
			},
			"output": output,
		},
	}
}

func (h *ReportHandler) priceLabel(price int64) string {
	return fmt.Sprintf("%d sats (%s)", price, h.payment.TokenType)
}

var quickReportSchema = gin.H{
	"type": "object",
	"properties": gin.H{
		"address":   gin.H{"type": "string"},
		"bnsName":   gin.H{"type": "string", "nullable": true},
		"timestamp": gin.H{"type": "string"},
		"summary": gin.H{
			"type": "object",
			"properties": gin.H{
				"totalValueUsd": gin.H{"type": "string"},
				"stxBalance":    gin.H{"type": "string"},
				"stxPrice":      gin.H{"type": "string"},
				"tokenCount":    gin.H{"type": "number"},
				"topHoldings":   gin.H{"type": "array"},
			},
		},
	},
}

var fullReportSchema = gin.H{
	"type": "object",
	"properties": gin.H{
		"address":   gin.H{"type": "string"},
		"bnsName":   gin.H{"type": "string", "nullable": true},
		"timestamp": gin.H{"type": "string"},
		"summary": gin.H{
			"type": "object",
			"properties": gin.H{
				"totalValueUsd":   gin.H{"type": "number"},
				"stxBalance":      gin.H{"type": "number"},
				"stxPrice":        gin.H{"type": "number"},
				"tokenCount":      gin.H{"type": "number"},
				"nftCount":        gin.H{"type": "number"},
				"defiProtocols":   gin.H{"type": "number"},
				"riskScore":       gin.H{"type": "number", "description": "0-100 risk score"},
				"riskLevel":       gin.H{"type": "string", "enum": []string{"low", "medium", "high"}},
				"activityLevel":   gin.H{"type": "string"},
				"portfolioHealth": gin.H{"type": "string"},
			},
		},
		"allocation":     gin.H{"type": "object"},
		"tokens":         gin.H{"type": "array"},
		"nfts":           gin.H{"type": "array"},
		"defi":           gin.H{"type": "array"},
		"recentActivity": gin.H{"type": "object"},
		"insights":       gin.H{"type": "array"},
	},
}
