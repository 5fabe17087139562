package restapi

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter wires middleware and routes. Paid routes check the payment before the address.
func SetupRouter(h *ReportHandler, gate *PaymentGate, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", PaymentHeader}
	router.Use(cors.New(corsConfig))
	router.Use(ZapLoggerMiddleware(logger))
	router.Use(gin.Recovery())

	router.GET("/", h.InfoHandler)
	router.GET("/health", h.HealthHandler)
	router.GET("/.well-known/x402", h.DiscoveryHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/analyze/:address", gate.Require(gate.cfg.FullPrice), RequireStacksAddress(), h.AnalyzeHandler)
	router.GET("/quick/:address", gate.Require(gate.cfg.QuickPrice), RequireStacksAddress(), h.QuickHandler)

	return router
}
