package restapi

import (
	"net/http"
	"strconv"
	"time"

	"wallet_intel/internal/app/port"
	"wallet_intel/internal/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// PaymentHeader carries the payment transaction id.
	PaymentHeader = "X-Payment"

	paymentCallerKey  = "payment_caller"
	paymentValidity   = 10 * time.Minute
	paymentRequiredID = "PAYMENT_REQUIRED"
)

var paymentInstructions = []string{
	"1. Sign an sBTC transfer transaction",
	"2. Include the signed transaction hex in X-Payment header",
	"3. Transaction will be broadcast and verified",
}

// PaymentGateConfig describes what a client has to pay and to whom.
type PaymentGateConfig struct {
	Enabled       bool
	Network       string
	PayTo         string
	Contract      string
	TokenType     string
	TokenContract entity.TokenContract
	FullPrice     int64
	QuickPrice    int64
}

// PaymentGate guards paid routes behind a verified payment transaction.
type PaymentGate struct {
	verifier port.PaymentVerifier
	cfg      PaymentGateConfig
	now      func() time.Time
	newNonce func() string
}

// NewPaymentGate creates a PaymentGate. A nil clock defaults to time.Now.
func NewPaymentGate(verifier port.PaymentVerifier, cfg PaymentGateConfig, now func() time.Time) *PaymentGate {
	if now == nil {
		now = time.Now
	}
	return &PaymentGate{
		verifier: verifier,
		cfg:      cfg,
		now:      now,
		newNonce: func() string { return uuid.NewString() },
	}
}

// Require returns a middleware asking for price before the rest of the chain runs.
// No header yields 402 with the payment requirements, a failed verification yields 403.
func (g *PaymentGate) Require(price int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.cfg.Enabled {
			c.Next()
			return
		}

		txRef := c.GetHeader(PaymentHeader)
		if txRef == "" {
			c.AbortWithStatusJSON(http.StatusPaymentRequired, g.requirement(c.Request.URL.Path, price))
			return
		}

		verification := g.verifier.Verify(c.Request.Context(), txRef)
		if !verification.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "Payment verification failed",
				"details": verification.Error,
			})
			return
		}

		c.Set(paymentCallerKey, verification.Caller)
		c.Next()
	}
}

func (g *PaymentGate) requirement(resource string, price int64) entity.PaymentRequirement {
	return entity.PaymentRequirement{
		Error:             "Payment Required",
		Code:              paymentRequiredID,
		Resource:          resource,
		Nonce:             g.newNonce(),
		ExpiresAt:         g.now().Add(paymentValidity).UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Network:           g.cfg.Network,
		MaxAmountRequired: strconv.FormatInt(price, 10),
		PayTo:             g.cfg.PayTo,
		TokenType:         g.cfg.TokenType,
		TokenContract:     g.cfg.TokenContract,
		Instructions:      paymentInstructions,
	}
}
