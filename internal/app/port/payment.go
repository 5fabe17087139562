package port

import (
	"context"

	"wallet_intel/internal/domain/entity"
)

// PaymentVerifier checks that a payment transaction referenced by a client settled.
type PaymentVerifier interface {
	Verify(ctx context.Context, txRef string) entity.PaymentVerification
}
