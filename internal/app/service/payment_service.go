package service

import (
	"context"
	"fmt"
	"strings"

	"wallet_intel/internal/app/port"
	"wallet_intel/internal/client"
	"wallet_intel/internal/domain/entity"
	"wallet_intel/internal/pkg/metrics"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Verification modes.
const (
	// PaymentModeSettlementAsset accepts any successful transaction; contract calls must touch the settlement asset.
	PaymentModeSettlementAsset = "settlement-asset"
	// PaymentModeContract accepts only successful calls into the configured payment contract.
	PaymentModeContract = "contract"
)

const (
	txStatusSuccess = "success"
	txIDLength      = 32

	// DefaultSettlementAsset is the substring a settlement contract id must contain.
	DefaultSettlementAsset = "sbtc"

	verificationValid   = "valid"
	verificationInvalid = "invalid"
)

// PaymentServiceImpl implements port.PaymentVerifier against the Hiro transaction lookup.
type PaymentServiceImpl struct {
	hiro            client.HiroClient
	mode            string
	contract        string
	settlementAsset string
	logger          port.Logger
}

// NewPaymentService creates a PaymentVerifier. An unknown mode falls back to PaymentModeSettlementAsset.
func NewPaymentService(hiro client.HiroClient, mode, contract string, l port.Logger) port.PaymentVerifier {
	if mode != PaymentModeContract {
		mode = PaymentModeSettlementAsset
	}
	return &PaymentServiceImpl{
		hiro:            hiro,
		mode:            mode,
		contract:        contract,
		settlementAsset: DefaultSettlementAsset,
		logger:          l,
	}
}

// NormalizeTxID trims the reference, adds the 0x prefix and checks it is a 32-byte hex id.
func NormalizeTxID(txRef string) (string, error) {
	id := strings.TrimSpace(txRef)
	if !strings.HasPrefix(id, "0x") && !strings.HasPrefix(id, "0X") {
		id = "0x" + id
	}
	id = "0x" + strings.ToLower(id[2:])
	raw, err := hexutil.Decode(id)
	if err != nil {
		return "", fmt.Errorf("invalid transaction id: %w", err)
	}
	if len(raw) != txIDLength {
		return "", fmt.Errorf("invalid transaction id: expected %d bytes, got %d", txIDLength, len(raw))
	}
	return id, nil
}

// Verify implements port.PaymentVerifier.
func (s *PaymentServiceImpl) Verify(ctx context.Context, txRef string) entity.PaymentVerification {
	result := s.verify(ctx, txRef)
	if result.Valid {
		metrics.PaymentVerifications.WithLabelValues(verificationValid).Inc()
		s.logger.Info("Payment verified", "caller", result.Caller)
	} else {
		metrics.PaymentVerifications.WithLabelValues(verificationInvalid).Inc()
		s.logger.Warn("Payment rejected", "reason", result.Error)
	}
	return result
}

func (s *PaymentServiceImpl) verify(ctx context.Context, txRef string) entity.PaymentVerification {
	txID, err := NormalizeTxID(txRef)
	if err != nil {
		return entity.PaymentVerification{Error: "Invalid transaction id"}
	}

	tx, err := s.hiro.GetTransaction(ctx, txID)
	if err != nil {
		s.logger.Debug("Payment transaction lookup failed", "tx_id", txID, "error", err)
		return entity.PaymentVerification{Error: "Transaction not found"}
	}
	if tx.TxStatus != txStatusSuccess {
		return entity.PaymentVerification{Error: "Transaction status: " + tx.TxStatus}
	}

	switch s.mode {
	case PaymentModeContract:
		if tx.TxType != entity.TxTypeContractCall || tx.ContractCall == nil || tx.ContractCall.ContractID != s.contract {
			return entity.PaymentVerification{Error: "Not a payment to " + s.contract}
		}
	default:
		if tx.TxType == entity.TxTypeContractCall {
			if tx.ContractCall == nil || !strings.Contains(strings.ToLower(tx.ContractCall.ContractID), s.settlementAsset) {
				return entity.PaymentVerification{Error: "Not an sBTC transfer"}
			}
		}
	}

	return entity.PaymentVerification{Valid: true, Caller: tx.SenderAddress}
}
