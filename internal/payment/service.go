package payment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"siddhartha-be/internal/config"
	"siddhartha-be/internal/logger"
	"siddhartha-be/internal/metrics"
	"siddhartha-be/internal/order"

	"go.uber.org/zap"
)

// statusComplete is the gateway's success sentinel. Anything else in the
// callback status field means the payment did not go through.
const statusComplete = "COMPLETE"

// amountTolerance absorbs rounding from the gateway's amount formatting.
const amountTolerance = 1.0

// GatewayConfig is the signed initiation payload handed to the client for the
// redirect form post. It never carries the secret.
type GatewayConfig struct {
	Signature        string            `json:"signature"`
	TransactionUUID  string            `json:"transactionUuid"`
	ProductCode      string            `json:"productCode"`
	SuccessURL       string            `json:"successUrl"`
	FailureURL       string            `json:"failureUrl"`
	SignedFieldNames string            `json:"signedFieldNames"`
	FormFields       map[string]string `json:"formFields"`
}

// VerificationResult reports a successful verification. AlreadyPaid marks the
// idempotent path: the order had been settled before this call.
type VerificationResult struct {
	Order       *order.Order
	AlreadyPaid bool
}

type Service interface {
	// GenerateConfig produces a signed initiation payload for an existing
	// unpaid order. Pure with respect to order state.
	GenerateConfig(ctx context.Context, userID, orderID uint, requestedTotal float64) (*GatewayConfig, error)

	// Verify consumes the gateway's encoded completion callback and performs
	// the one-time paid transition. Safe to call repeatedly and concurrently
	// for the same order.
	Verify(ctx context.Context, encodedPayload string) (*VerificationResult, error)
}

type service struct {
	orders order.Repository
	cfg    config.EsewaConfig
}

func NewService(orders order.Repository, cfg config.EsewaConfig) Service {
	return &service{orders: orders, cfg: cfg}
}

func (s *service) GenerateConfig(ctx context.Context, userID, orderID uint, requestedTotal float64) (*GatewayConfig, error) {
	log := logger.FromCtx(ctx).With(
		zap.Uint("order_id", orderID),
		zap.Uint("user_id", userID),
	)

	o, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != userID {
		return nil, order.ErrUnauthorized
	}
	if o.IsPaid {
		return nil, ErrOrderAlreadyPaid
	}

	// Defensive echo check only. The signed amount below is always the
	// order's own total, never the caller-supplied value.
	if order.Round2(requestedTotal) != order.Round2(o.TotalPrice) {
		log.Warn("requested total does not match order total",
			zap.Float64("requested", requestedTotal),
			zap.Float64("order_total", o.TotalPrice),
		)
		return nil, ErrTotalMismatch
	}

	ref := NewTransactionRef(o.ID)
	amount := FormatAmount(o.TotalPrice)
	signature := Sign(s.cfg.SecretKey, generationString(amount, ref.String(), s.cfg.ProductCode))

	metrics.PaymentConfigsIssuedTotal.Inc()
	log.Info("gateway config issued", zap.String("transaction_uuid", ref.String()))

	return &GatewayConfig{
		Signature:        signature,
		TransactionUUID:  ref.String(),
		ProductCode:      s.cfg.ProductCode,
		SuccessURL:       s.cfg.SuccessURL,
		FailureURL:       s.cfg.FailureURL,
		SignedFieldNames: signedFieldNames,
		FormFields: map[string]string{
			"amount":                  amount,
			"tax_amount":              "0",
			"service_charge":          "0",
			"total_amount":            amount,
			"transaction_uuid":        ref.String(),
			"product_code":            s.cfg.ProductCode,
			"product_service_charge":  "0",
			"product_delivery_charge": "0",
			"success_url":             s.cfg.SuccessURL,
			"failure_url":             s.cfg.FailureURL,
			"signed_field_names":      signedFieldNames,
			"signature":               signature,
		},
	}, nil
}

func (s *service) Verify(ctx context.Context, encodedPayload string) (*VerificationResult, error) {
	log := logger.FromCtx(ctx)

	// 1. Decode.
	cb, err := DecodeCallback(encodedPayload)
	if err != nil {
		metrics.PaymentVerificationsTotal.WithLabelValues(metrics.OutcomeDecodeError).Inc()
		return nil, err
	}

	log = log.With(zap.String("transaction_uuid", cb.TransactionUUID))

	// 2. Gateway status.
	if cb.Status != statusComplete {
		metrics.PaymentVerificationsTotal.WithLabelValues(metrics.OutcomeIncomplete).Inc()
		log.Info("gateway reported non-success status", zap.String("status", cb.Status))
		return nil, fmt.Errorf("%w: gateway status %q", ErrPaymentIncomplete, cb.Status)
	}

	// 3. Signature over exactly the fields the gateway declared as signed,
	// in the declared order. This is the integrity boundary.
	canonical, err := cb.CanonicalString()
	if err != nil {
		metrics.PaymentVerificationsTotal.WithLabelValues(metrics.OutcomeSignatureInvalid).Inc()
		log.Warn("cannot reconstruct signed payload", zap.Error(err))
		return nil, ErrSignatureInvalid
	}
	if !VerifySignature(s.cfg.SecretKey, canonical, cb.Signature) {
		metrics.PaymentVerificationsTotal.WithLabelValues(metrics.OutcomeSignatureInvalid).Inc()
		log.Warn("callback signature mismatch")
		return nil, ErrSignatureInvalid
	}

	// 4. Correlate back to the order.
	ref, err := ParseTransactionRef(cb.TransactionUUID)
	if err != nil {
		metrics.PaymentVerificationsTotal.WithLabelValues(metrics.OutcomeOrderNotFound).Inc()
		return nil, order.ErrOrderNotFound
	}
	o, err := s.orders.GetByID(ctx, ref.OrderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			metrics.PaymentVerificationsTotal.WithLabelValues(metrics.OutcomeOrderNotFound).Inc()
		} else {
			metrics.PaymentVerificationsTotal.WithLabelValues(metrics.OutcomeStoreError).Inc()
		}
		return nil, err
	}

	log = log.With(zap.Uint("order_id", o.ID))

	// 5. Amount reconciliation.
	paid, err := cb.Amount()
	if err != nil {
		metrics.PaymentVerificationsTotal.WithLabelValues(metrics.OutcomeAmountMismatch).Inc()
		return nil, err
	}
	if math.Abs(paid-o.TotalPrice) > amountTolerance {
		metrics.PaymentVerificationsTotal.WithLabelValues(metrics.OutcomeAmountMismatch).Inc()
		log.Warn("callback amount outside tolerance",
			zap.Float64("callback_amount", paid),
			zap.Float64("order_total", o.TotalPrice),
		)
		return nil, ErrAmountMismatch
	}

	// 6. Idempotency short-circuit for duplicate delivery.
	if o.IsPaid {
		metrics.PaymentVerificationsTotal.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		return &VerificationResult{Order: o, AlreadyPaid: true}, nil
	}

	// 7. One-time transition, conditioned on is_paid still false at write
	// time. Losing the race means another delivery settled first.
	now := time.Now()
	result := order.PaymentResult{
		TransactionID: cb.TransactionCode,
		Status:        cb.Status,
		UpdateTime:    now.UTC().Format(time.RFC3339),
		PayerEmail:    o.UserEmail,
	}

	won, err := s.orders.MarkPaid(ctx, o.ID, result, now)
	if err != nil {
		metrics.PaymentVerificationsTotal.WithLabelValues(metrics.OutcomeStoreError).Inc()
		log.Error("failed to mark order paid", zap.Error(err))
		return nil, err
	}

	// 8. Return the settled snapshot.
	settled, err := s.orders.GetByID(ctx, o.ID)
	if err != nil {
		metrics.PaymentVerificationsTotal.WithLabelValues(metrics.OutcomeStoreError).Inc()
		return nil, err
	}

	if !won {
		metrics.PaymentVerificationsTotal.WithLabelValues(metrics.OutcomeDuplicate).Inc()
		return &VerificationResult{Order: settled, AlreadyPaid: true}, nil
	}

	metrics.PaymentVerificationsTotal.WithLabelValues(metrics.OutcomeAccepted).Inc()
	log.Info("payment verified",
		zap.String("transaction_code", cb.TransactionCode),
		zap.Float64("amount", paid),
	)

	return &VerificationResult{Order: settled}, nil
}
