package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"mechmarket/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/refund"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidHoldRef = errors.New("invalid hold reference")

// MercadoPagoGateway authorizes, captures and refunds payments through the
// Mercado Pago SDK. Holds are authorizations with capture=false; the hold ref
// is the provider payment id.
//
// Mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) fabricates approved
// responses so the workflow can run locally without provider credentials.
type MercadoPagoGateway struct {
	payments payment.Client
	refunds  refund.Client
	log      *zap.Logger
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, log *zap.Logger) (*MercadoPagoGateway, error) {
	if log == nil {
		log = zap.NewNop()
	}

	if isPaymentGatewayMockEnabled() {
		log.Info("payment gateway mock mode enabled")
		return &MercadoPagoGateway{log: log, mockMode: true}, nil
	}

	if accessToken == "" {
		log.Warn("missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("failed creating mercado pago sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("mercado pago client initialized")

	return &MercadoPagoGateway{
		payments: payment.NewClient(cfg),
		refunds:  refund.NewClient(cfg),
		log:      log,
	}, nil
}

func (g *MercadoPagoGateway) AuthorizeAndHold(ctx context.Context, req interfaces.HoldRequest) (interfaces.HoldHandle, error) {
	if g != nil && g.mockMode {
		return g.mockHold(req)
	}
	if g == nil || g.payments == nil {
		return interfaces.HoldHandle{}, ErrMercadoPagoGatewayNotConfigured
	}

	// Build the request through JSON so only the fields we set travel to the
	// provider. capture=false turns the payment into an authorization hold.
	payload := map[string]any{
		"transaction_amount": req.Amount,
		"description":        req.Description,
		"external_reference": req.IdempotencyKey,
		"capture":            false,
		"payer": map[string]any{
			"email": req.CustomerRef,
		},
		"metadata": map[string]any{
			"currency": req.Currency,
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return interfaces.HoldHandle{}, err
	}

	var sdkReq payment.Request
	if err := json.Unmarshal(b, &sdkReq); err != nil {
		return interfaces.HoldHandle{}, err
	}

	resp, err := g.payments.Create(ctx, sdkReq)
	if err != nil {
		g.log.Error("mercado pago authorize failed", zap.String("idempotency_key", req.IdempotencyKey), zap.Error(err))
		return interfaces.HoldHandle{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.HoldHandle{}, err
	}

	g.log.Info("mercado pago hold authorized",
		zap.Any("provider_payment_id", resp.ID),
		zap.String("provider_status", resp.Status),
	)
	return interfaces.HoldHandle{
		Ref:    fmt.Sprintf("%d", resp.ID),
		Status: resp.Status,
		Raw:    raw,
	}, nil
}

func (g *MercadoPagoGateway) Capture(ctx context.Context, holdRef, idempotencyKey string) (interfaces.Receipt, error) {
	if g != nil && g.mockMode {
		return g.mockReceipt(holdRef, "approved")
	}
	if g == nil || g.payments == nil {
		return interfaces.Receipt{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := parseHoldRef(holdRef)
	if err != nil {
		return interfaces.Receipt{}, err
	}

	resp, err := g.payments.Capture(ctx, id)
	if err != nil {
		g.log.Error("mercado pago capture failed", zap.String("hold_ref", holdRef), zap.Error(err))
		return interfaces.Receipt{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.Receipt{}, err
	}

	g.log.Info("mercado pago hold captured",
		zap.Any("provider_payment_id", resp.ID),
		zap.String("provider_status", resp.Status),
	)
	return interfaces.Receipt{
		Ref:    fmt.Sprintf("%d", resp.ID),
		Status: resp.Status,
		Raw:    raw,
	}, nil
}

func (g *MercadoPagoGateway) Refund(ctx context.Context, holdRef, idempotencyKey, reason string) (interfaces.Receipt, error) {
	if g != nil && g.mockMode {
		return g.mockReceipt(holdRef, "refunded")
	}
	if g == nil || g.refunds == nil {
		return interfaces.Receipt{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := parseHoldRef(holdRef)
	if err != nil {
		return interfaces.Receipt{}, err
	}

	resp, err := g.refunds.Create(ctx, id)
	if err != nil {
		g.log.Error("mercado pago refund failed",
			zap.String("hold_ref", holdRef),
			zap.String("reason", reason),
			zap.Error(err),
		)
		return interfaces.Receipt{}, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return interfaces.Receipt{}, err
	}

	g.log.Info("mercado pago refund created",
		zap.Any("provider_refund_id", resp.ID),
		zap.String("provider_status", resp.Status),
	)
	return interfaces.Receipt{
		Ref:    fmt.Sprintf("%d", resp.ID),
		Status: resp.Status,
		Raw:    raw,
	}, nil
}

func (g *MercadoPagoGateway) CancelHold(ctx context.Context, holdRef, idempotencyKey string) error {
	if g != nil && g.mockMode {
		g.log.Info("mock hold cancelled", zap.String("hold_ref", holdRef))
		return nil
	}
	if g == nil || g.payments == nil {
		return ErrMercadoPagoGatewayNotConfigured
	}

	id, err := parseHoldRef(holdRef)
	if err != nil {
		return err
	}

	resp, err := g.payments.Cancel(ctx, id)
	if err != nil {
		g.log.Error("mercado pago cancel failed", zap.String("hold_ref", holdRef), zap.Error(err))
		return err
	}

	g.log.Info("mercado pago hold cancelled",
		zap.Any("provider_payment_id", resp.ID),
		zap.String("provider_status", resp.Status),
	)
	return nil
}

func (g *MercadoPagoGateway) mockHold(req interfaces.HoldRequest) (interfaces.HoldHandle, error) {
	id := fmt.Sprintf("%d", time.Now().UTC().UnixNano())
	raw, err := json.Marshal(map[string]any{
		"id":                 id,
		"status":             "authorized",
		"status_detail":      "pending_capture",
		"transaction_amount": req.Amount,
		"external_reference": req.IdempotencyKey,
		"date_created":       time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return interfaces.HoldHandle{}, err
	}

	g.log.Info("mock hold authorized", zap.String("provider_payment_id", id))
	return interfaces.HoldHandle{Ref: id, Status: "authorized", Raw: raw}, nil
}

func (g *MercadoPagoGateway) mockReceipt(holdRef, status string) (interfaces.Receipt, error) {
	raw, err := json.Marshal(map[string]any{
		"id":            holdRef,
		"status":        status,
		"date_approved": time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return interfaces.Receipt{}, err
	}

	g.log.Info("mock receipt issued", zap.String("hold_ref", holdRef), zap.String("status", status))
	return interfaces.Receipt{Ref: holdRef, Status: status, Raw: raw}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func parseHoldRef(ref string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(ref))
	if err != nil || id <= 0 {
		return 0, ErrInvalidHoldRef
	}
	return id, nil
}
