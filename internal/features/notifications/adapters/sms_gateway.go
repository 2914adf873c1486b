package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"cargo-tracker/internal/core/config"
	"cargo-tracker/internal/core/httpclient"
	"cargo-tracker/internal/core/logger"
	"cargo-tracker/internal/features/orders/domain"

	"go.uber.org/zap"
)

// customerMessages lists the statuses customers are texted about.
var customerMessages = map[domain.OrderStatus]string{
	domain.OrderStatusInUB:           "Your order %s has arrived at our Ulaanbaatar warehouse.",
	domain.OrderStatusOutForDelivery: "Your order %s is out for delivery today.",
	domain.OrderStatusDelivered:      "Your order %s has been delivered. Thank you!",
}

// SMSMessage is the gateway request body.
type SMSMessage struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

// SMSGateway texts customers when their order reaches a customer-facing status.
type SMSGateway struct {
	client *http.Client
	url    string
	apiKey string
}

// NewSMSGateway creates a new SMSGateway.
func NewSMSGateway(cfg config.SMSConfig) *SMSGateway {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SMSGateway{
		client: httpclient.NewClient(timeout),
		url:    cfg.URL,
		apiKey: cfg.APIKey,
	}
}

// StatusChanged implements ports.Notifier. Orders without a phone and
// internal statuses are skipped.
func (g *SMSGateway) StatusChanged(ctx context.Context, event domain.StatusChanged) error {
	template, ok := customerMessages[event.To]
	if !ok || event.PhoneNumber == "" {
		return nil
	}

	body, err := json.Marshal(SMSMessage{
		To:   event.PhoneNumber,
		Text: fmt.Sprintf(template, event.OrderID),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal sms: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms gateway returned status %d: %s", resp.StatusCode, snippet)
	}

	logger.Get().Debug("SMS sent",
		zap.String("order_id", event.OrderID),
		zap.String("status", string(event.To)),
	)
	return nil
}
