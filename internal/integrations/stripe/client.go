package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	stripeapi "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// Client клиент Stripe Checkout
type Client struct {
	api  *client.API
	opts Options
	log  Logger
}

// NewClient создает клиента Stripe с таймаутом на каждый запрос
func NewClient(opts Options, timeout time.Duration, log Logger) *Client {
	httpClient := &http.Client{Timeout: timeout}
	backend := func(t stripeapi.SupportedBackend) stripeapi.Backend {
		cfg := &stripeapi.BackendConfig{
			HTTPClient:    httpClient,
			LeveledLogger: leveledLogger{log: log},
		}
		if opts.APIURL != "" && t == stripeapi.APIBackend {
			cfg.URL = stripeapi.String(opts.APIURL)
		}
		return stripeapi.GetBackendWithConfig(t, cfg)
	}
	return newClient(opts, &stripeapi.Backends{
		API:     backend(stripeapi.APIBackend),
		Connect: backend(stripeapi.ConnectBackend),
		Uploads: backend(stripeapi.UploadsBackend),
	}, log)
}

func newClient(opts Options, backends *stripeapi.Backends, log Logger) *Client {
	if opts.Currency == "" {
		opts.Currency = domain.DefaultCurrency
	}
	return &Client{
		api:  client.New(opts.SecretKey, backends),
		opts: opts,
		log:  log,
	}
}

// CreateSession создает checkout-сессию с одной позицией и снимком бронирования в metadata
func (c *Client) CreateSession(ctx context.Context, req *domain.CheckoutRequest) (*domain.PaymentSession, error) {
	if c.opts.SecretKey == "" {
		return nil, ErrNotConfigured
	}

	params := &stripeapi.CheckoutSessionParams{
		Mode:               stripeapi.String(string(stripeapi.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripeapi.StringSlice([]string{"card"}),
		CustomerEmail:      stripeapi.String(req.Contact.Email),
		SuccessURL:         stripeapi.String(c.opts.SuccessURL),
		CancelURL:          stripeapi.String(c.opts.CancelURL),
		LineItems: []*stripeapi.CheckoutSessionLineItemParams{
			{
				PriceData: &stripeapi.CheckoutSessionLineItemPriceDataParams{
					Currency: stripeapi.String(c.opts.Currency),
					ProductData: &stripeapi.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripeapi.String(req.ClassName),
					},
					UnitAmount: stripeapi.Int64(domain.ToMinorUnits(req.Price)),
				},
				Quantity: stripeapi.Int64(1),
			},
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata() {
		params.AddMetadata(k, v)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		c.log.Error("Stripe: create session for class=%s failed: code=%s, err=%v", req.ClassID, errorCode(err), err)
		return nil, fmt.Errorf("%w: create session: %v", ErrProvider, err)
	}

	c.log.Info("Stripe: session id=%s created for class=%s, amount=%d %s",
		session.ID, req.ClassID, domain.ToMinorUnits(req.Price), c.opts.Currency)
	return &domain.PaymentSession{ID: session.ID, URL: session.URL}, nil
}

// GetSession получает актуальный статус сессии у Stripe
func (c *Client) GetSession(ctx context.Context, sessionID string) (*domain.SessionDetails, error) {
	if c.opts.SecretKey == "" {
		return nil, ErrNotConfigured
	}

	params := &stripeapi.CheckoutSessionParams{}
	params.Context = ctx

	session, err := c.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		var stripeErr *stripeapi.Error
		if errors.As(err, &stripeErr) &&
			(stripeErr.HTTPStatusCode == http.StatusNotFound || stripeErr.Code == stripeapi.ErrorCodeResourceMissing) {
			return nil, ErrSessionNotFound
		}
		c.log.Error("Stripe: get session id=%s failed: code=%s, err=%v", sessionID, errorCode(err), err)
		return nil, fmt.Errorf("%w: get session: %v", ErrProvider, err)
	}

	return toSessionDetails(session), nil
}

// ParseWebhook проверяет подпись Stripe-Signature и разбирает событие
func (c *Client) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	if c.opts.WebhookSecret == "" {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(signature) == "" {
		return nil, fmt.Errorf("%w: missing signature header", ErrInvalidSignature)
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, c.opts.WebhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		if errors.Is(err, webhook.ErrNotSigned) || errors.Is(err, webhook.ErrInvalidHeader) ||
			errors.Is(err, webhook.ErrNoValidSignature) || errors.Is(err, webhook.ErrTooOld) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	result := &WebhookEvent{ID: event.ID, Type: string(event.Type)}
	if strings.HasPrefix(result.Type, "checkout.session.") && event.Data != nil {
		var session stripeapi.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("%w: decode checkout session: %v", ErrInvalidPayload, err)
		}
		result.SessionID = session.ID
	}
	return result, nil
}

func toSessionDetails(s *stripeapi.CheckoutSession) *domain.SessionDetails {
	details := &domain.SessionDetails{
		ID:            s.ID,
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
	}
	if cd := s.CustomerDetails; cd != nil {
		details.CustomerEmail = nonEmpty(cd.Email)
		details.CustomerName = nonEmpty(cd.Name)
		details.CustomerPhone = nonEmpty(cd.Phone)
	}
	if details.CustomerEmail == nil {
		details.CustomerEmail = nonEmpty(s.CustomerEmail)
	}
	return details
}

func nonEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func errorCode(err error) string {
	var stripeErr *stripeapi.Error
	if errors.As(err, &stripeErr) {
		return string(stripeErr.Code)
	}
	return "unknown"
}
