package payway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// =====================================================
// PAYWAY CLIENT
// =====================================================

// Client talks to the PayWay gateway on behalf of one merchant. Credentials
// and the transport are fixed at construction and reused across calls; all
// per-call state (hash input, signed fields, timestamp) is built fresh on
// the stack, so a single Client is safe for concurrent use.
type Client struct {
	cfg       Config
	transport Transport
	log       zerolog.Logger
	now       func() time.Time
}

// Option configures optional client behavior.
type Option func(*Client)

// WithTransport replaces the default HTTPS multipart transport, e.g. with a
// test double or a custom networking stack.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithLogger enables debug logging. Only the request path and field names
// are logged, never field values or the API key.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a PayWay client for the given merchant credentials.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid PayWay config: %w", err)
	}

	c := &Client{
		cfg: cfg,
		log: zerolog.Nop(),
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = NewHTTPTransport(cfg.BaseURL)
	}
	return c, nil
}

// =====================================================
// CREATE TRANSACTION
// =====================================================

// CreateTransaction initiates a payment and returns the gateway's decoded
// JSON body untransformed. The hash input order below is the gateway's
// documented contract and is independent of the transmitted field order.
func (c *Client) CreateTransaction(ctx context.Context, p CreateTransactionParams) (map[string]any, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	firstname := trimText(p.Firstname).(string)
	lastname := trimText(p.Lastname).(string)
	email := trimText(p.Email).(string)
	phone := trimText(p.Phone).(string)

	txType := p.Type
	if txType == "" {
		txType = TypePurchase
	}

	amount := p.Amount.String()

	returnURL, err := encodeBase64Value(p.ReturnURL)
	if err != nil {
		return nil, fmt.Errorf("encode return_url: %w", err)
	}
	deeplink, err := encodeBase64Value(p.ReturnDeeplink)
	if err != nil {
		return nil, fmt.Errorf("encode return_deeplink: %w", err)
	}
	items, err := encodeBase64Value(p.Items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	hashInput := []string{
		p.TranID,
		amount,
		items,
		firstname,
		lastname,
		email,
		phone,
		txType,
		p.PaymentOption,
		p.ContinueSuccessURL,
		returnURL,
		deeplink,
		p.Currency,
		p.CustomFields,
		p.Pwt,
	}

	body := []Field{
		{Name: "tran_id", Value: p.TranID},
		{Name: "amount", Value: amount},
		{Name: "pwt", Value: optString(p.Pwt)},
		{Name: "firstname", Value: optString(firstname)},
		{Name: "lastname", Value: optString(lastname)},
		{Name: "email", Value: optString(email)},
		{Name: "phone", Value: optString(phone)},
		{Name: "items", Value: optString(items)},
		{Name: "type", Value: txType},
		{Name: "payment_option", Value: p.PaymentOption},
		{Name: "return_url", Value: optString(returnURL)},
		{Name: "continue_success_url", Value: optString(p.ContinueSuccessURL)},
		{Name: "return_deeplink", Value: optString(deeplink)},
		{Name: "currency", Value: p.Currency},
		{Name: "custom_fields", Value: optString(p.CustomFields)},
	}

	return c.send(ctx, pathPurchase, hashInput, body)
}

// =====================================================
// CHECK TRANSACTION
// =====================================================

// CheckTransaction looks up the current state of one transaction.
func (c *Client) CheckTransaction(ctx context.Context, tranID string) (map[string]any, error) {
	if err := validation.Validate(tranID,
		validation.Required.Error("tran_id is required and must be a string"),
	); err != nil {
		return nil, err
	}

	hashInput := []string{tranID}
	body := []Field{
		{Name: "tran_id", Value: tranID},
	}

	return c.send(ctx, pathCheckTransaction, hashInput, body)
}

// =====================================================
// TRANSACTION LIST
// =====================================================

// TransactionList fetches the merchant's transactions matching the given
// filters.
func (c *Client) TransactionList(ctx context.Context, p TransactionListParams) (map[string]any, error) {
	fromAmount := decimalString(p.FromAmount)
	toAmount := decimalString(p.ToAmount)

	hashInput := []string{
		p.FromDate,
		p.ToDate,
		fromAmount,
		toAmount,
		p.Status,
	}

	body := []Field{
		{Name: "from_date", Value: optString(p.FromDate)},
		{Name: "to_date", Value: optString(p.ToDate)},
		{Name: "from_amount", Value: optString(fromAmount)},
		{Name: "to_amount", Value: optString(toAmount)},
		{Name: "status", Value: optString(p.Status)},
	}

	return c.send(ctx, pathTransactionList, hashInput, body)
}

// =====================================================
// REQUEST DISPATCH & ERROR MAPPING
// =====================================================

// send signs the request, dispatches it and applies the uniform error
// mapping shared by all operations.
func (c *Client) send(ctx context.Context, path string, hashInput []string, body []Field) (map[string]any, error) {
	fields := BuildSignedFields(c.cfg.APIKey, c.cfg.MerchantID, hashInput, body, c.now())

	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	c.log.Debug().Str("path", path).Strs("fields", names).Msg("sending PayWay request")

	resp, err := c.transport.Send(ctx, path, fields)
	if err != nil {
		var te *TransportError
		if errors.As(err, &te) {
			return nil, err
		}
		// Custom transports may return untyped failures.
		return nil, newNoResponseError(err)
	}

	var payload map[string]any
	decodeErr := json.Unmarshal(resp.Body, &payload)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Debug().Str("path", path).Int("status", resp.StatusCode).Msg("PayWay error response")
		return nil, newGatewayError(resp.StatusCode, payload)
	}

	if decodeErr != nil {
		return nil, &GatewayError{
			Message:    "Unrecognized response from PayWay API",
			StatusCode: resp.StatusCode,
		}
	}

	return payload, nil
}

func optString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func decimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
