package payway

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// =====================================================
// REQUEST PARAMETER TYPES
// =====================================================

// Currencies accepted by PayWay.
const (
	CurrencyUSD = "USD"
	CurrencyKHR = "KHR"
)

// TypePurchase is the default transaction type.
const TypePurchase = "purchase"

// Item is one line item of a purchase. PayWay receives the items list
// JSON-serialized and base64-encoded.
type Item struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Deeplink is the structured form of return_deeplink for mobile checkout
// flows.
type Deeplink struct {
	AndroidScheme string `json:"android_scheme"`
	IOSScheme     string `json:"ios_scheme"`
}

// CreateTransactionParams describes one payment attempt. TranID,
// PaymentOption, Amount and Currency are required; optional text fields are
// not transmitted when empty.
type CreateTransactionParams struct {
	TranID        string // caller-supplied unique transaction ID
	Amount        decimal.Decimal
	Currency      string // CurrencyUSD or CurrencyKHR
	PaymentOption string // e.g. "cards", "abapay", "wechat", "alipay"

	Firstname          string
	Lastname           string
	Email              string
	Phone              string
	Type               string // defaults to TypePurchase
	ReturnURL          string // base64-encoded before transmission
	ContinueSuccessURL string
	// ReturnDeeplink is a plain deeplink string or a Deeplink value; either
	// form is base64-encoded before transmission.
	ReturnDeeplink any
	// Items is a pre-rendered string or a []Item; either form is
	// base64-encoded before transmission.
	Items        any
	CustomFields string
	Pwt          string
}

// Validate checks the operation's precondition. Failures are plain
// validation errors raised before any network interaction.
func (p CreateTransactionParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.TranID,
			validation.Required.Error("tran_id is required and must be a string"),
		),
		validation.Field(&p.PaymentOption,
			validation.Required.Error("payment_option is required and must be a string"),
		),
		validation.Field(&p.Amount,
			validation.By(validateAmount),
		),
		validation.Field(&p.Currency,
			validation.Required.Error(`currency is required and must be "USD" or "KHR"`),
			validation.In(CurrencyUSD, CurrencyKHR).Error(`currency is required and must be "USD" or "KHR"`),
		),
	)
}

func validateAmount(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok || d.IsZero() {
		return errors.New("amount is required")
	}
	if d.IsNegative() {
		return errors.New("amount must be positive")
	}
	return nil
}

// TransactionListParams filters the merchant's transaction list. Every field
// is optional. Dates use the gateway's yyyyMMddHHmmss format, but no format
// or calendar validation happens at this layer.
type TransactionListParams struct {
	FromDate   string
	ToDate     string
	FromAmount *decimal.Decimal
	ToAmount   *decimal.Decimal
	Status     string
}
