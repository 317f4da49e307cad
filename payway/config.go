// Package payway is a client SDK for the PayWay payment-gateway HTTP API.
// It builds signed multipart requests for the purchase, check-transaction and
// transaction-list operations and maps gateway failures into typed errors.
package payway

import (
	"fmt"
)

// =====================================================
// GATEWAY CONFIGURATION
// =====================================================

// Relative endpoint paths under the configured base URL.
const (
	pathPurchase         = "/api/payment-gateway/v1/payments/purchase"
	pathCheckTransaction = "/api/payment-gateway/v1/payments/check-transaction"
	pathTransactionList  = "/api/payment-gateway/v1/payments/transaction-list"
)

// Config holds the merchant credentials for one PayWay account. It is
// immutable for the lifetime of a Client; the APIKey must never be logged
// or included in error values.
type Config struct {
	BaseURL    string // PayWay API base URL (sandbox or production)
	MerchantID string // Merchant profile ID (provided by PayWay)
	APIKey     string // Secret key for the HMAC-SHA512 request hash
}

// Validate validates configuration.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("PayWay BaseURL is required")
	}
	if c.MerchantID == "" {
		return fmt.Errorf("PayWay MerchantID is required")
	}
	if c.APIKey == "" {
		return fmt.Errorf("PayWay APIKey is required")
	}
	return nil
}
