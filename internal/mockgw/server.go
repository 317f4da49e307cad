// Package mockgw is a local stand-in for the PayWay gateway. It implements
// the purchase, check-transaction and transaction-list endpoints, verifies
// the request hash with the same algorithm the SDK signs with, and serves
// canned PayWay-shaped responses. Intended for demos and round-trip tests;
// it approves every valid purchase instantly.
package mockgw

import (
	"crypto/subtle"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"payway-go/payway"
)

const reqTimeLayout = "20060102150405"

// Hash input orders per operation. These mirror the gateway's documented
// contract; the verifier reads the posted fields in this order, with absent
// fields contributing an empty string.
var (
	purchaseHashOrder = []string{
		"tran_id", "amount", "items", "firstname", "lastname", "email",
		"phone", "type", "payment_option", "continue_success_url",
		"return_url", "return_deeplink", "currency", "custom_fields", "pwt",
	}
	checkHashOrder = []string{"tran_id"}
	listHashOrder  = []string{"from_date", "to_date", "from_amount", "to_amount", "status"}
)

type transaction struct {
	TranID   string `json:"tran_id"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	ReqTime  string `json:"req_time"`
}

// Server holds the mock gateway state for one merchant.
type Server struct {
	merchantID string
	apiKey     string
	log        zerolog.Logger

	mu           sync.Mutex
	transactions map[string]transaction
}

func New(merchantID, apiKey string, log zerolog.Logger) *Server {
	return &Server{
		merchantID:   merchantID,
		apiKey:       apiKey,
		log:          log,
		transactions: make(map[string]transaction),
	}
}

// Router builds the gin engine serving the three gateway endpoints.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/api/payment-gateway/v1/payments/purchase", s.handlePurchase)
	r.POST("/api/payment-gateway/v1/payments/check-transaction", s.handleCheckTransaction)
	r.POST("/api/payment-gateway/v1/payments/transaction-list", s.handleTransactionList)

	return r
}

func (s *Server) handlePurchase(c *gin.Context) {
	if !s.verify(c, purchaseHashOrder) {
		return
	}

	tran := transaction{
		TranID:   c.PostForm("tran_id"),
		Amount:   c.PostForm("amount"),
		Currency: c.PostForm("currency"),
		Status:   "APPROVED",
		ReqTime:  c.PostForm("req_time"),
	}
	if tran.TranID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": "01", "message": "tran_id is required"})
		return
	}

	s.mu.Lock()
	s.transactions[tran.TranID] = tran
	s.mu.Unlock()

	s.log.Info().Str("tran_id", tran.TranID).Str("amount", tran.Amount).Msg("purchase approved")
	c.JSON(http.StatusOK, gin.H{
		"status":      0,
		"description": "success",
		"tran_id":     tran.TranID,
	})
}

func (s *Server) handleCheckTransaction(c *gin.Context) {
	if !s.verify(c, checkHashOrder) {
		return
	}

	s.mu.Lock()
	tran, ok := s.transactions[c.PostForm("tran_id")]
	s.mu.Unlock()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"code": "02", "message": "Transaction not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tran_id":  tran.TranID,
		"amount":   tran.Amount,
		"currency": tran.Currency,
		"status":   tran.Status,
	})
}

func (s *Server) handleTransactionList(c *gin.Context) {
	if !s.verify(c, listHashOrder) {
		return
	}

	status := c.PostForm("status")

	s.mu.Lock()
	list := make([]transaction, 0, len(s.transactions))
	for _, tran := range s.transactions {
		if status != "" && tran.Status != status {
			continue
		}
		list = append(list, tran)
	}
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"status": 0,
		"data":   list,
	})
}

// verify checks req_time, merchant_id and the request hash. On failure it
// writes a PayWay-shaped error body and returns false.
func (s *Server) verify(c *gin.Context, hashOrder []string) bool {
	reqTime := c.PostForm("req_time")
	if _, err := time.Parse(reqTimeLayout, reqTime); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "03", "message": "Invalid req_time"})
		return false
	}
	if c.PostForm("merchant_id") != s.merchantID {
		c.JSON(http.StatusForbidden, gin.H{"code": "04", "message": "Unknown merchant"})
		return false
	}

	values := make([]string, 0, len(hashOrder)+2)
	values = append(values, reqTime, s.merchantID)
	for _, name := range hashOrder {
		values = append(values, c.PostForm(name))
	}
	expected := payway.ComputeHash(s.apiKey, values)

	if subtle.ConstantTimeCompare([]byte(expected), []byte(c.PostForm("hash"))) != 1 {
		s.log.Warn().Str("path", c.FullPath()).Msg("hash mismatch")
		c.JSON(http.StatusForbidden, gin.H{"code": "06", "message": "Wrong hash"})
		return false
	}
	return true
}
