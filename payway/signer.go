package payway

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// =====================================================
// PAYLOAD SIGNING
// =====================================================

// reqTimeLayout is the gateway's timestamp format (yyyyMMddHHmmss).
const reqTimeLayout = "20060102150405"

// Field is a single named request field. A []Field is an ordered field set:
// PayWay requests are position-sensitive, so a plain map cannot represent
// them. A nil Value marks the field as absent.
type Field struct {
	Name  string
	Value any
}

// ComputeHash generates the PayWay request hash.
//
// PayWay algorithm (CRITICAL - must follow exactly):
// 1. Concatenate the values in the given order, with no separator
// 2. HMAC-SHA512(raw, apiKey) over the UTF-8 bytes
// 3. Base64 encode (standard alphabet, with padding)
func ComputeHash(apiKey string, values []string) string {
	raw := strings.Join(values, "")
	mac := hmac.New(sha512.New, []byte(apiKey))
	mac.Write([]byte(raw))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// BuildSignedFields assembles the final transmitted field set for one request:
// req_time, merchant_id, the surviving body fields in their given order, and
// the hash last.
//
// hashInput must already be in the operation's documented hash order; this
// function signs [req_time, merchant_id, hashInput...] as-is and does not
// reorder anything. Body fields with a nil Value are dropped; empty strings
// and explicit zero values are transmitted.
func BuildSignedFields(apiKey, merchantID string, hashInput []string, body []Field, at time.Time) []Field {
	reqTime := at.Format(reqTimeLayout)

	hashValues := make([]string, 0, len(hashInput)+2)
	hashValues = append(hashValues, reqTime, merchantID)
	hashValues = append(hashValues, hashInput...)
	hash := ComputeHash(apiKey, hashValues)

	fields := make([]Field, 0, len(body)+3)
	fields = append(fields,
		Field{Name: "req_time", Value: reqTime},
		Field{Name: "merchant_id", Value: merchantID},
	)
	for _, f := range body {
		if f.Value == nil {
			continue
		}
		fields = append(fields, Field{Name: f.Name, Value: stringify(f.Value)})
	}
	fields = append(fields, Field{Name: "hash", Value: hash})
	return fields
}

// stringify coerces a field value to its wire form. Absent (nil) values
// become the empty string.
func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case decimal.Decimal:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// trimText strips leading and trailing whitespace from string values.
// Non-string values (numbers including NaN, nil, structured data) pass
// through unchanged rather than being coerced.
func trimText(v any) any {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return v
}

// encodeBase64Value prepares a url, deeplink or items value for transmission:
// strings are base64-encoded directly, structured values are JSON-serialized
// first. Absent values (nil or the empty string) stay absent.
func encodeBase64Value(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		if t == "" {
			return "", nil
		}
		return base64.StdEncoding.EncodeToString([]byte(t)), nil
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return base64.StdEncoding.EncodeToString(raw), nil
	}
}
