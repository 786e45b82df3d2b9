// Package upi builds UPI payment-request deep links. The scheme is treated
// as an opaque external format: payee id, payee name, amount with two decimal
// places, currency code and transaction note as query parameters.
package upi

import (
	"fmt"
	"net/url"
)

// Intent describes a payment request to encode as a upi:// deep link
type Intent struct {
	PayeeID   string
	PayeeName string
	Amount    float64
	Currency  string
	Note      string
}

// BuildIntentURI renders the intent as a upi://pay deep link
func BuildIntentURI(intent Intent) string {
	params := url.Values{}
	params.Set("pa", intent.PayeeID)
	params.Set("pn", intent.PayeeName)
	params.Set("am", fmt.Sprintf("%.2f", intent.Amount))
	params.Set("cu", intent.Currency)
	if intent.Note != "" {
		params.Set("tn", intent.Note)
	}
	return "upi://pay?" + params.Encode()
}
