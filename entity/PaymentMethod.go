package entity

import (
	"strings"
)

const (
	PayCash   = "cash"
	PayCard   = "card"
	PayOnline = "online"
)

// NormalizePaymentMethod maps the aliases clients send onto canonical method
// names. Empty means the client picked nothing; default to cash. Unknown keys
// pass through lowercased, matching what the checkout form submits.
func NormalizePaymentMethod(key string) string {
	k := strings.ToLower(strings.TrimSpace(key))
	switch k {
	case "":
		return PayCash
	case "cod", "cash_on_delivery", "cash-on-delivery", "cash on delivery":
		return PayCash
	case "credit_card", "credit-card", "credit card":
		return PayCard
	case "wallet":
		return PayOnline
	default:
		return k
	}
}
