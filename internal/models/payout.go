package models

import "strings"

// Payout is a vendor withdrawal request as returned by GET /vendor/payouts.
// ProcessedAt is null exactly while the payout is still pending.
type Payout struct {
	ID             int64   `json:"id"`
	Amount         float64 `json:"amount"`
	Status         string  `json:"status"`
	PaymentMethod  string  `json:"payment_method"`
	PaymentDetails string  `json:"payment_details"`
	CreatedAt      string  `json:"created_at"`
	ProcessedAt    *string `json:"processed_at"`
}

const (
	PayoutStatusPending   = "pending"
	PayoutStatusCompleted = "completed"
	PayoutStatusFailed    = "failed"
)

const (
	PayoutMethodBankTransfer = "bank_transfer"
	PayoutMethodPayPal       = "paypal"
	PayoutMethodStripe       = "stripe"
	PayoutMethodOther        = "other"
)

// PayoutMethodLabel turns a payment method code into its display form,
// e.g. "bank_transfer" -> "bank transfer".
func PayoutMethodLabel(method string) string {
	return strings.ReplaceAll(method, "_", " ")
}

// Balance is the vendor's ledger position, owned by the remote service and
// only read here as a validation bound for payout requests.
type Balance struct {
	Available float64 `json:"available_balance"`
	Pending   float64 `json:"pending_balance"`
}
