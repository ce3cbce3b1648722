// Package payouts validates withdrawal requests against the live balance and
// keeps the payout history and ledger views in sync after a submission.
package payouts

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nexodus-tech/vendor-console/internal/api"
)

var validate = validator.New()

// Request is the payout form as entered by the vendor. The amount stays a
// string until validation so a non-numeric entry is caught, not coerced.
type Request struct {
	Amount         string `validate:"required"`
	PaymentMethod  string `validate:"required,oneof=bank_transfer paypal stripe other"`
	PaymentDetails string `validate:"required"`
}

// ValidateRequest checks a payout request against the available balance and
// returns the parsed amount. Rules run in order; the first failure wins:
// the amount must parse, must be positive, must not exceed the balance, and
// the payment details must be present.
func ValidateRequest(req Request, available float64) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(req.Amount), 64)
	if err != nil {
		return 0, &api.ValidationError{Field: "amount", Message: "Please enter a valid amount"}
	}
	if amount <= 0 {
		return 0, &api.ValidationError{Field: "amount", Message: "Please enter a valid amount"}
	}
	if amount > available {
		return 0, &api.BusinessRuleError{Rule: "payout_within_balance", Message: "Amount exceeds available balance"}
	}
	if err := validate.Var(req.PaymentDetails, "required"); err != nil {
		return 0, &api.ValidationError{Field: "payment_details", Message: "Payment details are required"}
	}
	if err := validate.Var(req.PaymentMethod, "oneof=bank_transfer paypal stripe other"); err != nil {
		return 0, &api.ValidationError{Field: "payment_method", Message: "Unknown payment method"}
	}
	return amount, nil
}
