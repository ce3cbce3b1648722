// Package status maps raw record fields to display badges. Every resolver is
// a total function: malformed server values degrade to the default severity
// instead of failing, so a bad record can never break a list render.
package status

import "strings"

// Severity selects the badge color class.
type Severity string

const (
	Success Severity = "success"
	Warning Severity = "warning"
	Error   Severity = "error"
	Default Severity = "default"
)

// Badge is a resolved display status.
type Badge struct {
	Label    string   `json:"label"`
	Severity Severity `json:"severity"`
}

// Product derives the listing status from the publication and active flags.
func Product(published, active bool) Badge {
	switch {
	case published && active:
		return Badge{Label: "Published", Severity: Success}
	case active:
		return Badge{Label: "Draft", Severity: Warning}
	default:
		return Badge{Label: "Inactive", Severity: Default}
	}
}

// Order resolves an order fulfillment status. Refunded and anything
// unrecognized render with the default severity.
func Order(s string) Badge {
	var sev Severity
	switch strings.ToLower(s) {
	case "completed":
		sev = Success
	case "pending":
		sev = Warning
	case "cancelled":
		sev = Error
	default:
		sev = Default
	}
	return Badge{Label: s, Severity: sev}
}

// Payment resolves the payment status axis of an order.
func Payment(s string) Badge {
	var sev Severity
	switch strings.ToLower(s) {
	case "paid":
		sev = Success
	case "pending":
		sev = Warning
	case "failed":
		sev = Error
	default:
		sev = Default
	}
	return Badge{Label: s, Severity: sev}
}

// Payout resolves a payout request status.
func Payout(s string) Badge {
	var sev Severity
	switch strings.ToLower(s) {
	case "completed":
		sev = Success
	case "pending":
		sev = Warning
	case "failed":
		sev = Error
	default:
		sev = Default
	}
	return Badge{Label: s, Severity: sev}
}

// Vendor resolves a vendor account status.
func Vendor(s string) Badge {
	var sev Severity
	switch strings.ToLower(s) {
	case "approved":
		sev = Success
	case "pending":
		sev = Warning
	case "rejected":
		sev = Error
	default:
		sev = Default
	}
	return Badge{Label: s, Severity: sev}
}
