package models

// PendingVendor is a seller account awaiting admin review, from
// GET /admin/vendors/pending.
type PendingVendor struct {
	ID            int64  `json:"id"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Avatar        string `json:"avatar"`
	BusinessName  string `json:"business_name"`
	PayoutMethod  string `json:"payout_method"`
	IsActive      int    `json:"isActive"`
	EmailVerified int    `json:"emailVerified"`
	CreatedAt     string `json:"created_at"`
}

const (
	VendorStatusPending  = "pending"
	VendorStatusApproved = "approved"
	VendorStatusRejected = "rejected"
)
