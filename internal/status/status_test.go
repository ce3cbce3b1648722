package status_test

import (
	"testing"

	"github.com/nexodus-tech/vendor-console/internal/status"
	"github.com/stretchr/testify/assert"
)

func TestProduct(t *testing.T) {
	tests := []struct {
		name      string
		published bool
		active    bool
		want      status.Badge
	}{
		{
			name:      "published and active",
			published: true,
			active:    true,
			want:      status.Badge{Label: "Published", Severity: status.Success},
		},
		{
			name:      "active but unpublished is a draft",
			published: false,
			active:    true,
			want:      status.Badge{Label: "Draft", Severity: status.Warning},
		},
		{
			name:      "inactive",
			published: false,
			active:    false,
			want:      status.Badge{Label: "Inactive", Severity: status.Default},
		},
		{
			name:      "published flag alone does not publish an inactive product",
			published: true,
			active:    false,
			want:      status.Badge{Label: "Inactive", Severity: status.Default},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Product(tt.published, tt.active))
		})
	}
}

func TestOrder(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  status.Severity
	}{
		{name: "completed", input: "completed", want: status.Success},
		{name: "pending", input: "pending", want: status.Warning},
		{name: "cancelled", input: "cancelled", want: status.Error},
		{name: "refunded falls back to default", input: "refunded", want: status.Default},
		{name: "mixed case is normalized", input: "Completed", want: status.Success},
		{name: "unknown value degrades", input: "shipped???", want: status.Default},
		{name: "empty value degrades", input: "", want: status.Default},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			badge := status.Order(tt.input)
			assert.Equal(t, tt.want, badge.Severity)
			assert.Equal(t, tt.input, badge.Label, "label keeps the raw value")
		})
	}
}

func TestPayment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  status.Severity
	}{
		{name: "paid", input: "paid", want: status.Success},
		{name: "pending", input: "pending", want: status.Warning},
		{name: "failed", input: "failed", want: status.Error},
		{name: "refunded falls back to default", input: "refunded", want: status.Default},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Payment(tt.input).Severity)
		})
	}
}

func TestPayout(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  status.Severity
	}{
		{name: "completed", input: "completed", want: status.Success},
		{name: "pending", input: "pending", want: status.Warning},
		{name: "failed", input: "failed", want: status.Error},
		{name: "unknown degrades", input: "on-hold", want: status.Default},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Payout(tt.input).Severity)
		})
	}
}

func TestVendor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  status.Severity
	}{
		{name: "approved", input: "approved", want: status.Success},
		{name: "pending", input: "pending", want: status.Warning},
		{name: "rejected", input: "rejected", want: status.Error},
		{name: "unknown degrades", input: "banned", want: status.Default},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, status.Vendor(tt.input).Severity)
		})
	}
}
