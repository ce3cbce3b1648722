package models

// OrderItem is a single line item inside an order.
type OrderItem struct {
	OrderItemID int64  `json:"order_item_id"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	ProductSKU  string `json:"product_sku"`
	Quantity    int    `json:"quantity"`
	Price       Money  `json:"price"`
	TotalPrice  Money  `json:"total_price"`
	Image       string `json:"image,omitempty"`
}

// Order as returned by GET /vendor/orders. Status and PaymentStatus are
// independent axes: an order can be pending while its payment is already paid.
type Order struct {
	OrderID       int64       `json:"order_id"`
	OrderNumber   string      `json:"order_number"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Status        string      `json:"status"`
	PaymentStatus string      `json:"payment_status"`
	TotalAmount   Money       `json:"total_amount"`
	CreatedAt     string      `json:"created_at"`
	Items         []OrderItem `json:"items"`
}

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
	OrderStatusRefunded  = "refunded"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusFailed   = "failed"
	PaymentStatusRefunded = "refunded"
)

// OrderRow is one rendered line of the order table: a single item with its
// order header duplicated alongside it.
type OrderRow struct {
	OrderID       int64     `json:"order_id"`
	OrderNumber   string    `json:"order_number"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     string    `json:"created_at"`
	Item          OrderItem `json:"item"`
}

// FlattenOrders expands orders into per-item rows. An order with no items
// contributes no rows, so empty orders never reach the line-item view.
func FlattenOrders(orders []Order) []OrderRow {
	rows := make([]OrderRow, 0, len(orders))
	for _, o := range orders {
		for _, item := range o.Items {
			rows = append(rows, OrderRow{
				OrderID:       o.OrderID,
				OrderNumber:   o.OrderNumber,
				CustomerName:  o.CustomerName,
				CustomerEmail: o.CustomerEmail,
				Status:        o.Status,
				PaymentStatus: o.PaymentStatus,
				CreatedAt:     o.CreatedAt,
				Item:          item,
			})
		}
	}
	return rows
}
