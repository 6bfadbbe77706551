package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. The set is closed: UpdateStatus rejects anything else.
const (
	OrderStatusNew        = "new"
	OrderStatusAccepted   = "accepted"
	OrderStatusInDelivery = "in_delivery"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment statuses. Only the payment stub flips pending to paid.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// ValidOrderStatus reports whether s belongs to the closed status set.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusNew, OrderStatusAccepted, OrderStatusInDelivery,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is the ledger header. TotalAmount is fixed at creation as the sum
// of the line items and never recomputed afterwards.
type Order struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	TentID        uint            `json:"tent_id" gorm:"not null;index"`
	Tent          *Tent           `json:"-" gorm:"foreignKey:TentID"`
	TotalAmount   decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2);not null"`
	Status        string          `json:"status" gorm:"type:varchar(20);not null;default:'new'"`
	PaymentStatus string          `json:"payment_status" gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentMethod string          `json:"payment_method" gorm:"type:varchar(20)"`
	CourierID     *uint           `json:"courier_id" gorm:"index"`
	Courier       *User           `json:"-" gorm:"foreignKey:CourierID"`
	Items         []OrderItem     `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Populated from the joined rows for API responses.
	TentNumber  string `json:"tent_number" gorm:"-"`
	CourierName string `json:"courier_name,omitempty" gorm:"-"`
}

// OrderItem is an immutable line item. UnitPrice snapshots the catalog
// price at order time; later product price edits do not touch it.
type OrderItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderID   uint            `json:"order_id" gorm:"not null;index"`
	ProductID uint            `json:"product_id" gorm:"not null;index"`
	Product   *Product        `json:"-" gorm:"foreignKey:ProductID"`
	Quantity  int             `json:"quantity" gorm:"not null;check:quantity > 0"`
	UnitPrice decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `json:"created_at"`

	ProductName string `json:"product_name" gorm:"-"`
}
