package models

import "time"

// Inventory request statuses. A request leaves pending exactly once and
// is terminal afterwards.
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// InventoryRequest is a courier-submitted replenishment request. Approval
// increments the product's stock by ApprovedQuantity in the same
// transaction that flips the status.
type InventoryRequest struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	CourierID         uint      `json:"courier_id" gorm:"not null;index"`
	Courier           *User     `json:"-" gorm:"foreignKey:CourierID"`
	ProductID         uint      `json:"product_id" gorm:"not null;index"`
	Product           *Product  `json:"-" gorm:"foreignKey:ProductID"`
	RequestedQuantity int       `json:"requested_quantity" gorm:"not null;check:requested_quantity > 0"`
	ApprovedQuantity  *int      `json:"approved_quantity"`
	Status            string    `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	Notes             string    `json:"notes" gorm:"type:text"`
	CreatedAt         time.Time `json:"created_at"`

	CourierName string `json:"courier_name" gorm:"-"`
	ProductName string `json:"product_name" gorm:"-"`
}
