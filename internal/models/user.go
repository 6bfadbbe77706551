package models

import "time"

// Role is the closed set of access roles. Authorization decisions go
// through the capability methods below so the rules stay in one place.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOperator Role = "operator"
	RoleCourier  Role = "courier"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleOperator, RoleCourier:
		return true
	}
	return false
}

// CanManageCatalog covers product and tent create/update/stock/toggle.
func (r Role) CanManageCatalog() bool {
	return r == RoleAdmin || r == RoleOperator
}

// CanDeleteCatalog covers hard deletes of products and tents.
func (r Role) CanDeleteCatalog() bool {
	return r == RoleAdmin
}

// CanRequestInventory covers submitting replenishment requests.
func (r Role) CanRequestInventory() bool {
	return r == RoleAdmin || r == RoleOperator || r == RoleCourier
}

// CanReviewInventoryRequests covers listing, approving and rejecting
// replenishment requests.
func (r Role) CanReviewInventoryRequests() bool {
	return r == RoleAdmin || r == RoleOperator
}

// CanModerateMessages covers deleting other users' messages and
// broadcasting without a receiver.
func (r Role) CanModerateMessages() bool {
	return r == RoleAdmin || r == RoleOperator
}

// CanManageUsers covers registering new accounts.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

// User represents an admin, operator or courier account.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(50)"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(100)"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"`
	Role         Role      `json:"role" gorm:"type:varchar(20);default:'courier'"`
	CreatedAt    time.Time `json:"created_at"`
}
