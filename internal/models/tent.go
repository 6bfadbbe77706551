package models

import "time"

// Tent represents a festival tent guests order from. QRCode holds a PNG
// data URL encoding the tent number, regenerated whenever the number
// changes. Tents referenced by orders are deactivated, never deleted.
type Tent struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	TentNumber          string    `json:"tent_number" gorm:"uniqueIndex;type:varchar(20);not null"`
	QRCode              string    `json:"qr_code" gorm:"type:text"`
	LocationDescription string    `json:"location_description" gorm:"type:text"`
	Zone                string    `json:"zone" gorm:"type:varchar(50)"`
	Capacity            int       `json:"capacity" gorm:"not null;default:4"`
	ContactName         string    `json:"contact_name" gorm:"type:varchar(100)"`
	ContactPhone        string    `json:"contact_phone" gorm:"type:varchar(20)"`
	Notes               string    `json:"notes" gorm:"type:text"`
	IsActive            bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
