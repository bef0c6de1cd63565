package models

import "time"

type Order struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`
	// Total is fixed at creation time as the sum over the item snapshot.
	Total     float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"total"`
	Status    string      `gorm:"type:varchar(20);not null;default:'placed'" json:"status"`
	Items     []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time   `gorm:"not null" json:"updated_at"`
}
