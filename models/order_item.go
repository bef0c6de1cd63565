package models

import "time"

// OrderItem is a snapshot of a catalog item at the moment the order was
// placed. Name and Price are copied in and never refreshed from the catalog.
type OrderItem struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	Order      Order     `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	MenuItemID uint      `gorm:"not null" json:"item_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Quantity   int       `gorm:"not null" json:"qty"`
	Price      float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
