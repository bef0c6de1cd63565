package models

import "time"

type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	PartySize int       `gorm:"not null" json:"party_size"`
	Date      string    `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	Time      string    `gorm:"type:varchar(5);not null" json:"time"`  // HH:MM
	Notes     string    `gorm:"type:text" json:"notes"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}
