package models

import "time"

type Hotel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	HotelCode string    `gorm:"size:50;uniqueIndex" json:"hotelCode"`
	Name      string    `gorm:"size:255" json:"name"`
	City      string    `gorm:"size:100" json:"city"`
	Address   string    `gorm:"size:255" json:"address"`
	Rooms     []Room    `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
