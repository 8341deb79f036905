package models

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

var (
	ErrCheckOutNotAfterCheckIn = errors.New("check-out date must be after check-in date")
	ErrNoGuests                = errors.New("number of guests must be at least 1")
)

// Reservation is never mutated after creation; cancellation and editing
// are not part of this system. HotelID stays a string because that is
// what the booking clients send on the wire.
type Reservation struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	GuestID        uint           `gorm:"index" json:"guestId"`
	HotelID        string         `gorm:"size:50;index" json:"hotelId"`
	RoomID         int            `gorm:"index" json:"roomId"`
	CheckInDate    time.Time      `json:"checkInDate"`
	CheckOutDate   time.Time      `json:"checkOutDate"`
	NumberOfGuests int            `json:"numberOfGuests"`
	IsPaid         bool           `json:"isPaid"`
	ContactDetails datatypes.JSON `gorm:"column:contact_details" json:"contactDetails,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (r Reservation) Validate() error {
	if !r.CheckOutDate.After(r.CheckInDate) {
		return ErrCheckOutNotAfterCheckIn
	}
	if r.NumberOfGuests < 1 {
		return ErrNoGuests
	}
	return nil
}

// Overlaps reports whether two stays for the same room share a night.
// Ranges are half-open: checking in on another stay's check-out day is fine.
func (r Reservation) Overlaps(other Reservation) bool {
	if r.RoomID != other.RoomID {
		return false
	}
	return r.CheckInDate.Before(other.CheckOutDate) && other.CheckInDate.Before(r.CheckOutDate)
}
