package models

import (
	"errors"
	"time"
)

// RoomType is a closed enumeration; anything else is rejected by NewRoom.
type RoomType string

const (
	RoomSingle RoomType = "Single"
	RoomDouble RoomType = "Double"
)

func (t RoomType) Valid() bool {
	return t == RoomSingle || t == RoomDouble
}

// Capacity is derived from the type: a double sleeps four, a single two.
func (t RoomType) Capacity() int {
	if t == RoomDouble {
		return 4
	}
	return 2
}

const (
	premiumPrice        = 200
	standardPrice       = 100
	premiumDescription  = "Premium room with snacks, extra plus comfy pillows, comforter and bigger TV"
	standardDescription = "Standard room"
)

var ErrInvalidRoomType = errors.New("invalid room type")

type Room struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Type        RoomType  `gorm:"size:20" json:"type"`
	Number      int       `gorm:"column:room_number" json:"number"`
	IsPremium   bool      `json:"isPremium"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	IsClean     bool      `json:"isClean"`
	IsOccupied  bool      `json:"isOccupied"`
	HotelID     uint      `gorm:"index" json:"hotelId"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewRoom derives capacity, price and description so a room record can
// never disagree with its type or premium tier.
func NewRoom(hotelID uint, number int, roomType RoomType, premium bool) (Room, error) {
	if !roomType.Valid() {
		return Room{}, ErrInvalidRoomType
	}
	room := Room{
		Type:       roomType,
		Number:     number,
		IsPremium:  premium,
		Capacity:   roomType.Capacity(),
		IsClean:    true,
		IsOccupied: false,
		HotelID:    hotelID,
	}
	if premium {
		room.Price = premiumPrice
		room.Description = premiumDescription
	} else {
		room.Price = standardPrice
		room.Description = standardDescription
	}
	return room, nil
}
