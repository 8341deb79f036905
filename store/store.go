// Package store gives every entity a collection-style boundary:
// Any reports whether committed rows exist, Add stages a row, List reads
// committed rows and Save commits all staged rows as one unit of work.
// A failed Save commits nothing and keeps the staged rows so the caller
// may retry.
package store

import (
	"errors"
	"time"

	"enstay-backend/models"
)

var (
	ErrDuplicate = errors.New("duplicate record")
	ErrNotFound  = errors.New("record not found")
)

type RoleCollection interface {
	Any() (bool, error)
	Add(role *models.Role)
	List() ([]models.Role, error)
	Save() error
	FindByName(name string) (models.Role, error)
}

type UserCollection interface {
	Any() (bool, error)
	Add(user *models.User)
	List() ([]models.User, error)
	Save() error
}

type HotelCollection interface {
	Any() (bool, error)
	Add(hotel *models.Hotel)
	List() ([]models.Hotel, error)
	Save() error
	// Search matches the free-text query against name, city and address,
	// case-insensitively. An empty query returns every hotel.
	Search(query string) ([]models.Hotel, error)
}

type RoomCollection interface {
	Any() (bool, error)
	Add(room *models.Room)
	List() ([]models.Room, error)
	Save() error
	ListByHotel(hotelID uint) ([]models.Room, error)
}

type ReservationCollection interface {
	Any() (bool, error)
	Add(res *models.Reservation)
	List() ([]models.Reservation, error)
	Save() error
	// Overlapping returns committed reservations for the room whose stay
	// intersects the half-open range [checkIn, checkOut).
	Overlapping(roomID int, checkIn, checkOut time.Time) ([]models.Reservation, error)
}

type Store interface {
	Roles() RoleCollection
	Users() UserCollection
	Hotels() HotelCollection
	Rooms() RoomCollection
	Reservations() ReservationCollection
}
