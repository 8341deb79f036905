package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"enstay-backend/models"
)

// Memory is an in-process store with the same Save semantics as the
// MySQL store: all staged rows commit together or not at all, and the
// unique keys (role name, username, email, hotel code) are enforced.
// Tests and local demos run against it; nothing else should.
type Memory struct {
	mu sync.Mutex

	roles        []models.Role
	users        []models.User
	hotels       []models.Hotel
	rooms        []models.Room
	reservations []models.Reservation

	nextRoleID        uint
	nextUserID        uint
	nextHotelID       uint
	nextRoomID        uint
	nextReservationID uint

	roleCol        *memRoles
	userCol        *memUsers
	hotelCol       *memHotels
	roomCol        *memRooms
	reservationCol *memReservations
}

func NewMemory() *Memory {
	m := &Memory{}
	m.roleCol = &memRoles{m: m}
	m.userCol = &memUsers{m: m}
	m.hotelCol = &memHotels{m: m}
	m.roomCol = &memRooms{m: m}
	m.reservationCol = &memReservations{m: m}
	return m
}

func (m *Memory) Roles() RoleCollection               { return m.roleCol }
func (m *Memory) Users() UserCollection               { return m.userCol }
func (m *Memory) Hotels() HotelCollection             { return m.hotelCol }
func (m *Memory) Rooms() RoomCollection               { return m.roomCol }
func (m *Memory) Reservations() ReservationCollection { return m.reservationCol }

// ---------------- Roles ----------------

type memRoles struct {
	m       *Memory
	pending []*models.Role
}

func (c *memRoles) Any() (bool, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	return len(c.m.roles) > 0, nil
}

func (c *memRoles) Add(role *models.Role) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	c.pending = append(c.pending, role)
}

func (c *memRoles) List() ([]models.Role, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	out := make([]models.Role, len(c.m.roles))
	copy(out, c.m.roles)
	return out, nil
}

func (c *memRoles) Save() error {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	staged := make([]models.Role, 0, len(c.pending))
	for _, role := range c.pending {
		for _, existing := range append(c.m.roles, staged...) {
			if existing.Name == role.Name {
				return fmt.Errorf("%w: role %q", ErrDuplicate, role.Name)
			}
		}
		if role.ID == 0 {
			c.m.nextRoleID++
			role.ID = c.m.nextRoleID
		}
		staged = append(staged, *role)
	}
	c.m.roles = append(c.m.roles, staged...)
	c.pending = nil
	return nil
}

func (c *memRoles) FindByName(name string) (models.Role, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	for _, role := range c.m.roles {
		if role.Name == name {
			return role, nil
		}
	}
	return models.Role{}, fmt.Errorf("%w: role %q", ErrNotFound, name)
}

// ---------------- Users ----------------

type memUsers struct {
	m       *Memory
	pending []*models.User
}

func (c *memUsers) Any() (bool, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	return len(c.m.users) > 0, nil
}

func (c *memUsers) Add(user *models.User) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	c.pending = append(c.pending, user)
}

func (c *memUsers) List() ([]models.User, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	out := make([]models.User, len(c.m.users))
	copy(out, c.m.users)
	return out, nil
}

func (c *memUsers) Save() error {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	staged := make([]models.User, 0, len(c.pending))
	for _, user := range c.pending {
		for _, existing := range append(c.m.users, staged...) {
			if existing.Username == user.Username {
				return fmt.Errorf("%w: username %q", ErrDuplicate, user.Username)
			}
			if existing.Email == user.Email {
				return fmt.Errorf("%w: email %q", ErrDuplicate, user.Email)
			}
		}
		if user.ID == 0 {
			c.m.nextUserID++
			user.ID = c.m.nextUserID
		}
		staged = append(staged, *user)
	}
	c.m.users = append(c.m.users, staged...)
	c.pending = nil
	return nil
}

// ---------------- Hotels ----------------

type memHotels struct {
	m       *Memory
	pending []*models.Hotel
}

func (c *memHotels) Any() (bool, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	return len(c.m.hotels) > 0, nil
}

func (c *memHotels) Add(hotel *models.Hotel) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	c.pending = append(c.pending, hotel)
}

func (c *memHotels) List() ([]models.Hotel, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	out := make([]models.Hotel, len(c.m.hotels))
	copy(out, c.m.hotels)
	return out, nil
}

func (c *memHotels) Save() error {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	staged := make([]models.Hotel, 0, len(c.pending))
	for _, hotel := range c.pending {
		for _, existing := range append(c.m.hotels, staged...) {
			if existing.HotelCode == hotel.HotelCode {
				return fmt.Errorf("%w: hotel code %q", ErrDuplicate, hotel.HotelCode)
			}
		}
		if hotel.ID == 0 {
			c.m.nextHotelID++
			hotel.ID = c.m.nextHotelID
		}
		staged = append(staged, *hotel)
	}
	c.m.hotels = append(c.m.hotels, staged...)
	c.pending = nil
	return nil
}

func (c *memHotels) Search(query string) ([]models.Hotel, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Hotel, 0, len(c.m.hotels))
	for _, hotel := range c.m.hotels {
		if query == "" ||
			strings.Contains(strings.ToLower(hotel.Name), query) ||
			strings.Contains(strings.ToLower(hotel.City), query) ||
			strings.Contains(strings.ToLower(hotel.Address), query) {
			out = append(out, hotel)
		}
	}
	return out, nil
}

// ---------------- Rooms ----------------

type memRooms struct {
	m       *Memory
	pending []*models.Room
}

func (c *memRooms) Any() (bool, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	return len(c.m.rooms) > 0, nil
}

func (c *memRooms) Add(room *models.Room) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	c.pending = append(c.pending, room)
}

func (c *memRooms) List() ([]models.Room, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	out := make([]models.Room, len(c.m.rooms))
	copy(out, c.m.rooms)
	return out, nil
}

func (c *memRooms) Save() error {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	staged := make([]models.Room, 0, len(c.pending))
	for _, room := range c.pending {
		if room.ID == 0 {
			c.m.nextRoomID++
			room.ID = c.m.nextRoomID
		}
		staged = append(staged, *room)
	}
	c.m.rooms = append(c.m.rooms, staged...)
	c.pending = nil
	return nil
}

func (c *memRooms) ListByHotel(hotelID uint) ([]models.Room, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	out := make([]models.Room, 0, 4)
	for _, room := range c.m.rooms {
		if room.HotelID == hotelID {
			out = append(out, room)
		}
	}
	return out, nil
}

// ---------------- Reservations ----------------

type memReservations struct {
	m       *Memory
	pending []*models.Reservation
}

func (c *memReservations) Any() (bool, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	return len(c.m.reservations) > 0, nil
}

func (c *memReservations) Add(res *models.Reservation) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	c.pending = append(c.pending, res)
}

func (c *memReservations) List() ([]models.Reservation, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	out := make([]models.Reservation, len(c.m.reservations))
	copy(out, c.m.reservations)
	return out, nil
}

func (c *memReservations) Save() error {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	staged := make([]models.Reservation, 0, len(c.pending))
	for _, res := range c.pending {
		if res.ID == 0 {
			c.m.nextReservationID++
			res.ID = c.m.nextReservationID
		}
		staged = append(staged, *res)
	}
	c.m.reservations = append(c.m.reservations, staged...)
	c.pending = nil
	return nil
}

func (c *memReservations) Overlapping(roomID int, checkIn, checkOut time.Time) ([]models.Reservation, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	probe := models.Reservation{RoomID: roomID, CheckInDate: checkIn, CheckOutDate: checkOut}
	var out []models.Reservation
	for _, res := range c.m.reservations {
		if probe.Overlaps(res) {
			out = append(out, res)
		}
	}
	return out, nil
}
