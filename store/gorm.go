package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"enstay-backend/models"
)

// Gorm is the MySQL-backed store. Save runs every staged insert of a
// collection inside one transaction, so a failed step never leaves a
// half-seeded collection behind a passing Any() check.
type Gorm struct {
	roles        *gormRoles
	users        *gormUsers
	hotels       *gormHotels
	rooms        *gormRooms
	reservations *gormReservations
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{
		roles:        &gormRoles{db: db},
		users:        &gormUsers{db: db},
		hotels:       &gormHotels{db: db},
		rooms:        &gormRooms{db: db},
		reservations: &gormReservations{db: db},
	}
}

func (g *Gorm) Roles() RoleCollection               { return g.roles }
func (g *Gorm) Users() UserCollection               { return g.users }
func (g *Gorm) Hotels() HotelCollection             { return g.hotels }
func (g *Gorm) Rooms() RoomCollection               { return g.rooms }
func (g *Gorm) Reservations() ReservationCollection { return g.reservations }

// MySQL error 1062 is a unique-key violation.
func translateErr(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return fmt.Errorf("%w: %s", ErrDuplicate, mysqlErr.Message)
	}
	return err
}

func anyRows(db *gorm.DB, model interface{}) (bool, error) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func saveAll[T any](db *gorm.DB, pending []*T) error {
	if len(pending) == 0 {
		return nil
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, row := range pending {
			if err := tx.Create(row).Error; err != nil {
				return translateErr(err)
			}
		}
		return nil
	})
}

// ---------------- Roles ----------------

type gormRoles struct {
	db      *gorm.DB
	mu      sync.Mutex
	pending []*models.Role
}

func (c *gormRoles) Any() (bool, error) { return anyRows(c.db, &models.Role{}) }

func (c *gormRoles) Add(role *models.Role) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, role)
}

func (c *gormRoles) List() ([]models.Role, error) {
	var roles []models.Role
	err := c.db.Order("id").Find(&roles).Error
	return roles, err
}

func (c *gormRoles) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := saveAll(c.db, c.pending); err != nil {
		return err
	}
	c.pending = nil
	return nil
}

func (c *gormRoles) FindByName(name string) (models.Role, error) {
	var role models.Role
	err := c.db.Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Role{}, fmt.Errorf("%w: role %q", ErrNotFound, name)
	}
	return role, err
}

// ---------------- Users ----------------

type gormUsers struct {
	db      *gorm.DB
	mu      sync.Mutex
	pending []*models.User
}

func (c *gormUsers) Any() (bool, error) { return anyRows(c.db, &models.User{}) }

func (c *gormUsers) Add(user *models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, user)
}

func (c *gormUsers) List() ([]models.User, error) {
	var users []models.User
	err := c.db.Preload("Role").Order("id").Find(&users).Error
	return users, err
}

func (c *gormUsers) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := saveAll(c.db, c.pending); err != nil {
		return err
	}
	c.pending = nil
	return nil
}

// ---------------- Hotels ----------------

type gormHotels struct {
	db      *gorm.DB
	mu      sync.Mutex
	pending []*models.Hotel
}

func (c *gormHotels) Any() (bool, error) { return anyRows(c.db, &models.Hotel{}) }

func (c *gormHotels) Add(hotel *models.Hotel) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, hotel)
}

func (c *gormHotels) List() ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := c.db.Order("id").Find(&hotels).Error
	return hotels, err
}

func (c *gormHotels) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := saveAll(c.db, c.pending); err != nil {
		return err
	}
	c.pending = nil
	return nil
}

func (c *gormHotels) Search(query string) ([]models.Hotel, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.List()
	}
	pattern := "%" + strings.ToLower(query) + "%"
	var hotels []models.Hotel
	err := c.db.
		Where("LOWER(name) LIKE ? OR LOWER(city) LIKE ? OR LOWER(address) LIKE ?", pattern, pattern, pattern).
		Order("id").
		Find(&hotels).Error
	return hotels, err
}

// ---------------- Rooms ----------------

type gormRooms struct {
	db      *gorm.DB
	mu      sync.Mutex
	pending []*models.Room
}

func (c *gormRooms) Any() (bool, error) { return anyRows(c.db, &models.Room{}) }

func (c *gormRooms) Add(room *models.Room) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, room)
}

func (c *gormRooms) List() ([]models.Room, error) {
	var rooms []models.Room
	err := c.db.Order("id").Find(&rooms).Error
	return rooms, err
}

func (c *gormRooms) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := saveAll(c.db, c.pending); err != nil {
		return err
	}
	c.pending = nil
	return nil
}

func (c *gormRooms) ListByHotel(hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := c.db.Where("hotel_id = ?", hotelID).Order("room_number").Find(&rooms).Error
	return rooms, err
}

// ---------------- Reservations ----------------

type gormReservations struct {
	db      *gorm.DB
	mu      sync.Mutex
	pending []*models.Reservation
}

func (c *gormReservations) Any() (bool, error) { return anyRows(c.db, &models.Reservation{}) }

func (c *gormReservations) Add(res *models.Reservation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, res)
}

func (c *gormReservations) List() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := c.db.Order("id").Find(&reservations).Error
	return reservations, err
}

func (c *gormReservations) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := saveAll(c.db, c.pending); err != nil {
		return err
	}
	c.pending = nil
	return nil
}

func (c *gormReservations) Overlapping(roomID int, checkIn, checkOut time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := c.db.
		Where("room_id = ? AND check_in_date < ? AND check_out_date > ?", roomID, checkOut, checkIn).
		Find(&reservations).Error
	return reservations, err
}
