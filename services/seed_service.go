package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"enstay-backend/models"
	"enstay-backend/store"
)

const defaultSeedPassword = "Password123!"

// SeedService brings an empty store to the reference state. The plan is
// dependency-ordered: roles before the users that name them, hotels
// before their rooms, rooms before the sample reservations that point
// at room ids.
type SeedService struct {
	Store store.Store
}

func NewSeedService(s store.Store) *SeedService {
	return &SeedService{Store: s}
}

type seedStep struct {
	name string
	any  func() (bool, error)
	run  func() error
}

// Run seeds every collection that is still empty. Each step is gated on
// its own collection, so a collection seeded in an earlier run is left
// alone while the others still seed. A step commits all of its rows in
// one unit of work; on failure the run aborts and the collection stays
// empty for the next attempt.
func (s *SeedService) Run(now time.Time) error {
	steps := []seedStep{
		{"roles", s.Store.Roles().Any, s.seedRoles},
		{"users", s.Store.Users().Any, s.seedUsers},
		{"hotels", s.Store.Hotels().Any, s.seedHotels},
		{"rooms", s.Store.Rooms().Any, s.seedRooms},
		{"reservations", s.Store.Reservations().Any, func() error { return s.seedReservations(now) }},
	}
	for _, step := range steps {
		seeded, err := step.any()
		if err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		if seeded {
			logrus.Debugf("seed: %s already present, skipping", step.name)
			continue
		}
		if err := step.run(); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		logrus.Infof("seed: %s done", step.name)
	}
	return nil
}

func (s *SeedService) seedRoles() error {
	roles := s.Store.Roles()
	roles.Add(&models.Role{Name: models.RoleAdmin})
	roles.Add(&models.Role{Name: models.RoleUser})
	return roles.Save()
}

func (s *SeedService) seedUsers() error {
	seedUsers := []struct {
		username string
		email    string
		role     string
	}{
		{"galkadi", "galkadi@gmail.com", models.RoleAdmin},
		{"bob", "bob@gmail.com", models.RoleUser},
		{"sue", "sue@gmail.com", models.RoleUser},
	}

	users := s.Store.Users()
	for _, su := range seedUsers {
		role, err := s.Store.Roles().FindByName(su.role)
		if err != nil {
			return err
		}
		user, err := models.NewUser(su.username, su.email, defaultSeedPassword, role)
		if err != nil {
			return err
		}
		users.Add(&user)
	}
	return users.Save()
}

func (s *SeedService) seedHotels() error {
	hotels := s.Store.Hotels()
	for i := 0; i < 4; i++ {
		hotels.Add(&models.Hotel{
			HotelCode: "enstay" + strconv.Itoa(i),
			Name:      "Hammond " + strconv.Itoa(i),
			City:      "Hammond",
			Address:   "1234 Place st",
		})
	}
	return hotels.Save()
}

func (s *SeedService) seedRooms() error {
	hotels, err := s.Store.Hotels().List()
	if err != nil {
		return err
	}

	// Fixed pattern per hotel: two singles then two doubles, premium on
	// even positions.
	pattern := [4]models.RoomType{models.RoomSingle, models.RoomSingle, models.RoomDouble, models.RoomDouble}

	rooms := s.Store.Rooms()
	for _, hotel := range hotels {
		for i := 0; i < len(pattern); i++ {
			room, err := models.NewRoom(hotel.ID, 101+i, pattern[i], i%2 == 0)
			if err != nil {
				return err
			}
			rooms.Add(&room)
		}
	}
	return rooms.Save()
}

// Sample reservations keep the source data's raw references (hotel ids
// "0".."2", room ids 100+i); primary keys are left to the store.
func (s *SeedService) seedReservations(now time.Time) error {
	reservations := s.Store.Reservations()
	for i := 0; i < 3; i++ {
		reservations.Add(&models.Reservation{
			GuestID:        uint(i),
			HotelID:        strconv.Itoa(i),
			RoomID:         100 + i,
			CheckInDate:    now.AddDate(0, 0, i*7),
			CheckOutDate:   now.AddDate(0, 0, i*7+7),
			NumberOfGuests: i + 1,
			IsPaid:         true,
		})
	}
	return reservations.Save()
}
