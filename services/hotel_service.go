package services

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"enstay-backend/models"
	"enstay-backend/store"
	"enstay-backend/utils"
)

const hotelSearchCacheTTL = 30 * time.Second

type HotelService struct {
	Store store.Store
	Cache *redis.Client // nil when Redis is not configured
}

func NewHotelService(s store.Store, cache *redis.Client) *HotelService {
	return &HotelService{Store: s, Cache: cache}
}

// Search returns hotels matching the free-text query. The search box
// fires on every keystroke, so results are served from a short-lived
// cache when Redis is configured; any cache trouble falls through to
// the store.
func (s *HotelService) Search(ctx context.Context, query string) ([]models.Hotel, error) {
	query = strings.TrimSpace(query)
	key := "hotels:search:" + strings.ToLower(query)

	if s.Cache != nil {
		var cached []models.Hotel
		if ok, err := utils.GetCache(ctx, s.Cache, key, &cached); err != nil {
			logrus.WithError(err).Debug("hotel search cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	hotels, err := s.Store.Hotels().Search(query)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := utils.SetCache(ctx, s.Cache, key, hotels, hotelSearchCacheTTL); err != nil {
			logrus.WithError(err).Debug("hotel search cache write failed")
		}
	}
	return hotels, nil
}

// RoomsByHotel lists the rooms of one hotel for the select step.
func (s *HotelService) RoomsByHotel(hotelID uint) ([]models.Room, error) {
	return s.Store.Rooms().ListByHotel(hotelID)
}
