package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"enstay-backend/models"
	"enstay-backend/services"
	"enstay-backend/store"
	"enstay-backend/utils"
)

const dateLayout = "2006-01-02"

// CreateReservationRequest mirrors the booking client's payload. Hotel
// name and room type are optional; the workflow resolves them from the
// store when absent.
type CreateReservationRequest struct {
	RoomID         int    `json:"RoomId" binding:"required"`
	HotelID        string `json:"HotelId" binding:"required"`
	CheckInDate    string `json:"CheckInDate" binding:"required"`
	CheckOutDate   string `json:"CheckOutDate" binding:"required"`
	NumberOfGuests int    `json:"NumberOfGuests"`
	IsPaid         bool   `json:"IsPaid"`

	Email       string `json:"Email" binding:"required,email"`
	FirstName   string `json:"FirstName"`
	LastName    string `json:"LastName"`
	PhoneNumber string `json:"PhoneNumber"`
	HotelName   string `json:"HotelName"`
	RoomType    string `json:"RoomType"`
}

type ReservationController struct {
	BookingSvc *services.BookingService
}

func NewReservationController(svc *services.BookingService) *ReservationController {
	return &ReservationController{BookingSvc: svc}
}

// CreateReservation handles POST /api/reservations. Failures come back
// as a plain-text body, which is what the booking clients render.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	checkIn, err := time.Parse(dateLayout, req.CheckInDate)
	if err != nil {
		c.String(http.StatusBadRequest, "CheckInDate must be formatted as YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOutDate)
	if err != nil {
		c.String(http.StatusBadRequest, "CheckOutDate must be formatted as YYYY-MM-DD")
		return
	}

	draft := services.Draft{
		RoomID:         req.RoomID,
		HotelID:        req.HotelID,
		HotelName:      req.HotelName,
		RoomType:       models.RoomType(req.RoomType),
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: req.NumberOfGuests,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
	}

	result, err := rc.BookingSvc.Submit(draft)
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr),
			errors.Is(err, models.ErrCheckOutNotAfterCheckIn),
			errors.Is(err, models.ErrNoGuests):
			c.String(http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrRoomUnavailable),
			errors.Is(err, store.ErrDuplicate):
			c.String(http.StatusConflict, err.Error())
		default:
			c.String(http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusCreated, result.Reservation)
}

// GetReservations handles GET /api/reservations.
func (rc *ReservationController) GetReservations(c *gin.Context) {
	reservations, err := rc.BookingSvc.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load reservations")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}
