package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"enstay-backend/models"
	"enstay-backend/store"
)

// SubmissionState tracks a booking through the workflow. Draft and
// Submitting are transient; Confirmed and Rejected are terminal.
type SubmissionState string

const (
	StateDraft      SubmissionState = "Draft"
	StateSubmitting SubmissionState = "Submitting"
	StateConfirmed  SubmissionState = "Confirmed"
	StateRejected   SubmissionState = "Rejected"
)

// Draft is the not-yet-submitted reservation request. Every field the
// guest fills in or carries over from search travels together here
// instead of living in ambient mutable state.
type Draft struct {
	RoomID         int
	HotelID        string
	HotelName      string
	RoomType       models.RoomType
	CheckInDate    time.Time
	CheckOutDate   time.Time
	NumberOfGuests int

	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// Validate is the gate from Draft to Submitting. It also closes the
// gap the original client had: date ordering and guest count are
// checked here before any write can happen.
func (d Draft) Validate() error {
	if strings.TrimSpace(d.Email) == "" {
		return &ValidationError{Field: "email", Reason: "contact email is required"}
	}
	if strings.TrimSpace(d.HotelID) == "" {
		return &ValidationError{Field: "hotel", Reason: "a hotel must be selected"}
	}
	if d.RoomID == 0 {
		return &ValidationError{Field: "room", Reason: "a room must be selected"}
	}
	if d.RoomType != "" && !d.RoomType.Valid() {
		return &ValidationError{Field: "roomType", Reason: "room type must be Single or Double"}
	}
	if d.NumberOfGuests < 1 {
		return &ValidationError{Field: "numberOfGuests", Reason: "at least one guest is required"}
	}
	if !d.CheckOutDate.After(d.CheckInDate) {
		return &ValidationError{Field: "checkOutDate", Reason: "check-out must be after check-in"}
	}
	return nil
}

func (d Draft) reservation() (models.Reservation, error) {
	contact, err := json.Marshal(map[string]string{
		"firstName":   d.FirstName,
		"lastName":    d.LastName,
		"email":       d.Email,
		"phoneNumber": d.PhoneNumber,
	})
	if err != nil {
		return models.Reservation{}, err
	}
	return models.Reservation{
		RoomID:         d.RoomID,
		HotelID:        d.HotelID,
		CheckInDate:    d.CheckInDate,
		CheckOutDate:   d.CheckOutDate,
		NumberOfGuests: d.NumberOfGuests,
		IsPaid:         false,
		ContactDetails: datatypes.JSON(contact),
	}, nil
}

// ConfirmationMessage carries everything the confirmation email shows.
type ConfirmationMessage struct {
	To             string
	HotelName      string
	RoomType       models.RoomType
	CheckInDate    time.Time
	CheckOutDate   time.Time
	NumberOfGuests int
}

// Notifier delivers the booking confirmation. Dispatch is fire-and-forget
// from the workflow's point of view: a returned error is logged and
// never changes the booking outcome.
type Notifier interface {
	SendConfirmation(msg ConfirmationMessage) error
}

var ErrRoomUnavailable = errors.New("room is not available for the requested dates")

type SubmissionResult struct {
	State       SubmissionState
	Reservation models.Reservation
}

type BookingService struct {
	Store    store.Store
	Notifier Notifier
}

func NewBookingService(s store.Store, n Notifier) *BookingService {
	return &BookingService{Store: s, Notifier: n}
}

// Submit runs one booking through the workflow. On a validation failure
// the draft never leaves Draft and nothing is written or sent. Once
// submitted, the store either accepts the reservation (Confirmed, with
// exactly one confirmation dispatch) or refuses it (Rejected, error
// surfaced verbatim, draft kept intact for retry).
func (s *BookingService) Submit(draft Draft) (SubmissionResult, error) {
	if err := draft.Validate(); err != nil {
		return SubmissionResult{State: StateDraft}, err
	}

	res, err := draft.reservation()
	if err != nil {
		return SubmissionResult{State: StateDraft}, err
	}
	if err := res.Validate(); err != nil {
		return SubmissionResult{State: StateDraft}, err
	}

	// Submitting: exactly one store write follows.
	overlapping, err := s.Store.Reservations().Overlapping(res.RoomID, res.CheckInDate, res.CheckOutDate)
	if err != nil {
		return SubmissionResult{State: StateRejected}, fmt.Errorf("availability check: %w", err)
	}
	if len(overlapping) > 0 {
		return SubmissionResult{State: StateRejected}, ErrRoomUnavailable
	}

	reservations := s.Store.Reservations()
	reservations.Add(&res)
	if err := reservations.Save(); err != nil {
		return SubmissionResult{State: StateRejected}, err
	}

	s.resolveSelection(&draft)
	s.notify(draft)
	return SubmissionResult{State: StateConfirmed, Reservation: res}, nil
}

// List returns every committed reservation.
func (s *BookingService) List() ([]models.Reservation, error) {
	return s.Store.Reservations().List()
}

// resolveSelection fills in the hotel name and room type for the email
// when the client did not carry them over from search. Best effort: a
// reservation can reference raw ids with no live row behind them.
func (s *BookingService) resolveSelection(draft *Draft) {
	if draft.HotelName == "" {
		if id, err := strconv.ParseUint(draft.HotelID, 10, 64); err == nil {
			hotels, err := s.Store.Hotels().List()
			if err == nil {
				for _, hotel := range hotels {
					if hotel.ID == uint(id) {
						draft.HotelName = hotel.Name
						break
					}
				}
			}
		}
	}
	if draft.RoomType == "" {
		rooms, err := s.Store.Rooms().List()
		if err == nil {
			for _, room := range rooms {
				if int(room.ID) == draft.RoomID {
					draft.RoomType = room.Type
					break
				}
			}
		}
	}
}

// notify is called from exactly one place, the Confirmed transition.
func (s *BookingService) notify(draft Draft) {
	if s.Notifier == nil {
		return
	}
	msg := ConfirmationMessage{
		To:             draft.Email,
		HotelName:      draft.HotelName,
		RoomType:       draft.RoomType,
		CheckInDate:    draft.CheckInDate,
		CheckOutDate:   draft.CheckOutDate,
		NumberOfGuests: draft.NumberOfGuests,
	}
	if err := s.Notifier.SendConfirmation(msg); err != nil {
		logrus.WithError(err).WithField("to", msg.To).Warn("confirmation email failed to send")
	}
}
