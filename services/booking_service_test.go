package services

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enstay-backend/models"
	"enstay-backend/store"
)

type fakeNotifier struct {
	sent []ConfirmationMessage
	err  error
}

func (f *fakeNotifier) SendConfirmation(msg ConfirmationMessage) error {
	f.sent = append(f.sent, msg)
	return f.err
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func validDraft() Draft {
	return Draft{
		RoomID:         101,
		HotelID:        "0",
		HotelName:      "Hammond 0",
		RoomType:       models.RoomSingle,
		CheckInDate:    day("2024-06-01"),
		CheckOutDate:   day("2024-06-05"),
		NumberOfGuests: 2,
		FirstName:      "Bob",
		LastName:       "Smith",
		Email:          "bob@gmail.com",
		PhoneNumber:    "555-0101",
	}
}

func TestSubmitConfirmsAndNotifiesOnce(t *testing.T) {
	m := store.NewMemory()
	notifier := &fakeNotifier{}
	svc := NewBookingService(m, notifier)

	result, err := svc.Submit(validDraft())
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, result.State)
	assert.False(t, result.Reservation.IsPaid, "paid flag starts false regardless of input")
	assert.NotZero(t, result.Reservation.ID)

	reservations, err := m.Reservations().List()
	require.NoError(t, err)
	require.Len(t, reservations, 1)

	require.Len(t, notifier.sent, 1, "exactly one confirmation per Confirmed transition")
	msg := notifier.sent[0]
	assert.Equal(t, "bob@gmail.com", msg.To)
	assert.Equal(t, "Hammond 0", msg.HotelName)
	assert.Equal(t, models.RoomSingle, msg.RoomType)
	assert.Equal(t, 2, msg.NumberOfGuests)
}

func TestSubmitRoundTrip(t *testing.T) {
	m := store.NewMemory()
	svc := NewBookingService(m, &fakeNotifier{})

	draft := validDraft()
	_, err := svc.Submit(draft)
	require.NoError(t, err)

	reservations, err := svc.List()
	require.NoError(t, err)
	require.Len(t, reservations, 1)

	got := reservations[0]
	assert.Equal(t, 101, got.RoomID)
	assert.Equal(t, "0", got.HotelID)
	assert.Equal(t, day("2024-06-01"), got.CheckInDate)
	assert.Equal(t, day("2024-06-05"), got.CheckOutDate)
	assert.Equal(t, 2, got.NumberOfGuests)
	assert.False(t, got.IsPaid)

	var contact map[string]string
	require.NoError(t, json.Unmarshal(got.ContactDetails, &contact))
	assert.Equal(t, "bob@gmail.com", contact["email"])
	assert.Equal(t, "Bob", contact["firstName"])
}

func TestSubmitValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Draft)
	}{
		{"check-out before check-in", func(d *Draft) { d.CheckOutDate = day("2024-05-30") }},
		{"check-out equals check-in", func(d *Draft) { d.CheckOutDate = d.CheckInDate }},
		{"zero guests", func(d *Draft) { d.NumberOfGuests = 0 }},
		{"missing email", func(d *Draft) { d.Email = "  " }},
		{"no hotel selected", func(d *Draft) { d.HotelID = "" }},
		{"no room selected", func(d *Draft) { d.RoomID = 0 }},
		{"bogus room type", func(d *Draft) { d.RoomType = "Penthouse" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := store.NewMemory()
			notifier := &fakeNotifier{}
			svc := NewBookingService(m, notifier)

			draft := validDraft()
			tt.mutate(&draft)

			result, err := svc.Submit(draft)
			require.Error(t, err)
			var validationErr *ValidationError
			assert.ErrorAs(t, err, &validationErr)
			assert.Equal(t, StateDraft, result.State, "a rejected draft never reaches Submitting")

			reservations, _ := m.Reservations().List()
			assert.Empty(t, reservations, "no store write on validation failure")
			assert.Empty(t, notifier.sent, "no notification on validation failure")
		})
	}
}

func TestSubmitRejectsOverlappingStay(t *testing.T) {
	m := store.NewMemory()
	notifier := &fakeNotifier{}
	svc := NewBookingService(m, notifier)

	_, err := svc.Submit(validDraft())
	require.NoError(t, err)

	second := validDraft()
	second.CheckInDate = day("2024-06-03")
	second.CheckOutDate = day("2024-06-07")
	result, err := svc.Submit(second)
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	assert.Equal(t, StateRejected, result.State)

	reservations, _ := m.Reservations().List()
	assert.Len(t, reservations, 1)
	assert.Len(t, notifier.sent, 1, "no notification for the rejected submission")

	// back-to-back stay is fine: half-open ranges
	third := validDraft()
	third.CheckInDate = day("2024-06-05")
	third.CheckOutDate = day("2024-06-08")
	result, err = svc.Submit(third)
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, result.State)
}

// failingReservations wraps the real collection and refuses the write.
type failingReservations struct {
	store.ReservationCollection
	saveErr error
}

func (f *failingReservations) Save() error { return f.saveErr }

type failingStore struct {
	store.Store
	reservations *failingReservations
}

func (f *failingStore) Reservations() store.ReservationCollection { return f.reservations }

func TestSubmitRejectedWhenStoreRefuses(t *testing.T) {
	m := store.NewMemory()
	storeErr := errors.New("constraint violation: room 101 does not exist")
	failing := &failingStore{
		Store:        m,
		reservations: &failingReservations{ReservationCollection: m.Reservations(), saveErr: storeErr},
	}
	notifier := &fakeNotifier{}
	svc := NewBookingService(failing, notifier)

	result, err := svc.Submit(validDraft())
	assert.Equal(t, StateRejected, result.State)
	assert.ErrorIs(t, err, storeErr, "the store's error is surfaced verbatim")
	assert.Empty(t, notifier.sent, "no notification for a rejected write")
}

func TestSubmitConfirmedEvenWhenNotifierFails(t *testing.T) {
	m := store.NewMemory()
	notifier := &fakeNotifier{err: errors.New("smtp: connection refused")}
	svc := NewBookingService(m, notifier)

	result, err := svc.Submit(validDraft())
	require.NoError(t, err, "notification failure never reaches the caller")
	assert.Equal(t, StateConfirmed, result.State)

	reservations, _ := m.Reservations().List()
	assert.Len(t, reservations, 1, "the committed write is never rolled back")
	assert.Len(t, notifier.sent, 1)
}

func TestSubmitResolvesSelectionForEmail(t *testing.T) {
	m := store.NewMemory()
	m.Hotels().Add(&models.Hotel{HotelCode: "enstay0", Name: "Hammond 0", City: "Hammond"})
	require.NoError(t, m.Hotels().Save())
	hotels, _ := m.Hotels().List()

	room, err := models.NewRoom(hotels[0].ID, 101, models.RoomDouble, false)
	require.NoError(t, err)
	m.Rooms().Add(&room)
	require.NoError(t, m.Rooms().Save())

	notifier := &fakeNotifier{}
	svc := NewBookingService(m, notifier)

	draft := validDraft()
	draft.HotelID = "1" // the seeded hotel's store id
	draft.RoomID = int(room.ID)
	draft.HotelName = ""
	draft.RoomType = ""

	result, err := svc.Submit(draft)
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, result.State)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Hammond 0", notifier.sent[0].HotelName)
	assert.Equal(t, models.RoomDouble, notifier.sent[0].RoomType)
}
