package services

import "enstay-backend/utils"

// SMTPNotifier sends the confirmation over SMTP. Without SMTP settings
// in the environment the underlying sender logs a mock email, so local
// runs behave the same minus the delivery.
type SMTPNotifier struct{}

func (SMTPNotifier) SendConfirmation(msg ConfirmationMessage) error {
	return utils.SendReservationConfirmation(
		msg.To,
		msg.HotelName,
		string(msg.RoomType),
		msg.CheckInDate,
		msg.CheckOutDate,
		msg.NumberOfGuests,
	)
}
