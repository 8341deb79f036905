package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
	"time"
)

const emailDateLayout = "2006-01-02"

// SendReservationConfirmation emails the guest their reservation
// summary. When SMTP is not configured the email is logged instead, so
// booking flows keep working in environments without a mail relay.
func SendReservationConfirmation(recipientEmail, hotelName, roomType string, checkIn, checkOut time.Time, guests int) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USERNAME")
	smtpPass := os.Getenv("SMTP_PASSWORD")
	fromName := os.Getenv("SMTP_FROM_NAME")

	if smtpUser == "" || smtpPass == "" || smtpHost == "" || smtpPort == "" {
		log.Printf("[MOCK EMAIL] confirmation to:%s hotel:%s room:%s %s..%s guests:%d",
			recipientEmail, hotelName, roomType,
			checkIn.Format(emailDateLayout), checkOut.Format(emailDateLayout), guests)
		return nil
	}

	safe := func(s string) string {
		return strings.ReplaceAll(strings.TrimSpace(s), "\r\n", " ")
	}
	hotelName = safe(hotelName)
	roomType = safe(roomType)

	from := fmt.Sprintf("%s <%s>", fromName, smtpUser)
	to := []string{recipientEmail}
	auth := smtp.PlainAuth("", smtpUser, smtpPass, smtpHost)
	addr := fmt.Sprintf("%s:%s", smtpHost, smtpPort)

	subject := "Room Reservation Confirmation"
	boundary := "----=_CONFIRMATION_EMAIL_BOUNDARY"

	plainBody := fmt.Sprintf(
		"Your reservation has been confirmed!\n\n"+
			"Reservation Info:\n"+
			"Hotel Name: %s\n"+
			"Room Type: %s\n"+
			"Check In Date: %s\n"+
			"Check Out Date: %s\n"+
			"Number of Guests: %d\n",
		hotelName, roomType,
		checkIn.Format(emailDateLayout), checkOut.Format(emailDateLayout), guests,
	)

	htmlBody := fmt.Sprintf(
		"<strong>Your reservation has been confirmed!</strong><br>"+
			"<strong>Reservation Info:</strong><br>"+
			"<strong>Hotel Name:</strong> %s<br>"+
			"<strong>Room Type:</strong> %s<br>"+
			"<strong>Check In Date:</strong> %s<br>"+
			"<strong>Check Out Date:</strong> %s<br>"+
			"<strong>Number of Guests:</strong> %d",
		hotelName, roomType,
		checkIn.Format(emailDateLayout), checkOut.Format(emailDateLayout), guests,
	)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("From: %s\r\n", from))
	sb.WriteString(fmt.Sprintf("To: %s\r\n", recipientEmail))
	sb.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n\r\n", boundary))

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	sb.WriteString(plainBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	sb.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	sb.WriteString(htmlBody + "\r\n")

	sb.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	if err := smtp.SendMail(addr, auth, smtpUser, to, []byte(sb.String())); err != nil {
		log.Printf("Failed to send confirmation email to %s: %v", recipientEmail, err)
		return err
	}

	log.Printf("Confirmation email sent to %s", recipientEmail)
	return nil
}
