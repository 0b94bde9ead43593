package mailer

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
)

// Client sends booking confirmation emails over SMTP.
type Client struct {
	dialer *gomail.Dialer
	from   string
}

// NewClient creates the SMTP mailer.
func NewClient(host string, port int, username, password, from string) *Client {
	return &Client{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendConfirmation emails the client that their appointment is booked.
// The message is plain text in the language of the booking form.
func (c *Client) SendConfirmation(ctx context.Context, appt *domain.Appointment) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", c.from)
	msg.SetHeader("To", appt.Email)
	msg.SetHeader("Subject", "Confirmación de tu cita en Palm Black")
	msg.SetBody("text/plain", confirmationBody(appt))

	done := make(chan error, 1)
	go func() {
		done <- c.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: SendConfirmation - %v", ErrSend, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func confirmationBody(appt *domain.Appointment) string {
	return fmt.Sprintf(
		"Hola %s,\n\n"+
			"Tu cita en Palm Black Barbería quedó confirmada.\n\n"+
			"Fecha: %s\n"+
			"Hora: %s\n\n"+
			"Si no puedes asistir, por favor avísanos con anticipación.\n\n"+
			"Palm Black Barbería",
		appt.ClientFullName(),
		appt.Date.Format(domain.DateFormat),
		appt.StartTime,
	)
}
