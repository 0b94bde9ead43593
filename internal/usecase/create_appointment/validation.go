package create_appointment

import (
	"regexp"
	"strings"
	"time"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)
)

// validateRequest checks every field and collects all problems into a
// single ValidationError. Messages are user-facing, in the language of
// the booking form.
func validateRequest(req *Request) error {
	messages := make([]string, 0)

	if req.Date.IsZero() {
		messages = append(messages, "La fecha es obligatoria")
	}

	if req.StartTime.IsZero() {
		messages = append(messages, "La hora es obligatoria")
	} else if err := req.StartTime.Validate(); err != nil {
		messages = append(messages, "La hora no es válida")
	}

	if strings.TrimSpace(req.FirstName) == "" {
		messages = append(messages, "El nombre es obligatorio")
	} else if len(req.FirstName) > domain.MaxNameLength {
		messages = append(messages, "El nombre es demasiado largo")
	}

	if strings.TrimSpace(req.LastName) == "" {
		messages = append(messages, "Los apellidos son obligatorios")
	} else if len(req.LastName) > domain.MaxNameLength {
		messages = append(messages, "Los apellidos son demasiado largos")
	}

	if strings.TrimSpace(req.Email) == "" {
		messages = append(messages, "El correo electrónico es obligatorio")
	} else if !emailPattern.MatchString(req.Email) || len(req.Email) > domain.MaxEmailLength {
		messages = append(messages, "El correo electrónico no es válido")
	}

	if strings.TrimSpace(req.Phone) == "" {
		messages = append(messages, "El teléfono es obligatorio")
	} else if !phonePattern.MatchString(req.Phone) || len(req.Phone) > domain.MaxPhoneLength {
		messages = append(messages, "El teléfono contiene caracteres no válidos")
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}

	return nil
}

// dateOnly strips the time-of-day from the appointment date
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isDateInPast reports whether date is before today
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
