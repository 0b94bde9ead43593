package availability

import (
	"fmt"
	"time"

	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
)

// dayLabels are the user-facing day names used in validation messages.
var dayLabels = [7]string{
	time.Sunday:    "Domingo",
	time.Monday:    "Lunes",
	time.Tuesday:   "Martes",
	time.Wednesday: "Miércoles",
	time.Thursday:  "Jueves",
	time.Friday:    "Viernes",
	time.Saturday:  "Sábado",
}

// validateWeek checks every weekday and collects all problems into a
// single ValidationError. Closed days only need well-formed times, the
// ordering rules apply to open days.
func validateWeek(week domain.WeekSchedule) error {
	messages := make([]string, 0)

	for weekday, rule := range week {
		label := dayLabels[weekday]

		if rule.StartTime.Validate() != nil || rule.EndTime.Validate() != nil {
			messages = append(messages, fmt.Sprintf("%s: el horario no es válido", label))
			continue
		}

		if rule.Break.IsActive {
			if rule.Break.StartTime.Validate() != nil || rule.Break.EndTime.Validate() != nil {
				messages = append(messages, fmt.Sprintf("%s: el horario de descanso no es válido", label))
				continue
			}
		}

		if !rule.IsOpen {
			continue
		}

		if !rule.StartTime.IsBefore(rule.EndTime) {
			messages = append(messages,
				fmt.Sprintf("%s: la hora de apertura debe ser anterior a la hora de cierre", label))
			continue
		}

		if rule.Break.IsActive {
			breakInsideDay := !rule.Break.StartTime.IsBefore(rule.StartTime) &&
				rule.Break.StartTime.IsBefore(rule.Break.EndTime) &&
				!rule.Break.EndTime.IsAfter(rule.EndTime)
			if !breakInsideDay {
				messages = append(messages,
					fmt.Sprintf("%s: el descanso debe estar dentro del horario de apertura", label))
			}
		}
	}

	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}

	return nil
}
