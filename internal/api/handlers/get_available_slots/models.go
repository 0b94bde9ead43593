package get_available_slots

import (
	"github.com/palmblack/PalmBlack-BookingService/internal/domain"
	getSlots "github.com/palmblack/PalmBlack-BookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date   string   `json:"date"`   // "2026-03-09"
	IsOpen bool     `json:"isOpen"` // false when the shop is closed that day
	Slots  []string `json:"slots"`  // free slot start times, e.g. "09:30"
}

// FromUseCaseResponse converts the use case response into the HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}

	return &AvailableSlotsResponse{
		Date:   resp.Date.Format(domain.DateFormat),
		IsOpen: resp.IsOpen,
		Slots:  slots,
	}
}
