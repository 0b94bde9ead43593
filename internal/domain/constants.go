package domain

// Slot granularity. Both the admin preview and the client booking page
// have always offered half-hour slots; changing this changes every
// offered boundary, so it is a single shared constant.
const SlotStepMinutes = 30

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNameLength  = 100
	MaxEmailLength = 254
	MaxPhoneLength = 30
)
