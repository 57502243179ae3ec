package domain

// Business validation constants
const (
	MaxTitleLength = 200
	MaxNotesLength = 500

	MinDiscountPercent = 0.0
	MaxDiscountPercent = 100.0
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
