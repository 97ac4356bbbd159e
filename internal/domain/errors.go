package domain

import "errors"

var (
	ErrInvalidDate   = errors.New("Invalid date format. Please use YYYY-MM-DD")
	ErrUnknownMode   = errors.New("mode must be one of drift, seeded")
	ErrUnknownZodiac = errors.New("zodiac must be one of tropical, sidereal")
)
