package utils

import "errors"

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	ErrVenueNotFound   = errors.New("venue not found")
	ErrPlanNotFound    = errors.New("day plan not found")
	ErrNoItinerary     = errors.New("no itinerary could be produced")

	ErrGenerationUnavailable  = errors.New("generation service unavailable")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected response from generation service")
)
