package db_models

import "time"

const (
	StrategyAI       = "ai"
	StrategyFallback = "fallback"
)

type WeatherSnapshot struct {
	Temperature float64 `json:"temperature" bson:"temperature"`
	Description string  `json:"description" bson:"description"`
	FeelsLike   float64 `json:"feelsLike" bson:"feels_like"`
	Humidity    int     `json:"humidity" bson:"humidity"`
	WeatherMain string  `json:"weatherMain" bson:"weather_main"`
}

// ItineraryItem holds a copy of the venue as it was when the plan was made.
type ItineraryItem struct {
	Venue     Venue  `json:"venue" bson:"venue"`
	StartTime string `json:"startTime" bson:"start_time"`
	EndTime   string `json:"endTime" bson:"end_time"`
	Notes     string `json:"notes" bson:"notes"`
}

// DayPlan is written once and never updated.
type DayPlan struct {
	ID            string          `json:"id" bson:"_id" gorm:"primaryKey"`
	Location      Location        `json:"location" bson:"location" gorm:"embedded;embeddedPrefix:location_"`
	Date          string          `json:"date" bson:"date" gorm:"index"`
	Weather       WeatherSnapshot `json:"weather" bson:"weather" gorm:"serializer:json"`
	TotalBudget   int             `json:"totalBudget" bson:"total_budget"`
	EstimatedCost int             `json:"estimatedCost" bson:"estimated_cost"`
	Itinerary     []ItineraryItem `json:"itinerary" bson:"itinerary" gorm:"serializer:json"`
	Strategy      string          `json:"strategy" bson:"strategy"`
	CreatedAt     time.Time       `json:"createdAt" bson:"created_at"`
}
