package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Price tiers, cheapest first.
const (
	PriceFree = "Free"
	PriceLow  = "$"
	PriceMid  = "$$"
	PriceHigh = "$$$"
	PriceLuxe = "$$$$"
)

const GeoJSONPoint = "Point"

type Location struct {
	Lat     float64 `json:"lat" bson:"lat"`
	Lng     float64 `json:"lng" bson:"lng"`
	Address string  `json:"address" bson:"address"`
}

// GeoPoint is the GeoJSON form of a Location, kept next to it so the
// 2dsphere index has something it understands.
type GeoPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

func NewGeoPoint(loc Location) *GeoPoint {
	return &GeoPoint{Type: GeoJSONPoint, Coordinates: []float64{loc.Lng, loc.Lat}}
}

type Venue struct {
	ID                string         `json:"id" bson:"_id" gorm:"primaryKey"`
	Name              string         `json:"name" bson:"name" gorm:"index"`
	Category          string         `json:"category" bson:"category"`
	Location          Location       `json:"location" bson:"location" gorm:"embedded;embeddedPrefix:location_"`
	PriceRange        string         `json:"priceRange" bson:"price_range"`
	Rating            float64        `json:"rating" bson:"rating"`
	Description       string         `json:"description" bson:"description"`
	PopularItems      pq.StringArray `json:"popularItems" bson:"popular_items" gorm:"type:text[]"`
	OpeningHours      string         `json:"openingHours" bson:"opening_hours"`
	EstimatedDuration int            `json:"estimatedDuration" bson:"estimated_duration"`
	BookingURL        *string        `json:"bookingUrl,omitempty" bson:"booking_url,omitempty"`

	Geo *GeoPoint `json:"-" bson:"geo,omitempty" gorm:"-"`
	// Seq records insertion order in Postgres, where rows have no natural order.
	Seq int64 `json:"-" bson:"-" gorm:"autoIncrement;uniqueIndex"`
}

// WithGeoPoint returns a copy carrying the GeoJSON point for its location.
func (v Venue) WithGeoPoint() Venue {
	v.Geo = NewGeoPoint(v.Location)
	return v
}

func (v *Venue) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.PopularItems == nil {
		v.PopularItems = pq.StringArray{}
	}
	return nil
}
