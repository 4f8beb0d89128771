package services

import (
	"github.com/google/uuid"
	"planmyday/internal/models/db_models"
)

var venueNamespace = uuid.MustParse("6f1c2b0e-4d8a-5e2f-9a7b-3c5d1e0f8a42")

// VenueID derives a stable identifier from the venue name.
func VenueID(name string) string {
	return uuid.NewSHA1(venueNamespace, []byte(name)).String()
}

func strPtr(s string) *string { return &s }

func withIDs(venues []db_models.Venue) []db_models.Venue {
	for i := range venues {
		venues[i].ID = VenueID(venues[i].Name)
	}
	return venues
}

// SampleVenues are inserted on server start when the catalog is empty.
func SampleVenues() []db_models.Venue {
	return withIDs([]db_models.Venue{
		{
			Name:              "The Coffee Corner",
			Category:          "restaurant",
			Location:          db_models.Location{Lat: 40.7589, Lng: -73.9851, Address: "123 Broadway, NYC"},
			PriceRange:        db_models.PriceMid,
			Rating:            4.5,
			Description:       "Cozy coffee shop",
			PopularItems:      []string{},
			OpeningHours:      "7:00 AM - 6:00 PM",
			EstimatedDuration: 45,
		},
		{
			Name:              "Central Park",
			Category:          "attraction",
			Location:          db_models.Location{Lat: 40.7821, Lng: -73.9654, Address: "Central Park, NYC"},
			PriceRange:        db_models.PriceLow,
			Rating:            4.8,
			Description:       "Iconic urban park",
			PopularItems:      []string{},
			OpeningHours:      "6:00 AM - 1:00 AM",
			EstimatedDuration: 120,
		},
	})
}

// SeedVenues is the fixed catalog written by cmd/seed.
func SeedVenues() []db_models.Venue {
	return withIDs([]db_models.Venue{
		{
			Name:              "Tech Cafe 2049",
			Category:          "restaurant",
			Location:          db_models.Location{Lat: 12.9716, Lng: 77.5946, Address: "MG Road, Bengaluru"},
			PriceRange:        db_models.PriceMid,
			Rating:            4.7,
			Description:       "Futuristic cafe with robot baristas and a tech-themed menu.",
			PopularItems:      []string{"Quantum Quiche", "Neural-Net Nachos"},
			OpeningHours:      "8:00 AM - 10:00 PM",
			EstimatedDuration: 60,
			BookingURL:        strPtr("https://example.com/book/techcafe"),
		},
		{
			Name:              "The Green Leaf Bistro",
			Category:          "restaurant",
			Location:          db_models.Location{Lat: 12.9345, Lng: 77.6244, Address: "Koramangala, Bengaluru"},
			PriceRange:        db_models.PriceHigh,
			Rating:            4.9,
			Description:       "Plant-forward bistro with seasonal bowls and fresh juices.",
			PopularItems:      []string{"Avocado Toast", "Kale Smoothie", "Vegan Burger"},
			OpeningHours:      "9:00 AM - 11:00 PM",
			EstimatedDuration: 75,
			BookingURL:        strPtr("https://example.com/book/greenleaf"),
		},
		{
			Name:              "City Art Gallery",
			Category:          "attraction",
			Location:          db_models.Location{Lat: 12.9757, Lng: 77.5929, Address: "Kasturba Road, Bengaluru"},
			PriceRange:        db_models.PriceLow,
			Rating:            4.6,
			Description:       "Features modern and contemporary art from local artists.",
			PopularItems:      []string{},
			OpeningHours:      "10:00 AM - 6:00 PM",
			EstimatedDuration: 90,
		},
		{
			Name:              "Innovate Hub",
			Category:          "activity",
			Location:          db_models.Location{Lat: 12.9279, Lng: 77.6271, Address: "HSR Layout, Bengaluru"},
			PriceRange:        db_models.PriceFree,
			Rating:            4.8,
			Description:       "A co-working and event space for tech enthusiasts. Hosts weekly meetups.",
			PopularItems:      []string{},
			OpeningHours:      "9:00 AM - 9:00 PM",
			EstimatedDuration: 120,
		},
		{
			Name:              "The Escape Room: Sector 7",
			Category:          "activity",
			Location:          db_models.Location{Lat: 12.9352, Lng: 77.6169, Address: "Koramangala 5th Block, Bengaluru"},
			PriceRange:        db_models.PriceHigh,
			Rating:            4.9,
			Description:       "A challenging sci-fi themed escape room adventure.",
			PopularItems:      []string{},
			OpeningHours:      "11:00 AM - 10:00 PM",
			EstimatedDuration: 60,
			BookingURL:        strPtr("https://example.com/book/escaperoom7"),
		},
		{
			Name:              "Rooftop Cinema Club",
			Category:          "event",
			Location:          db_models.Location{Lat: 12.9592, Lng: 77.6455, Address: "Indiranagar, Bengaluru"},
			PriceRange:        db_models.PriceMid,
			Rating:            4.7,
			Description:       "Outdoor movie screenings with classic films and city views.",
			PopularItems:      []string{},
			OpeningHours:      "6:00 PM - 12:00 AM",
			EstimatedDuration: 150,
			BookingURL:        strPtr("https://example.com/book/rooftopcinema"),
		},
		{
			Name:              "Downtown Music Hall",
			Category:          "event",
			Location:          db_models.Location{Lat: 12.9845, Lng: 77.5995, Address: "Cubbon Park Road, Bengaluru"},
			PriceRange:        db_models.PriceHigh,
			Rating:            4.6,
			Description:       "Live music venue featuring indie bands and international artists.",
			PopularItems:      []string{},
			OpeningHours:      "7:00 PM - 1:00 AM",
			EstimatedDuration: 180,
			BookingURL:        strPtr("https://example.com/book/downtownmusic"),
		},
	})
}
