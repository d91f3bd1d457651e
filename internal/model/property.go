package model

import "time"

// PropertyRecord represents a property listing as returned by the store.
// Identifiers are normalized to opaque strings at the adapter boundary so
// callers never see backend-native key types.
type PropertyRecord struct {
	PropertyID    string  `json:"property_id"`
	PropertyName  string  `json:"property_name"`
	City          string  `json:"city"`
	Country       string  `json:"country"`
	PricePerNight float64 `json:"price_per_night"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	PropertyType  string  `json:"property_type"`
	IsAvailable   *bool   `json:"is_available,omitempty"`
	Amenities     *string `json:"amenities,omitempty"`
}

// BookingRecord represents a booking joined with its property details
type BookingRecord struct {
	BookingID    string    `json:"booking_id"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	NumGuests    int       `json:"num_guests"`
	TotalPrice   float64   `json:"total_price"`
	Status       string    `json:"status"`
	PropertyName string    `json:"property_name"`
	City         string    `json:"city"`
	Country      string    `json:"country"`
}
