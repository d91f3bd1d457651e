package repository

import (
	"context"

	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/model"
)

// Result caps shared by all backends
const (
	propertyLimit = 10
	bookingLimit  = 5
)

// PropertyStore is the backend-agnostic read interface for property data.
// The four list operations never fail from the caller's perspective: any
// backend error is logged at the adapter boundary and surfaces as an empty
// result set, so the chat flow degrades to a "no results" answer instead of
// an error page.
type PropertyStore interface {
	// ListOwnerOrPublicProperties returns the owner's properties (including
	// unavailable ones) when userType is "owner" and email is set, otherwise
	// all currently available properties. Newest first, capped at 10.
	ListOwnerOrPublicProperties(ctx context.Context, email, userType string) []model.PropertyRecord

	// ListFavorites returns the properties the user has favorited, newest
	// favorite first, capped at 10. Empty if the email is unknown.
	ListFavorites(ctx context.Context, email string) []model.PropertyRecord

	// ListBookings returns the user's bookings joined with property details,
	// newest booking first, capped at 5. Empty if the email is unknown.
	ListBookings(ctx context.Context, email string) []model.BookingRecord

	// Search returns available properties matching every set filter field,
	// newest first, capped at 10.
	Search(ctx context.Context, filter *model.PropertyFilter) []model.PropertyRecord

	// LogChat records a handled chat turn for analytics. Callers treat this
	// as fire-and-forget.
	LogChat(ctx context.Context, entry *model.ChatLog) error

	// Ping checks backend connectivity
	Ping(ctx context.Context) error

	// Close releases the backend connection
	Close() error
}
