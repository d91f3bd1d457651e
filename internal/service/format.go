package service

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/model"
)

// Fixed empty-result messaging
const (
	noPropertiesMessage = "No properties found matching your criteria."
	noBookingsMessage   = "You don't have any bookings yet."
)

// FormatProperties renders a property result set as a numbered text block.
// Properties explicitly marked unavailable get an "(Unavailable)" annotation
// so owners can tell their delisted properties apart.
func FormatProperties(properties []model.PropertyRecord) string {
	if len(properties) == 0 {
		return noPropertiesMessage
	}

	var b strings.Builder
	fmt.Fprintf(&b, "I found %d properties for you:\n\n", len(properties))
	for i, p := range properties {
		status := ""
		if p.IsAvailable != nil && !*p.IsAvailable {
			status = " (Unavailable)"
		}
		fmt.Fprintf(&b, "%d. **%s**%s\n", i+1, p.PropertyName, status)
		fmt.Fprintf(&b, "   %s, %s\n", p.City, p.Country)
		fmt.Fprintf(&b, "   $%s/night\n", formatPrice(p.PricePerNight))
		fmt.Fprintf(&b, "   %d bed • %d bath\n", p.Bedrooms, p.Bathrooms)
		fmt.Fprintf(&b, "   %s\n\n", titleCase(p.PropertyType))
	}
	return b.String()
}

// FormatBookings renders a booking result set as a numbered text block
func FormatBookings(bookings []model.BookingRecord) string {
	if len(bookings) == 0 {
		return noBookingsMessage
	}

	var b strings.Builder
	b.WriteString("Here are your recent bookings:\n\n")
	for i, booking := range bookings {
		fmt.Fprintf(&b, "%d. **%s**\n", i+1, booking.PropertyName)
		fmt.Fprintf(&b, "   %s, %s\n", booking.City, booking.Country)
		fmt.Fprintf(&b, "   %s to %s\n", booking.CheckInDate.Format("2006-01-02"), booking.CheckOutDate.Format("2006-01-02"))
		fmt.Fprintf(&b, "   %d guests\n", booking.NumGuests)
		fmt.Fprintf(&b, "   $%s\n", formatPrice(booking.TotalPrice))
		fmt.Fprintf(&b, "   Status: %s\n\n", booking.Status)
	}
	return b.String()
}

// formatPrice renders a price without a trailing ".0" for whole amounts
func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// titleCase upper-cases the first letter of each word
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
