package service

import "strings"

// Suggest returns up to three follow-up suggestions for a message. Keyword
// groups are checked in the same precedence order as the intent router; the
// property branch varies with whether the last lookup produced results.
func Suggest(message string, hasResults bool) []string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "property") || strings.Contains(lower, "properties"):
		if hasResults {
			return []string{
				"Show me more details",
				"Filter by different criteria",
				"Properties in another city",
			}
		}
		return []string{
			"Show all properties",
			"Properties in Paris",
			"Properties under $200",
		}
	case strings.Contains(lower, "booking"):
		return []string{
			"Cancel a booking",
			"Modify my booking",
			"Refund policy",
		}
	case strings.Contains(lower, "favorite"):
		return []string{
			"Add to favorites",
			"Remove from favorites",
			"Show property details",
		}
	default:
		return []string{
			"Search for properties",
			"View my bookings",
			"Show my favorites",
		}
	}
}
