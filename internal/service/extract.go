package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/model"
)

// Keyword vocabularies for filter extraction. Order matters: the first
// keyword that yields a match wins.
var (
	bedroomKeywords  = []string{"bedroom", "bed", "br"}
	bathroomKeywords = []string{"bathroom", "bath", "ba"}
	cityPrepositions = []string{"in", "near", "at", "around"}
	budgetKeywords   = []string{"under", "below", "less than", "max", "maximum"}
	amenityVocab     = []string{"pool", "wifi", "parking", "kitchen", "gym", "beach", "balcony", "ac", "garden"}
)

// cityBoundaryWords terminate a city phrase: stop words plus the budget
// vocabulary, so "in rome under $150" yields "rome", not "rome under $150"
var cityBoundaryWords = map[string]bool{
	"a": true, "the": true, "with": true, "and": true, "or": true,
	"property": true, "properties": true,
	"under": true, "below": true, "less": true, "than": true,
	"max": true, "maximum": true,
}

var (
	countPatterns   = map[string]*regexp.Regexp{}
	amenityPatterns = map[string]*regexp.Regexp{}

	budgetPriceRe = regexp.MustCompile(`(?:under|below|less than|max(?:imum)?)\s*\$?(\d+)`)
	dollarRe      = regexp.MustCompile(`\$(\d+)`)
	digitsRe      = regexp.MustCompile(`(\d+)`)
)

func init() {
	for _, kw := range bedroomKeywords {
		countPatterns[kw] = compileCountPattern(kw)
	}
	for _, kw := range bathroomKeywords {
		countPatterns[kw] = compileCountPattern(kw)
	}
	for _, amenity := range amenityVocab {
		amenityPatterns[amenity] = regexp.MustCompile(`\b` + amenity + `\b`)
	}
}

// compileCountPattern matches "<number><keyword>" or "<keyword><number>"
// with optional whitespace between
func compileCountPattern(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(\d+)\s*` + keyword + `|` + keyword + `\s*(\d+)`)
}

// ExtractFilter turns a free-text message into a structured property filter.
// Pure and total: extraction never fails, absent fields simply stay unset.
func ExtractFilter(message string) model.PropertyFilter {
	lower := strings.ToLower(message)
	var filter model.PropertyFilter

	if n, ok := extractCount(lower, bedroomKeywords); ok {
		filter.Bedrooms = &n
	}
	if n, ok := extractCount(lower, bathroomKeywords); ok {
		filter.Bathrooms = &n
	}
	if city, ok := extractCity(lower); ok {
		filter.City = &city
	}
	if price, ok := extractMaxPrice(lower); ok {
		filter.MaxPrice = &price
	}
	if amenity, ok := extractAmenity(lower); ok {
		filter.Amenity = &amenity
	}

	return filter
}

// extractCount finds a number adjacent to any of the keywords, trying the
// keywords in declared order
func extractCount(lower string, keywords []string) (int, bool) {
	for _, kw := range keywords {
		if !strings.Contains(lower, kw) {
			continue
		}
		m := countPatterns[kw].FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		numStr := m[1]
		if numStr == "" {
			numStr = m[2]
		}
		n, err := strconv.Atoi(numStr)
		if err != nil || n == 0 {
			continue
		}
		return n, true
	}
	return 0, false
}

// extractCity takes up to three words after the first locator preposition,
// cutting the phrase at the first boundary word
func extractCity(lower string) (string, bool) {
	for _, prep := range cityPrepositions {
		idx := strings.Index(lower, prep+" ")
		if idx == -1 {
			continue
		}

		words := strings.Fields(lower[idx+len(prep)+1:])
		if len(words) > 3 {
			words = words[:3]
		}

		kept := make([]string, 0, len(words))
		for _, w := range words {
			if cityBoundaryWords[w] || startsNumeric(w) {
				break
			}
			w = strings.Trim(w, ",.")
			if w != "" {
				kept = append(kept, w)
			}
		}
		if len(kept) > 0 {
			return strings.Join(kept, " "), true
		}
	}
	return "", false
}

func startsNumeric(word string) bool {
	return word != "" && (word[0] == '$' || (word[0] >= '0' && word[0] <= '9'))
}

// extractMaxPrice only fires when the message carries budget intent. The
// amount adjacent to the budget word is preferred over the first digit run,
// so the bedroom count in "2 bedroom under $150" never wins.
func extractMaxPrice(lower string) (float64, bool) {
	hasBudgetIntent := false
	for _, kw := range budgetKeywords {
		if strings.Contains(lower, kw) {
			hasBudgetIntent = true
			break
		}
	}
	if !hasBudgetIntent {
		return 0, false
	}

	for _, re := range []*regexp.Regexp{budgetPriceRe, dollarRe, digitsRe} {
		if m := re.FindStringSubmatch(lower); m != nil {
			price, err := strconv.ParseFloat(m[1], 64)
			if err == nil && price > 0 {
				return price, true
			}
		}
	}
	return 0, false
}

// extractAmenity returns the first vocabulary amenity present as a whole
// word; at most one amenity per message
func extractAmenity(lower string) (string, bool) {
	for _, amenity := range amenityVocab {
		if amenityPatterns[amenity].MatchString(lower) {
			return amenity, true
		}
	}
	return "", false
}
