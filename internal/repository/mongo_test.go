package repository

import (
	"testing"

	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildSearchDocument(t *testing.T) {
	t.Run("nil filter constrains to available", func(t *testing.T) {
		query := buildSearchDocument(nil)

		if len(query) != 1 {
			t.Fatalf("query = %v, want only the availability constraint", query)
		}
		if query["is_available"] != true {
			t.Errorf("is_available = %v, want true", query["is_available"])
		}
	})

	t.Run("city becomes case-insensitive city-or-country match", func(t *testing.T) {
		query := buildSearchDocument(&model.PropertyFilter{City: strPtr("paris")})

		or, ok := query["$or"].(bson.A)
		if !ok {
			t.Fatalf("$or = %T, want bson.A", query["$or"])
		}
		if len(or) != 2 {
			t.Fatalf("$or has %d branches, want 2", len(or))
		}
		re, ok := or[0].(bson.M)["city"].(primitive.Regex)
		if !ok {
			t.Fatalf("city branch = %v, want regex", or[0])
		}
		if re.Pattern != "paris" || re.Options != "i" {
			t.Errorf("city regex = %+v, want case-insensitive paris", re)
		}
	})

	t.Run("regex metacharacters are escaped", func(t *testing.T) {
		query := buildSearchDocument(&model.PropertyFilter{Amenity: strPtr("a+c")})

		re, ok := query["amenities"].(primitive.Regex)
		if !ok {
			t.Fatalf("amenities = %T, want regex", query["amenities"])
		}
		if re.Pattern != `a\+c` {
			t.Errorf("amenity pattern = %q, want escaped %q", re.Pattern, `a\+c`)
		}
	})

	t.Run("numeric filters match exactly", func(t *testing.T) {
		query := buildSearchDocument(&model.PropertyFilter{
			MaxPrice:  float64Ptr(150),
			Bedrooms:  intPtr(2),
			Bathrooms: intPtr(1),
		})

		price, ok := query["price_per_night"].(bson.M)
		if !ok || price["$lte"] != 150.0 {
			t.Errorf("price_per_night = %v, want $lte 150", query["price_per_night"])
		}
		if query["bedrooms"] != 2 {
			t.Errorf("bedrooms = %v, want 2", query["bedrooms"])
		}
		if query["bathrooms"] != 1 {
			t.Errorf("bathrooms = %v, want 1", query["bathrooms"])
		}
	})
}

func TestPropertyDocToRecord(t *testing.T) {
	id := primitive.NewObjectID()
	available := true
	doc := propertyDoc{
		ID:            id,
		PropertyName:  "Canal House",
		City:          "Amsterdam",
		Country:       "Netherlands",
		PricePerNight: 180,
		Bedrooms:      2,
		Bathrooms:     1,
		PropertyType:  "house",
		IsAvailable:   &available,
		Amenities:     []string{"wifi", "kitchen"},
	}

	t.Run("owner view keeps availability", func(t *testing.T) {
		rec := doc.toRecord(true)

		if rec.PropertyID != id.Hex() {
			t.Errorf("property id = %q, want %q", rec.PropertyID, id.Hex())
		}
		if rec.IsAvailable == nil || !*rec.IsAvailable {
			t.Error("availability missing on owner view")
		}
		if rec.Amenities == nil || *rec.Amenities != "wifi, kitchen" {
			t.Errorf("amenities = %v, want joined list", rec.Amenities)
		}
	})

	t.Run("public view hides availability", func(t *testing.T) {
		rec := doc.toRecord(false)

		if rec.IsAvailable != nil {
			t.Errorf("availability = %v, want unset on public view", *rec.IsAvailable)
		}
	})
}
