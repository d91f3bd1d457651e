package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements PropertyStore on top of the document schema. Joins
// that the relational backend expresses as SQL JOINs are expressed here as
// aggregation pipelines with $lookup stages.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoStore creates a new MongoDB-backed property store
func NewMongoStore(uri, database string, timeoutSec int) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoStore{
		client: client,
		db:     client.Database(database),
	}, nil
}

// Close disconnects from MongoDB
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// Ping checks database connectivity
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// propertyDoc is the document shape of a property. ObjectIDs stay internal;
// they are rendered to hex strings before leaving the adapter.
type propertyDoc struct {
	ID            primitive.ObjectID `bson:"_id"`
	PropertyName  string             `bson:"property_name"`
	City          string             `bson:"city"`
	Country       string             `bson:"country"`
	PricePerNight float64            `bson:"price_per_night"`
	Bedrooms      int                `bson:"bedrooms"`
	Bathrooms     int                `bson:"bathrooms"`
	PropertyType  string             `bson:"property_type"`
	IsAvailable   *bool              `bson:"is_available,omitempty"`
	Amenities     []string           `bson:"amenities,omitempty"`
}

// toRecord maps a document to the canonical record shape. Availability is
// only surfaced on the owner view, matching the relational adapter's
// per-query column selection.
func (d *propertyDoc) toRecord(includeAvailability bool) model.PropertyRecord {
	rec := model.PropertyRecord{
		PropertyID:    d.ID.Hex(),
		PropertyName:  d.PropertyName,
		City:          d.City,
		Country:       d.Country,
		PricePerNight: d.PricePerNight,
		Bedrooms:      d.Bedrooms,
		Bathrooms:     d.Bathrooms,
		PropertyType:  d.PropertyType,
	}
	if includeAvailability && d.IsAvailable != nil {
		avail := *d.IsAvailable
		rec.IsAvailable = &avail
	}
	if len(d.Amenities) > 0 {
		amenities := strings.Join(d.Amenities, ", ")
		rec.Amenities = &amenities
	}
	return rec
}

type bookingDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	CheckInDate  time.Time          `bson:"check_in_date"`
	CheckOutDate time.Time          `bson:"check_out_date"`
	NumGuests    int                `bson:"num_guests"`
	TotalPrice   float64            `bson:"total_price"`
	Status       string             `bson:"status"`
	Property     propertyDoc        `bson:"property"`
}

func (d *bookingDoc) toRecord() model.BookingRecord {
	return model.BookingRecord{
		BookingID:    d.ID.Hex(),
		CheckInDate:  d.CheckInDate,
		CheckOutDate: d.CheckOutDate,
		NumGuests:    d.NumGuests,
		TotalPrice:   d.TotalPrice,
		Status:       d.Status,
		PropertyName: d.Property.PropertyName,
		City:         d.Property.City,
		Country:      d.Property.Country,
	}
}

// resolveUserID maps a caller's email to the internal user key
func (s *MongoStore) resolveUserID(ctx context.Context, email string) (primitive.ObjectID, bool, error) {
	var user struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	err := s.db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return primitive.NilObjectID, false, nil
	}
	if err != nil {
		return primitive.NilObjectID, false, fmt.Errorf("failed to resolve user %q: %w", email, err)
	}
	return user.ID, true, nil
}

// ListOwnerOrPublicProperties returns the owner's listings or the public
// available ones, newest first, capped at 10
func (s *MongoStore) ListOwnerOrPublicProperties(ctx context.Context, email, userType string) []model.PropertyRecord {
	records, err := s.listOwnerOrPublicProperties(ctx, email, userType)
	if err != nil {
		log.Printf("property store: list properties failed: %v", err)
		return []model.PropertyRecord{}
	}
	return records
}

func (s *MongoStore) listOwnerOrPublicProperties(ctx context.Context, email, userType string) ([]model.PropertyRecord, error) {
	ownerView := userType == "owner" && email != ""
	query := bson.M{"is_available": true}

	if ownerView {
		ownerID, found, err := s.resolveUserID(ctx, email)
		if err != nil {
			return nil, err
		}
		if !found {
			return []model.PropertyRecord{}, nil
		}
		// Owners see all of their listings, unavailable ones included
		query = bson.M{"owner_id": ownerID}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(propertyLimit)

	cursor, err := s.db.Collection("properties").Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeProperties(ctx, cursor, ownerView)
}

// ListFavorites returns the user's favorite properties, newest favorite
// first, capped at 10
func (s *MongoStore) ListFavorites(ctx context.Context, email string) []model.PropertyRecord {
	records, err := s.listFavorites(ctx, email)
	if err != nil {
		log.Printf("property store: list favorites failed: %v", err)
		return []model.PropertyRecord{}
	}
	return records
}

func (s *MongoStore) listFavorites(ctx context.Context, email string) ([]model.PropertyRecord, error) {
	userID, found, err := s.resolveUserID(ctx, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return []model.PropertyRecord{}, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "user_id", Value: userID}}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$limit", Value: propertyLimit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "properties"},
			{Key: "localField", Value: "property_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "property"},
		}}},
		{{Key: "$unwind", Value: "$property"}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$property"}}}},
	}

	cursor, err := s.db.Collection("favorites").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeProperties(ctx, cursor, false)
}

// ListBookings returns the user's bookings joined with property details,
// newest booking first, capped at 5
func (s *MongoStore) ListBookings(ctx context.Context, email string) []model.BookingRecord {
	records, err := s.listBookings(ctx, email)
	if err != nil {
		log.Printf("property store: list bookings failed: %v", err)
		return []model.BookingRecord{}
	}
	return records
}

func (s *MongoStore) listBookings(ctx context.Context, email string) ([]model.BookingRecord, error) {
	userID, found, err := s.resolveUserID(ctx, email)
	if err != nil {
		return nil, err
	}
	if !found {
		return []model.BookingRecord{}, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "traveler_id", Value: userID}}}},
		{{Key: "$sort", Value: bson.D{{Key: "booking_date", Value: -1}}}},
		{{Key: "$limit", Value: bookingLimit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "properties"},
			{Key: "localField", Value: "property_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "property"},
		}}},
		{{Key: "$unwind", Value: "$property"}},
	}

	cursor, err := s.db.Collection("bookings").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	records := []model.BookingRecord{}
	for cursor.Next(ctx) {
		var doc bookingDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		records = append(records, doc.toRecord())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("booking cursor error: %w", err)
	}
	return records, nil
}

// Search returns available properties matching every set filter field,
// newest first, capped at 10
func (s *MongoStore) Search(ctx context.Context, filter *model.PropertyFilter) []model.PropertyRecord {
	records, err := s.search(ctx, filter)
	if err != nil {
		log.Printf("property store: search failed: %v", err)
		return []model.PropertyRecord{}
	}
	return records
}

func (s *MongoStore) search(ctx context.Context, filter *model.PropertyFilter) ([]model.PropertyRecord, error) {
	query := buildSearchDocument(filter)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(propertyLimit)

	cursor, err := s.db.Collection("properties").Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeProperties(ctx, cursor, false)
}

// buildSearchDocument builds the native filter document for a property
// search, mirroring the relational adapter's WHERE clauses
func buildSearchDocument(filter *model.PropertyFilter) bson.M {
	query := bson.M{"is_available": true}
	if filter == nil {
		return query
	}

	if filter.City != nil {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(*filter.City), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"city": re},
			bson.M{"country": re},
		}
	}
	if filter.MaxPrice != nil {
		query["price_per_night"] = bson.M{"$lte": *filter.MaxPrice}
	}
	if filter.Amenity != nil {
		// Regex matches element-wise against the amenities array
		query["amenities"] = primitive.Regex{Pattern: regexp.QuoteMeta(*filter.Amenity), Options: "i"}
	}
	if filter.Bedrooms != nil {
		query["bedrooms"] = *filter.Bedrooms
	}
	if filter.Bathrooms != nil {
		query["bathrooms"] = *filter.Bathrooms
	}

	return query
}

// LogChat records a handled chat turn
func (s *MongoStore) LogChat(ctx context.Context, entry *model.ChatLog) error {
	doc := bson.M{
		"_id":              entry.ID,
		"message":          entry.Message,
		"intent":           entry.Intent,
		"result_count":     entry.ResultCount,
		"response_time_ms": entry.ResponseTimeMs,
		"created_at":       time.Now(),
	}
	if _, err := s.db.Collection("chat_logs").InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to log chat: %w", err)
	}
	return nil
}

func decodeProperties(ctx context.Context, cursor *mongo.Cursor, ownerView bool) ([]model.PropertyRecord, error) {
	records := []model.PropertyRecord{}
	for cursor.Next(ctx) {
		var doc propertyDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode property: %w", err)
		}
		records = append(records, doc.toRecord(ownerView))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("property cursor error: %w", err)
	}
	return records, nil
}
