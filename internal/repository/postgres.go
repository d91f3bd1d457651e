package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// PostgresStore implements PropertyStore on top of the relational schema
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a new PostgreSQL-backed property store
func NewPostgresStore(dsn string, maxConn, maxIdleConn int) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Close closes the database connection
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// Ping checks database connectivity
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// propertyRow is the relational shape of a property result. Surrogate
// integer keys stay internal; they are rendered to strings before leaving
// the adapter.
type propertyRow struct {
	PropertyID    int64          `db:"property_id"`
	PropertyName  string         `db:"property_name"`
	City          string         `db:"city"`
	Country       string         `db:"country"`
	PricePerNight float64        `db:"price_per_night"`
	Bedrooms      int            `db:"bedrooms"`
	Bathrooms     int            `db:"bathrooms"`
	PropertyType  string         `db:"property_type"`
	IsAvailable   sql.NullBool   `db:"is_available"`
	Amenities     sql.NullString `db:"amenities"`
}

func (r *propertyRow) toRecord() model.PropertyRecord {
	rec := model.PropertyRecord{
		PropertyID:    strconv.FormatInt(r.PropertyID, 10),
		PropertyName:  r.PropertyName,
		City:          r.City,
		Country:       r.Country,
		PricePerNight: r.PricePerNight,
		Bedrooms:      r.Bedrooms,
		Bathrooms:     r.Bathrooms,
		PropertyType:  r.PropertyType,
	}
	if r.IsAvailable.Valid {
		avail := r.IsAvailable.Bool
		rec.IsAvailable = &avail
	}
	if r.Amenities.Valid {
		amenities := r.Amenities.String
		rec.Amenities = &amenities
	}
	return rec
}

type bookingRow struct {
	BookingID    int64     `db:"booking_id"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	NumGuests    int       `db:"num_guests"`
	TotalPrice   float64   `db:"total_price"`
	Status       string    `db:"status"`
	PropertyName string    `db:"property_name"`
	City         string    `db:"city"`
	Country      string    `db:"country"`
}

func (r *bookingRow) toRecord() model.BookingRecord {
	return model.BookingRecord{
		BookingID:    strconv.FormatInt(r.BookingID, 10),
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		NumGuests:    r.NumGuests,
		TotalPrice:   r.TotalPrice,
		Status:       r.Status,
		PropertyName: r.PropertyName,
		City:         r.City,
		Country:      r.Country,
	}
}

// ListOwnerOrPublicProperties returns the owner's listings or the public
// available ones, newest first, capped at 10
func (s *PostgresStore) ListOwnerOrPublicProperties(ctx context.Context, email, userType string) []model.PropertyRecord {
	records, err := s.listOwnerOrPublicProperties(ctx, email, userType)
	if err != nil {
		log.Printf("property store: list properties failed: %v", err)
		return []model.PropertyRecord{}
	}
	return records
}

func (s *PostgresStore) listOwnerOrPublicProperties(ctx context.Context, email, userType string) ([]model.PropertyRecord, error) {
	var rows []propertyRow
	var err error

	if userType == "owner" && email != "" {
		query := `
			SELECT p.property_id, p.property_name, p.city, p.country,
			       p.price_per_night, p.bedrooms, p.bathrooms, p.property_type,
			       p.is_available
			FROM properties p
			JOIN users u ON p.owner_id = u.user_id
			WHERE u.email = $1
			ORDER BY p.created_at DESC
			LIMIT $2
		`
		err = s.db.SelectContext(ctx, &rows, query, email, propertyLimit)
	} else {
		query := `
			SELECT property_id, property_name, city, country,
			       price_per_night, bedrooms, bathrooms, property_type
			FROM properties
			WHERE is_available = TRUE
			ORDER BY created_at DESC
			LIMIT $1
		`
		err = s.db.SelectContext(ctx, &rows, query, propertyLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}

	return rowsToRecords(rows), nil
}

// ListFavorites returns the user's favorite properties, newest favorite
// first, capped at 10
func (s *PostgresStore) ListFavorites(ctx context.Context, email string) []model.PropertyRecord {
	records, err := s.listFavorites(ctx, email)
	if err != nil {
		log.Printf("property store: list favorites failed: %v", err)
		return []model.PropertyRecord{}
	}
	return records
}

func (s *PostgresStore) listFavorites(ctx context.Context, email string) ([]model.PropertyRecord, error) {
	query := `
		SELECT p.property_id, p.property_name, p.city, p.country,
		       p.price_per_night, p.bedrooms, p.bathrooms, p.property_type
		FROM favorites f
		JOIN properties p ON f.property_id = p.property_id
		JOIN users u ON f.user_id = u.user_id
		WHERE u.email = $1
		ORDER BY f.created_at DESC
		LIMIT $2
	`

	var rows []propertyRow
	if err := s.db.SelectContext(ctx, &rows, query, email, propertyLimit); err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
	}

	return rowsToRecords(rows), nil
}

// ListBookings returns the user's bookings joined with property details,
// newest booking first, capped at 5
func (s *PostgresStore) ListBookings(ctx context.Context, email string) []model.BookingRecord {
	records, err := s.listBookings(ctx, email)
	if err != nil {
		log.Printf("property store: list bookings failed: %v", err)
		return []model.BookingRecord{}
	}
	return records
}

func (s *PostgresStore) listBookings(ctx context.Context, email string) ([]model.BookingRecord, error) {
	query := `
		SELECT b.booking_id, b.check_in_date, b.check_out_date,
		       b.num_guests, b.total_price, b.status,
		       p.property_name, p.city, p.country
		FROM bookings b
		JOIN properties p ON b.property_id = p.property_id
		JOIN users u ON b.traveler_id = u.user_id
		WHERE u.email = $1
		ORDER BY b.booking_date DESC
		LIMIT $2
	`

	var rows []bookingRow
	if err := s.db.SelectContext(ctx, &rows, query, email, bookingLimit); err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	records := make([]model.BookingRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].toRecord())
	}
	return records, nil
}

// Search returns available properties matching every set filter field,
// newest first, capped at 10
func (s *PostgresStore) Search(ctx context.Context, filter *model.PropertyFilter) []model.PropertyRecord {
	records, err := s.search(ctx, filter)
	if err != nil {
		log.Printf("property store: search failed: %v", err)
		return []model.PropertyRecord{}
	}
	return records
}

func (s *PostgresStore) search(ctx context.Context, filter *model.PropertyFilter) ([]model.PropertyRecord, error) {
	whereClauses, args := buildSearchConditions(filter)
	argIndex := len(args) + 1

	query := fmt.Sprintf(`
		SELECT property_id, property_name, city, country,
		       price_per_night, bedrooms, bathrooms, property_type, amenities
		FROM properties
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d
	`, strings.Join(whereClauses, " AND "), argIndex)
	args = append(args, propertyLimit)

	var rows []propertyRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}

	return rowsToRecords(rows), nil
}

// buildSearchConditions builds the WHERE clauses and numbered args for a
// property search. Search is always constrained to available properties;
// each set filter field narrows the result with an additional AND.
func buildSearchConditions(filter *model.PropertyFilter) ([]string, []interface{}) {
	whereClauses := []string{"is_available = TRUE"}
	args := []interface{}{}
	argIndex := 1

	if filter == nil {
		return whereClauses, args
	}

	if filter.City != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("(city ILIKE $%d OR country ILIKE $%d)", argIndex, argIndex+1))
		pattern := "%" + *filter.City + "%"
		args = append(args, pattern, pattern)
		argIndex += 2
	}
	if filter.MaxPrice != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("price_per_night <= $%d", argIndex))
		args = append(args, *filter.MaxPrice)
		argIndex++
	}
	if filter.Amenity != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("amenities ILIKE $%d", argIndex))
		args = append(args, "%"+*filter.Amenity+"%")
		argIndex++
	}
	if filter.Bedrooms != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("bedrooms = $%d", argIndex))
		args = append(args, *filter.Bedrooms)
		argIndex++
	}
	if filter.Bathrooms != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("bathrooms = $%d", argIndex))
		args = append(args, *filter.Bathrooms)
		argIndex++
	}

	return whereClauses, args
}

// LogChat records a handled chat turn
func (s *PostgresStore) LogChat(ctx context.Context, entry *model.ChatLog) error {
	query := `
		INSERT INTO chat_logs (id, message, intent, result_count, response_time_ms)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query, entry.ID, entry.Message, entry.Intent, entry.ResultCount, entry.ResponseTimeMs)
	if err != nil {
		return fmt.Errorf("failed to log chat: %w", err)
	}
	return nil
}

func rowsToRecords(rows []propertyRow) []model.PropertyRecord {
	records := make([]model.PropertyRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].toRecord())
	}
	return records
}
