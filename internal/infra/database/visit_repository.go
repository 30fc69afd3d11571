package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rajudas/field-sales-api/internal/entity"
)

type VisitRepository struct {
	DB *sql.DB
}

func NewVisitRepository(db *sql.DB) *VisitRepository {
	return &VisitRepository{DB: db}
}

const visitColumns = `id, visit_date::text, visit_time::text, sr_name, username, store_name,
	visit_type, store_category, phone_number, lead_type, follow_up_date, products,
	order_details, latitude, longitude, maps_url, location_recorded_answer, image_data, created_at`

// Create persists a new record and returns its sequential id. The insert is a
// single statement, so no partial write is ever visible.
func (r *VisitRepository) Create(ctx context.Context, v *entity.VisitRecord) (int, error) {
	query := `
		INSERT INTO store_visits (
			visit_date, visit_time, sr_name, username, store_name, visit_type,
			store_category, phone_number, lead_type, follow_up_date, products,
			order_details, latitude, longitude, maps_url, location_recorded_answer, image_data
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`

	var id int
	err := r.DB.QueryRowContext(ctx, query,
		v.VisitDate,
		v.VisitTime,
		v.SRName,
		v.Username,
		v.StoreName,
		v.VisitType,
		v.StoreCategory,
		v.PhoneNumber,
		v.LeadType,
		nullString(v.FollowUpDate),
		v.Products,
		nullString(v.OrderDetails),
		v.Latitude,
		v.Longitude,
		nullString(v.MapsURL),
		v.LocationRecordedAnswer,
		v.ImageData,
	).Scan(&id)
	if err != nil {
		return 0, &entity.PersistenceError{Op: "create visit", Err: err}
	}

	v.ID = id
	return id, nil
}

// ListAll returns every record, newest visit first. An empty store yields an
// empty slice, not an error.
func (r *VisitRepository) ListAll(ctx context.Context) ([]entity.VisitRecord, error) {
	query := `SELECT ` + visitColumns + ` FROM store_visits ORDER BY visit_date DESC, visit_time DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, &entity.PersistenceError{Op: "list visits", Err: err}
	}
	defer rows.Close()

	return collectVisits(rows)
}

func (r *VisitRepository) ListByOwner(ctx context.Context, username string) ([]entity.VisitRecord, error) {
	query := `SELECT ` + visitColumns + ` FROM store_visits WHERE username = $1 ORDER BY visit_date DESC, visit_time DESC`

	rows, err := r.DB.QueryContext(ctx, query, username)
	if err != nil {
		return nil, &entity.PersistenceError{Op: "list visits by owner", Err: err}
	}
	defer rows.Close()

	return collectVisits(rows)
}

// MostRecentByStore returns the latest record for the exact store name, or
// nil when the store has no history.
func (r *VisitRepository) MostRecentByStore(ctx context.Context, storeName string) (*entity.VisitRecord, error) {
	query := `SELECT ` + visitColumns + ` FROM store_visits
		WHERE store_name = $1
		ORDER BY visit_date DESC, visit_time DESC
		LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, storeName)
	visit, err := scanVisit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, &entity.PersistenceError{Op: "most recent by store", Err: err}
	}
	return visit, nil
}

// UpdateLeadStatus overwrites the one mutable field. A single UPDATE keeps it
// atomic; concurrent readers never see a partial record.
func (r *VisitRepository) UpdateLeadStatus(ctx context.Context, id int, status string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE store_visits SET lead_type = $1 WHERE id = $2`, status, id)
	if err != nil {
		return &entity.PersistenceError{Op: "update lead status", Err: err}
	}

	n, err := res.RowsAffected()
	if err != nil {
		return &entity.PersistenceError{Op: "update lead status", Err: err}
	}
	if n == 0 {
		return entity.ErrVisitNotFound
	}
	return nil
}

// StoreNames returns the distinct store names for the search dropdown.
func (r *VisitRepository) StoreNames(ctx context.Context) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT DISTINCT store_name FROM store_visits ORDER BY store_name`)
	if err != nil {
		return nil, &entity.PersistenceError{Op: "store names", Err: err}
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &entity.PersistenceError{Op: "store names", Err: err}
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &entity.PersistenceError{Op: "store names", Err: err}
	}
	return names, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVisit(row rowScanner) (*entity.VisitRecord, error) {
	var v entity.VisitRecord
	var followUp, orderDetails, mapsURL sql.NullString
	var lat, lon sql.NullFloat64

	err := row.Scan(
		&v.ID,
		&v.VisitDate,
		&v.VisitTime,
		&v.SRName,
		&v.Username,
		&v.StoreName,
		&v.VisitType,
		&v.StoreCategory,
		&v.PhoneNumber,
		&v.LeadType,
		&followUp,
		&v.Products,
		&orderDetails,
		&lat,
		&lon,
		&mapsURL,
		&v.LocationRecordedAnswer,
		&v.ImageData,
		&v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.FollowUpDate = followUp.String
	v.OrderDetails = orderDetails.String
	v.MapsURL = mapsURL.String
	if lat.Valid {
		v.Latitude = &lat.Float64
	}
	if lon.Valid {
		v.Longitude = &lon.Float64
	}
	return &v, nil
}

func collectVisits(rows *sql.Rows) ([]entity.VisitRecord, error) {
	visits := []entity.VisitRecord{}
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, &entity.PersistenceError{Op: "scan visit", Err: err}
		}
		visits = append(visits, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, &entity.PersistenceError{Op: "scan visit", Err: err}
	}
	return visits, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
