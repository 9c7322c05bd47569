package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"medtour/internal/model"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

func init() {
	// sqlx has no default bind type for the modernc driver name
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

const (
	providerColumns    = "id, name, kind, location, country, hospital_slug, rating, review_count, price_from, price_to, currency, service_tags, is_featured, description"
	hospitalColumns    = "slug, name, city, country, description, accreditations"
	specialtyColumns   = "slug, name, description"
	doctorColumns      = "id, name, title, hospital_slug, specialty_slug, experience_years, languages"
	treatmentColumns   = "id, hospital_slug, specialty_slug, name, price_from, price_to, currency, stay_days"
	testimonialColumns = "id, hospital_slug, specialty_slug, patient_name, country, treatment, quote, rating"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS providers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		kind TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		hospital_slug TEXT NOT NULL DEFAULT '',
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		review_count INTEGER NOT NULL DEFAULT 0,
		price_from DOUBLE PRECISION NOT NULL DEFAULT 0,
		price_to DOUBLE PRECISION NOT NULL DEFAULT 0,
		currency TEXT NOT NULL DEFAULT 'USD',
		service_tags TEXT NOT NULL DEFAULT '[]',
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		description TEXT NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS hospitals (
		slug TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		city TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		accreditations TEXT NOT NULL DEFAULT '[]',
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS specialties (
		slug TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS doctors (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		hospital_slug TEXT NOT NULL,
		specialty_slug TEXT NOT NULL,
		experience_years INTEGER NOT NULL DEFAULT 0,
		languages TEXT NOT NULL DEFAULT '[]',
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS treatments (
		id TEXT PRIMARY KEY,
		hospital_slug TEXT NOT NULL,
		specialty_slug TEXT NOT NULL,
		name TEXT NOT NULL,
		price_from DOUBLE PRECISION NOT NULL DEFAULT 0,
		price_to DOUBLE PRECISION NOT NULL DEFAULT 0,
		currency TEXT NOT NULL DEFAULT 'USD',
		stay_days INTEGER NOT NULL DEFAULT 0,
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS testimonials (
		id TEXT PRIMARY KEY,
		hospital_slug TEXT NOT NULL,
		specialty_slug TEXT NOT NULL,
		patient_name TEXT NOT NULL,
		country TEXT NOT NULL DEFAULT '',
		treatment TEXT NOT NULL DEFAULT '',
		quote TEXT NOT NULL DEFAULT '',
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		sort_order INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS quote_requests (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		country TEXT NOT NULL,
		phone TEXT NOT NULL,
		hospital_slug TEXT NOT NULL DEFAULT '',
		specialty_slug TEXT NOT NULL DEFAULT '',
		service TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS contact_events (
		id TEXT PRIMARY KEY,
		provider_id TEXT NOT NULL DEFAULT '',
		hospital_slug TEXT NOT NULL DEFAULT '',
		specialty_slug TEXT NOT NULL DEFAULT '',
		service TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
}

// SQLRepository handles catalog storage in PostgreSQL or SQLite
type SQLRepository struct {
	db *sqlx.DB
}

// NewSQLRepository connects to driver ("postgres" or "sqlite") at dsn
func NewSQLRepository(driver, dsn string, maxConn, maxIdleConn int) (*SQLRepository, error) {
	db, err := sqlx.Connect(driver, dsn)
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

	return &SQLRepository{db: db}, nil
}

// NewSQLRepositoryFromDB wraps an existing connection
func NewSQLRepositoryFromDB(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

// Close closes the database connection
func (r *SQLRepository) Close() error {
	return r.db.Close()
}

// Migrate creates missing tables
func (r *SQLRepository) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}
	return nil
}

// upsertQuery builds an INSERT ... ON CONFLICT DO UPDATE statement accepted by
// both PostgreSQL and SQLite.
func (r *SQLRepository) upsertQuery(table, key string, columns []string) string {
	placeholders := make([]string, len(columns))
	updates := make([]string, 0, len(columns)-1)
	for i, c := range columns {
		placeholders[i] = "?"
		if c != key {
			updates = append(updates, fmt.Sprintf("%s = excluded.%s", c, c))
		}
	}
	return r.db.Rebind(fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
		key,
		strings.Join(updates, ", "),
	))
}

func columnList(cols string) []string {
	parts := strings.Split(cols, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Seed upserts every catalog record in one transaction. Catalog order is kept
// in sort_order so listings stay stable across stores.
func (r *SQLRepository) Seed(ctx context.Context, catalog *model.Catalog) error {
	if err := ValidateCatalog(catalog); err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	exec := func(query string, args ...interface{}) error {
		_, err := tx.ExecContext(ctx, query, args...)
		return err
	}

	q := r.upsertQuery("providers", "id", append(columnList(providerColumns), "sort_order"))
	for i, p := range catalog.Providers {
		if err := exec(q, p.ID, p.Name, p.Kind, p.Location, p.Country, p.HospitalSlug, p.Rating, p.ReviewCount,
			p.PriceFrom, p.PriceTo, p.Currency, p.ServiceTags, p.IsFeatured, p.Description, i); err != nil {
			return fmt.Errorf("provider %s: %w", p.ID, err)
		}
	}
	q = r.upsertQuery("hospitals", "slug", append(columnList(hospitalColumns), "sort_order"))
	for i, h := range catalog.Hospitals {
		if err := exec(q, h.Slug, h.Name, h.City, h.Country, h.Description, h.Accreditations, i); err != nil {
			return fmt.Errorf("hospital %s: %w", h.Slug, err)
		}
	}
	q = r.upsertQuery("specialties", "slug", append(columnList(specialtyColumns), "sort_order"))
	for i, s := range catalog.Specialties {
		if err := exec(q, s.Slug, s.Name, s.Description, i); err != nil {
			return fmt.Errorf("specialty %s: %w", s.Slug, err)
		}
	}
	q = r.upsertQuery("doctors", "id", append(columnList(doctorColumns), "sort_order"))
	for i, d := range catalog.Doctors {
		if err := exec(q, d.ID, d.Name, d.Title, d.HospitalSlug, d.SpecialtySlug, d.Experience, d.Languages, i); err != nil {
			return fmt.Errorf("doctor %s: %w", d.ID, err)
		}
	}
	q = r.upsertQuery("treatments", "id", append(columnList(treatmentColumns), "sort_order"))
	for i, t := range catalog.Treatments {
		if err := exec(q, t.ID, t.HospitalSlug, t.SpecialtySlug, t.Name, t.PriceFrom, t.PriceTo, t.Currency, t.StayDays, i); err != nil {
			return fmt.Errorf("treatment %s: %w", t.ID, err)
		}
	}
	q = r.upsertQuery("testimonials", "id", append(columnList(testimonialColumns), "sort_order"))
	for i, t := range catalog.Testimonials {
		if err := exec(q, t.ID, t.HospitalSlug, t.SpecialtySlug, t.PatientName, t.Country, t.Treatment, t.Quote, t.Rating, i); err != nil {
			return fmt.Errorf("testimonial %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog: %w", err)
	}
	return nil
}

// ListProviders returns providers in catalog order
func (r *SQLRepository) ListProviders(ctx context.Context) ([]model.Provider, error) {
	providers := []model.Provider{}
	query := "SELECT " + providerColumns + " FROM providers ORDER BY sort_order, id"
	if err := r.db.SelectContext(ctx, &providers, query); err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return providers, nil
}

// GetProvider returns nil when id is unknown
func (r *SQLRepository) GetProvider(ctx context.Context, id string) (*model.Provider, error) {
	var p model.Provider
	query := r.db.Rebind("SELECT " + providerColumns + " FROM providers WHERE id = ?")
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get provider: %w", err)
	}
	return &p, nil
}

// ListHospitals returns hospitals in catalog order
func (r *SQLRepository) ListHospitals(ctx context.Context) ([]model.Hospital, error) {
	hospitals := []model.Hospital{}
	query := "SELECT " + hospitalColumns + " FROM hospitals ORDER BY sort_order, slug"
	if err := r.db.SelectContext(ctx, &hospitals, query); err != nil {
		return nil, fmt.Errorf("failed to list hospitals: %w", err)
	}
	return hospitals, nil
}

// GetHospital returns nil when slug is unknown
func (r *SQLRepository) GetHospital(ctx context.Context, slug string) (*model.Hospital, error) {
	var h model.Hospital
	query := r.db.Rebind("SELECT " + hospitalColumns + " FROM hospitals WHERE slug = ?")
	if err := r.db.GetContext(ctx, &h, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hospital: %w", err)
	}
	return &h, nil
}

// ListSpecialties returns specialties in catalog order
func (r *SQLRepository) ListSpecialties(ctx context.Context) ([]model.Specialty, error) {
	specialties := []model.Specialty{}
	query := "SELECT " + specialtyColumns + " FROM specialties ORDER BY sort_order, slug"
	if err := r.db.SelectContext(ctx, &specialties, query); err != nil {
		return nil, fmt.Errorf("failed to list specialties: %w", err)
	}
	return specialties, nil
}

// GetSpecialty returns nil when slug is unknown
func (r *SQLRepository) GetSpecialty(ctx context.Context, slug string) (*model.Specialty, error) {
	var s model.Specialty
	query := r.db.Rebind("SELECT " + specialtyColumns + " FROM specialties WHERE slug = ?")
	if err := r.db.GetContext(ctx, &s, query, slug); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get specialty: %w", err)
	}
	return &s, nil
}

// scopedQuery builds a SELECT narrowed by the non-empty slugs
func (r *SQLRepository) scopedQuery(columns, table, hospital, specialty string) (string, []interface{}) {
	whereClauses := []string{"1=1"}
	args := []interface{}{}
	if hospital != "" {
		whereClauses = append(whereClauses, "hospital_slug = ?")
		args = append(args, hospital)
	}
	if specialty != "" {
		whereClauses = append(whereClauses, "specialty_slug = ?")
		args = append(args, specialty)
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY sort_order, id",
		columns, table, strings.Join(whereClauses, " AND "))
	return r.db.Rebind(query), args
}

// ListDoctors returns doctors, optionally narrowed by hospital and specialty
func (r *SQLRepository) ListDoctors(ctx context.Context, hospital, specialty string) ([]model.Doctor, error) {
	doctors := []model.Doctor{}
	query, args := r.scopedQuery(doctorColumns, "doctors", hospital, specialty)
	if err := r.db.SelectContext(ctx, &doctors, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

// ListTreatments returns treatments, optionally narrowed by hospital and specialty
func (r *SQLRepository) ListTreatments(ctx context.Context, hospital, specialty string) ([]model.Treatment, error) {
	treatments := []model.Treatment{}
	query, args := r.scopedQuery(treatmentColumns, "treatments", hospital, specialty)
	if err := r.db.SelectContext(ctx, &treatments, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list treatments: %w", err)
	}
	return treatments, nil
}

// ListTestimonials returns testimonials, optionally narrowed by hospital and specialty
func (r *SQLRepository) ListTestimonials(ctx context.Context, hospital, specialty string) ([]model.Testimonial, error) {
	testimonials := []model.Testimonial{}
	query, args := r.scopedQuery(testimonialColumns, "testimonials", hospital, specialty)
	if err := r.db.SelectContext(ctx, &testimonials, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return testimonials, nil
}

// SaveQuote stores a quote request
func (r *SQLRepository) SaveQuote(ctx context.Context, q *model.Quote) error {
	query := r.db.Rebind(`
		INSERT INTO quote_requests (id, name, country, phone, hospital_slug, specialty_slug, service, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.ExecContext(ctx, query, q.ID, q.Name, q.Country, q.Phone, q.HospitalSlug, q.SpecialtySlug, q.Service, q.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save quote: %w", err)
	}
	return nil
}

// CountQuotes returns the number of stored quotes
func (r *SQLRepository) CountQuotes(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM quote_requests"); err != nil {
		return 0, fmt.Errorf("failed to count quotes: %w", err)
	}
	return total, nil
}

// LogContact records a dispatched contact link
func (r *SQLRepository) LogContact(ctx context.Context, e *model.ContactEvent) error {
	query := r.db.Rebind(`
		INSERT INTO contact_events (id, provider_id, hospital_slug, specialty_slug, service, url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := r.db.ExecContext(ctx, query, e.ID, e.ProviderID, e.HospitalSlug, e.SpecialtySlug, e.Service, e.URL, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to log contact: %w", err)
	}
	return nil
}
