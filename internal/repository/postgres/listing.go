package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"internship-board-backend/internal/domain"
	"internship-board-backend/internal/repository"
)

type listingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

const listingColumns = `id, faculty_id, title, company_name, location, stipend, deadline, required_skills, description, external_apply_link, created_on`

func (r *listingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (faculty_id, title, company_name, location, stipend, deadline, required_skills, description, external_apply_link, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	l.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query,
		l.FacultyID, l.Title, l.CompanyName, l.Location, l.Stipend, l.Deadline,
		l.RequiredSkills, l.Description, l.ExternalApplyLink, l.CreatedOn).Scan(&l.ID)
}

func (r *listingRepository) GetByID(ctx context.Context, id int32) (*domain.Listing, error) {
	l := &domain.Listing{}
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.FacultyID, &l.Title, &l.CompanyName, &l.Location, &l.Stipend,
		&l.Deadline, &l.RequiredSkills, &l.Description, &l.ExternalApplyLink, &l.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *listingRepository) List(ctx context.Context, filter domain.ListingFilter) ([]domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings`
	args := []interface{}{}
	if filter.Query != "" {
		query += ` WHERE title ILIKE $1 OR required_skills ILIKE $1 OR company_name ILIKE $1`
		args = append(args, "%"+filter.Query+"%")
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

func (r *listingRepository) ListByFaculty(ctx context.Context, facultyID int32) ([]domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE faculty_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, facultyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanListings(rows)
}

func scanListings(rows *sql.Rows) ([]domain.Listing, error) {
	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(
			&l.ID, &l.FacultyID, &l.Title, &l.CompanyName, &l.Location, &l.Stipend,
			&l.Deadline, &l.RequiredSkills, &l.Description, &l.ExternalApplyLink, &l.CreatedOn); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
