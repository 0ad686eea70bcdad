package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"internship-board-backend/internal/domain"
	"internship-board-backend/internal/repository"

	"github.com/lib/pq"
)

type applicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (student_id, listing_id, status, applied_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	app.AppliedOn = time.Now()
	err := r.db.QueryRowContext(ctx, query, app.StudentID, app.ListingID, app.Status, app.AppliedOn).Scan(&app.ID)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		// The (student_id, listing_id) constraint fired: another request
		// already created this application. The caller re-reads the
		// existing row instead of failing.
		return domain.ErrConflict
	}
	return err
}

func (r *applicationRepository) GetByStudentAndListing(ctx context.Context, studentID, listingID int32) (*domain.Application, error) {
	app := &domain.Application{}
	query := `SELECT id, student_id, listing_id, status, applied_on
	          FROM applications WHERE student_id = $1 AND listing_id = $2`
	err := r.db.QueryRowContext(ctx, query, studentID, listingID).Scan(
		&app.ID, &app.StudentID, &app.ListingID, &app.Status, &app.AppliedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) GetByIDForFaculty(ctx context.Context, id, facultyID int32) (*domain.Application, error) {
	app := &domain.Application{}
	// Existence and ownership are resolved in one query. A faculty caller
	// gets the same ErrNotFound whether the application is absent or
	// belongs to another faculty's listing.
	query := `SELECT a.id, a.student_id, a.listing_id, a.status, a.applied_on
	          FROM applications a
	          JOIN listings l ON l.id = a.listing_id
	          WHERE a.id = $1 AND l.faculty_id = $2`
	err := r.db.QueryRowContext(ctx, query, id, facultyID).Scan(
		&app.ID, &app.StudentID, &app.ListingID, &app.Status, &app.AppliedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int32, status domain.ApplicationStatus) error {
	query := `UPDATE applications SET status = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepository) ListByStudent(ctx context.Context, studentID int32) ([]domain.Application, error) {
	query := `SELECT a.id, a.student_id, a.listing_id, a.status, a.applied_on,
	                 l.id, l.faculty_id, l.title, l.company_name, l.location, l.stipend, l.deadline, l.required_skills, l.description, l.external_apply_link, l.created_on
	          FROM applications a
	          JOIN listings l ON l.id = a.listing_id
	          WHERE a.student_id = $1
	          ORDER BY a.applied_on DESC`
	rows, err := r.db.QueryContext(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		var l domain.Listing
		if err := rows.Scan(
			&app.ID, &app.StudentID, &app.ListingID, &app.Status, &app.AppliedOn,
			&l.ID, &l.FacultyID, &l.Title, &l.CompanyName, &l.Location, &l.Stipend,
			&l.Deadline, &l.RequiredSkills, &l.Description, &l.ExternalApplyLink, &l.CreatedOn); err != nil {
			return nil, err
		}
		app.Listing = &l
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepository) ListPendingByFaculty(ctx context.Context, facultyID int32) ([]domain.Application, error) {
	query := `SELECT a.id, a.student_id, a.listing_id, a.status, a.applied_on,
	                 u.id, u.email, u.name,
	                 l.id, l.faculty_id, l.title, l.company_name, l.location, l.stipend, l.deadline, l.required_skills, l.description, l.external_apply_link, l.created_on
	          FROM applications a
	          JOIN listings l ON l.id = a.listing_id
	          JOIN users u ON u.id = a.student_id
	          WHERE l.faculty_id = $1 AND a.status = $2
	          ORDER BY a.applied_on DESC`
	rows, err := r.db.QueryContext(ctx, query, facultyID, domain.ApplicationStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		var u domain.User
		var l domain.Listing
		if err := rows.Scan(
			&app.ID, &app.StudentID, &app.ListingID, &app.Status, &app.AppliedOn,
			&u.ID, &u.Email, &u.Name,
			&l.ID, &l.FacultyID, &l.Title, &l.CompanyName, &l.Location, &l.Stipend,
			&l.Deadline, &l.RequiredSkills, &l.Description, &l.ExternalApplyLink, &l.CreatedOn); err != nil {
			return nil, err
		}
		app.Student = &u
		app.Listing = &l
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepository) ListPendingByDeadline(ctx context.Context, from, to time.Time) ([]domain.Application, error) {
	query := `SELECT a.id, a.student_id, a.listing_id, a.status, a.applied_on,
	                 u.id, u.email, u.name,
	                 l.id, l.faculty_id, l.title, l.company_name, l.location, l.stipend, l.deadline, l.required_skills, l.description, l.external_apply_link, l.created_on
	          FROM applications a
	          JOIN listings l ON l.id = a.listing_id
	          JOIN users u ON u.id = a.student_id
	          WHERE a.status = $1 AND l.deadline IS NOT NULL AND l.deadline BETWEEN $2 AND $3
	          ORDER BY l.deadline ASC`
	rows, err := r.db.QueryContext(ctx, query, domain.ApplicationStatusPending, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		var u domain.User
		var l domain.Listing
		if err := rows.Scan(
			&app.ID, &app.StudentID, &app.ListingID, &app.Status, &app.AppliedOn,
			&u.ID, &u.Email, &u.Name,
			&l.ID, &l.FacultyID, &l.Title, &l.CompanyName, &l.Location, &l.Stipend,
			&l.Deadline, &l.RequiredSkills, &l.Description, &l.ExternalApplyLink, &l.CreatedOn); err != nil {
			return nil, err
		}
		app.Student = &u
		app.Listing = &l
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepository) CountPendingByFaculty(ctx context.Context) (map[int32]int32, error) {
	query := `SELECT l.faculty_id, count(*)
	          FROM applications a
	          JOIN listings l ON l.id = a.listing_id
	          WHERE a.status = $1
	          GROUP BY l.faculty_id`
	rows, err := r.db.QueryContext(ctx, query, domain.ApplicationStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[int32]int32)
	for rows.Next() {
		var facultyID, count int32
		if err := rows.Scan(&facultyID, &count); err != nil {
			return nil, err
		}
		counts[facultyID] = count
	}
	return counts, rows.Err()
}
