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

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, p *domain.Profile) error {
	query := `INSERT INTO profiles (user_id, role, display_name, department, major, graduation_year, bio, resume_key, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	now := time.Now()
	p.CreatedOn = now
	p.UpdatedOn = now
	_, err := r.db.ExecContext(ctx, query, p.UserID, p.Role, p.DisplayName, p.Department, p.Major, p.GraduationYear, p.Bio, p.ResumeKey, now, now)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		// One profile per user; a second insert means the role is already assigned.
		return domain.ErrConflict
	}
	return err
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int32) (*domain.Profile, error) {
	p := &domain.Profile{}
	query := `SELECT user_id, role, display_name, department, major, graduation_year, bio, resume_key, created_on, updated_on
	          FROM profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.Role, &p.DisplayName, &p.Department, &p.Major, &p.GraduationYear, &p.Bio, &p.ResumeKey, &p.CreatedOn, &p.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrProfileMissing
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *profileRepository) Update(ctx context.Context, p *domain.Profile) error {
	// Role is intentionally absent from the SET list: it is immutable
	// through the public path.
	query := `UPDATE profiles SET display_name = $1, department = $2, major = $3, graduation_year = $4, bio = $5, resume_key = $6, updated_on = $7
	          WHERE user_id = $8`
	p.UpdatedOn = time.Now()
	_, err := r.db.ExecContext(ctx, query, p.DisplayName, p.Department, p.Major, p.GraduationYear, p.Bio, p.ResumeKey, p.UpdatedOn, p.UserID)
	return err
}
