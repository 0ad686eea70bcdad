package postgres

import (
	"context"
	"testing"
	"time"

	"internship-board-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestProfileRepository_GetByUserID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProfileRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"user_id", "role", "display_name", "department", "major", "graduation_year", "bio", "resume_key", "created_on", "updated_on"}).
			AddRow(10, "STUDENT", "Alice", "CS", "CS", 2027, "", "", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM profiles WHERE user_id").
			WithArgs(int32(10)).
			WillReturnRows(rows)

		profile, err := repo.GetByUserID(ctx, 10)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleStudent, profile.Role)
	})

	t.Run("MissingRowIsProfileMissing", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM profiles WHERE user_id").
			WithArgs(int32(11)).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "role", "display_name", "department", "major", "graduation_year", "bio", "resume_key", "created_on", "updated_on"}))

		_, err := repo.GetByUserID(ctx, 11)
		assert.ErrorIs(t, err, domain.ErrProfileMissing)
	})
}

func TestProfileRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewProfileRepository(db)
	ctx := context.Background()

	t.Run("SecondProfileIsConflict", func(t *testing.T) {
		p := &domain.Profile{UserID: 10, Role: domain.RoleFaculty, DisplayName: "Dr. Smith"}

		mock.ExpectExec("INSERT INTO profiles").
			WithArgs(p.UserID, p.Role, p.DisplayName, p.Department, p.Major, p.GraduationYear, p.Bio, p.ResumeKey, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, p)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}
