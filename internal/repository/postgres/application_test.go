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

func TestApplicationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		app := &domain.Application{StudentID: 10, ListingID: 5, Status: domain.ApplicationStatusPending}

		mock.ExpectQuery("INSERT INTO applications").
			WithArgs(app.StudentID, app.ListingID, app.Status, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

		err := repo.Create(ctx, app)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), app.ID)
	})

	t.Run("DuplicatePairIsConflict", func(t *testing.T) {
		app := &domain.Application{StudentID: 10, ListingID: 5, Status: domain.ApplicationStatusPending}

		mock.ExpectQuery("INSERT INTO applications").
			WithArgs(app.StudentID, app.ListingID, app.Status, sqlmock.AnyArg()).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, app)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}

func TestApplicationRepository_GetByIDForFaculty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("OwnedByCaller", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "student_id", "listing_id", "status", "applied_on"}).
			AddRow(7, 10, 5, "PENDING", time.Now())

		mock.ExpectQuery("SELECT a.id, a.student_id, a.listing_id, a.status, a.applied_on").
			WithArgs(int32(7), int32(20)).
			WillReturnRows(rows)

		app, err := repo.GetByIDForFaculty(ctx, 7, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), app.ID)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	})

	t.Run("OtherFacultyLooksLikeMissing", func(t *testing.T) {
		mock.ExpectQuery("SELECT a.id, a.student_id, a.listing_id, a.status, a.applied_on").
			WithArgs(int32(7), int32(21)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "listing_id", "status", "applied_on"}))

		_, err := repo.GetByIDForFaculty(ctx, 7, 21)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE applications SET status").
			WithArgs(domain.ApplicationStatusApproved, int32(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, 7, domain.ApplicationStatusApproved)
		assert.NoError(t, err)
	})

	t.Run("NoSuchRow", func(t *testing.T) {
		mock.ExpectExec("UPDATE applications SET status").
			WithArgs(domain.ApplicationStatusApproved, int32(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, 404, domain.ApplicationStatusApproved)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestApplicationRepository_CountPendingByFaculty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewApplicationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"faculty_id", "count"}).
			AddRow(20, 3).
			AddRow(21, 1)

		mock.ExpectQuery("SELECT l.faculty_id, count").
			WithArgs(domain.ApplicationStatusPending).
			WillReturnRows(rows)

		counts, err := repo.CountPendingByFaculty(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), counts[20])
		assert.Equal(t, int32(1), counts[21])
	})
}
