package postgres

import (
	"context"
	"testing"
	"time"

	"internship-board-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func listingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "faculty_id", "title", "company_name", "location", "stipend",
		"deadline", "required_skills", "description", "external_apply_link", "created_on",
	})
}

func TestListingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewListingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		l := &domain.Listing{
			FacultyID:      20,
			Title:          "Summer Internship",
			CompanyName:    "Robotics Lab",
			Location:       "Building 7",
			RequiredSkills: "Go",
			Description:    "Pipeline work",
		}

		mock.ExpectQuery("INSERT INTO listings").
			WithArgs(l.FacultyID, l.Title, l.CompanyName, l.Location, l.Stipend, l.Deadline,
				l.RequiredSkills, l.Description, l.ExternalApplyLink, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

		err := repo.Create(ctx, l)
		assert.NoError(t, err)
		assert.Equal(t, int32(5), l.ID)
	})
}

func TestListingRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewListingRepository(db)
	ctx := context.Background()

	t.Run("Unfiltered", func(t *testing.T) {
		rows := listingRows().
			AddRow(2, 20, "Newer", "Lab", "Campus", "", nil, "Go", "desc", "", time.Now()).
			AddRow(1, 20, "Older", "Lab", "Campus", "", nil, "SQL", "desc", "", time.Now().Add(-time.Hour))

		mock.ExpectQuery("SELECT (.+) FROM listings ORDER BY created_on DESC").
			WillReturnRows(rows)

		listings, err := repo.List(ctx, domain.ListingFilter{})
		assert.NoError(t, err)
		assert.Len(t, listings, 2)
		assert.Equal(t, "Newer", listings[0].Title)
	})

	t.Run("SubstringFilter", func(t *testing.T) {
		rows := listingRows().
			AddRow(1, 20, "Go Internship", "Lab", "Campus", "", nil, "Go, SQL", "desc", "", time.Now())

		mock.ExpectQuery("SELECT (.+) FROM listings WHERE title ILIKE").
			WithArgs("%go%").
			WillReturnRows(rows)

		listings, err := repo.List(ctx, domain.ListingFilter{Query: "go"})
		assert.NoError(t, err)
		assert.Len(t, listings, 1)
	})
}

func TestListingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewListingRepository(db)
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM listings WHERE id").
			WithArgs(int32(404)).
			WillReturnRows(listingRows())

		_, err := repo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
