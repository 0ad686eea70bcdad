package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusApproved ApplicationStatus = "APPROVED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// Decided reports whether the status is terminal.
func (s ApplicationStatus) Decided() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

// Application joins a student to a listing. At most one exists per
// (student, listing) pair; the storage layer enforces this with a unique
// constraint.
type Application struct {
	ID        int32             `json:"id"`
	StudentID int32             `json:"student_id"`
	ListingID int32             `json:"listing_id"`
	Status    ApplicationStatus `json:"status"`
	AppliedOn time.Time         `json:"applied_on"`
	Student   *User             `json:"student,omitempty"` // Populated for faculty views
	Listing   *Listing          `json:"listing,omitempty"` // Populated for student views
}
