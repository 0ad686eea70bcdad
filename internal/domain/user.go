package domain

import "time"

type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleFaculty Role = "FACULTY"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleFaculty
}

// Profile carries the role and the optional academic/professional
// attributes attached 1:1 to a user account. The role is set at
// registration and is immutable through the public path.
type Profile struct {
	UserID         int32     `json:"user_id"`
	Role           Role      `json:"role"`
	DisplayName    string    `json:"display_name"`
	Department     string    `json:"department,omitempty"`
	Major          string    `json:"major,omitempty"`
	GraduationYear int32     `json:"graduation_year,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	ResumeKey      string    `json:"-"`
	CreatedOn      time.Time `json:"created_on"`
	UpdatedOn      time.Time `json:"updated_on"`
}
