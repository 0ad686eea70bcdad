package domain

import "time"

type Listing struct {
	ID                int32      `json:"id"`
	FacultyID         int32      `json:"faculty_id"`
	Faculty           *User      `json:"faculty,omitempty"` // Populated when fetching listing details
	Title             string     `json:"title"`
	CompanyName       string     `json:"company_name"`
	Location          string     `json:"location"`
	Stipend           string     `json:"stipend"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	RequiredSkills    string     `json:"required_skills"`
	Description       string     `json:"description"`
	ExternalApplyLink string     `json:"external_apply_link,omitempty"`
	CreatedOn         time.Time  `json:"created_on"`
}

// DaysRemaining returns the number of whole days between now and the
// deadline, clamped to zero. The boolean is false when no deadline is set.
// An expired deadline and a deadline later today both report zero.
func (l *Listing) DaysRemaining(now time.Time) (int32, bool) {
	if l.Deadline == nil {
		return 0, false
	}
	days := int32(l.Deadline.Sub(now).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days, true
}

// ListingFilter narrows ListListings results. An empty query matches
// everything.
type ListingFilter struct {
	Query string
}
