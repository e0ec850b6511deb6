package model

// ApplicationStatus is the organizer-owned review state of an application.
type ApplicationStatus string

// Application review states.
const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application is a talent's request to participate in an event. The status
// and organizer comment are mutated only by the organizer owning the event.
type Application struct {
	ID               int               `json:"id"`
	Event            Event             `json:"event"`
	User             User              `json:"user"`
	TalentProfile    *TalentProfile    `json:"talent_profile,omitempty"`
	Message          string            `json:"message"`
	OrganizerComment string            `json:"organizer_comment,omitempty"`
	Status           ApplicationStatus `json:"status"`
	CreatedAt        string            `json:"created_at"`
	UpdatedAt        string            `json:"updated_at,omitempty"`
}

// Reviewed reports whether the organizer has decided on the application.
func (a Application) Reviewed() bool {
	return a.Status != ApplicationPending && a.Status != ""
}

// FacultyStats is the aggregate view of a talent's faculty. Faculty is nil
// when the profile has none; Message then explains what to do.
type FacultyStats struct {
	Faculty *Faculty        `json:"faculty"`
	Message string          `json:"message,omitempty"`
	Stats   FacultyActivity `json:"stats"`
}

// FacultyActivity are the per-faculty counters nested under "stats".
type FacultyActivity struct {
	TotalUsers        int `json:"total_users"`
	TotalApplications int `json:"total_applications"`
}

// ActivityStats are the current user's activity counters. SkillStats maps a
// skill name to the number of events applied to with it.
type ActivityStats struct {
	TotalApplications    int            `json:"total_applications"`
	ApprovedApplications int            `json:"approved_applications"`
	SkillStats           map[string]int `json:"skill_stats,omitempty"`
}
