package model

// EventStatus is the lifecycle state of an event, owned by the backend.
type EventStatus string

// Event lifecycle states.
const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusClosed    EventStatus = "closed"
	StatusCancelled EventStatus = "cancelled"
)

// Faculty is a reference-list entry used by selectors and filters.
type Faculty struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ShortName   string `json:"short_name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Skill is a reference-list entry for event requirements and talent profiles.
type Skill struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Event is a postable opportunity published by an organizer.
// RequiredSkills is canonically an object array; the comma-joined string some
// legacy views carried survives only as form input and is split before submit.
type Event struct {
	ID                 int         `json:"id"`
	Title              string      `json:"title"`
	Description        string      `json:"description"`
	ShortDescription   string      `json:"short_description,omitempty"`
	Date               string      `json:"date"`
	Location           string      `json:"location"`
	Status             EventStatus `json:"status"`
	Organizer          *Organizer  `json:"organizer,omitempty"`
	OrganizationName   string      `json:"organization_name,omitempty"`
	RequiredSkills     []Skill     `json:"required_skills"`
	FacultyRestriction bool        `json:"faculty_restriction"`
	Faculties          []Faculty   `json:"faculties"`
	Image              string      `json:"image,omitempty"`
	ApplicationsCount  int         `json:"applications_count,omitempty"`
	CreatedAt          string      `json:"created_at,omitempty"`
	UpdatedAt          string      `json:"updated_at,omitempty"`
}

// AcceptsApplications reports whether a talent may still apply.
func (e Event) AcceptsApplications() bool {
	return e.Status == StatusPublished
}

// SkillIDs returns the ids of the event's required skills.
func (e Event) SkillIDs() []int {
	ids := make([]int, 0, len(e.RequiredSkills))
	for _, s := range e.RequiredSkills {
		ids = append(ids, s.ID)
	}
	return ids
}

// Recommendation is a server-ranked event suggested to a specific talent.
type Recommendation struct {
	ID     int     `json:"id"`
	Event  Event   `json:"event"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason"`
}
