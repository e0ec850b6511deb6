package model

// User is the account shared by both profile kinds.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	UserType  Role   `json:"user_type,omitempty"`
}

// TalentProfile is a talent's attribute bag, editable by its owner only.
type TalentProfile struct {
	ID             int      `json:"id"`
	User           User     `json:"user"`
	Skills         []Skill  `json:"skills"`
	Preferences    string   `json:"preferences"`
	Bio            string   `json:"bio"`
	Avatar         string   `json:"avatar,omitempty"`
	Faculty        *Faculty `json:"faculty,omitempty"`
	EducationLevel string   `json:"education_level,omitempty"`
	Course         int      `json:"course,omitempty"`
}

// Organizer is the public face of an organizer account, embedded in events.
type Organizer struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CompanyName string `json:"company_name,omitempty"`
	Position    string `json:"position,omitempty"`
	Bio         string `json:"bio,omitempty"`
}

// OrganizerProfile is an organizer's attribute bag, editable by its owner only.
type OrganizerProfile struct {
	ID               int    `json:"id"`
	User             User   `json:"user"`
	OrganizationName string `json:"organization_name"`
	Description      string `json:"description,omitempty"`
	Website          string `json:"website,omitempty"`
	ContactEmail     string `json:"contact_email,omitempty"`
	ContactPhone     string `json:"contact_phone,omitempty"`
	Verified         bool   `json:"verified,omitempty"`
	Avatar           string `json:"avatar,omitempty"`
}
