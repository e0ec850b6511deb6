package views

import (
	"context"
	"fmt"
	"io"

	"github.com/beksultan/talentlink/internal/domain/forms"
)

// profileFields are the talent-editable attributes, mapped one-to-one onto
// the wire payload.
var profileFields = []string{"skills", "preferences", "bio", "faculty_id", "education_level", "course"}

// Profile shows and edits the talent's own profile. Set fields are patched;
// a staged avatar switches the submission to multipart.
type Profile struct {
	Deps
	Form *forms.Form
}

// NewProfile creates the profile screen.
func NewProfile(deps Deps, form *forms.Form) *Profile {
	if form == nil {
		form = forms.New(nil)
	}
	return &Profile{Deps: deps, Form: form}
}

// Run renders the profile, applying edits first when any are present.
func (v *Profile) Run(ctx context.Context, out io.Writer) error {
	profile, err := v.Client.MyProfile(ctx)
	if err != nil {
		renderError(out, err)
		return nil
	}

	changes := map[string]string{}
	for _, field := range profileFields {
		if val := v.Form.Get(field); val != "" {
			changes[field] = val
		}
	}
	var avatar *forms.File
	if f, ok := v.Form.File("avatar"); ok {
		avatar = &f
	}

	if len(changes) > 0 || v.Form.HasFiles() {
		profile, err = v.Client.UpdateProfile(ctx, profile.ID, changes, avatar)
		if err != nil {
			renderError(out, err)
			return nil
		}
		fmt.Fprintln(out, "Profile updated.")
	}

	renderHeader(out, "My profile")
	fmt.Fprintf(out, "%s %s (%s)\n", profile.User.FirstName, profile.User.LastName, profile.User.Username)
	if profile.Faculty != nil {
		fmt.Fprintf(out, "Faculty: %s\n", profile.Faculty.Name)
	}
	if len(profile.Skills) > 0 {
		fmt.Fprintf(out, "Skills: %s\n", skillNames(profile.Skills))
	}
	if profile.Bio != "" {
		fmt.Fprintf(out, "Bio: %s\n", profile.Bio)
	}
	return nil
}

// organizerProfileFields are the organizer-editable attributes.
var organizerProfileFields = []string{"organization_name", "description", "website", "contact_email", "contact_phone"}

// OrganizerProfileEdit shows and edits the organizer's own profile.
type OrganizerProfileEdit struct {
	Deps
	Form *forms.Form
}

// NewOrganizerProfileEdit creates the organizer profile screen.
func NewOrganizerProfileEdit(deps Deps, form *forms.Form) *OrganizerProfileEdit {
	if form == nil {
		form = forms.New(nil)
	}
	return &OrganizerProfileEdit{Deps: deps, Form: form}
}

// Run renders the organizer profile, applying edits first.
func (v *OrganizerProfileEdit) Run(ctx context.Context, out io.Writer) error {
	profiles, err := v.Client.OrganizerProfiles(ctx)
	if err != nil {
		renderError(out, err)
		return nil
	}
	if len(profiles) == 0 {
		fmt.Fprintln(out, "Nothing here yet.")
		return nil
	}
	profile := profiles[0]

	changes := map[string]string{}
	for _, field := range organizerProfileFields {
		if val := v.Form.Get(field); val != "" {
			changes[field] = val
		}
	}
	if len(changes) > 0 {
		// PUT replaces; unset fields keep their current values.
		payload := map[string]string{
			"organization_name": profile.OrganizationName,
			"description":       profile.Description,
			"website":           profile.Website,
			"contact_email":     profile.ContactEmail,
			"contact_phone":     profile.ContactPhone,
		}
		for k, val := range changes {
			payload[k] = val
		}
		profile, err = v.Client.UpdateOrganizerProfile(ctx, profile.ID, payload)
		if err != nil {
			renderError(out, err)
			return nil
		}
		fmt.Fprintln(out, "Profile updated.")
	}

	renderHeader(out, "Organizer profile")
	fmt.Fprintln(out, profile.OrganizationName)
	if profile.Description != "" {
		fmt.Fprintln(out, profile.Description)
	}
	if profile.Website != "" {
		fmt.Fprintf(out, "Website: %s\n", profile.Website)
	}
	if profile.Verified {
		fmt.Fprintln(out, "Verified organizer")
	}
	return nil
}

// TalentProfileView is another talent's public profile.
type TalentProfileView struct {
	Deps
	TalentID int
}

// NewTalentProfileView creates the public talent profile screen.
func NewTalentProfileView(deps Deps, talentID int) *TalentProfileView {
	return &TalentProfileView{Deps: deps, TalentID: talentID}
}

// Run fetches and renders the profile.
func (v *TalentProfileView) Run(ctx context.Context, out io.Writer) error {
	profile, err := v.Client.TalentProfile(ctx, v.TalentID)
	if err != nil {
		renderError(out, err)
		return nil
	}

	renderHeader(out, fmt.Sprintf("%s %s", profile.User.FirstName, profile.User.LastName))
	if profile.Faculty != nil {
		fmt.Fprintf(out, "Faculty: %s\n", profile.Faculty.Name)
	}
	if len(profile.Skills) > 0 {
		fmt.Fprintf(out, "Skills: %s\n", skillNames(profile.Skills))
	}
	if profile.Bio != "" {
		fmt.Fprintln(out, profile.Bio)
	}
	return nil
}

// OrganizerProfileView is an organizer's public profile.
type OrganizerProfileView struct {
	Deps
	OrganizerID int
}

// NewOrganizerProfileView creates the public organizer profile screen.
func NewOrganizerProfileView(deps Deps, organizerID int) *OrganizerProfileView {
	return &OrganizerProfileView{Deps: deps, OrganizerID: organizerID}
}

// Run fetches and renders the profile.
func (v *OrganizerProfileView) Run(ctx context.Context, out io.Writer) error {
	profile, err := v.Client.Organizer(ctx, v.OrganizerID)
	if err != nil {
		renderError(out, err)
		return nil
	}

	renderHeader(out, profile.OrganizationName)
	if profile.Description != "" {
		fmt.Fprintln(out, profile.Description)
	}
	if profile.Website != "" {
		fmt.Fprintf(out, "Website: %s\n", profile.Website)
	}
	return nil
}
