package views

import (
	"context"
	"fmt"
	"io"

	"github.com/beksultan/talentlink/internal/domain/forms"
)

// Register is the talent sign-up screen.
type Register struct {
	Deps
	Form *forms.Form
}

// NewRegister creates the talent sign-up screen.
func NewRegister(deps Deps, form *forms.Form) *Register {
	if form == nil {
		form = forms.New(nil)
	}
	return &Register{Deps: deps, Form: form}
}

// Run submits the registration when the form is filled, and renders the
// field list otherwise.
func (v *Register) Run(ctx context.Context, out io.Writer) error {
	renderHeader(out, "Talent registration")

	if v.Form.Get("username") == "" {
		for _, field := range []string{
			"username", "email", "password", "confirm_password",
			"first_name", "last_name", "faculty_id", "education_level",
			"course", "skills", "preferences", "bio",
		} {
			fmt.Fprintf(out, "  %s\n", field)
		}
		return nil
	}

	reg := forms.TalentRegistration{
		Username:        v.Form.Get("username"),
		Email:           v.Form.Get("email"),
		Password:        v.Form.Get("password"),
		ConfirmPassword: v.Form.Get("confirm_password"),
		FirstName:       v.Form.Get("first_name"),
		LastName:        v.Form.Get("last_name"),
		FacultyID:       v.Form.Get("faculty_id"),
		EducationLevel:  v.Form.Get("education_level"),
		Course:          v.Form.Get("course"),
		Skills:          v.Form.Get("skills"),
		Preferences:     v.Form.Get("preferences"),
		Bio:             v.Form.Get("bio"),
	}

	if _, err := v.Client.RegisterTalent(ctx, reg); err != nil {
		renderError(out, err)
		return nil
	}
	fmt.Fprintln(out, "Welcome! Your profile is ready at /profile.")
	return nil
}

// OrganizerRegister is the organizer sign-up screen.
type OrganizerRegister struct {
	Deps
	Form *forms.Form
}

// NewOrganizerRegister creates the organizer sign-up screen.
func NewOrganizerRegister(deps Deps, form *forms.Form) *OrganizerRegister {
	if form == nil {
		form = forms.New(nil)
	}
	return &OrganizerRegister{Deps: deps, Form: form}
}

// Run submits the registration when the form is filled.
func (v *OrganizerRegister) Run(ctx context.Context, out io.Writer) error {
	renderHeader(out, "Organizer registration")

	if v.Form.Get("username") == "" {
		for _, field := range []string{
			"username", "email", "password", "confirm_password",
			"organization_name", "description", "website",
		} {
			fmt.Fprintf(out, "  %s\n", field)
		}
		return nil
	}

	reg := forms.OrganizerRegistration{
		Username:         v.Form.Get("username"),
		Email:            v.Form.Get("email"),
		Password:         v.Form.Get("password"),
		ConfirmPassword:  v.Form.Get("confirm_password"),
		OrganizationName: v.Form.Get("organization_name"),
		Description:      v.Form.Get("description"),
		Website:          v.Form.Get("website"),
	}

	if _, err := v.Client.RegisterOrganizer(ctx, reg); err != nil {
		renderError(out, err)
		return nil
	}
	fmt.Fprintln(out, "Welcome! Your dashboard is at /organizer/dashboard.")
	return nil
}
