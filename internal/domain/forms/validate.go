package forms

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals // validator instances are meant to be shared

// Credentials is the login form payload.
type Credentials struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// TalentRegistration is the talent sign-up payload.
type TalentRegistration struct {
	Username        string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	FirstName       string `validate:"required"`
	LastName        string `validate:"required"`
	FacultyID       string
	EducationLevel  string `validate:"omitempty,oneof=bachelor master specialist"`
	Course          string
	Skills          string
	Preferences     string
	Bio             string
}

// OrganizerRegistration is the organizer sign-up payload.
type OrganizerRegistration struct {
	Username         string `validate:"required"`
	Email            string `validate:"required,email"`
	Password         string `validate:"required,min=8"`
	ConfirmPassword  string `validate:"required,eqfield=Password"`
	OrganizationName string `validate:"required"`
	Description      string
	Website          string `validate:"omitempty,url"`
}

// EventDetails is the event create/edit payload.
type EventDetails struct {
	Title       string `validate:"required"`
	Description string `validate:"required"`
	Date        string `validate:"required,datetime=2006-01-02"`
	Location    string `validate:"required"`
	Status      string `validate:"required,oneof=draft published closed cancelled"`
}

// ApplicationMessage is the apply-to-event payload.
type ApplicationMessage struct {
	EventID int    `validate:"required,gt=0"`
	Message string `validate:"required"`
}

// Validate checks a payload and converts validator output to one user-facing
// message per failing field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !asValidationErrors(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors) //nolint:errorlint // validator returns the slice directly
	if ok {
		*target = verrs
	}
	return ok
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email", fe.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	case "eqfield":
		return "passwords do not match"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must look like %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
