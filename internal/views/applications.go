package views

import (
	"context"
	"fmt"
	"io"

	"github.com/beksultan/talentlink/internal/domain/model"
)

// ApplicationsList shows the talent's own applications with organizer
// feedback where present.
type ApplicationsList struct {
	Deps
}

// NewApplicationsList creates the applications screen.
func NewApplicationsList(deps Deps) *ApplicationsList {
	return &ApplicationsList{Deps: deps}
}

// Run fetches and renders the list.
func (v *ApplicationsList) Run(ctx context.Context, out io.Writer) error {
	apps, err := v.Client.Applications(ctx)
	if err != nil {
		renderError(out, err)
		return nil
	}

	renderHeader(out, "My applications")
	if len(apps) == 0 {
		fmt.Fprintln(out, "You have not applied to anything yet. Browse events at /recommendations.")
		return nil
	}
	for _, a := range apps {
		fmt.Fprintf(out, "  #%d  %s  [%s]\n", a.ID, a.Event.Title, a.Status)
		if a.Message != "" {
			fmt.Fprintf(out, "      you: %s\n", a.Message)
		}
		if a.OrganizerComment != "" {
			fmt.Fprintf(out, "      organizer: %s\n", a.OrganizerComment)
		}
	}
	return nil
}

// ReviewApplication is the organizer's decision screen for one application.
type ReviewApplication struct {
	Deps
	ApplicationID int
	Decision      string // "approved" or "rejected"; empty just displays
	Comment       string
}

// NewReviewApplication creates the review screen.
func NewReviewApplication(deps Deps, id int, decision, comment string) *ReviewApplication {
	return &ReviewApplication{Deps: deps, ApplicationID: id, Decision: decision, Comment: comment}
}

// Run applies the decision, or explains how to make one.
func (v *ReviewApplication) Run(ctx context.Context, out io.Writer) error {
	renderHeader(out, fmt.Sprintf("Application #%d", v.ApplicationID))

	if v.Decision == "" {
		fmt.Fprintln(out, "Decide with --decision approved|rejected, optionally --comment \"...\".")
		return nil
	}

	status := model.ApplicationStatus(v.Decision)
	if status != model.ApplicationApproved && status != model.ApplicationRejected {
		fmt.Fprintf(out, "Unknown decision %q; use approved or rejected.\n", v.Decision)
		return nil
	}

	app, err := v.Client.ReviewApplication(ctx, v.ApplicationID, status, v.Comment)
	if err != nil {
		renderError(out, err)
		return nil
	}
	fmt.Fprintf(out, "Application #%d is now %s.\n", app.ID, app.Status)
	return nil
}
