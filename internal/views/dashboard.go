package views

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/beksultan/talentlink/internal/adapters/api"
	"github.com/beksultan/talentlink/internal/domain/model"
	"github.com/beksultan/talentlink/pkg/logger"
)

// TalentDashboard joins the talent's profile, recommendations, and activity
// counters. The three reads go out in parallel and render only once all have
// resolved; a failed section renders its own message without sinking the rest.
type TalentDashboard struct {
	Deps
}

// NewTalentDashboard creates the talent dashboard.
func NewTalentDashboard(deps Deps) *TalentDashboard {
	return &TalentDashboard{Deps: deps}
}

// Run loads and renders the dashboard.
func (v *TalentDashboard) Run(ctx context.Context, out io.Writer) error {
	var (
		wg       sync.WaitGroup
		profile  model.TalentProfile
		recs     []model.Recommendation
		activity model.ActivityStats

		profileErr, recsErr, activityErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		profile, profileErr = v.Client.MyProfile(ctx)
	}()
	go func() {
		defer wg.Done()
		recs, recsErr = v.Client.Recommendations(ctx)
	}()
	go func() {
		defer wg.Done()
		activity, activityErr = v.Client.ActivityStats(ctx)
	}()
	wg.Wait()

	renderHeader(out, "Talent dashboard")

	if profileErr != nil {
		renderError(out, profileErr)
	} else {
		fmt.Fprintf(out, "Signed in as %s %s (%s)\n",
			profile.User.FirstName, profile.User.LastName, profile.User.Username)
		if len(profile.Skills) > 0 {
			fmt.Fprintf(out, "Skills: %s\n", skillNames(profile.Skills))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recommended for you:")
	switch {
	case recsErr != nil:
		renderError(out, recsErr)
	case len(recs) == 0:
		fmt.Fprintln(out, "  No recommendations yet. Browse all events at /recommendations.")
	default:
		for _, rec := range recs {
			renderEventLine(out, rec.Event)
			if rec.Reason != "" {
				fmt.Fprintf(out, "      %s\n", rec.Reason)
			}
		}
	}

	fmt.Fprintln(out)
	if activityErr != nil {
		renderError(out, activityErr)
	} else {
		fmt.Fprintf(out, "Applications: %d total, %d approved\n",
			activity.TotalApplications, activity.ApprovedApplications)
	}
	return nil
}

// OrganizerDashboard joins the organizer's own events with the applications
// to them, fetched in parallel.
type OrganizerDashboard struct {
	Deps
}

// NewOrganizerDashboard creates the organizer dashboard.
func NewOrganizerDashboard(deps Deps) *OrganizerDashboard {
	return &OrganizerDashboard{Deps: deps}
}

// Run loads and renders the dashboard.
func (v *OrganizerDashboard) Run(ctx context.Context, out io.Writer) error {
	var (
		wg     sync.WaitGroup
		events []model.Event
		apps   []model.Application

		eventsErr, appsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		events, eventsErr = v.Client.Events(ctx, api.EventQuery{Mine: true})
	}()
	go func() {
		defer wg.Done()
		apps, appsErr = v.Client.Applications(ctx)
	}()
	wg.Wait()

	renderHeader(out, "Organizer dashboard")

	fmt.Fprintln(out, "Your events:")
	switch {
	case eventsErr != nil:
		renderError(out, eventsErr)
	case len(events) == 0:
		fmt.Fprintln(out, "  No events yet. Create one at /organizer/events/create.")
	default:
		for _, e := range events {
			renderEventLine(out, e)
			if e.ApplicationsCount > 0 {
				fmt.Fprintf(out, "      %d application(s)\n", e.ApplicationsCount)
			}
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Incoming applications:")
	switch {
	case appsErr != nil:
		renderError(out, appsErr)
	case len(apps) == 0:
		fmt.Fprintln(out, "  No applications yet.")
	default:
		pending := 0
		for _, a := range apps {
			fmt.Fprintf(out, "  #%d  %s -> %s  [%s]\n",
				a.ID, a.User.Username, a.Event.Title, a.Status)
			if !a.Reviewed() {
				pending++
			}
		}
		if pending > 0 {
			fmt.Fprintf(out, "%d awaiting review; decide at /applications/<id>/review.\n", pending)
		}
	}

	v.logger().Debug(ctx, "organizer dashboard rendered",
		logger.Int("events", len(events)), logger.Int("applications", len(apps)))
	return nil
}
