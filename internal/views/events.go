package views

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/beksultan/talentlink/internal/adapters/api"
	"github.com/beksultan/talentlink/internal/domain/filter"
	"github.com/beksultan/talentlink/internal/domain/forms"
	"github.com/beksultan/talentlink/internal/domain/model"
)

// Browse is the events-browsing screen: the talent's recommendations and the
// full event list side by side, narrowed by the filter state. Filtering is
// recomputed from the fetched lists on every run; the server is not consulted
// for it.
type Browse struct {
	Deps
	Filter filter.Filter
	// Recommended switches the list between server-ranked recommendations
	// and all published events.
	Recommended bool
}

// NewBrowse creates the browse screen.
func NewBrowse(deps Deps, f filter.Filter, recommended bool) *Browse {
	return &Browse{Deps: deps, Filter: f, Recommended: recommended}
}

// Run fetches events, skills, and faculties in parallel, applies the filter,
// and renders the result.
func (v *Browse) Run(ctx context.Context, out io.Writer) error {
	var (
		wg        sync.WaitGroup
		events    []model.Event
		recs      []model.Recommendation
		skills    []model.Skill
		faculties []model.Faculty

		eventsErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		if v.Recommended {
			recs, eventsErr = v.Client.Recommendations(ctx)
			for _, r := range recs {
				events = append(events, r.Event)
			}
			return
		}
		events, eventsErr = v.Client.Events(ctx, api.EventQuery{Status: model.StatusPublished})
	}()
	go func() {
		defer wg.Done()
		// Selector data is cosmetic here; a failure only hides the legend.
		skills, _ = v.Client.Skills(ctx)
	}()
	go func() {
		defer wg.Done()
		faculties, _ = v.Client.Faculties(ctx)
	}()
	wg.Wait()

	if v.Recommended {
		renderHeader(out, "Recommended events")
	} else {
		renderHeader(out, "All events")
	}

	if eventsErr != nil {
		renderError(out, eventsErr)
		return nil
	}

	filtered := filter.Apply(events, v.Filter)
	if len(filtered) == 0 {
		fmt.Fprintln(out, "No events match your filters.")
	}
	for _, e := range filtered {
		renderEventLine(out, e)
		if len(e.RequiredSkills) > 0 {
			fmt.Fprintf(out, "      skills: %s\n", skillNames(e.RequiredSkills))
		}
		if e.FacultyRestriction && len(e.Faculties) > 0 {
			fmt.Fprintf(out, "      faculties: %s\n", facultyNames(e.Faculties))
		}
	}

	fmt.Fprintln(out)
	if len(skills) > 0 {
		fmt.Fprintf(out, "Filter by skill ids: %s\n", skillLegend(skills))
	}
	if len(faculties) > 0 {
		fmt.Fprintf(out, "Filter by faculty ids: %s\n", facultyLegend(faculties))
	}
	return nil
}

func skillLegend(skills []model.Skill) string {
	out := ""
	for i, s := range skills {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d=%s", s.ID, s.Name)
	}
	return out
}

func facultyLegend(faculties []model.Faculty) string {
	out := ""
	for i, f := range faculties {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprintf("%d=%s", f.ID, f.Name)
	}
	return out
}

// EventDetail renders one event and, when a message is provided, applies
// to it. The apply action is offered only while the event is published.
type EventDetail struct {
	Deps
	EventID int
	Message string
}

// NewEventDetail creates the event detail screen.
func NewEventDetail(deps Deps, eventID int, message string) *EventDetail {
	return &EventDetail{Deps: deps, EventID: eventID, Message: message}
}

// Run fetches and renders the event, submitting an application when asked.
func (v *EventDetail) Run(ctx context.Context, out io.Writer) error {
	event, err := v.Client.Event(ctx, v.EventID)
	if err != nil {
		renderError(out, err)
		return nil
	}

	renderHeader(out, event.Title)
	fmt.Fprintln(out, event.Description)
	fmt.Fprintf(out, "Date: %s  Location: %s  Status: %s\n", event.Date, event.Location, event.Status)
	if len(event.RequiredSkills) > 0 {
		fmt.Fprintf(out, "Required skills: %s\n", skillNames(event.RequiredSkills))
	}
	if event.FacultyRestriction {
		fmt.Fprintf(out, "Restricted to: %s\n", facultyNames(event.Faculties))
	}
	if event.Organizer != nil {
		fmt.Fprintf(out, "Organizer: %s (profile at /organizer/%d)\n",
			event.Organizer.Username, event.Organizer.ID)
	}

	if v.Message == "" {
		if event.AcceptsApplications() {
			fmt.Fprintln(out, "Apply with --message \"...\".")
		}
		return nil
	}

	if !event.AcceptsApplications() {
		fmt.Fprintf(out, "This event is %s and no longer accepts applications.\n", event.Status)
		return nil
	}

	app, err := v.Client.Apply(ctx, forms.ApplicationMessage{EventID: v.EventID, Message: v.Message})
	if err != nil {
		renderError(out, err)
		return nil
	}
	fmt.Fprintf(out, "Application #%d submitted; status: %s.\n", app.ID, app.Status)
	return nil
}

// EventForm creates or edits an event. Editing pre-loads the current values
// and overlays the provided fields; a staged image switches the submission
// to multipart.
type EventForm struct {
	Deps
	EventID int // 0 creates
	Form    *forms.Form
}

// NewEventForm creates the event form screen.
func NewEventForm(deps Deps, eventID int, form *forms.Form) *EventForm {
	if form == nil {
		form = forms.New(map[string]string{"status": string(model.StatusDraft)})
	}
	return &EventForm{Deps: deps, EventID: eventID, Form: form}
}

// Run submits the event when a title is present, rendering the field list
// otherwise.
func (v *EventForm) Run(ctx context.Context, out io.Writer) error {
	editing := v.EventID != 0
	if editing {
		renderHeader(out, fmt.Sprintf("Edit event #%d", v.EventID))
		current, err := v.Client.Event(ctx, v.EventID)
		if err != nil {
			renderError(out, err)
			return nil
		}
		v.seedFrom(current)
	} else {
		renderHeader(out, "New event")
	}

	if v.Form.Get("title") == "" {
		for _, field := range []string{
			"title", "description", "date (YYYY-MM-DD)", "location",
			"status (draft|published|closed|cancelled)",
			"required_skills (comma-separated)",
			"faculty_restriction (true|false)", "faculty_ids (comma-separated)",
			"image (file path)",
		} {
			fmt.Fprintf(out, "  %s\n", field)
		}
		return nil
	}

	details := forms.EventDetails{
		Title:       v.Form.Get("title"),
		Description: v.Form.Get("description"),
		Date:        v.Form.Get("date"),
		Location:    v.Form.Get("location"),
		Status:      v.Form.Get("status"),
	}
	skills := forms.SplitSkills(v.Form.Get("required_skills"))
	restricted := v.Form.Get("faculty_restriction") == "true"
	facultyIDs := parseIDs(v.Form.Get("faculty_ids"))

	var image *forms.File
	if f, ok := v.Form.File("image"); ok {
		image = &f
	}

	var saved model.Event
	var err error
	if editing {
		saved, err = v.Client.UpdateEvent(ctx, v.EventID, details, skills, restricted, facultyIDs, image)
	} else {
		saved, err = v.Client.CreateEvent(ctx, details, skills, restricted, facultyIDs, image)
	}
	if err != nil {
		renderError(out, err)
		return nil
	}
	fmt.Fprintf(out, "Event #%d saved with status %s.\n", saved.ID, saved.Status)
	return nil
}

// seedFrom fills unset form fields from the event being edited, so a partial
// edit keeps the remaining values. The image is never carried over; it must
// be re-attached to change.
func (v *EventForm) seedFrom(e model.Event) {
	seed := func(name, value string) {
		if v.Form.Get(name) == "" {
			v.Form.Set(name, value)
		}
	}
	seed("title", e.Title)
	seed("description", e.Description)
	seed("date", e.Date)
	seed("location", e.Location)
	seed("status", string(e.Status))
	seed("faculty_restriction", strconv.FormatBool(e.FacultyRestriction))

	if v.Form.Get("required_skills") == "" && len(e.RequiredSkills) > 0 {
		v.Form.Set("required_skills", skillNames(e.RequiredSkills))
	}
}

func parseIDs(joined string) []int {
	var out []int
	for _, part := range forms.SplitSkills(joined) {
		if id, err := strconv.Atoi(part); err == nil {
			out = append(out, id)
		}
	}
	return out
}
