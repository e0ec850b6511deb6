package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/beksultan/talentlink/internal/domain/forms"
	"github.com/beksultan/talentlink/internal/domain/model"
	"github.com/beksultan/talentlink/internal/gateway"
)

// EventQuery selects which events to list. The zero value lists everything
// visible to the caller.
type EventQuery struct {
	// Mine restricts the list to the authenticated organizer's own events.
	Mine bool
	// Status filters by lifecycle state.
	Status model.EventStatus
	// FacultyID filters server-side by faculty.
	FacultyID string
}

func (q EventQuery) encode() string {
	vals := url.Values{}
	if q.Mine {
		vals.Set("organizer", "me")
	}
	if q.Status != "" {
		vals.Set("status", string(q.Status))
	}
	if q.FacultyID != "" {
		vals.Set("faculty", q.FacultyID)
	}
	if len(vals) == 0 {
		return ""
	}
	return "?" + vals.Encode()
}

// Events lists events matching the query.
func (c *Client) Events(ctx context.Context, q EventQuery) ([]model.Event, error) {
	resp, err := c.gw.Get(ctx, "/api/events/"+q.encode())
	if err != nil {
		return nil, err
	}
	return gateway.DecodeList[model.Event](resp)
}

// Event fetches a single event.
func (c *Client) Event(ctx context.Context, id int) (model.Event, error) {
	resp, err := c.gw.Get(ctx, fmt.Sprintf("/api/events/%d/", id))
	if err != nil {
		return model.Event{}, err
	}
	return gateway.DecodeOne[model.Event](resp)
}

// eventPayload flattens the event form for submission. Skills travel as a
// comma-free list; faculties as their ids.
func eventPayload(details forms.EventDetails, skills []string, facultyRestriction bool, facultyIDs []int) map[string]string {
	payload := map[string]string{
		"title":               details.Title,
		"description":         details.Description,
		"date":                details.Date,
		"location":            details.Location,
		"status":              details.Status,
		"required_skills":     strings.Join(skills, ","),
		"faculty_restriction": strconv.FormatBool(facultyRestriction),
	}
	ids := make([]string, 0, len(facultyIDs))
	for _, id := range facultyIDs {
		ids = append(ids, strconv.Itoa(id))
	}
	payload["faculty_ids"] = strings.Join(ids, ",")
	return payload
}

// CreateEvent posts a new event. With an image staged the request is
// multipart; the gateway takes care of the boundary.
func (c *Client) CreateEvent(ctx context.Context, details forms.EventDetails, skills []string, facultyRestriction bool, facultyIDs []int, image *forms.File) (model.Event, error) {
	if err := forms.Validate(details); err != nil {
		return model.Event{}, err
	}
	payload := eventPayload(details, skills, facultyRestriction, facultyIDs)

	var resp *gateway.Response
	var err error
	if image != nil && len(image.Content) > 0 {
		resp, err = c.gw.PostForm(ctx, "/api/events/", payload, map[string]forms.File{"image": *image})
	} else {
		resp, err = c.gw.Post(ctx, "/api/events/", payload)
	}
	if err != nil {
		return model.Event{}, err
	}
	return gateway.DecodeOne[model.Event](resp)
}

// UpdateEvent patches an existing event, multipart when a new image rides
// along.
func (c *Client) UpdateEvent(ctx context.Context, id int, details forms.EventDetails, skills []string, facultyRestriction bool, facultyIDs []int, image *forms.File) (model.Event, error) {
	if err := forms.Validate(details); err != nil {
		return model.Event{}, err
	}
	payload := eventPayload(details, skills, facultyRestriction, facultyIDs)
	path := fmt.Sprintf("/api/events/%d/", id)

	var resp *gateway.Response
	var err error
	if image != nil && len(image.Content) > 0 {
		resp, err = c.gw.PatchForm(ctx, path, payload, map[string]forms.File{"image": *image})
	} else {
		resp, err = c.gw.Patch(ctx, path, payload)
	}
	if err != nil {
		return model.Event{}, err
	}
	return gateway.DecodeOne[model.Event](resp)
}

// Recommendations lists server-ranked events for the current talent.
func (c *Client) Recommendations(ctx context.Context) ([]model.Recommendation, error) {
	resp, err := c.gw.Get(ctx, "/api/recommendations/")
	if err != nil {
		return nil, err
	}
	return gateway.DecodeList[model.Recommendation](resp)
}
