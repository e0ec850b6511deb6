package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/beksultan/talentlink/internal/domain/forms"
	"github.com/beksultan/talentlink/internal/domain/model"
	"github.com/beksultan/talentlink/internal/gateway"
)

// Applications lists applications visible to the caller: a talent sees their
// own, an organizer sees applications to their events.
func (c *Client) Applications(ctx context.Context) ([]model.Application, error) {
	resp, err := c.gw.Get(ctx, "/api/applications/")
	if err != nil {
		return nil, err
	}
	return gateway.DecodeList[model.Application](resp)
}

// Apply submits a talent's application to an event.
func (c *Client) Apply(ctx context.Context, msg forms.ApplicationMessage) (model.Application, error) {
	if err := forms.Validate(msg); err != nil {
		return model.Application{}, err
	}
	resp, err := c.gw.Post(ctx, "/api/applications/", map[string]string{
		"event_id": strconv.Itoa(msg.EventID),
		"message":  msg.Message,
	})
	if err != nil {
		return model.Application{}, err
	}
	return gateway.DecodeOne[model.Application](resp)
}

// ReviewApplication sets the status and the organizer comment on an
// application. Organizer-owned fields only.
func (c *Client) ReviewApplication(ctx context.Context, id int, status model.ApplicationStatus, comment string) (model.Application, error) {
	body := map[string]string{"status": string(status)}
	if comment != "" {
		body["organizer_comment"] = comment
	}
	resp, err := c.gw.Patch(ctx, fmt.Sprintf("/api/applications/%d/", id), body)
	if err != nil {
		return model.Application{}, err
	}
	return gateway.DecodeOne[model.Application](resp)
}
