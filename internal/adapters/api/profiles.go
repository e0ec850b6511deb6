package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/beksultan/talentlink/internal/domain/forms"
	"github.com/beksultan/talentlink/internal/domain/model"
	"github.com/beksultan/talentlink/internal/gateway"
)

// MyProfile fetches the authenticated talent's own profile. The endpoint
// lists profiles scoped to the caller; the first entry is theirs. Some
// deployments return the single object directly, so both shapes are handled.
func (c *Client) MyProfile(ctx context.Context) (model.TalentProfile, error) {
	resp, err := c.gw.Get(ctx, "/api/profiles/")
	if err != nil {
		return model.TalentProfile{}, err
	}
	profiles, err := decodeListOrObject[model.TalentProfile](resp)
	if err != nil {
		return model.TalentProfile{}, err
	}
	if len(profiles) == 0 {
		return model.TalentProfile{}, fmt.Errorf("%w: no profile for current user", ErrNotFound)
	}
	return profiles[0], nil
}

// decodeListOrObject accepts a bare array, a page envelope, or a single
// object, and always yields a slice.
func decodeListOrObject[T any](resp *gateway.Response) ([]T, error) {
	body := bytes.TrimSpace(resp.Body)
	if len(body) == 0 || body[0] == '[' {
		return gateway.DecodeList[T](resp)
	}
	var probe struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(body, &probe); err == nil && probe.Results != nil {
		return gateway.DecodeList[T](resp)
	}
	one, err := gateway.DecodeOne[T](resp)
	if err != nil {
		return nil, err
	}
	return []T{one}, nil
}

// TalentProfile fetches another talent's public profile.
func (c *Client) TalentProfile(ctx context.Context, id int) (model.TalentProfile, error) {
	resp, err := c.gw.Get(ctx, fmt.Sprintf("/api/profiles/talent/%d/", id))
	if err != nil {
		return model.TalentProfile{}, err
	}
	return gateway.DecodeOne[model.TalentProfile](resp)
}

// UpdateProfile patches the talent's own profile; multipart when a new
// avatar is staged.
func (c *Client) UpdateProfile(ctx context.Context, id int, fields map[string]string, avatar *forms.File) (model.TalentProfile, error) {
	path := fmt.Sprintf("/api/profiles/%d/", id)

	var resp *gateway.Response
	var err error
	if avatar != nil && len(avatar.Content) > 0 {
		resp, err = c.gw.PatchForm(ctx, path, fields, map[string]forms.File{"avatar": *avatar})
	} else {
		resp, err = c.gw.Patch(ctx, path, fields)
	}
	if err != nil {
		return model.TalentProfile{}, err
	}
	return gateway.DecodeOne[model.TalentProfile](resp)
}

// OrganizerProfiles lists organizer profiles scoped to the caller. Used
// after login to resolve the caller's own organizer id.
func (c *Client) OrganizerProfiles(ctx context.Context) ([]model.OrganizerProfile, error) {
	resp, err := c.gw.Get(ctx, "/api/organizer/profiles/")
	if err != nil {
		return nil, err
	}
	return decodeListOrObject[model.OrganizerProfile](resp)
}

// Organizer fetches an organizer's public profile.
func (c *Client) Organizer(ctx context.Context, id int) (model.OrganizerProfile, error) {
	resp, err := c.gw.Get(ctx, fmt.Sprintf("/api/organizers/%d/", id))
	if err != nil {
		return model.OrganizerProfile{}, err
	}
	return gateway.DecodeOne[model.OrganizerProfile](resp)
}

// UpdateOrganizerProfile replaces the organizer's own profile.
func (c *Client) UpdateOrganizerProfile(ctx context.Context, id int, fields map[string]string) (model.OrganizerProfile, error) {
	resp, err := c.gw.Put(ctx, fmt.Sprintf("/api/organizer/profiles/%d/", id), fields)
	if err != nil {
		return model.OrganizerProfile{}, err
	}
	return gateway.DecodeOne[model.OrganizerProfile](resp)
}
