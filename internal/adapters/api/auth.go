package api

import (
	"context"
	"fmt"

	"github.com/beksultan/talentlink/internal/domain/forms"
	"github.com/beksultan/talentlink/internal/domain/model"
	"github.com/beksultan/talentlink/internal/gateway"
	"github.com/beksultan/talentlink/pkg/logger"
)

type loginResponse struct {
	Access   string     `json:"access"`
	Token    string     `json:"token"`
	UserType model.Role `json:"userType"`
}

func (r loginResponse) token() string {
	if r.Access != "" {
		return r.Access
	}
	return r.Token
}

// Login authenticates and persists the resulting session. For organizers the
// profile id is fetched and cached alongside, so the dashboard can link to
// the public profile without another lookup; failure to fetch it does not
// fail the login.
func (c *Client) Login(ctx context.Context, creds forms.Credentials) (model.Session, error) {
	if err := forms.Validate(creds); err != nil {
		return model.Session{}, err
	}
	// A 401 here means bad credentials, not an expired session, so the
	// auth-failure hook must stay quiet.
	resp, err := c.gw.Post(gateway.MarkAuthRecovery(ctx), "/api/login/", map[string]string{
		"username": creds.Username,
		"password": creds.Password,
	})
	if err != nil {
		return model.Session{}, err
	}
	var body loginResponse
	if err := resp.JSON(&body); err != nil {
		return model.Session{}, err
	}
	if body.token() == "" || !body.UserType.Valid() {
		return model.Session{}, fmt.Errorf("%w: login response missing token or role", gateway.ErrDecode)
	}
	sess := model.Session{Token: body.token(), Role: body.UserType}
	if c.sessions != nil {
		if err := c.sessions.Set(sess.Token, sess.Role); err != nil {
			return model.Session{}, err
		}
	}
	if sess.Role == model.RoleOrganizer {
		c.cacheOrganizerID(ctx)
	}
	return sess, nil
}

func (c *Client) cacheOrganizerID(ctx context.Context) {
	profiles, err := c.OrganizerProfiles(ctx)
	if err != nil || len(profiles) == 0 {
		c.log.Warn(ctx, "could not resolve organizer profile id after login", logger.Error(err))
		return
	}
	if c.sessions != nil {
		if err := c.sessions.SetOrganizerID(profiles[0].ID); err != nil {
			c.log.Warn(ctx, "could not cache organizer id", logger.Error(err))
		}
	}
}

// Logout clears the persisted session. Purely client-side; the backend keeps
// the token valid until it expires.
func (c *Client) Logout(_ context.Context) error {
	if c.sessions == nil {
		return nil
	}
	return c.sessions.Clear()
}

type registerResponse struct {
	Token       string `json:"token"`
	OrganizerID int    `json:"organizer_id"`
}

// RegisterTalent creates a talent account, persists the session, and fills
// the profile attribute bag with a second request like the browser client
// did. A profile failure after a successful registration is reported but the
// session stays.
func (c *Client) RegisterTalent(ctx context.Context, reg forms.TalentRegistration) (model.Session, error) {
	if err := forms.Validate(reg); err != nil {
		return model.Session{}, err
	}
	resp, err := c.gw.Post(ctx, "/api/register/", map[string]string{
		"username":   reg.Username,
		"email":      reg.Email,
		"password":   reg.Password,
		"first_name": reg.FirstName,
		"last_name":  reg.LastName,
	})
	if err != nil {
		return model.Session{}, err
	}
	var body registerResponse
	if err := resp.JSON(&body); err != nil {
		return model.Session{}, err
	}
	if body.Token == "" {
		return model.Session{}, fmt.Errorf("%w: registration response missing token", gateway.ErrDecode)
	}
	sess := model.Session{Token: body.Token, Role: model.RoleTalent}
	if c.sessions != nil {
		if err := c.sessions.Set(sess.Token, sess.Role); err != nil {
			return model.Session{}, err
		}
	}

	_, err = c.gw.Post(ctx, "/api/profiles/", map[string]string{
		"skills":          reg.Skills,
		"preferences":     reg.Preferences,
		"bio":             reg.Bio,
		"faculty_id":      reg.FacultyID,
		"education_level": reg.EducationLevel,
		"course":          reg.Course,
	})
	if err != nil {
		return sess, fmt.Errorf("account created but profile setup failed: %w", err)
	}
	return sess, nil
}

// RegisterOrganizer creates an organizer account and persists the session.
func (c *Client) RegisterOrganizer(ctx context.Context, reg forms.OrganizerRegistration) (model.Session, error) {
	if err := forms.Validate(reg); err != nil {
		return model.Session{}, err
	}
	resp, err := c.gw.Post(ctx, "/api/register/organizer/", map[string]string{
		"username":          reg.Username,
		"email":             reg.Email,
		"password":          reg.Password,
		"organization_name": reg.OrganizationName,
		"description":       reg.Description,
		"website":           reg.Website,
	})
	if err != nil {
		return model.Session{}, err
	}
	var body registerResponse
	if err := resp.JSON(&body); err != nil {
		return model.Session{}, err
	}
	if body.Token == "" {
		return model.Session{}, fmt.Errorf("%w: registration response missing token", gateway.ErrDecode)
	}
	sess := model.Session{Token: body.Token, Role: model.RoleOrganizer, OrganizerID: body.OrganizerID}
	if c.sessions != nil {
		if err := c.sessions.Set(sess.Token, sess.Role); err != nil {
			return model.Session{}, err
		}
		if body.OrganizerID != 0 {
			_ = c.sessions.SetOrganizerID(body.OrganizerID)
		}
	}
	return sess, nil
}
