package api

import (
	"context"

	"github.com/beksultan/talentlink/internal/domain/model"
	"github.com/beksultan/talentlink/internal/gateway"
	"github.com/beksultan/talentlink/pkg/logger"
)

// Cache kinds for reference lists.
const (
	kindSkills    = "skills"
	kindFaculties = "faculties"
)

// Skills returns the skill reference list, from the local cache when fresh.
func (c *Client) Skills(ctx context.Context) ([]model.Skill, error) {
	if c.refs != nil {
		var cached []model.Skill
		if c.refs.Lookup(ctx, kindSkills, &cached) {
			return cached, nil
		}
	}
	resp, err := c.gw.Get(ctx, "/api/skills/")
	if err != nil {
		return nil, err
	}
	skills, err := gateway.DecodeList[model.Skill](resp)
	if err != nil {
		return nil, err
	}
	c.saveRef(ctx, kindSkills, skills)
	return skills, nil
}

// Faculties returns the faculty reference list, from the local cache when
// fresh.
func (c *Client) Faculties(ctx context.Context) ([]model.Faculty, error) {
	if c.refs != nil {
		var cached []model.Faculty
		if c.refs.Lookup(ctx, kindFaculties, &cached) {
			return cached, nil
		}
	}
	resp, err := c.gw.Get(ctx, "/api/faculties/")
	if err != nil {
		return nil, err
	}
	faculties, err := gateway.DecodeList[model.Faculty](resp)
	if err != nil {
		return nil, err
	}
	c.saveRef(ctx, kindFaculties, faculties)
	return faculties, nil
}

// RefreshReferences drops the cached skill and faculty lists so the next
// lookup goes back to the server.
func (c *Client) RefreshReferences(ctx context.Context) error {
	if c.refs == nil {
		return nil
	}
	for _, kind := range []string{kindSkills, kindFaculties} {
		if err := c.refs.Invalidate(ctx, kind); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) saveRef(ctx context.Context, kind string, v any) {
	if c.refs == nil {
		return
	}
	if err := c.refs.Save(ctx, kind, v); err != nil {
		c.log.Warn(ctx, "failed to cache reference list",
			logger.String("kind", kind), logger.Error(err))
	}
}

// FacultyStats fetches the aggregate counters for the talent's faculty.
func (c *Client) FacultyStats(ctx context.Context) (model.FacultyStats, error) {
	resp, err := c.gw.Get(ctx, "/api/faculty/stats/")
	if err != nil {
		return model.FacultyStats{}, err
	}
	return gateway.DecodeOne[model.FacultyStats](resp)
}

// ActivityStats fetches the current user's activity counters.
func (c *Client) ActivityStats(ctx context.Context) (model.ActivityStats, error) {
	resp, err := c.gw.Get(ctx, "/api/user/activity/stats/")
	if err != nil {
		return model.ActivityStats{}, err
	}
	return gateway.DecodeOne[model.ActivityStats](resp)
}
