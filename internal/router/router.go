// Package router maps URL-style paths to screens, permitting or substituting
// based on the session. Denied access renders the login screen in place of
// the requested one; the router never navigates, so no redirect-loop
// protection is needed.
package router

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/beksultan/talentlink/internal/domain/model"
	"github.com/beksultan/talentlink/internal/session"
)

// Screen is anything the router can resolve a path to.
type Screen interface {
	// Run loads the screen's data and renders it to out.
	Run(ctx context.Context, out io.Writer) error
}

// Access is a route's access predicate.
type Access int

// Access levels.
const (
	// Public renders unconditionally.
	Public Access = iota
	// Authenticated requires a token of either role.
	Authenticated
	// TalentOnly requires a token and the talent role.
	TalentOnly
	// OrganizerOnly requires a token and the organizer role.
	OrganizerOnly
)

// Allows evaluates the predicate against a session.
func (a Access) Allows(sess model.Session) bool {
	switch a {
	case Public:
		return true
	case Authenticated:
		return sess.Authenticated()
	case TalentOnly:
		return sess.Authenticated() && sess.Role == model.RoleTalent
	case OrganizerOnly:
		return sess.Authenticated() && sess.Role == model.RoleOrganizer
	default:
		return false
	}
}

// Params are the values bound to :name segments of a matched pattern.
type Params map[string]string

// Factory builds a screen for a matched route.
type Factory func(Params) Screen

type route struct {
	segments []string
	access   Access
	build    Factory
}

// Router resolves paths against a declared route table.
type Router struct {
	sessions      *session.Store
	routes        []route
	login         Factory
	talentHome    Factory
	organizerHome Factory
}

// Option applies a configuration option to the Router.
type Option func(*Router)

// WithLogin sets the screen substituted on denied access and rendered at the
// root without a session.
func WithLogin(f Factory) Option {
	return func(r *Router) { r.login = f }
}

// WithTalentHome sets the root screen for talent sessions.
func WithTalentHome(f Factory) Option {
	return func(r *Router) { r.talentHome = f }
}

// WithOrganizerHome sets the root screen for organizer sessions.
func WithOrganizerHome(f Factory) Option {
	return func(r *Router) { r.organizerHome = f }
}

// New creates a Router reading access state from sessions.
func New(sessions *session.Store, opts ...Option) *Router {
	r := &Router{sessions: sessions}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register declares a route. Patterns use /-separated segments with :name
// placeholders, e.g. "/events/:id".
func (r *Router) Register(pattern string, access Access, build Factory) {
	r.routes = append(r.routes, route{
		segments: splitPath(pattern),
		access:   access,
		build:    build,
	})
}

// Resolve returns the screen to render for path. The root is the only route
// whose rendering depends on both the token and the role: login without a
// session, the role-appropriate dashboard with one. Everywhere else a failed
// access predicate substitutes the login screen at the same path.
func (r *Router) Resolve(path string) (Screen, error) {
	sess := r.sessions.Current()
	segments := splitPath(path)

	if len(segments) == 0 {
		return r.home(sess), nil
	}

	for _, rt := range r.routes {
		params, ok := match(rt.segments, segments)
		if !ok {
			continue
		}
		if !rt.access.Allows(sess) {
			return r.login(nil), nil
		}
		return rt.build(params), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoRoute, path)
}

func (r *Router) home(sess model.Session) Screen {
	switch {
	case !sess.Authenticated():
		return r.login(nil)
	case sess.Role == model.RoleOrganizer:
		return r.organizerHome(nil)
	default:
		return r.talentHome(nil)
	}
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func match(pattern, segments []string) (Params, bool) {
	if len(pattern) != len(segments) {
		return nil, false
	}
	params := Params{}
	for i, p := range pattern {
		if strings.HasPrefix(p, ":") {
			params[p[1:]] = segments[i]
			continue
		}
		if p != segments[i] {
			return nil, false
		}
	}
	return params, true
}
