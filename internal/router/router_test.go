package router_test

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/beksultan/talentlink/internal/domain/model"
	"github.com/beksultan/talentlink/internal/router"
	"github.com/beksultan/talentlink/internal/session"
	. "github.com/smartystreets/goconvey/convey"
)

// stub is a named no-op screen so tests can assert which screen resolved.
type stub struct {
	name   string
	params router.Params
}

func (s *stub) Run(context.Context, io.Writer) error { return nil }

func factory(name string) router.Factory {
	return func(p router.Params) router.Screen {
		return &stub{name: name, params: p}
	}
}

func nameOf(s router.Screen) string {
	return s.(*stub).name
}

func newRouter(t *testing.T) (*router.Router, *session.Store) {
	t.Helper()
	store := session.NewStore(session.WithPath(filepath.Join(t.TempDir(), "session.json")))
	r := router.New(store,
		router.WithLogin(factory("login")),
		router.WithTalentHome(factory("talent-dashboard")),
		router.WithOrganizerHome(factory("organizer-dashboard")),
	)
	r.Register("/register", router.Public, factory("register"))
	r.Register("/recommendations", router.TalentOnly, factory("recommendations"))
	r.Register("/organizer/events/create", router.OrganizerOnly, factory("event-form"))
	r.Register("/events/:id", router.Authenticated, factory("event-detail"))
	return r, store
}

func TestResolve(t *testing.T) {
	Convey("Given a route table and a session store", t, func() {
		r, store := newRouter(t)

		Convey("When nobody is signed in", func() {
			Convey("Then the root renders the login screen", func() {
				s, err := r.Resolve("/")
				So(err, ShouldBeNil)
				So(nameOf(s), ShouldEqual, "login")
			})

			Convey("Then public routes render unconditionally", func() {
				s, err := r.Resolve("/register")
				So(err, ShouldBeNil)
				So(nameOf(s), ShouldEqual, "register")
			})

			Convey("Then a role-gated route renders the login screen in place", func() {
				s, err := r.Resolve("/organizer/events/create")
				So(err, ShouldBeNil)
				So(nameOf(s), ShouldEqual, "login")
			})

			Convey("Then an authenticated route renders the login screen too", func() {
				s, err := r.Resolve("/events/12")
				So(err, ShouldBeNil)
				So(nameOf(s), ShouldEqual, "login")
			})
		})

		Convey("When a talent is signed in", func() {
			So(store.Set("tok", model.RoleTalent), ShouldBeNil)

			Convey("Then the root renders the talent dashboard", func() {
				s, err := r.Resolve("/")
				So(err, ShouldBeNil)
				So(nameOf(s), ShouldEqual, "talent-dashboard")
			})

			Convey("Then talent routes render their screen", func() {
				s, err := r.Resolve("/recommendations")
				So(err, ShouldBeNil)
				So(nameOf(s), ShouldEqual, "recommendations")
			})

			Convey("Then organizer routes deny even an authenticated talent", func() {
				s, err := r.Resolve("/organizer/events/create")
				So(err, ShouldBeNil)
				So(nameOf(s), ShouldEqual, "login")
			})

			Convey("Then param segments bind", func() {
				s, err := r.Resolve("/events/37")
				So(err, ShouldBeNil)
				So(nameOf(s), ShouldEqual, "event-detail")
				So(s.(*stub).params["id"], ShouldEqual, "37")
			})
		})

		Convey("When an organizer is signed in", func() {
			So(store.Set("tok", model.RoleOrganizer), ShouldBeNil)

			Convey("Then the root renders the organizer dashboard", func() {
				s, err := r.Resolve("/")
				So(err, ShouldBeNil)
				So(nameOf(s), ShouldEqual, "organizer-dashboard")
			})

			Convey("Then talent-only routes deny the organizer", func() {
				s, err := r.Resolve("/recommendations")
				So(err, ShouldBeNil)
				So(nameOf(s), ShouldEqual, "login")
			})

			Convey("Then organizer routes render", func() {
				s, err := r.Resolve("/organizer/events/create")
				So(err, ShouldBeNil)
				So(nameOf(s), ShouldEqual, "event-form")
			})
		})

		Convey("When a stored role has no token behind it", func() {
			// The store drops role-without-token on load, so a forged file
			// still resolves organizer routes to the login screen.
			s, err := r.Resolve("/organizer/events/create")
			So(err, ShouldBeNil)
			So(nameOf(s), ShouldEqual, "login")
		})

		Convey("When the path matches nothing", func() {
			_, err := r.Resolve("/no/such/screen")
			So(errors.Is(err, router.ErrNoRoute), ShouldBeTrue)
		})

		Convey("When the session is cleared mid-run", func() {
			So(store.Set("tok", model.RoleTalent), ShouldBeNil)
			So(store.Clear(), ShouldBeNil)

			s, err := r.Resolve("/recommendations")
			So(err, ShouldBeNil)
			So(nameOf(s), ShouldEqual, "login")
		})
	})
}

func TestAccessPredicates(t *testing.T) {
	Convey("Given the access predicate table", t, func() {
		anon := model.Session{}
		talent := model.Session{Token: "t", Role: model.RoleTalent}
		organizer := model.Session{Token: "t", Role: model.RoleOrganizer}

		So(router.Public.Allows(anon), ShouldBeTrue)
		So(router.Authenticated.Allows(anon), ShouldBeFalse)
		So(router.Authenticated.Allows(talent), ShouldBeTrue)
		So(router.Authenticated.Allows(organizer), ShouldBeTrue)
		So(router.TalentOnly.Allows(talent), ShouldBeTrue)
		So(router.TalentOnly.Allows(organizer), ShouldBeFalse)
		So(router.OrganizerOnly.Allows(organizer), ShouldBeTrue)
		So(router.OrganizerOnly.Allows(talent), ShouldBeFalse)
	})
}
