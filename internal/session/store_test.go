package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beksultan/talentlink/internal/domain/model"
	"github.com/beksultan/talentlink/internal/session"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStore(t *testing.T) {
	Convey("Given a session store backed by a temp file", t, func() {
		path := filepath.Join(t.TempDir(), "session.json")
		store := session.NewStore(session.WithPath(path))

		Convey("When no session has been set", func() {
			sess := store.Current()

			Convey("Then the session is empty and unauthenticated", func() {
				So(sess.Authenticated(), ShouldBeFalse)
				So(sess.Role, ShouldEqual, model.RoleNone)
			})
		})

		Convey("When a session is set", func() {
			err := store.Set("token-123", model.RoleTalent)

			Convey("Then Current reflects both fields together", func() {
				So(err, ShouldBeNil)
				sess := store.Current()
				So(sess.Token, ShouldEqual, "token-123")
				So(sess.Role, ShouldEqual, model.RoleTalent)
				So(sess.Authenticated(), ShouldBeTrue)
			})

			Convey("Then the session survives a new store over the same file", func() {
				So(err, ShouldBeNil)
				reopened := session.NewStore(session.WithPath(path))
				So(reopened.Current().Token, ShouldEqual, "token-123")
				So(reopened.Current().Role, ShouldEqual, model.RoleTalent)
			})

			Convey("Then the file is private to the user", func() {
				So(err, ShouldBeNil)
				info, statErr := os.Stat(path)
				So(statErr, ShouldBeNil)
				So(info.Mode().Perm(), ShouldEqual, os.FileMode(0o600))
			})
		})

		Convey("When the organizer id is cached", func() {
			So(store.Set("tok", model.RoleOrganizer), ShouldBeNil)
			So(store.SetOrganizerID(42), ShouldBeNil)

			Convey("Then it rides along with the session", func() {
				So(store.Current().OrganizerID, ShouldEqual, 42)
			})
		})

		Convey("When the organizer id is set without a session", func() {
			err := store.SetOrganizerID(42)

			Convey("Then nothing is stored", func() {
				So(err, ShouldBeNil)
				So(store.Current().OrganizerID, ShouldEqual, 0)
			})
		})

		Convey("When the session is cleared", func() {
			So(store.Set("tok", model.RoleTalent), ShouldBeNil)
			So(store.Clear(), ShouldBeNil)

			Convey("Then both fields are gone and the file is removed", func() {
				So(store.Current().Authenticated(), ShouldBeFalse)
				_, statErr := os.Stat(path)
				So(os.IsNotExist(statErr), ShouldBeTrue)
			})

			Convey("Then clearing again is not an error", func() {
				So(store.Clear(), ShouldBeNil)
			})
		})

		Convey("When a listener is subscribed", func() {
			var got []model.Session
			store.Subscribe(func(s model.Session) { got = append(got, s) })

			So(store.Set("tok", model.RoleTalent), ShouldBeNil)
			So(store.Clear(), ShouldBeNil)

			Convey("Then it observes every change in order", func() {
				So(got, ShouldHaveLength, 2)
				So(got[0].Token, ShouldEqual, "tok")
				So(got[1].Authenticated(), ShouldBeFalse)
			})
		})

		Convey("When the file on disk carries a role without a token", func() {
			So(os.WriteFile(path, []byte(`{"role":"organizer"}`), 0o600), ShouldBeNil)
			fresh := session.NewStore(session.WithPath(path))

			Convey("Then the stored session is dropped entirely", func() {
				So(fresh.Current().Role, ShouldEqual, model.RoleNone)
			})
		})

		Convey("When the file on disk is corrupt", func() {
			So(os.WriteFile(path, []byte("{not json"), 0o600), ShouldBeNil)
			fresh := session.NewStore(session.WithPath(path))

			So(fresh.Current().Authenticated(), ShouldBeFalse)
		})
	})
}
