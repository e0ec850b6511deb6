package app_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/beksultan/talentlink/internal/app"
	"github.com/beksultan/talentlink/internal/config"
	"github.com/beksultan/talentlink/internal/domain/forms"
	"github.com/beksultan/talentlink/internal/domain/model"
	"github.com/beksultan/talentlink/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

func newApp(t *testing.T, handler http.Handler) *app.App {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfg := config.New()
	cfg.BaseURL = srv.URL
	cfg.SessionFile = filepath.Join(dir, "session.json")
	cfg.CacheFile = filepath.Join(dir, "reference.db")

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("building app: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func renderPath(t *testing.T, a *app.App, path string, in app.Input) string {
	t.Helper()
	var buf bytes.Buffer
	if err := a.Run(context.Background(), path, in, &buf); err != nil {
		t.Fatalf("running %s: %v", path, err)
	}
	return buf.String()
}

func TestAppRouting(t *testing.T) {
	Convey("Given an assembled app with no session", t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/api/login/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"access":"tok-1","userType":"talent"}`))
		})
		a := newApp(t, mux)

		Convey("When the root resolves", func() {
			out := renderPath(t, a, "/", app.Input{})

			Convey("Then the login screen renders", func() {
				So(out, ShouldContainSubstring, "Sign in")
			})
		})

		Convey("When a gated path resolves", func() {
			out := renderPath(t, a, "/dashboard", app.Input{})

			So(out, ShouldContainSubstring, "Sign in")
		})

		Convey("When an unknown path resolves", func() {
			var buf bytes.Buffer
			err := a.Run(context.Background(), "/no/such/screen", app.Input{}, &buf)

			So(err, ShouldNotBeNil)
		})

		Convey("When the login form is submitted", func() {
			form := forms.New(map[string]string{"username": "aliya", "password": "pw"})
			out := renderPath(t, a, "/login", app.Input{Form: form})

			Convey("Then the session persists for the next resolution", func() {
				So(out, ShouldContainSubstring, "Signed in as talent")
				So(a.Sessions().Current().Role, ShouldEqual, model.RoleTalent)
			})
		})
	})
}

func TestAppRoleGating(t *testing.T) {
	Convey("Given a talent session", t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})
		a := newApp(t, mux)
		_ = a.Sessions().Set("tok-t", model.RoleTalent)

		Convey("When an organizer path resolves", func() {
			out := renderPath(t, a, "/organizer/dashboard", app.Input{})

			Convey("Then the login screen substitutes in place", func() {
				So(out, ShouldContainSubstring, "Sign in")
			})
		})

		Convey("When a talent path resolves", func() {
			out := renderPath(t, a, "/applications", app.Input{})

			So(out, ShouldNotContainSubstring, "Sign in")
		})
	})
}
