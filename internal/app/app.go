// Package app wires the client together: session store, gateway, API client,
// reference cache, and the route table, built from configuration.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/beksultan/talentlink/internal/adapters/api"
	"github.com/beksultan/talentlink/internal/adapters/cache"
	"github.com/beksultan/talentlink/internal/config"
	"github.com/beksultan/talentlink/internal/domain/filter"
	"github.com/beksultan/talentlink/internal/domain/forms"
	"github.com/beksultan/talentlink/internal/domain/model"
	"github.com/beksultan/talentlink/internal/gateway"
	"github.com/beksultan/talentlink/internal/router"
	"github.com/beksultan/talentlink/internal/session"
	"github.com/beksultan/talentlink/internal/views"
	"github.com/beksultan/talentlink/pkg/logger"
)

// Input is the per-invocation screen state collected from the command line:
// form fields, the browse filter, and mutation arguments.
type Input struct {
	Form     *forms.Form
	Filter   filter.Filter
	Message  string
	Decision string
	Comment  string
}

// App is the assembled client.
type App struct {
	mu sync.Mutex

	cfg      *config.Config
	sessions *session.Store
	refs     *cache.Store
	client   *api.Client
	routes   *router.Router

	httpClient *http.Client
	logger     logger.Logger

	// input holds the current invocation's screen state; Run sets it before
	// resolving so route factories can read it.
	input Input
}

// Option applies a configuration option to the App.
type Option func(*App)

// WithLogger sets a custom logger for the app.
func WithLogger(l logger.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithHTTPClient overrides the transport, mainly for tests.
func WithHTTPClient(c *http.Client) Option {
	return func(a *App) {
		if c != nil {
			a.httpClient = c
		}
	}
}

// New assembles the client from configuration.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	a := &App{cfg: cfg}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = logger.Get()
	}

	a.sessions = session.NewStore(session.WithPath(cfg.SessionFile))
	a.sessions.Subscribe(func(sess model.Session) {
		if sess.Authenticated() {
			a.logger.Debug(ctx, "session changed", logger.String("role", string(sess.Role)))
			return
		}
		a.logger.Debug(ctx, "session cleared")
	})

	// The cache only saves round-trips; a broken cache file must not take
	// the client down.
	refs, err := cache.Open(cfg.CacheFile,
		cache.WithTTL(time.Duration(cfg.CacheTTLMS)*time.Millisecond))
	if err != nil {
		a.logger.Warn(ctx, "reference cache unavailable", logger.Error(err))
	} else {
		a.refs = refs
	}

	gwOpts := []gateway.Option{
		gateway.WithBaseURL(cfg.BaseURL),
		gateway.WithTimeout(time.Duration(cfg.TimeoutMS) * time.Millisecond),
		gateway.WithSessionStore(a.sessions),
		gateway.WithAuthFailureHook(func() {
			a.logger.Warn(context.Background(), "session rejected by server; signed out")
		}),
		gateway.WithLogger(a.logger.Named("gateway")),
	}
	if a.httpClient != nil {
		gwOpts = append(gwOpts, gateway.WithHTTPClient(a.httpClient))
	}
	gw := gateway.New(gwOpts...)

	clientOpts := []api.Option{
		api.WithSessionStore(a.sessions),
		api.WithLogger(a.logger.Named("api")),
	}
	if a.refs != nil {
		clientOpts = append(clientOpts, api.WithReferenceCache(a.refs))
	}
	a.client = api.New(gw, clientOpts...)

	a.routes = a.buildRoutes()
	return a, nil
}

// Run resolves path against the route table and renders the screen to out.
func (a *App) Run(ctx context.Context, path string, in Input, out io.Writer) error {
	a.mu.Lock()
	if in.Form == nil {
		in.Form = forms.New(nil)
	}
	a.input = in
	a.mu.Unlock()

	screen, err := a.routes.Resolve(path)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", path, err)
	}
	return screen.Run(ctx, out)
}

// RefreshReferences drops the cached skill and faculty lists so the next
// screen fetches fresh copies.
func (a *App) RefreshReferences(ctx context.Context) error {
	return a.client.RefreshReferences(ctx)
}

// Sessions exposes the session store, mainly for tests.
func (a *App) Sessions() *session.Store {
	return a.sessions
}

// Close releases the reference cache.
func (a *App) Close() error {
	if a.refs != nil {
		return a.refs.Close()
	}
	return nil
}

func (a *App) deps() views.Deps {
	return views.Deps{
		Client:   a.client,
		Sessions: a.sessions,
		Log:      a.logger.Named("views"),
	}
}

func (a *App) currentInput() Input {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.input
}

// buildRoutes declares the route table. Access levels mirror who each screen
// is for; the router substitutes the login screen on denial.
func (a *App) buildRoutes() *router.Router {
	login := func(router.Params) router.Screen {
		return views.NewLogin(a.deps(), a.currentInput().Form)
	}

	r := router.New(a.sessions,
		router.WithLogin(login),
		router.WithTalentHome(func(router.Params) router.Screen {
			return views.NewTalentDashboard(a.deps())
		}),
		router.WithOrganizerHome(func(router.Params) router.Screen {
			return views.NewOrganizerDashboard(a.deps())
		}),
	)

	r.Register("/login", router.Public, login)
	r.Register("/logout", router.Authenticated, func(router.Params) router.Screen {
		return views.NewLogout(a.deps())
	})
	r.Register("/register", router.Public, func(router.Params) router.Screen {
		return views.NewRegister(a.deps(), a.currentInput().Form)
	})
	r.Register("/register/organizer", router.Public, func(router.Params) router.Screen {
		return views.NewOrganizerRegister(a.deps(), a.currentInput().Form)
	})

	r.Register("/dashboard", router.TalentOnly, func(router.Params) router.Screen {
		return views.NewTalentDashboard(a.deps())
	})
	r.Register("/organizer/dashboard", router.OrganizerOnly, func(router.Params) router.Screen {
		return views.NewOrganizerDashboard(a.deps())
	})

	r.Register("/events", router.Authenticated, func(router.Params) router.Screen {
		return views.NewBrowse(a.deps(), a.currentInput().Filter, false)
	})
	r.Register("/recommendations", router.TalentOnly, func(router.Params) router.Screen {
		return views.NewBrowse(a.deps(), a.currentInput().Filter, true)
	})
	r.Register("/events/:id", router.Authenticated, func(p router.Params) router.Screen {
		return views.NewEventDetail(a.deps(), atoi(p["id"]), a.currentInput().Message)
	})
	r.Register("/organizer/events/create", router.OrganizerOnly, func(router.Params) router.Screen {
		return views.NewEventForm(a.deps(), 0, a.currentInput().Form)
	})
	r.Register("/organizer/events/:id/edit", router.OrganizerOnly, func(p router.Params) router.Screen {
		return views.NewEventForm(a.deps(), atoi(p["id"]), a.currentInput().Form)
	})

	r.Register("/applications", router.TalentOnly, func(router.Params) router.Screen {
		return views.NewApplicationsList(a.deps())
	})
	r.Register("/applications/:id/review", router.OrganizerOnly, func(p router.Params) router.Screen {
		in := a.currentInput()
		return views.NewReviewApplication(a.deps(), atoi(p["id"]), in.Decision, in.Comment)
	})

	r.Register("/profile", router.TalentOnly, func(router.Params) router.Screen {
		return views.NewProfile(a.deps(), a.currentInput().Form)
	})
	r.Register("/organizer/profile", router.OrganizerOnly, func(router.Params) router.Screen {
		return views.NewOrganizerProfileEdit(a.deps(), a.currentInput().Form)
	})
	r.Register("/talent/:id", router.Authenticated, func(p router.Params) router.Screen {
		return views.NewTalentProfileView(a.deps(), atoi(p["id"]))
	})
	r.Register("/organizer/:id", router.Authenticated, func(p router.Params) router.Screen {
		return views.NewOrganizerProfileView(a.deps(), atoi(p["id"]))
	})

	r.Register("/faculty/stats", router.TalentOnly, func(router.Params) router.Screen {
		return views.NewFacultyStats(a.deps())
	})
	r.Register("/activity", router.Authenticated, func(router.Params) router.Screen {
		return views.NewUserActivity(a.deps())
	})

	return r
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
