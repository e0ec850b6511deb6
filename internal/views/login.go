package views

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/beksultan/talentlink/internal/domain/forms"
	"github.com/beksultan/talentlink/internal/domain/model"
	"github.com/beksultan/talentlink/pkg/logger"
)

// Login is the entry screen. Without credentials it renders the form;
// with them it submits and reports the outcome.
type Login struct {
	Deps
	Form *forms.Form

	// inFlight drops duplicate submissions while one is pending. The CLI
	// runs each screen once, so this only matters to long-lived hosts that
	// embed a screen instance and may re-run it concurrently.
	inFlight atomic.Bool
}

// NewLogin creates the login screen.
func NewLogin(deps Deps, form *forms.Form) *Login {
	if form == nil {
		form = forms.New(nil)
	}
	return &Login{Deps: deps, Form: form}
}

// Run renders the form or submits it when both fields are present.
func (v *Login) Run(ctx context.Context, out io.Writer) error {
	renderHeader(out, "Sign in")

	creds := forms.Credentials{
		Username: v.Form.Get("username"),
		Password: v.Form.Get("password"),
	}
	if creds.Username == "" && creds.Password == "" {
		fmt.Fprintln(out, "  username: (required)")
		fmt.Fprintln(out, "  password: (required)")
		fmt.Fprintln(out, "No account? Visit /register or /register/organizer.")
		return nil
	}

	if !v.inFlight.CompareAndSwap(false, true) {
		fmt.Fprintln(out, "Submitting...")
		return nil
	}
	defer v.inFlight.Store(false)

	sess, err := v.Client.Login(ctx, creds)
	if err != nil {
		renderError(out, err)
		return nil
	}

	v.logger().Info(ctx, "signed in", logger.String("role", string(sess.Role)))
	if sess.Role == model.RoleOrganizer {
		fmt.Fprintln(out, "Signed in as organizer. Your dashboard is at /organizer/dashboard.")
	} else {
		fmt.Fprintln(out, "Signed in as talent. Your dashboard is at /dashboard.")
	}
	return nil
}

// Logout clears the session and confirms.
type Logout struct {
	Deps
}

// NewLogout creates the logout screen.
func NewLogout(deps Deps) *Logout {
	return &Logout{Deps: deps}
}

// Run clears the session.
func (v *Logout) Run(ctx context.Context, out io.Writer) error {
	if err := v.Client.Logout(ctx); err != nil {
		renderError(out, err)
		return nil
	}
	fmt.Fprintln(out, "Signed out.")
	return nil
}
