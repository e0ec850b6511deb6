// Package views implements the client's screens. Every screen follows the
// same lifecycle: load its data through the API client, render a populated
// view, and convert any request failure into a displayed message rather than
// letting it escape. Mutating screens refuse to double-submit while a
// request is in flight.
package views

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/beksultan/talentlink/internal/adapters/api"
	"github.com/beksultan/talentlink/internal/domain/model"
	"github.com/beksultan/talentlink/internal/gateway"
	"github.com/beksultan/talentlink/internal/session"
	"github.com/beksultan/talentlink/pkg/logger"
)

// Deps bundles what every screen needs.
type Deps struct {
	Client   *api.Client
	Sessions *session.Store
	Log      logger.Logger
}

func (d Deps) logger() logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Named("views")
}

// renderError writes a request failure as a user-facing banner. Not-found
// responses get an empty-state message with a call to action instead.
func renderError(out io.Writer, err error) {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) && apiErr.NotFound() {
		fmt.Fprintln(out, "Nothing here yet.")
		return
	}
	if errors.Is(err, gateway.ErrUnauthorized) {
		fmt.Fprintln(out, "Your session has expired. Please sign in again.")
		return
	}
	fmt.Fprintf(out, "Error: %v\n", err)
}

func renderHeader(out io.Writer, title string) {
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, strings.Repeat("=", len(title)))
}

func renderEventLine(out io.Writer, e model.Event) {
	fmt.Fprintf(out, "  #%d  %s", e.ID, e.Title)
	if e.Date != "" {
		fmt.Fprintf(out, "  (%s", e.Date)
		if e.Location != "" {
			fmt.Fprintf(out, ", %s", e.Location)
		}
		fmt.Fprint(out, ")")
	}
	if e.Status != "" && e.Status != model.StatusPublished {
		fmt.Fprintf(out, "  [%s]", e.Status)
	}
	fmt.Fprintln(out)
}

func skillNames(skills []model.Skill) string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

func facultyNames(faculties []model.Faculty) string {
	names := make([]string, 0, len(faculties))
	for _, f := range faculties {
		names = append(names, f.Name)
	}
	return strings.Join(names, ", ")
}
