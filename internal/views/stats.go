package views

import (
	"context"
	"fmt"
	"io"
	"sort"
)

// FacultyStats shows the aggregate counters for the talent's faculty, or a
// pointer to set one when the profile has none.
type FacultyStats struct {
	Deps
}

// NewFacultyStats creates the faculty stats screen.
func NewFacultyStats(deps Deps) *FacultyStats {
	return &FacultyStats{Deps: deps}
}

// Run fetches and renders the stats.
func (v *FacultyStats) Run(ctx context.Context, out io.Writer) error {
	stats, err := v.Client.FacultyStats(ctx)
	if err != nil {
		renderError(out, err)
		return nil
	}

	renderHeader(out, "Faculty")
	if stats.Faculty == nil {
		if stats.Message != "" {
			fmt.Fprintln(out, stats.Message)
		} else {
			fmt.Fprintln(out, "No faculty on your profile yet; set one at /profile.")
		}
		return nil
	}

	fmt.Fprintln(out, stats.Faculty.Name)
	if stats.Faculty.ShortName != "" {
		fmt.Fprintf(out, "(%s)\n", stats.Faculty.ShortName)
	}
	if stats.Faculty.Description != "" {
		fmt.Fprintln(out, stats.Faculty.Description)
	}
	fmt.Fprintf(out, "Students: %d  Applications: %d\n",
		stats.Stats.TotalUsers, stats.Stats.TotalApplications)
	return nil
}

// UserActivity shows the current user's activity counters and the per-skill
// application breakdown.
type UserActivity struct {
	Deps
}

// NewUserActivity creates the activity screen.
func NewUserActivity(deps Deps) *UserActivity {
	return &UserActivity{Deps: deps}
}

// Run fetches and renders the counters.
func (v *UserActivity) Run(ctx context.Context, out io.Writer) error {
	stats, err := v.Client.ActivityStats(ctx)
	if err != nil {
		renderError(out, err)
		return nil
	}

	renderHeader(out, "My activity")
	fmt.Fprintf(out, "Applications: %d total, %d approved\n",
		stats.TotalApplications, stats.ApprovedApplications)

	if len(stats.SkillStats) > 0 {
		fmt.Fprintln(out, "Events by skill:")
		names := make([]string, 0, len(stats.SkillStats))
		for name := range stats.SkillStats {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(out, "  %s: %d\n", name, stats.SkillStats[name])
		}
	}
	return nil
}
