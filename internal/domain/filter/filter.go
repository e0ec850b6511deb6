// Package filter narrows in-memory event lists by search term, faculty, and
// required skills. Filtering is a pure function of (events, Filter); it never
// mutates or reorders its input.
package filter

import (
	"strconv"
	"strings"

	"github.com/beksultan/talentlink/internal/domain/model"
)

// AllFaculties selects every event regardless of faculty restriction.
const AllFaculties = "all"

// Filter is the browse screen's filter state.
type Filter struct {
	// SearchTerm is matched case-insensitively against title, description,
	// location, and faculty names. Empty matches everything.
	SearchTerm string

	// FacultyID is the selected faculty id as a string, or AllFaculties.
	// Empty is treated as AllFaculties.
	FacultyID string

	// SkillIDs is the selected skill id set. Empty matches everything.
	SkillIDs []int
}

// Apply returns the subsequence of events passing all three predicates.
func Apply(events []model.Event, f Filter) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if f.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (f Filter) matches(e model.Event) bool {
	return f.matchesSearch(e) && f.matchesFaculty(e) && f.matchesSkills(e)
}

func (f Filter) matchesSearch(e model.Event) bool {
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Title), term) ||
		strings.Contains(strings.ToLower(e.Description), term) ||
		strings.Contains(strings.ToLower(e.Location), term) {
		return true
	}
	for _, fac := range e.Faculties {
		if strings.Contains(strings.ToLower(fac.Name), term) {
			return true
		}
	}
	return false
}

// matchesFaculty passes unrestricted events for every selection, and
// restricted events only when the selected faculty is in their list.
func (f Filter) matchesFaculty(e model.Event) bool {
	if f.FacultyID == "" || f.FacultyID == AllFaculties {
		return true
	}
	if !e.FacultyRestriction {
		return true
	}
	for _, fac := range e.Faculties {
		if strconv.Itoa(fac.ID) == f.FacultyID {
			return true
		}
	}
	return false
}

// matchesSkills is set intersection; an empty selection passes everything.
func (f Filter) matchesSkills(e model.Event) bool {
	if len(f.SkillIDs) == 0 {
		return true
	}
	for _, want := range f.SkillIDs {
		for _, s := range e.RequiredSkills {
			if s.ID == want {
				return true
			}
		}
	}
	return false
}
