package filter_test

import (
	"testing"

	"github.com/beksultan/talentlink/internal/domain/filter"
	"github.com/beksultan/talentlink/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleEvents() []model.Event {
	return []model.Event{
		{
			ID:          1,
			Title:       "Dance Night",
			Description: "An evening of contemporary dance",
			Location:    "Main Hall",
			RequiredSkills: []model.Skill{
				{ID: 1, Name: "choreography"},
				{ID: 2, Name: "stage presence"},
			},
		},
		{
			ID:          2,
			Title:       "Poetry Slam",
			Description: "Open mic for spoken word",
			Location:    "Library Atrium",
			RequiredSkills: []model.Skill{
				{ID: 3, Name: "writing"},
			},
			FacultyRestriction: true,
			Faculties: []model.Faculty{
				{ID: 10, Name: "Philology"},
			},
		},
		{
			ID:       3,
			Title:    "Hackathon",
			Location: "Engineering Building",
			RequiredSkills: []model.Skill{
				{ID: 4, Name: "programming"},
			},
			FacultyRestriction: true,
			Faculties: []model.Faculty{
				{ID: 11, Name: "Computer Science"},
			},
		},
	}
}

func TestApply(t *testing.T) {
	Convey("Given a list of events", t, func() {
		events := sampleEvents()

		Convey("When no filter is set", func() {
			got := filter.Apply(events, filter.Filter{})

			Convey("Then every event passes", func() {
				So(got, ShouldHaveLength, len(events))
			})
		})

		Convey("When searching for 'dance'", func() {
			got := filter.Apply(events, filter.Filter{SearchTerm: "dance"})

			Convey("Then exactly Dance Night is returned", func() {
				So(got, ShouldHaveLength, 1)
				So(got[0].Title, ShouldEqual, "Dance Night")
			})
		})

		Convey("When the search term differs only in case", func() {
			got := filter.Apply(events, filter.Filter{SearchTerm: "DANCE"})

			Convey("Then matching is case-insensitive", func() {
				So(got, ShouldHaveLength, 1)
				So(got[0].ID, ShouldEqual, 1)
			})
		})

		Convey("When the search term matches a location", func() {
			got := filter.Apply(events, filter.Filter{SearchTerm: "atrium"})

			Convey("Then the location field is searched too", func() {
				So(got, ShouldHaveLength, 1)
				So(got[0].ID, ShouldEqual, 2)
			})
		})

		Convey("When the search term matches a faculty name", func() {
			got := filter.Apply(events, filter.Filter{SearchTerm: "philology"})

			So(got, ShouldHaveLength, 1)
			So(got[0].ID, ShouldEqual, 2)
		})

		Convey("When filtering by faculty", func() {
			got := filter.Apply(events, filter.Filter{FacultyID: "10"})

			Convey("Then unrestricted events pass alongside matching restricted ones", func() {
				So(got, ShouldHaveLength, 2)
				So(got[0].ID, ShouldEqual, 1)
				So(got[1].ID, ShouldEqual, 2)
			})
		})

		Convey("When the faculty selection is 'all'", func() {
			got := filter.Apply(events, filter.Filter{FacultyID: filter.AllFaculties})

			Convey("Then every event passes, restricted or not", func() {
				So(got, ShouldHaveLength, len(events))
			})
		})

		Convey("When filtering by skills", func() {
			got := filter.Apply(events, filter.Filter{SkillIDs: []int{2, 4}})

			Convey("Then events with an intersecting skill set are retained", func() {
				So(got, ShouldHaveLength, 2)
				So(got[0].ID, ShouldEqual, 1)
				So(got[1].ID, ShouldEqual, 3)
			})
		})

		Convey("When the selected skills are disjoint from every event", func() {
			got := filter.Apply(events, filter.Filter{SkillIDs: []int{99}})

			So(got, ShouldBeEmpty)
		})

		Convey("When all three predicates are set", func() {
			f := filter.Filter{SearchTerm: "e", FacultyID: "11", SkillIDs: []int{4}}
			got := filter.Apply(events, f)

			Convey("Then they are ANDed", func() {
				So(got, ShouldHaveLength, 1)
				So(got[0].ID, ShouldEqual, 3)
			})
		})
	})
}

func TestApplyProperties(t *testing.T) {
	Convey("Given any filter state", t, func() {
		events := sampleEvents()
		filters := []filter.Filter{
			{},
			{SearchTerm: "dance"},
			{FacultyID: "10"},
			{SkillIDs: []int{1, 3}},
			{SearchTerm: "e", FacultyID: filter.AllFaculties, SkillIDs: []int{4}},
		}

		Convey("Then filtering never invents records", func() {
			byID := make(map[int]bool, len(events))
			for _, e := range events {
				byID[e.ID] = true
			}
			for _, f := range filters {
				for _, e := range filter.Apply(events, f) {
					So(byID[e.ID], ShouldBeTrue)
				}
			}
		})

		Convey("Then filtering is idempotent", func() {
			for _, f := range filters {
				once := filter.Apply(events, f)
				twice := filter.Apply(once, f)
				So(twice, ShouldResemble, once)
			}
		})

		Convey("Then unrestricted events pass every faculty selection", func() {
			open := events[0] // no faculty restriction
			for _, id := range []string{"", filter.AllFaculties, "10", "11", "12345"} {
				got := filter.Apply([]model.Event{open}, filter.Filter{FacultyID: id})
				So(got, ShouldHaveLength, 1)
			}
		})

		Convey("Then the input slice is never mutated", func() {
			before := sampleEvents()
			filter.Apply(events, filter.Filter{SearchTerm: "dance", SkillIDs: []int{1}})
			So(events, ShouldResemble, before)
		})
	})
}
