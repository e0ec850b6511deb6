package cache_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/beksultan/talentlink/internal/adapters/cache"
	"github.com/beksultan/talentlink/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStore(t *testing.T) {
	Convey("Given a cache store on a temp database", t, func() {
		ctx := context.Background()
		now := time.Now()
		clock := func() time.Time { return now }

		store, err := cache.Open(
			filepath.Join(t.TempDir(), "reference.db"),
			cache.WithTTL(time.Minute),
			cache.WithClock(clock),
		)
		So(err, ShouldBeNil)
		defer store.Close()

		skills := []model.Skill{{ID: 1, Name: "dance"}, {ID: 2, Name: "song"}}

		Convey("When looking up an empty cache", func() {
			var got []model.Skill
			So(store.Lookup(ctx, "skills", &got), ShouldBeFalse)
		})

		Convey("When a list is saved", func() {
			So(store.Save(ctx, "skills", skills), ShouldBeNil)

			Convey("Then a fresh lookup hits", func() {
				var got []model.Skill
				So(store.Lookup(ctx, "skills", &got), ShouldBeTrue)
				So(got, ShouldResemble, skills)
			})

			Convey("Then another kind stays a miss", func() {
				var got []model.Faculty
				So(store.Lookup(ctx, "faculties", &got), ShouldBeFalse)
			})

			Convey("And the TTL elapses", func() {
				now = now.Add(2 * time.Minute)

				Convey("Then the entry is stale and misses", func() {
					var got []model.Skill
					So(store.Lookup(ctx, "skills", &got), ShouldBeFalse)
				})
			})

			Convey("And the entry is replaced", func() {
				updated := []model.Skill{{ID: 3, Name: "acting"}}
				So(store.Save(ctx, "skills", updated), ShouldBeNil)

				var got []model.Skill
				So(store.Lookup(ctx, "skills", &got), ShouldBeTrue)
				So(got, ShouldResemble, updated)
			})

			Convey("And the entry is invalidated", func() {
				So(store.Invalidate(ctx, "skills"), ShouldBeNil)

				var got []model.Skill
				So(store.Lookup(ctx, "skills", &got), ShouldBeFalse)
			})
		})

		Convey("When the store is reopened", func() {
			So(store.Save(ctx, "faculties", []model.Faculty{{ID: 10, Name: "Arts"}}), ShouldBeNil)
			path := filepath.Join(t.TempDir(), "reference.db")
			other, err := cache.Open(path, cache.WithClock(clock))
			So(err, ShouldBeNil)
			defer other.Close()

			Convey("Then each database is independent", func() {
				var got []model.Faculty
				So(other.Lookup(ctx, "faculties", &got), ShouldBeFalse)
			})
		})
	})
}
