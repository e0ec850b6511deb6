package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestFieldFlags(t *testing.T) {
	convey.Convey("Given an empty field set", t, func() {
		fields := fieldFlags{}

		convey.Convey("When setting key=value pairs", func() {
			convey.So(fields.Set("title=Dance Night"), convey.ShouldBeNil)
			convey.So(fields.Set("status=draft"), convey.ShouldBeNil)

			convey.Convey("Then the values are recorded", func() {
				convey.So(fields["title"], convey.ShouldEqual, "Dance Night")
				convey.So(fields["status"], convey.ShouldEqual, "draft")
			})
		})

		convey.Convey("When the pair is malformed", func() {
			convey.So(fields.Set("no-equals"), convey.ShouldNotBeNil)
			convey.So(fields.Set("=empty-key"), convey.ShouldNotBeNil)
		})
	})
}

func TestBuildInput(t *testing.T) {
	convey.Convey("Given command line arguments", t, func() {
		convey.Convey("When a skills filter is parsed", func() {
			in, err := buildInput(fieldFlags{}, fieldFlags{}, "dance", "3", "1, 2", "", "", "")

			convey.So(err, convey.ShouldBeNil)
			convey.So(in.Filter.SearchTerm, convey.ShouldEqual, "dance")
			convey.So(in.Filter.FacultyID, convey.ShouldEqual, "3")
			convey.So(in.Filter.SkillIDs, convey.ShouldResemble, []int{1, 2})
		})

		convey.Convey("When a skill id is not a number", func() {
			_, err := buildInput(fieldFlags{}, fieldFlags{}, "", "", "one", "", "", "")

			convey.So(err, convey.ShouldNotBeNil)
		})

		convey.Convey("When attachments are staged under their field names", func() {
			dir := t.TempDir()
			posterPath := filepath.Join(dir, "poster.png")
			avatarPath := filepath.Join(dir, "me.png")
			convey.So(os.WriteFile(posterPath, []byte{1, 2, 3}, 0o600), convey.ShouldBeNil)
			convey.So(os.WriteFile(avatarPath, []byte{4, 5}, 0o600), convey.ShouldBeNil)

			in, err := buildInput(fieldFlags{}, fieldFlags{"image": posterPath, "avatar": avatarPath},
				"", "", "", "", "", "")

			convey.So(err, convey.ShouldBeNil)
			poster, ok := in.Form.File("image")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(poster.Name, convey.ShouldEqual, "poster.png")
			convey.So(poster.Content, convey.ShouldResemble, []byte{1, 2, 3})
			avatar, ok := in.Form.File("avatar")
			convey.So(ok, convey.ShouldBeTrue)
			convey.So(avatar.Name, convey.ShouldEqual, "me.png")
		})

		convey.Convey("When an attachment path does not exist", func() {
			_, err := buildInput(fieldFlags{}, fieldFlags{"avatar": "/no/such/file.png"},
				"", "", "", "", "", "")

			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}
