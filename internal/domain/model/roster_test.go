package model_test

import (
	"testing"

	model "github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRoster(t *testing.T) {
	Convey("Given a new roster", t, func() {
		Convey("When creating it with seed emails", func() {
			r := model.NewRoster("a@mergington.edu", "b@mergington.edu")

			Convey("Then it should contain both in insertion order", func() {
				So(r.Len(), ShouldEqual, 2)
				So(r.Emails(), ShouldResemble, []string{"a@mergington.edu", "b@mergington.edu"})
				So(r.Contains("a@mergington.edu"), ShouldBeTrue)
			})
		})

		Convey("When seeding with duplicates", func() {
			r := model.NewRoster("a@mergington.edu", "a@mergington.edu")

			Convey("Then duplicates should be dropped", func() {
				So(r.Len(), ShouldEqual, 1)
			})
		})

		Convey("When adding emails", func() {
			r := model.NewRoster()

			Convey("And the email is new", func() {
				added := r.Add("new@mergington.edu")

				Convey("Then it should be recorded", func() {
					So(added, ShouldBeTrue)
					So(r.Contains("new@mergington.edu"), ShouldBeTrue)
					So(r.Len(), ShouldEqual, 1)
				})
			})

			Convey("And the email is already present", func() {
				r.Add("new@mergington.edu")
				added := r.Add("new@mergington.edu")

				Convey("Then the roster should not change", func() {
					So(added, ShouldBeFalse)
					So(r.Len(), ShouldEqual, 1)
				})
			})

			Convey("And several emails are added", func() {
				for _, e := range []string{"c@x", "a@x", "b@x"} {
					r.Add(e)
				}

				Convey("Then order should follow insertion, not sorting", func() {
					So(r.Emails(), ShouldResemble, []string{"c@x", "a@x", "b@x"})
				})
			})
		})

		Convey("When removing emails", func() {
			r := model.NewRoster("a@x", "b@x", "c@x")

			Convey("And the email exists", func() {
				removed := r.Remove("b@x")

				Convey("Then it should shrink the roster and keep order", func() {
					So(removed, ShouldBeTrue)
					So(r.Len(), ShouldEqual, 2)
					So(r.Emails(), ShouldResemble, []string{"a@x", "c@x"})
					So(r.Contains("b@x"), ShouldBeFalse)
				})
			})

			Convey("And the email does not exist", func() {
				removed := r.Remove("nope@x")

				Convey("Then nothing should change", func() {
					So(removed, ShouldBeFalse)
					So(r.Len(), ShouldEqual, 3)
				})
			})

			Convey("And the email is removed and re-added", func() {
				r.Remove("a@x")
				added := r.Add("a@x")

				Convey("Then it should rejoin at the end of the order", func() {
					So(added, ShouldBeTrue)
					So(r.Emails(), ShouldResemble, []string{"b@x", "c@x", "a@x"})
				})
			})
		})

		Convey("When reading emails from a roster", func() {
			r := model.NewRoster("a@x")
			emails := r.Emails()
			emails[0] = "mutated@x"

			Convey("Then the returned slice should be a copy", func() {
				So(r.Emails(), ShouldResemble, []string{"a@x"})
			})
		})
	})
}

func TestActivityAtCapacity(t *testing.T) {
	Convey("Given an activity with a capacity of 2", t, func() {
		a := model.Activity{
			Name:            "Chess Club",
			MaxParticipants: 2,
			Roster:          model.NewRoster("a@x"),
		}

		Convey("When the roster is below capacity", func() {
			So(a.AtCapacity(), ShouldBeFalse)
		})

		Convey("When the roster reaches capacity", func() {
			a.Roster.Add("b@x")
			So(a.AtCapacity(), ShouldBeTrue)
		})

		Convey("When capacity is non-positive", func() {
			a.MaxParticipants = 0
			a.Roster.Add("b@x")

			Convey("Then it should never be at capacity", func() {
				So(a.AtCapacity(), ShouldBeFalse)
			})
		})
	})
}
