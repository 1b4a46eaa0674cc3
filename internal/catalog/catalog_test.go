package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	catalog "github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/internal/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuiltIn(t *testing.T) {
	Convey("Given the built-in catalog", t, func() {
		activities := catalog.BuiltIn()

		Convey("Then it should contain the nine school activities", func() {
			So(len(activities), ShouldEqual, 9)

			names := make(map[string]bool, len(activities))
			for _, a := range activities {
				names[a.Name] = true
			}
			for _, want := range []string{
				"Chess Club", "Programming Class", "Gym Class", "Basketball Team",
				"Tennis Club", "Drama Club", "Robotics Club", "Art Studio", "Debate Team",
			} {
				So(names[want], ShouldBeTrue)
			}
		})

		Convey("Then every activity should carry all required fields", func() {
			for _, a := range activities {
				So(a.Name, ShouldNotBeBlank)
				So(a.Description, ShouldNotBeBlank)
				So(a.Schedule, ShouldNotBeBlank)
				So(a.MaxParticipants, ShouldBeGreaterThan, 0)
			}
		})

		Convey("Then Chess Club should keep its seeded roster", func() {
			for _, a := range activities {
				if a.Name != "Chess Club" {
					continue
				}
				So(a.Roster.Contains("michael@mergington.edu"), ShouldBeTrue)
				So(a.Roster.Contains("daniel@mergington.edu"), ShouldBeTrue)
			}
		})
	})
}

func TestLoadFile(t *testing.T) {
	ctx := context.Background()

	Convey("Given a catalog YAML file", t, func() {
		dir := t.TempDir()

		write := func(name, body string) string {
			path := filepath.Join(dir, name)
			So(os.WriteFile(path, []byte(body), 0o600), ShouldBeNil)
			return path
		}

		Convey("When the file is well formed", func() {
			path := write("catalog.yaml", `
activities:
  Chess Club:
    description: Weekly chess meetups
    schedule: Fridays, 3:30 PM - 5:00 PM
    max_participants: 8
    participants:
      - michael@mergington.edu
  Coding Dojo:
    description: Pair programming practice
    schedule: Mondays, 4:00 PM - 5:00 PM
    max_participants: 10
`)
			activities, err := catalog.LoadFile(ctx, path)

			Convey("Then it should load both activities", func() {
				So(err, ShouldBeNil)
				So(len(activities), ShouldEqual, 2)

				byName := map[string]int{}
				for i, a := range activities {
					byName[a.Name] = i
				}
				chess := activities[byName["Chess Club"]]
				So(chess.MaxParticipants, ShouldEqual, 8)
				So(chess.Roster.Contains("michael@mergington.edu"), ShouldBeTrue)
				So(activities[byName["Coding Dojo"]].Roster.Len(), ShouldEqual, 0)
			})
		})

		Convey("When the file is missing", func() {
			_, err := catalog.LoadFile(ctx, filepath.Join(dir, "missing.yaml"))

			Convey("Then it should report a load failure", func() {
				So(err, ShouldWrap, catalog.ErrLoadCatalog)
			})
		})

		Convey("When the file has no activities", func() {
			path := write("empty.yaml", "activities: {}\n")
			_, err := catalog.LoadFile(ctx, path)

			Convey("Then it should be rejected as invalid", func() {
				So(err, ShouldWrap, catalog.ErrInvalidCatalog)
			})
		})

		Convey("When an activity is missing required fields", func() {
			path := write("partial.yaml", `
activities:
  Mystery Club:
    max_participants: 5
`)
			_, err := catalog.LoadFile(ctx, path)

			Convey("Then it should be rejected as invalid", func() {
				So(err, ShouldWrap, catalog.ErrInvalidCatalog)
			})
		})
	})
}
