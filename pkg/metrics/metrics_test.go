package metrics_test

import (
	"testing"

	"github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewManager(t *testing.T) {
	Convey("Given metrics manager options", t, func() {
		Convey("When creating a manager with a fresh registry", func() {
			reg := prometheus.NewRegistry()
			m := metrics.NewManager(
				metrics.WithPrometheusRegistry(reg),
				metrics.WithNamespace("school"),
				metrics.WithSubsystem("signup"),
				metrics.WithHistogramBuckets([]float64{1, 5, 10}),
			)

			Convey("Then it should register metrics on that registry", func() {
				So(m, ShouldNotBeNil)
				families, err := reg.Gather()
				So(err, ShouldBeNil)
				// Counters report nothing until first increment; gauges appear immediately.
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})

		Convey("When creating a disabled manager", func() {
			reg := prometheus.NewRegistry()
			m := metrics.NewManager(
				metrics.WithPrometheusRegistry(reg),
				metrics.WithMetricsEnabled(false),
			)

			Convey("Then construction should still succeed", func() {
				So(m, ShouldNotBeNil)
			})
		})
	})
}

func TestGlobalHelpers(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording domain metrics", func() {
			So(func() {
				metrics.RecordSignup()
				metrics.RecordRemoval()
				metrics.RecordRejectedSignup("duplicate")
				metrics.RecordRejectedSignup("activity_not_found")
				metrics.UpdateActivityCount(9)
				metrics.UpdateParticipantCount(21)
				metrics.UpdateRosterSize("Chess Club", 2)
			}, ShouldNotPanic)
		})

		Convey("When recording HTTP and system metrics", func() {
			So(func() {
				metrics.RecordHTTPRequest("activities", "GET", "200")
				metrics.RecordHTTPRequestDuration("activities", "GET", "200", 1.5)
				metrics.RecordErrorByType("not_found", "medium")
				metrics.RecordErrorByEndpoint("signup", "POST", "client_error")
				metrics.UpdateSystemMemoryUsage(1 << 20)
				metrics.UpdateSystemGoroutineCount(8)
				metrics.RecordSystemGCPauseTime(0.25)
			}, ShouldNotPanic)
		})

		Convey("When gathering from the global registry", func() {
			families, err := metrics.GetRegistry().Gather()

			Convey("Then recorded metrics should be present", func() {
				So(err, ShouldBeNil)

				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["mergington_activities_signups_total"], ShouldBeTrue)
				So(names["mergington_activities_removals_total"], ShouldBeTrue)
				So(names["mergington_activities_roster_size"], ShouldBeTrue)
			})
		})
	})
}
