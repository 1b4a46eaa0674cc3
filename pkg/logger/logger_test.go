package logger_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		err := logger.Init()
		So(err, ShouldBeNil)

		Convey("When getting the global logger", func() {
			l := logger.Get()

			Convey("Then it should not be nil", func() {
				So(l, ShouldNotBeNil)
			})

			Convey("And logging at all levels should not panic", func() {
				ctx := context.Background()
				So(func() {
					l.Debug(ctx, "debug message", logger.String("k", "v"))
					l.Info(ctx, "info message", logger.Int("count", 1))
					l.Warn(ctx, "warn message", logger.Bool("flag", true))
					l.Error(ctx, "error message", logger.Error(errors.New("boom")))
				}, ShouldNotPanic)
			})
		})

		Convey("When creating a named logger", func() {
			l := logger.Named("signup")

			Convey("Then it should return a distinct logger", func() {
				So(l, ShouldNotBeNil)
				So(l, ShouldNotEqual, logger.Get())
			})
		})

		Convey("When syncing", func() {
			Convey("Then it should not error", func() {
				So(logger.Sync(), ShouldBeNil)
			})
		})
	})
}

func TestSetLevelString(t *testing.T) {
	Convey("Given the global level var", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("When setting known levels", func() {
			for _, level := range []string{"debug", "info", "warn", "warning", "error", "", "  INFO  "} {
				So(logger.SetLevelString(level), ShouldBeNil)
			}
		})

		Convey("When setting an unknown level", func() {
			err := logger.SetLevelString("loud")

			Convey("Then it should error", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When setting a level directly", func() {
			So(func() { logger.SetLevel(slog.LevelWarn) }, ShouldNotPanic)
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		Convey("Then each should carry its key and value", func() {
			So(logger.String("a", "b"), ShouldResemble, logger.Field{Key: "a", Value: "b"})
			So(logger.Int("n", 7), ShouldResemble, logger.Field{Key: "n", Value: 7})
			So(logger.Bool("ok", true), ShouldResemble, logger.Field{Key: "ok", Value: true})
			So(logger.Any("x", 1.5), ShouldResemble, logger.Field{Key: "x", Value: 1.5})

			err := errors.New("bad")
			So(logger.Error(err), ShouldResemble, logger.Field{Key: "error", Value: err})
		})
	})
}
