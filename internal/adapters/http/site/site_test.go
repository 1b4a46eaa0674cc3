package site_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	site "github.com/Daesoo-Choi/skills-getting-started-with-github-copilot/internal/adapters/http/site"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRegister(t *testing.T) {
	Convey("Given the embedded site", t, func() {
		mux := http.NewServeMux()
		site.Register(context.Background(), mux)

		Convey("When requesting the root page", func() {
			req := httptest.NewRequest("GET", "/", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should serve the signup page", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "Mergington High School")
				So(w.Body.String(), ShouldContainSubstring, "id=\"signup-form\"")
			})
		})

		Convey("When requesting the script and stylesheet", func() {
			for _, path := range []string{"/app.js", "/styles.css"} {
				req := httptest.NewRequest("GET", path, nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				So(w.Code, ShouldEqual, http.StatusOK)
			}
		})

		Convey("When requesting a missing file", func() {
			req := httptest.NewRequest("GET", "/missing.txt", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			Convey("Then it should 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When registering with a nil mux", func() {
			So(func() { site.Register(context.Background(), nil) }, ShouldPanic)
		})
	})
}
