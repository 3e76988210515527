package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/config"
	"github.com/alexdes2202/inf8808-team7-deploy/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func testConfig() *config.Config {
	cfg := config.New()
	cfg.AthletesPath = "../internal/dataset/testdata/athlete_events.csv"
	cfg.RegionsPath = "../internal/dataset/testdata/noc_regions.csv"
	return cfg
}

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)

		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("OLYMPICS_ADDR", ":8080")
			_ = os.Setenv("OLYMPICS_TOP_K", "4")
			defer func() {
				_ = os.Unsetenv("OLYMPICS_ADDR")
				_ = os.Unsetenv("OLYMPICS_TOP_K")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.TopK, convey.ShouldEqual, 4)
			})
		})

		convey.Convey("When the service is built from the configuration", func() {
			cfg := testConfig()
			cfg.HallOfFameSize = 1
			svc := newService(cfg, logger.Get())
			convey.So(svc.Start(context.Background()), convey.ShouldBeNil)
			defer svc.Stop()

			convey.Convey("Then its options should follow the configuration", func() {
				stats := svc.GetStats()
				convey.So(stats["started"], convey.ShouldEqual, true)
				convey.So(stats["hallOfFameSize"], convey.ShouldEqual, 1)
				convey.So(stats["rows"], convey.ShouldEqual, 8)
			})

			convey.Convey("And the routes should serve the loaded data", func() {
				mux := newMux(context.Background(), svc)
				req := httptest.NewRequest(http.MethodGet, "/api/charts/hall-of-fame?sport=Athletics", nil)
				w := httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(w.Body.String(), convey.ShouldContainSubstring, "Usain Bolt")

				req = httptest.NewRequest(http.MethodGet, "/", nil)
				w = httptest.NewRecorder()
				mux.ServeHTTP(w, req)
				convey.So(w.Code, convey.ShouldEqual, http.StatusFound)
			})
		})
	})
}

func TestRun(t *testing.T) {
	convey.Convey("Given a configuration pointing at missing files", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)
		cfg := config.New()
		cfg.AthletesPath = "/nonexistent/athlete_events.csv"

		convey.Convey("Then run should fail before serving", func() {
			err := run(context.Background(), cfg, logger.Get())
			convey.So(err, convey.ShouldNotBeNil)
		})
	})

	convey.Convey("Given a valid configuration on a free port", t, func() {
		convey.So(logger.Init(), convey.ShouldBeNil)
		cfg := testConfig()
		cfg.Addr = "127.0.0.1:0"

		convey.Convey("Then run should stop cleanly once cancelled", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
			defer cancel()
			convey.So(run(ctx, cfg, logger.Get()), convey.ShouldBeNil)
		})
	})
}

func TestSystemMetrics(t *testing.T) {
	convey.Convey("Given the system metrics updater", t, func() {
		convey.Convey("Then a single update should not panic", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
		})

		convey.Convey("And the loop should return once cancelled", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.So(func() {
				startSystemMetricsUpdater(ctx)
			}, convey.ShouldNotPanic)
		})
	})
}
