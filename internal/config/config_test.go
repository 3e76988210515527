package config_test

import (
	"errors"
	"testing"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":8050")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.TopK, convey.ShouldEqual, 3)
			convey.So(cfg.HallOfFameSize, convey.ShouldEqual, 10)
			convey.So(cfg.MinEditionYear, convey.ShouldEqual, 1999)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		cfg := config.New()

		convey.Convey("When top_k is zero", func() {
			cfg.TopK = 0

			convey.Convey("Then validation should fail with ErrInvalidConfig", func() {
				err := cfg.Validate()
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "top_k")
			})
		})

		convey.Convey("When the regions path is blank", func() {
			cfg.RegionsPath = "  "

			convey.Convey("Then validation should fail", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When the minimum edition predates the modern games", func() {
			cfg.MinEditionYear = 1800

			convey.Convey("Then validation should fail", func() {
				convey.So(cfg.Validate(), convey.ShouldNotBeNil)
			})
		})
	})
}
