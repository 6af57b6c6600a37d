package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/footprint/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadDefaults(t *testing.T) {
	Convey("Given no configuration sources", t, func() {
		ctx := context.Background()

		Convey("When loading", func() {
			cfg, err := config.Load(ctx)

			Convey("Then the defaults are returned", func() {
				So(err, ShouldBeNil)
				So(cfg.LogLevel, ShouldEqual, "info")
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.SessionTTLMinutes, ShouldEqual, 60)
				So(cfg.SessionSweepSeconds, ShouldEqual, 60)
				So(cfg.MaxSessions, ShouldEqual, 10_000)
				So(cfg.MaxHistoryLimit, ShouldEqual, 1_000)
				So(cfg.SessionCookie, ShouldEqual, "footprint_session")
			})
		})
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	Convey("Given environment overrides", t, func() {
		ctx := context.Background()
		t.Setenv("FOOTPRINT_ADDR", ":9090")
		t.Setenv("FOOTPRINT_LOG_LEVEL", "debug")
		t.Setenv("FOOTPRINT_MAX_SESSIONS", "25")

		Convey("When loading", func() {
			cfg, err := config.Load(ctx)

			Convey("Then env values override the defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9090")
				So(cfg.LogLevel, ShouldEqual, "debug")
				So(cfg.MaxSessions, ShouldEqual, 25)
				// Untouched keys keep their defaults.
				So(cfg.SessionTTLMinutes, ShouldEqual, 60)
			})
		})
	})
}

func TestLoadFile(t *testing.T) {
	Convey("Given a YAML config file", t, func() {
		ctx := context.Background()
		path := filepath.Join(t.TempDir(), "config.yaml")
		yaml := "addr: \":7070\"\nsession_ttl_minutes: 15\nsession_cookie: \"fp_sid\"\n"
		So(os.WriteFile(path, []byte(yaml), 0o600), ShouldBeNil)
		t.Setenv("FOOTPRINT_CONFIG", path)

		Convey("When loading", func() {
			cfg, err := config.Load(ctx)

			Convey("Then file values override the defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":7070")
				So(cfg.SessionTTLMinutes, ShouldEqual, 15)
				So(cfg.SessionCookie, ShouldEqual, "fp_sid")
			})
		})

		Convey("When an env var overrides a file value", func() {
			t.Setenv("FOOTPRINT_ADDR", ":6060")
			cfg, err := config.Load(ctx)

			Convey("Then env wins over file", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":6060")
				So(cfg.SessionTTLMinutes, ShouldEqual, 15)
			})
		})
	})

	Convey("Given a missing config file", t, func() {
		ctx := context.Background()
		t.Setenv("FOOTPRINT_CONFIG", "/nonexistent/config.yaml")

		Convey("When loading", func() {
			_, err := config.Load(ctx)

			Convey("Then a load error is reported", func() {
				So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
			})
		})
	})
}

func TestLoadValidation(t *testing.T) {
	Convey("Given invalid configuration values", t, func() {
		ctx := context.Background()

		Convey("When the TTL is below one minute", func() {
			t.Setenv("FOOTPRINT_SESSION_TTL_MINUTES", "0")
			_, err := config.Load(ctx)

			Convey("Then validation rejects it", func() {
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})

		Convey("When the session cookie name is blank", func() {
			t.Setenv("FOOTPRINT_SESSION_COOKIE", "")
			_, err := config.Load(ctx)

			Convey("Then validation rejects it", func() {
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})

		Convey("When the history limit is zero", func() {
			t.Setenv("FOOTPRINT_MAX_HISTORY_LIMIT", "0")
			_, err := config.Load(ctx)

			Convey("Then validation rejects it", func() {
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}
