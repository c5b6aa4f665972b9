package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apprep.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	convey.Convey("Given the config loader", t, func() {
		convey.Convey("When no file is given", func() {
			cfg, err := Load("")

			convey.Convey("Then the defaults are returned", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
				convey.So(cfg.MetricsFile, convey.ShouldBeEmpty)
				convey.So(cfg.Overwrite, convey.ShouldBeTrue)
				convey.So(cfg.Verify, convey.ShouldEqual, "full")
			})
		})

		convey.Convey("When a YAML file sets some keys", func() {
			path := writeConfig(t, "log_level: debug\nmetrics_file: /tmp/apprep.prom\noverwrite: false\n")
			cfg, err := Load(path)

			convey.Convey("Then they override the defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.MetricsFile, convey.ShouldEqual, "/tmp/apprep.prom")
				convey.So(cfg.Overwrite, convey.ShouldBeFalse)
			})

			convey.Convey("And unset keys keep their defaults", func() {
				convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
				convey.So(cfg.Verify, convey.ShouldEqual, "full")
			})
		})

		convey.Convey("When the file does not exist", func() {
			_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

			convey.Convey("Then ErrLoadConfig is returned", func() {
				convey.So(errors.Is(err, ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the file is not valid YAML", func() {
			_, err := Load(writeConfig(t, "log_level: [debug\n"))

			convey.Convey("Then ErrLoadConfig is returned", func() {
				convey.So(errors.Is(err, ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the file holds an invalid value", func() {
			_, err := Load(writeConfig(t, "log_format: xml\n"))

			convey.Convey("Then ErrInvalidConfig is returned", func() {
				convey.So(errors.Is(err, ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func TestValidate(t *testing.T) {
	convey.Convey("Given a default config", t, func() {
		cfg := New()

		convey.Convey("Then it is valid", func() {
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("When the log level is unknown", func() {
			cfg.LogLevel = "loud"
			convey.So(errors.Is(cfg.Validate(), ErrInvalidConfig), convey.ShouldBeTrue)
		})

		convey.Convey("When the log format is JSON in upper case", func() {
			cfg.LogFormat = "JSON"
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("When the verify mode is unknown", func() {
			cfg.Verify = "deep"
			convey.So(errors.Is(cfg.Validate(), ErrInvalidConfig), convey.ShouldBeTrue)
		})
	})
}
