package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/beksultan/talentlink/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.BaseURL, convey.ShouldEqual, "http://127.0.0.1:8000")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.TimeoutMS, convey.ShouldEqual, 30_000)
				convey.So(cfg.SessionFile, convey.ShouldNotBeEmpty)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("TALENTLINK_BASE_URL", "https://platform.example.org")
			_ = os.Setenv("TALENTLINK_TIMEOUT_MS", "5000")
			_ = os.Setenv("TALENTLINK_LOG_LEVEL", "debug")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.BaseURL, convey.ShouldEqual, "https://platform.example.org")
				convey.So(cfg.TimeoutMS, convey.ShouldEqual, 5000)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			yamlContent := `
base_url: "https://yaml.example.org"
timeout_ms: 7500
metrics_addr: ":9100"
`
			tmpFile := createTempConfigFile(t, yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("TALENTLINK_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from the YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.BaseURL, convey.ShouldEqual, "https://yaml.example.org")
				convey.So(cfg.TimeoutMS, convey.ShouldEqual, 7500)
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":9100")
			})
		})

		convey.Convey("When env vars override the YAML file", func() {
			tmpFile := createTempConfigFile(t, "base_url: \"https://yaml.example.org\"\n")
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("TALENTLINK_CONFIG", tmpFile)
			_ = os.Setenv("TALENTLINK_BASE_URL", "https://env.example.org")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.BaseURL, convey.ShouldEqual, "https://env.example.org")
		})

		convey.Convey("When the base URL is blanked out", func() {
			_ = os.Setenv("TALENTLINK_BASE_URL", "")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "base_url")
		})

		convey.Convey("When the timeout is invalid", func() {
			_ = os.Setenv("TALENTLINK_TIMEOUT_MS", "-1")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldContainSubstring, "timeout_ms")
		})
	})
}

func clearConfigEnvVars() {
	for _, key := range []string{
		"TALENTLINK_CONFIG",
		"TALENTLINK_BASE_URL",
		"TALENTLINK_LOG_LEVEL",
		"TALENTLINK_TIMEOUT_MS",
		"TALENTLINK_SESSION_FILE",
		"TALENTLINK_CACHE_FILE",
		"TALENTLINK_CACHE_TTL_MS",
		"TALENTLINK_METRICS_ADDR",
	} {
		_ = os.Unsetenv(key)
	}
}

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "talentlink-*.yaml")
	if err != nil {
		t.Fatalf("create temp config: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	_ = f.Close()
	return f.Name()
}
