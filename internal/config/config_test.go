package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_GameWeekdaysParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_TIMEZONE", "UTC")

	t.Run("default tuesday and friday", func(t *testing.T) {
		t.Setenv("GAME_WEEKDAYS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.GameWeekdays != [2]time.Weekday{time.Tuesday, time.Friday} {
			t.Fatalf("unexpected default game weekdays: %v", cfg.GameWeekdays)
		}
	})

	t.Run("abbreviated names", func(t *testing.T) {
		t.Setenv("GAME_WEEKDAYS", "wed, sat")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.GameWeekdays != [2]time.Weekday{time.Wednesday, time.Saturday} {
			t.Fatalf("unexpected game weekdays: %v", cfg.GameWeekdays)
		}
	})

	t.Run("rejects duplicate weekdays", func(t *testing.T) {
		t.Setenv("GAME_WEEKDAYS", "friday,friday")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for duplicate game weekdays")
		}
	})

	t.Run("rejects a single weekday", func(t *testing.T) {
		t.Setenv("GAME_WEEKDAYS", "friday")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for a single game weekday")
		}
	})
}

func TestLoad_KickoffLocalTimeParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_TIMEZONE", "UTC")

	t.Run("default 20:30", func(t *testing.T) {
		t.Setenv("KICKOFF_LOCAL_TIME", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.KickoffHour != 20 || cfg.KickoffMinute != 30 {
			t.Fatalf("unexpected default kickoff time: %02d:%02d", cfg.KickoffHour, cfg.KickoffMinute)
		}
	})

	t.Run("custom time", func(t *testing.T) {
		t.Setenv("KICKOFF_LOCAL_TIME", "16:00")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.KickoffHour != 16 || cfg.KickoffMinute != 0 {
			t.Fatalf("unexpected kickoff time: %02d:%02d", cfg.KickoffHour, cfg.KickoffMinute)
		}
	})

	t.Run("invalid time", func(t *testing.T) {
		t.Setenv("KICKOFF_LOCAL_TIME", "half past eight")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid KICKOFF_LOCAL_TIME")
		}
	})
}

func TestLoad_InvalidLeagueTimezone(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_TIMEZONE", "Atlantis/Lost")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown LEAGUE_TIMEZONE")
	}
}

func TestLoad_AdminTokenRequiredInProd(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("LEAGUE_TIMEZONE", "UTC")
	t.Setenv("ADMIN_API_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when APP_ENV=prod without ADMIN_API_TOKEN")
	}

	t.Setenv("ADMIN_API_TOKEN", "committee-secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AdminAPIToken != "committee-secret" {
		t.Fatalf("unexpected admin token: %q", cfg.AdminAPIToken)
	}
}

func TestLoad_ScheduleConfigProjection(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_TIMEZONE", "UTC")
	t.Setenv("GAME_WEEKDAYS", "tuesday,friday")
	t.Setenv("KICKOFF_LOCAL_TIME", "20:30")
	t.Setenv("DEFAULT_VENUE", "National Stadium")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	sc := cfg.ScheduleConfig()
	if err := sc.Validate(); err != nil {
		t.Fatalf("schedule config should validate: %v", err)
	}
	if sc.DefaultVenue != "National Stadium" {
		t.Fatalf("unexpected default venue: %q", sc.DefaultVenue)
	}
	if sc.Location != time.UTC {
		t.Fatalf("unexpected location: %v", sc.Location)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_TIMEZONE", "UTC")
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_BetterStackRequiresEndpointWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_TIMEZONE", "UTC")
	t.Setenv("BETTERSTACK_ENABLED", "true")
	t.Setenv("BETTERSTACK_ENDPOINT", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when BETTERSTACK_ENABLED=true without BETTERSTACK_ENDPOINT")
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("LEAGUE_TIMEZONE", "UTC")
		t.Setenv("ADMIN_API_TOKEN", "secret")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("LEAGUE_TIMEZONE", "UTC")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_TIMEZONE", "UTC")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_TIMEZONE", "UTC")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_PyroscopeAppNameDefaultsToServiceName(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_TIMEZONE", "UTC")
	t.Setenv("APP_SERVICE_NAME", "league-api-test")
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "http://localhost:4040")
	t.Setenv("PYROSCOPE_APP_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PyroscopeAppName != "league-api-test" {
		t.Fatalf("unexpected pyroscope app name: %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_TIMEZONE", "UTC")

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example.com, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://a.example.com" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
		if cfg.CORSAllowedOrigins[1] != "http://localhost:5173" {
			t.Fatalf("unexpected second CORS origin: %s", cfg.CORSAllowedOrigins[1])
		}
	})
}

func TestLoad_DBDisablePreparedBinaryResultParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_TIMEZONE", "UTC")

	t.Run("default true", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.DBDisablePreparedBinary {
			t.Fatalf("expected DBDisablePreparedBinary=true by default")
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "not-bool")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_TIMEZONE", "UTC")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheTTL != 60*time.Second {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})
}

func TestLoad_WebhookConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("LEAGUE_TIMEZONE", "UTC")

	t.Run("disabled by default", func(t *testing.T) {
		t.Setenv("WEBHOOK_ENABLED", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.WebhookEnabled {
			t.Fatalf("expected WebhookEnabled=false by default")
		}
	})

	t.Run("enabled requires url", func(t *testing.T) {
		t.Setenv("WEBHOOK_ENABLED", "true")
		t.Setenv("WEBHOOK_URL", "")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error when WEBHOOK_ENABLED=true without WEBHOOK_URL")
		}
	})

	t.Run("enabled with required values", func(t *testing.T) {
		t.Setenv("WEBHOOK_ENABLED", "true")
		t.Setenv("WEBHOOK_URL", "https://hooks.example.com/ufa")
		t.Setenv("WEBHOOK_TOKEN", "hook-secret")
		t.Setenv("WEBHOOK_TIMEOUT", "5s")
		t.Setenv("WEBHOOK_CIRCUIT_FAILURE_COUNT", "3")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.WebhookEnabled {
			t.Fatalf("expected WebhookEnabled=true")
		}
		if cfg.WebhookURL != "https://hooks.example.com/ufa" {
			t.Fatalf("unexpected webhook url: %q", cfg.WebhookURL)
		}
		if cfg.WebhookTimeout != 5*time.Second {
			t.Fatalf("unexpected webhook timeout: %s", cfg.WebhookTimeout)
		}
		if cfg.WebhookCircuitFailureCount != 3 {
			t.Fatalf("unexpected webhook circuit failure count: %d", cfg.WebhookCircuitFailureCount)
		}
	})
}
