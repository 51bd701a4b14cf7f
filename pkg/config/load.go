package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load applies the first env file found among paths, searched upward from the
// working directory, falling back to ./.env. Variables already set in the
// process environment win over file values. The result is filled by envconfig.
func Load(paths ...string) (*App, error) {
	logger := slog.Default()
	loaded := false
	for _, p := range paths {
		found, err := FindEnvFile(p)
		if err != nil {
			logger.Debug("env file not found", "path", p)
			continue
		}
		if err := godotenv.Load(found); err != nil {
			logger.Warn("failed to read env file", "path", found, "error", err)
			continue
		}
		logger.Info("loaded env file", "path", found)
		loaded = true
		break
	}
	if !loaded {
		if err := godotenv.Load(); err != nil {
			logger.Debug("no .env file, using process environment")
		}
	}

	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	logger.Info("config loaded",
		"env", cfg.Env,
		"server_port", cfg.Server.Port,
		"db", maskValue(cfg.DB.Url),
		"auth_strategy", cfg.Auth.Strategy,
		"auth_jwt_expiry", cfg.Auth.Jwt.Expiry,
		"rate_limit", cfg.RateLimit.MaxRequests,
		"invitation_ttl", cfg.Invitation.TTL,
	)
	return &cfg, nil
}

func maskValue(v string) string {
	if len(v) <= 6 {
		return "****"
	}
	return v[:2] + "****" + v[len(v)-4:]
}
