package config

import (
	"errors"
	"time"
)

// ErrMissingSecret is returned by Validate when the jwt strategy has no signing secret.
var ErrMissingSecret = errors.New("AUTH_JWT_SECRET is required")

type DB struct {
	Url string `envconfig:"URL" default:"sqlite://networth.db"`
}

type Jwt struct {
	Secret string        `envconfig:"SECRET"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

type Auth struct {
	Strategy string `envconfig:"STRATEGY" default:"jwt"`
	Jwt      *Jwt   `envconfig:"JWT"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Invitation holds family invitation policy.
type Invitation struct {
	TTL time.Duration `envconfig:"TTL" default:"168h"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[networth]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env        string      `envconfig:"APP_ENV" default:"development"`
	Server     *Server     `envconfig:"SERVER"`
	Log        *Log        `envconfig:"LOG"`
	DB         *DB         `envconfig:"DATABASE"`
	Auth       *Auth       `envconfig:"AUTH"`
	RateLimit  *RateLimit  `envconfig:"RATE_LIMIT"`
	Invitation *Invitation `envconfig:"INVITATION"`
}

// Validate checks the settings the HTTP server cannot start without. The CLI
// skips it and falls back to password-only login when no secret is set.
func (a *App) Validate() error {
	if a.Auth == nil || a.Auth.Strategy != "jwt" {
		return nil
	}
	if a.Auth.Jwt == nil || a.Auth.Jwt.Secret == "" {
		return ErrMissingSecret
	}
	return nil
}
