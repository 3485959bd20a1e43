package config

import "time"

// Defaults applied when no source provides a value. They give a runnable
// local setup (SQLite file next to the binary, port 3030, local SPA origins)
// without any configuration at all; secrets still have to come from the
// environment for anything beyond local development.
const (
	defaultHTTPAddress   = ":3030"
	defaultDriver        = "sqlite3"
	defaultDSN           = "carmarket.db"
	defaultStaticDir     = "public"
	defaultTokenIssuer   = "carmarket"
	defaultTokenDuration = 24 * time.Hour
)

var defaultCORSOrigins = []string{
	"http://127.0.0.1:8080",
	"http://localhost:8080",
	"http://127.0.0.1:3000",
	"http://localhost:3000",
	"http://localhost:5173",
	"http://localhost:5174",
}

func (c *StructuredConfig) applyDefaults() {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.StaticDir == "" {
		c.Server.StaticDir = defaultStaticDir
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = defaultCORSOrigins
	}
	if c.Storage.DB.Driver == "" {
		c.Storage.DB.Driver = defaultDriver
	}
	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = defaultDSN
	}
	if c.App.TokenIssuer == "" {
		c.App.TokenIssuer = defaultTokenIssuer
	}
	if c.App.TokenDuration == 0 {
		c.App.TokenDuration = defaultTokenDuration
	}
}

func (c *StructuredConfig) validate() error {
	if c.App.TokenSignKey == "" {
		return errNoTokenSignKey
	}
	if c.App.PasswordHashKey == "" {
		return errNoPasswordHashKey
	}

	return nil
}
