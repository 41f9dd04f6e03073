// Package config loads runtime settings shared by the web server and the CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment: CHAT_<FIELD> for every JSON field name, GROQ_API_KEY for
//     the completion key.
//  4. Command-line flags (see parseFlags).
//
// JSON durations use timex.Duration, so "12h" and integer nanoseconds both work:
//
//	{
//	  "listen_addr": ":8080",
//	  "store_backend": "sqlite",
//	  "database_dsn": "/var/lib/chat/chat.sqlite",
//	  "session_ttl": "12h"
//	}
package config

import (
	"os"
	"time"
)

// Config holds runtime settings.
//
// Fields:
//   - ListenAddr: bind address of the web surface.
//   - DataDir: directory of the file backend, and default home of bolt/sqlite files.
//   - StoreBackend: memory, file, bolt, s3, sqlite or postgres.
//   - DatabaseDSN: sqlite path or postgres DSN (pgx).
//   - BoltPath: bbolt file; empty means <DataDir>/chat.db.
//   - S3*: S3-compatible object storage for the s3 backend.
//   - SecretKey: HMAC secret signing session cookies (HS256).
//   - SessionTTL: lifetime of a session cookie.
//   - LLMBaseURL / LLMAPIKey: OpenAI-compatible completion endpoint.
//   - PasswordScheme: argon2id or sha256 for newly created users.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ListenAddr     string
	DataDir        string
	StoreBackend   string
	DatabaseDSN    string
	BoltPath       string
	S3RootUser     string
	S3RootPassword string
	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3Prefix       string
	SecretKey      string
	SessionTTL     time.Duration
	LLMBaseURL     string
	LLMAPIKey      string
	PasswordScheme string
	LogLevel       string
}

// LoadDefaults populates c with development defaults. The secret key must be
// overridden outside development.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":8080"
	c.DataDir = "."
	c.StoreBackend = "file"
	c.DatabaseDSN = ""
	c.BoltPath = ""
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "chat"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3Prefix = ""
	c.SecretKey = "secretKey"
	c.SessionTTL = 24 * time.Hour
	c.LLMBaseURL = "https://api.groq.com/openai/v1"
	c.LLMAPIKey = ""
	c.PasswordScheme = "argon2id"
	c.LogLevel = "info"
}

// LoadConfig builds a Config from os.Args and the process environment.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load applies defaults, the JSON file, the environment and then the flags
// found in args. It panics on unreadable files, malformed values and bad
// flags, because nothing can start without a valid configuration.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
