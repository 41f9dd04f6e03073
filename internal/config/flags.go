package config

import (
	"flag"
	"time"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   web listen address (e.g., ":8080")
//	-f string   data directory
//	-k string   store backend: memory, file, bolt, s3, sqlite, postgres
//	-d string   database DSN (sqlite path or postgres DSN)
//	-o string   bolt file path
//	-s string   session cookie HMAC secret
//	-t int      session validity, minutes
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-x string   S3 object key prefix
//	-m string   completion endpoint base URL
//	-w string   password scheme for new users (argon2id, sha256)
//	-l string   log level
//
// The API key is not accepted as a flag; use GROQ_API_KEY or CHAT_LLM_API_KEY.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{
		"-a", "-f", "-k", "-d", "-o", "-s", "-t", "-u", "-p", "-b", "-g", "-e", "-x", "-m", "-w", "-l",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.DataDir, "f", config.DataDir, "data directory")
	fs.StringVar(&config.StoreBackend, "k", config.StoreBackend, "store backend")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.BoltPath, "o", config.BoltPath, "bolt file path")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	sessionTTL := fs.Int("t", int(config.SessionTTL.Minutes()), "session validity (in minutes)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3Prefix, "x", config.S3Prefix, "S3 key prefix")
	fs.StringVar(&config.LLMBaseURL, "m", config.LLMBaseURL, "completion endpoint base URL")
	fs.StringVar(&config.PasswordScheme, "w", config.PasswordScheme, "password scheme")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionTTL = time.Duration(*sessionTTL) * time.Minute
}
