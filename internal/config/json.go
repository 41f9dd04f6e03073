package config

import (
	"encoding/json"
	"os"

	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/flagx"
	"github.com/Iyyappan-15/Iyyappan-chatbot/internal/timex"
)

// JsonConfig is the on-disk shape of Config. Its json names are also the
// environment keys (upper-cased, CHAT_ prefixed).
type JsonConfig struct {
	ListenAddr     string         `json:"listen_addr"`
	DataDir        string         `json:"data_dir"`
	StoreBackend   string         `json:"store_backend"`
	DatabaseDSN    string         `json:"database_dsn"`
	BoltPath       string         `json:"bolt_path"`
	S3RootUser     string         `json:"s3_root_user"`
	S3RootPassword string         `json:"s3_root_password"`
	S3Bucket       string         `json:"s3_bucket"`
	S3Region       string         `json:"s3_region"`
	S3BaseEndpoint string         `json:"s3_base_endpoint"`
	S3Prefix       string         `json:"s3_prefix"`
	SecretKey      string         `json:"secret_key"`
	SessionTTL     timex.Duration `json:"session_ttl"`
	LLMBaseURL     string         `json:"llm_base_url"`
	LLMAPIKey      string         `json:"llm_api_key"`
	PasswordScheme string         `json:"password_scheme"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays the fields present in the file named by -c/-config.
// Fields missing from the file keep their current value.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.ListenAddr, c.ListenAddr)
	setString(&config.DataDir, c.DataDir)
	setString(&config.StoreBackend, c.StoreBackend)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.BoltPath, c.BoltPath)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	setString(&config.S3Prefix, c.S3Prefix)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.LLMBaseURL, c.LLMBaseURL)
	setString(&config.LLMAPIKey, c.LLMAPIKey)
	setString(&config.PasswordScheme, c.PasswordScheme)
	setString(&config.LogLevel, c.LogLevel)
	if c.SessionTTL.Duration > 0 {
		config.SessionTTL = c.SessionTTL.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
