package config

import (
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "CHAT_"

// parseEnv overlays CHAT_* variables (CHAT_LISTEN_ADDR -> listen_addr) and
// GROQ_API_KEY. CHAT_LLM_API_KEY wins over GROQ_API_KEY when both are set.
func parseEnv(config *Config) {
	k := koanf.New(".")

	if err := k.Load(env.Provider("GROQ_API_KEY", ".", func(string) string {
		return "llm_api_key"
	}), nil); err != nil {
		panic(err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		panic(err)
	}

	strs := map[string]*string{
		"listen_addr":      &config.ListenAddr,
		"data_dir":         &config.DataDir,
		"store_backend":    &config.StoreBackend,
		"database_dsn":     &config.DatabaseDSN,
		"bolt_path":        &config.BoltPath,
		"s3_root_user":     &config.S3RootUser,
		"s3_root_password": &config.S3RootPassword,
		"s3_bucket":        &config.S3Bucket,
		"s3_region":        &config.S3Region,
		"s3_base_endpoint": &config.S3BaseEndpoint,
		"s3_prefix":        &config.S3Prefix,
		"secret_key":       &config.SecretKey,
		"llm_base_url":     &config.LLMBaseURL,
		"llm_api_key":      &config.LLMAPIKey,
		"password_scheme":  &config.PasswordScheme,
		"log_level":        &config.LogLevel,
	}
	for key, dst := range strs {
		setString(dst, k.String(key))
	}

	if v := k.String("session_ttl"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.SessionTTL = d
	}
}
