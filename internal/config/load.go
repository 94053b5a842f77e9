package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables.
// Variables use the STORYSPARK_ prefix with underscores separating nested
// keys, e.g. STORYSPARK_SERVER_PORT or STORYSPARK_LLM_GEMINI_API_KEY.
// GOOGLE_API_KEY and GEMINI_API_KEY are honored as unprefixed aliases for
// the credential. Returns a populated Config struct or an error if
// loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults keep the server bootable with nothing but an API key set.
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.debug", false)
	v.SetDefault("server.index_path", "web/index.html")
	v.SetDefault("llm.model_name", "gemini-1.5-flash-latest")
	v.SetDefault("llm.prompt_template_path", "")
	v.SetDefault("llm.request_timeout_seconds", 30)

	v.SetEnvPrefix("STORYSPARK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credential is commonly set under its upstream names.
	if err := v.BindEnv("llm.gemini_api_key",
		"STORYSPARK_LLM_GEMINI_API_KEY", "GOOGLE_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind credential environment variables: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
