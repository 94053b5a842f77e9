package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// Debug forces debug-level logging regardless of LogLevel.
	Debug bool `mapstructure:"debug"`

	// IndexPath is the on-disk location of the static landing page.
	IndexPath string `mapstructure:"index_path" validate:"required"`
}

// LLMConfig contains all settings for the remote generation service.
type LLMConfig struct {
	// GeminiAPIKey may be empty: the server still starts and serves the
	// landing page, but story generation reports itself as unconfigured.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	ModelName string `mapstructure:"model_name" validate:"required"`

	// PromptTemplatePath optionally overrides the built-in storyteller
	// prompt template.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`

	// RequestTimeoutSeconds bounds each remote generation call. The remote
	// client's own defaults are not relied on.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
}
