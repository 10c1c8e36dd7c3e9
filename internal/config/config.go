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
	// LogFile enables rotating file output in addition to stdout.
	LogFile                string `mapstructure:"log_file"`
	ShutdownTimeoutSeconds int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
}

// Supported upstream providers.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Default model names per provider.
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.0-flash"
)

// LLMConfig contains all LLM integration related settings.
//
// API keys are deliberately not required here: a missing key is reported on
// every generation request instead of preventing startup.
type LLMConfig struct {
	Provider     string `mapstructure:"provider"       validate:"required,oneof=openai gemini"`
	OpenAIAPIKey string `mapstructure:"openai_api_key"`
	GeminiAPIKey string `mapstructure:"gemini_api_key"`
	ModelName    string `mapstructure:"model_name"     validate:"required"`
	BaseURL      string `mapstructure:"base_url"       validate:"omitempty,url"`

	Temperature           float64 `mapstructure:"temperature"             validate:"gte=0,lte=2"`
	RequestTimeoutSeconds int     `mapstructure:"request_timeout_seconds" validate:"gte=0"`

	// PromptTemplatePath overrides the embedded prompt template when set.
	PromptTemplatePath string `mapstructure:"prompt_template_path"`

	ValidateSchema  bool `mapstructure:"validate_schema"`
	RepairJSON      bool `mapstructure:"repair_json"`
	MaxPromptTokens int  `mapstructure:"max_prompt_tokens" validate:"gte=0"`
}

// APIKey returns the credential of the configured provider.
func (c LLMConfig) APIKey() string {
	if c.Provider == ProviderGemini {
		return c.GeminiAPIKey
	}
	return c.OpenAIAPIKey
}
