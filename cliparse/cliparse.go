package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	// Provider credentials (env only in production)
	OpenAIKey    string
	AnthropicKey string
	GeminiKey    string

	// Registered models per provider, "id" or "id=Display Name" entries
	OpenAIModels    []string
	AnthropicModels []string
	GeminiModels    []string

	// Fan-out behavior, shared by every model call
	LLMTimeout time.Duration
	LLMRetries int
	LLMBackoff time.Duration
	MaxTokens  int

	SkipWarmup bool
}

// LoadEnv loads a .env file if one is present. Missing files are not an
// error; real deployments set variables in the environment directly.
func LoadEnv() {
	_ = godotenv.Load()
}

// DriverName maps the configured database type to a database/sql driver.
func (c Config) DriverName() string {
	if c.DatabaseType == "postgres" {
		return "postgres"
	}
	return "sqlite"
}

// ParseFlags validates flags and fills in environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var llmTimeoutSec, llmBackoffSec int
	var openaiModels, anthropicModels, geminiModels string

	fs := flag.NewFlagSet("lmcode", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Model registry config
	fs.StringVar(&openaiModels, "openai-models", "", "Comma-separated OpenAI model ids")
	fs.StringVar(&anthropicModels, "anthropic-models", "", "Comma-separated Anthropic model ids")
	fs.StringVar(&geminiModels, "gemini-models", "", "Comma-separated Gemini model ids")

	// Fan-out tuning
	fs.IntVar(&llmTimeoutSec, "llm-timeout", 0, "Per-call model timeout in seconds")
	fs.IntVar(&cfg.LLMRetries, "llm-retries", -1, "Retries per model call after the first attempt")
	fs.IntVar(&llmBackoffSec, "llm-backoff", -1, "Seconds to wait between retry attempts")
	fs.IntVar(&cfg.MaxTokens, "max-tokens", 0, "Max output tokens per model call")
	fs.BoolVar(&cfg.SkipWarmup, "skip-warmup", false, "Skip the startup connectivity check")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5050 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "lmcode.db"
	}

	// Secrets are env only
	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AnthropicKey = os.Getenv("ANTHROPIC_API_KEY")
	cfg.GeminiKey = os.Getenv("GEMINI_API_KEY")

	if openaiModels == "" {
		openaiModels = os.Getenv("OPENAI_MODELS")
	}
	if anthropicModels == "" {
		anthropicModels = os.Getenv("ANTHROPIC_MODELS")
	}
	if geminiModels == "" {
		geminiModels = os.Getenv("GEMINI_MODELS")
	}
	cfg.OpenAIModels = splitModels(openaiModels)
	cfg.AnthropicModels = splitModels(anthropicModels)
	cfg.GeminiModels = splitModels(geminiModels)

	if llmTimeoutSec == 0 {
		llmTimeoutSec = envInt("LLM_TIMEOUT", 60)
	}
	if llmTimeoutSec <= 0 {
		return Config{}, errors.New("llm timeout must be positive")
	}
	cfg.LLMTimeout = time.Duration(llmTimeoutSec) * time.Second

	if cfg.LLMRetries < 0 {
		cfg.LLMRetries = envInt("LLM_RETRIES", 2)
	}
	if cfg.LLMRetries < 0 {
		return Config{}, errors.New("llm retries must not be negative")
	}

	if llmBackoffSec < 0 {
		llmBackoffSec = envInt("LLM_BACKOFF", 1)
	}
	if llmBackoffSec < 0 {
		return Config{}, errors.New("llm backoff must not be negative")
	}
	cfg.LLMBackoff = time.Duration(llmBackoffSec) * time.Second

	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = envInt("LLM_MAX_TOKENS", 1024)
	}
	if cfg.MaxTokens <= 0 {
		return Config{}, errors.New("max tokens must be positive")
	}

	return cfg, nil
}

func splitModels(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
