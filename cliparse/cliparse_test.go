// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
	"time"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 5050 {
		t.Errorf("expected default port 5050, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.DatabaseURL != "lmcode.db" {
		t.Errorf("expected default sqlite file, got %s", cfg.DatabaseURL)
	}
	if cfg.LLMTimeout != 60*time.Second {
		t.Errorf("expected default timeout 60s, got %v", cfg.LLMTimeout)
	}
	if cfg.LLMRetries != 2 {
		t.Errorf("expected default retries 2, got %d", cfg.LLMRetries)
	}
	if cfg.LLMBackoff != time.Second {
		t.Errorf("expected default backoff 1s, got %v", cfg.LLMBackoff)
	}
	if cfg.MaxTokens != 1024 {
		t.Errorf("expected default max tokens 1024, got %d", cfg.MaxTokens)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("DATABASE_TYPE", "postgres")
	os.Setenv("OPENAI_API_KEY", "sk-test")
	os.Setenv("OPENAI_MODELS", "gpt-4o, gpt-4o-mini")
	os.Setenv("LLM_TIMEOUT", "30")
	os.Setenv("LLM_RETRIES", "1")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DriverName() != "postgres" {
		t.Errorf("expected postgres driver, got %s", cfg.DriverName())
	}
	if cfg.OpenAIKey != "sk-test" {
		t.Errorf("expected key from env, got %q", cfg.OpenAIKey)
	}
	if len(cfg.OpenAIModels) != 2 || cfg.OpenAIModels[1] != "gpt-4o-mini" {
		t.Errorf("expected trimmed model list, got %v", cfg.OpenAIModels)
	}
	if cfg.LLMTimeout != 30*time.Second {
		t.Errorf("expected timeout 30s, got %v", cfg.LLMTimeout)
	}
	if cfg.LLMRetries != 1 {
		t.Errorf("expected retries 1, got %d", cfg.LLMRetries)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("OPENAI_MODELS", "gpt-4o")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-openai-models", "gpt-4.1", "-llm-retries", "0"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if len(cfg.OpenAIModels) != 1 || cfg.OpenAIModels[0] != "gpt-4.1" {
		t.Errorf("CLI should override env model list, got %v", cfg.OpenAIModels)
	}
	if cfg.LLMRetries != 0 {
		t.Errorf("expected explicit zero retries, got %d", cfg.LLMRetries)
	}
}

func TestParseFlags_PostgresRequiresURL(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-t", "postgres"})
	if err == nil {
		t.Error("expected error when postgres has no database URL")
	}
}

func TestParseFlags_RejectsUnknownDatabaseType(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-t", "mysql"})
	if err == nil {
		t.Error("expected error for unsupported database type")
	}
}
