package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultOutputPath is where the SRT goes when no path is given.
const DefaultOutputPath = "./subtitle.srt"

// Config holds settings read from the environment and an optional .env file.
type Config struct {
	GeminiAPIKey       string `envconfig:"GEMINI_API_KEY"`
	LegacyGeminiAPIKey string `envconfig:"GOOGLE_GENAI_API_KEY"`
	OpenAIAPIKey       string `envconfig:"OPENAI_API_KEY"`

	Provider  string `envconfig:"WORDSRT_PROVIDER" default:"gemini"`
	Model     string `envconfig:"WORDSRT_MODEL"`
	RawOutput string `envconfig:"WORDSRT_RAW_OUTPUT" default:"data.txt"`
	Output    string `envconfig:"WORDSRT_OUTPUT" default:"./subtitle.srt"`
}

// Load reads the given .env files (default ".env") if they exist, then the
// process environment. Variables already set in the environment win over the
// files.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return cfg, nil
}

// APIKey returns the credential for the provider, or "" if none is set.
func (c *Config) APIKey(provider string) string {
	switch strings.ToLower(provider) {
	case "gemini":
		if c.GeminiAPIKey != "" {
			return c.GeminiAPIKey
		}
		return c.LegacyGeminiAPIKey
	case "openai":
		return c.OpenAIAPIKey
	default:
		return ""
	}
}

// APIKeyEnv names the variable that supplies the provider's key.
func APIKeyEnv(provider string) string {
	switch strings.ToLower(provider) {
	case "gemini":
		return "GEMINI_API_KEY"
	case "openai":
		return "OPENAI_API_KEY"
	default:
		return "API_KEY"
	}
}
