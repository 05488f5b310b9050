// Package config loads the flat configuration snapshot consumed by the
// request pipeline: one `<provider>_api_key` and `<provider>_base_url` entry
// per provider, merged from the secrets file and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/ad-si/cai/internal/provider"
)

// genericEnvVars are the vendor-conventional environment variables honored
// as defaults, below the secrets file and CAI-prefixed variables.
var genericEnvVars = map[string]string{
	"anthropic_api_key":  "ANTHROPIC_API_KEY",
	"cerebras_api_key":   "CEREBRAS_API_KEY",
	"deepseek_api_key":   "DEEPSEEK_API_KEY",
	"google_api_key":     "GEMINI_API_KEY",
	"groq_api_key":       "GROQ_API_KEY",
	"openai_api_key":     "OPENAI_API_KEY",
	"perplexity_api_key": "PERPLEXITY_API_KEY",
	"xai_api_key":        "XAI_API_KEY",
}

// SecretsPath returns the path of the secrets file, creating the
// configuration directory and an empty file on first use so the key-setup
// guidance can point at something that exists.
func SecretsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding config directory: %w", err)
	}

	dir := filepath.Join(configDir, "cai")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(dir, "secrets.yaml")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err == nil {
		f.Close()
	} else if !errors.Is(err, os.ErrExist) {
		return "", fmt.Errorf("creating secrets file: %w", err)
	}

	return path, nil
}

// Load reads the secrets file and the environment into the flat
// string-to-string snapshot the core reads from. Precedence, highest first:
// CAI-prefixed env variables, the secrets file, generic env variables.
// The snapshot is read-only for the rest of the process.
func Load() (map[string]string, string, error) {
	secretsPath, err := SecretsPath()
	if err != nil {
		return nil, "", err
	}
	cfg, err := load(secretsPath)
	return cfg, secretsPath, err
}

func load(secretsPath string) (map[string]string, error) {
	v := viper.New()
	v.SetEnvPrefix("CAI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	for key, envVar := range genericEnvVars {
		v.SetDefault(key, os.Getenv(envVar))
	}

	v.SetConfigFile(secretsPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %s: %w", secretsPath, err)
		}
	}

	cfg := make(map[string]string)
	for _, p := range provider.All {
		for _, suffix := range []string{"_api_key", "_base_url"} {
			key := p.Key() + suffix
			if val := v.GetString(key); val != "" {
				cfg[key] = val
			}
		}
	}
	return cfg, nil
}
