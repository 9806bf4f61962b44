package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr           string
	Debug              bool
	RequestTimeout     time.Duration
	MaxPromptLength    int
	CatchAllPolicy     string
	CORSAllowedOrigins []string
	LLM                LLMConfig
}

type LLMConfig struct {
	APIKey          string
	BaseURL         string
	Model           string
	Temperature     float64
	MaxTokens       int
	Timeout         time.Duration
	RetryMaxElapsed time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
		slog.Warn("bad int env, using default", "key", key, "value", v)
	}
	return def
}

func mustFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
		slog.Warn("bad float env, using default", "key", key, "value", v)
	}
	return def
}

func getBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(v) {
		case "true", "1":
			return true
		case "false", "0":
			return false
		}
		slog.Warn("bad bool env, using default", "key", key, "value", v)
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
		slog.Warn("bad duration env, using default", "key", key, "value", v)
	}
	return def
}

func getList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	// try to find .env files starting from current directory and going up
	currentDir, err := os.Getwd()
	if err != nil {
		slog.Debug("failed to get current directory", "error", err)
		return
	}

	// look in current directory and up to 3 parent directories
	searchDirs := []string{currentDir}
	for i := 0; i < 3; i++ {
		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break // reached root
		}
		searchDirs = append(searchDirs, parent)
		currentDir = parent
	}

	loadedAny := false
	for _, dir := range searchDirs {
		for _, envFile := range envFiles {
			envPath := filepath.Join(dir, envFile)
			if _, err := os.Stat(envPath); err == nil {
				if err := godotenv.Load(envPath); err == nil {
					slog.Debug("loaded environment file", "path", envPath)
					loadedAny = true
				} else {
					slog.Debug("failed to load environment file", "path", envPath, "error", err)
				}
			}
		}
		if loadedAny {
			break // stop searching once we find .env files in a directory
		}
	}

	if !loadedAny {
		slog.Debug("no .env files found, using system environment variables only")
	}
}

// httpAddr honours PORT the way most PaaS runtimes set it.
func httpAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return getenv("HTTP_ADDR", ":5000")
}

func Load() Config {
	loadEnvFiles()
	return fromEnv()
}

func fromEnv() Config {
	return Config{
		HTTPAddr:           httpAddr(),
		Debug:              getBool("DEBUG", false),
		RequestTimeout:     mustDuration("REQUEST_TIMEOUT", 60*time.Second),
		MaxPromptLength:    mustInt("MAX_PROMPT_LENGTH", 500),
		CatchAllPolicy:     getenv("CATCH_ALL_POLICY", "sentinel"),
		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		LLM: LLMConfig{
			APIKey:          getenv("DEEPSEEK_API_KEY", os.Getenv("OPENAI_API_KEY")),
			BaseURL:         getenv("LLM_BASE_URL", "https://openrouter.ai/api/v1"),
			Model:           getenv("LLM_MODEL", "deepseek/deepseek-r1:free"),
			Temperature:     mustFloat("LLM_TEMPERATURE", 0.1),
			MaxTokens:       mustInt("LLM_MAX_TOKENS", 150),
			Timeout:         mustDuration("LLM_TIMEOUT", 30*time.Second),
			RetryMaxElapsed: mustDuration("LLM_RETRY_MAX_ELAPSED", 20*time.Second),
		},
	}
}
