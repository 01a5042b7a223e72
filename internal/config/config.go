package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported LLM providers
const (
	ProviderGitHub    = "github"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
	ProviderOllama    = "ollama"
)

const gitHubModelsEndpoint = "https://models.github.ai/inference"

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	LLM    LLMConfig
	Quiz   QuizConfig
	Redis  RedisConfig
	Cache  CacheConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimit    int
}

type LoggerConfig struct {
	Level string
	Env   string
}

type LLMConfig struct {
	Provider string
	Model    string
	BaseURL  string
	APIKey   string
	// Timeout bounds a single LLM call.
	Timeout        time.Duration
	JSONMode       bool
	TopicMaxTokens int
	QuizMaxTokens  int
}

type QuizConfig struct {
	Audience string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type CacheConfig struct {
	TopicVerdictTTL time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 300)
	v.SetDefault("server.body_limit", 1024*1024)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("llm.provider", ProviderGitHub)
	v.SetDefault("llm.timeout", 180)
	v.SetDefault("llm.json_mode", true)
	// 0 sends no completion cap; reasoning models spend part of the cap
	// before any visible output.
	v.SetDefault("llm.topic_max_tokens", 0)
	v.SetDefault("llm.quiz_max_tokens", 0)
	v.SetDefault("quiz.audience", "99 Group employees")
	v.SetDefault("redis.db", 0)
	v.SetDefault("cache.topic_verdict_ttl", 3600)
}

// LoadConfig reads config.yaml (optional), a .env file (optional) and the
// environment, in increasing order of precedence.
func LoadConfig() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
			BodyLimit:    v.GetInt("server.body_limit"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		LLM: LLMConfig{
			Provider:       strings.ToLower(v.GetString("llm.provider")),
			Model:          v.GetString("llm.model"),
			BaseURL:        v.GetString("llm.base_url"),
			APIKey:         v.GetString("llm.api_key"),
			Timeout:        time.Duration(v.GetInt("llm.timeout")) * time.Second,
			JSONMode:       v.GetBool("llm.json_mode"),
			TopicMaxTokens: v.GetInt("llm.topic_max_tokens"),
			QuizMaxTokens:  v.GetInt("llm.quiz_max_tokens"),
		},
		Quiz: QuizConfig{
			Audience: v.GetString("quiz.audience"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Cache: CacheConfig{
			TopicVerdictTTL: time.Duration(v.GetInt("cache.topic_verdict_ttl")) * time.Second,
		},
	}

	// Override with well-known environment variables if set
	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		config.LLM.Provider = strings.ToLower(provider)
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT %q: %w", port, err)
		}
		config.Server.Port = p
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	config.applyProviderDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyProviderDefaults fills model, endpoint and key from the
// provider-specific environment variables when not configured explicitly.
func (c *Config) applyProviderDefaults() {
	llm := &c.LLM
	switch llm.Provider {
	case ProviderGitHub:
		if llm.BaseURL == "" {
			llm.BaseURL = gitHubModelsEndpoint
		}
		if llm.Model == "" {
			llm.Model = "openai/gpt-5"
		}
		if llm.APIKey == "" {
			llm.APIKey = os.Getenv("GITHUB_TOKEN")
		}
	case ProviderOpenAI:
		if llm.Model == "" {
			llm.Model = "gpt-5"
		}
		if llm.APIKey == "" {
			llm.APIKey = os.Getenv("OPENAI_API_KEY")
		}
	case ProviderAnthropic:
		if llm.Model == "" {
			llm.Model = "claude-sonnet-4-20250514"
		}
		if llm.APIKey == "" {
			llm.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	case ProviderGemini:
		if llm.Model == "" {
			llm.Model = "gemini-2.0-flash"
		}
		if llm.APIKey == "" {
			llm.APIKey = os.Getenv("GEMINI_API_KEY")
		}
	case ProviderOllama:
		if llm.Model == "" {
			llm.Model = "qwen3:0.6b"
		}
		if server := os.Getenv("OLLAMA_SERVER"); server != "" && llm.BaseURL == "" {
			llm.BaseURL = server
		}
		if llm.BaseURL == "" {
			llm.BaseURL = "http://localhost:11434"
		}
	}
}

// Validate checks that the selected provider is known and usable.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGitHub, ProviderOpenAI, ProviderAnthropic, ProviderGemini:
		if c.LLM.APIKey == "" {
			return fmt.Errorf("an API key is required for the %s provider", c.LLM.Provider)
		}
	case ProviderOllama:
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.LLM.Provider)
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be positive")
	}
	return nil
}
