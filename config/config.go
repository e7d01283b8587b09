package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
		Debug   bool   `yaml:"debug"`
	} `yaml:"app"`

	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		URI  string `yaml:"uri"`
		Name string `yaml:"name"`
	} `yaml:"database"`

	GitHub struct {
		ClientID     string `yaml:"clientId"`
		ClientSecret string `yaml:"clientSecret"`
		RedirectURI  string `yaml:"redirectUri"`
	} `yaml:"github"`

	Redis struct {
		URL string `yaml:"url"`
	} `yaml:"redis"`

	AI struct {
		OpenAIKey    string `yaml:"openaiKey"`
		AnthropicKey string `yaml:"anthropicKey"`
	} `yaml:"ai"`

	Frontend struct {
		URL string `yaml:"url"`
	} `yaml:"frontend"`

	JWT struct {
		Secret      string `yaml:"secret"`
		ExpiryHours int    `yaml:"expiryHours"`
	} `yaml:"jwt"`
}

// LoadConfig reads the YAML configuration file and applies environment
// overrides on top of it. A missing file is not an error as long as the
// required values arrive via environment variables.
func LoadConfig(path string) (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if cfg.Database.URI == "" {
		return nil, fmt.Errorf("database uri is required (MONGODB_URI)")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required (JWT_SECRET_KEY)")
	}

	return &cfg, nil
}

func (c *Config) applyEnv() {
	overrideString(&c.App.Name, "APP_NAME")
	overrideString(&c.App.Version, "APP_VERSION")
	overrideBool(&c.App.Debug, "DEBUG")
	overrideInt(&c.Server.Port, "PORT")
	overrideString(&c.Database.URI, "MONGODB_URI")
	overrideString(&c.Database.Name, "MONGODB_DB_NAME")
	overrideString(&c.GitHub.ClientID, "GITHUB_CLIENT_ID")
	overrideString(&c.GitHub.ClientSecret, "GITHUB_CLIENT_SECRET")
	overrideString(&c.GitHub.RedirectURI, "GITHUB_REDIRECT_URI")
	overrideString(&c.Redis.URL, "REDIS_URL")
	overrideString(&c.AI.OpenAIKey, "OPENAI_API_KEY")
	overrideString(&c.AI.AnthropicKey, "ANTHROPIC_API_KEY")
	overrideString(&c.Frontend.URL, "FRONTEND_URL")
	overrideString(&c.JWT.Secret, "JWT_SECRET_KEY")
	overrideInt(&c.JWT.ExpiryHours, "JWT_EXPIRATION_HOURS")
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "CodeShift"
	}
	if c.App.Version == "" {
		c.App.Version = "0.1.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Database.Name == "" {
		c.Database.Name = "codeshift"
	}
	if c.Frontend.URL == "" {
		c.Frontend.URL = "http://localhost:3000"
	}
	if c.JWT.ExpiryHours == 0 {
		c.JWT.ExpiryHours = 24 * 7
	}
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func overrideBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}
