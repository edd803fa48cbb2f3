package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		// Driver selects the history store backend: "sqlite" (default,
		// single local file) or "postgres".
		Driver   string `yaml:"driver"`
		Path     string `yaml:"path"` // sqlite file
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`

	Assets struct {
		Dir       string `yaml:"dir"`       // static files served under /static/
		Templates string `yaml:"templates"` // dashboard template directory
		MockData  string `yaml:"mockData"`  // canned analysis for the demo generator
	} `yaml:"assets"`

	AI struct {
		// Provider selects the collaborator set: "mock" (default) or "openai".
		Provider      string `yaml:"provider"`
		APIKey        string `yaml:"apiKey"`
		Model         string `yaml:"model"`
		LatencyMS     int    `yaml:"latencyMs"`     // simulated generation delay (mock only)
		ChatLatencyMS int    `yaml:"chatLatencyMs"` // simulated chat delay (mock only)
	} `yaml:"ai"`

	Minio struct {
		Endpoint   string `yaml:"endpoint"`
		AccessKey  string `yaml:"accessKey"`
		SecretKey  string `yaml:"secretKey"`
		BucketName string `yaml:"bucketName"`
		Region     string `yaml:"region"`
		UseSSL     bool   `yaml:"useSSL"`
	} `yaml:"minio"`
}

// Default returns the configuration the demo runs with when no config file
// is present.
func Default() *Config {
	var cfg Config
	cfg.Server.Port = 8000
	cfg.Database.Driver = "sqlite"
	cfg.Database.Path = "brand_history.db"
	cfg.Assets.Dir = "web/static"
	cfg.Assets.Templates = "web/templates"
	cfg.Assets.MockData = "mock_data.json"
	cfg.AI.Provider = "mock"
	cfg.AI.LatencyMS = 3000
	cfg.AI.ChatLatencyMS = 1000
	return &cfg
}

// Load reads the yaml config file. A missing file is not an error: the demo
// defaults apply. Zero values in a present file fall back to the defaults
// field by field.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GenerateLatency is the simulated delay for the mock generator.
func (c *Config) GenerateLatency() time.Duration {
	return time.Duration(c.AI.LatencyMS) * time.Millisecond
}

// ChatLatency is the simulated delay for the mock persona.
func (c *Config) ChatLatency() time.Duration {
	return time.Duration(c.AI.ChatLatencyMS) * time.Millisecond
}

// PostgresDSN builds the DSN for the postgres history store.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}
