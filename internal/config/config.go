// Package config loads the single YAML configuration file shared by the
// API server and the dashboards.
//
// The file path comes from the RESTO_CONFIG environment variable or the
// --config flag. A .env file in the working directory, if present, is
// loaded first so the YAML may be kept free of secrets.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Database struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

type Rabbit struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	VHost    string `yaml:"vhost"`
	Exchange string `yaml:"exchange"`
}

type HTTP struct {
	Port      int    `yaml:"port"`
	JWTSecret string `yaml:"jwt_secret"`
}

// Client configures the dashboard side: where the API server lives.
type Client struct {
	BaseURL string `yaml:"base_url"`
}

type Config struct {
	Database Database `yaml:"database"`
	Rabbit   Rabbit   `yaml:"rabbitmq"`
	HTTP     HTTP     `yaml:"http"`
	Client   Client   `yaml:"client"`
}

func defaults() Config {
	return Config{
		Database: Database{Port: 5432, SSLMode: "disable"},
		Rabbit:   Rabbit{Port: 5672, VHost: "/", Exchange: "orders_fanout"},
		HTTP:     HTTP{Port: 5000},
		Client:   Client{BaseURL: "http://localhost:5000"},
	}
}

// Load reads path, or $RESTO_CONFIG when path is empty.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("RESTO_CONFIG")
	}
	if path == "" {
		path = "config.yaml"
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := defaults()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if secret := os.Getenv("RESTO_JWT_SECRET"); secret != "" {
		cfg.HTTP.JWTSecret = secret
	}
	if c := cfg.Rabbit; c.Host == "" || c.User == "" {
		return Config{}, errors.New("config: rabbitmq host and user are required")
	}
	return cfg, nil
}

// ValidateServer checks the sections only the API server needs.
func (c Config) ValidateServer() error {
	if d := c.Database; d.Host == "" || d.User == "" || d.Name == "" {
		return errors.New("config: database host, user and database are required")
	}
	if c.HTTP.JWTSecret == "" {
		return errors.New("config: http.jwt_secret is required")
	}
	return nil
}
