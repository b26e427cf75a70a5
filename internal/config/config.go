package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type API struct {
	// BaseURL serves catalog, cart and order endpoints; AuthBaseURL serves
	// the /consumer/... surface. The two may point at the same host.
	BaseURL     string        `yaml:"base_url" env:"STOREFRONT_API_BASE_URL" env-default:"http://localhost:3000/api"`
	AuthBaseURL string        `yaml:"auth_base_url" env:"STOREFRONT_AUTH_BASE_URL" env-default:"http://localhost:5000/api"`
	Timeout     time.Duration `yaml:"timeout" env:"STOREFRONT_API_TIMEOUT" env-default:"15s"`
}

type Session struct {
	Driver string        `yaml:"driver" env:"SESSION_DRIVER" env-default:"file"`
	Path   string        `yaml:"path" env:"SESSION_PATH" env-default:".storefront/session.json"`
	TTL    time.Duration `yaml:"ttl" env:"SESSION_TTL" env-default:"720h"`
}

type Redis struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Username string `yaml:"username" env:"REDIS_USER" env-default:""`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Search struct {
	Debounce time.Duration `yaml:"debounce" env:"SEARCH_DEBOUNCE" env-default:"300ms"`
}

type Config struct {
	Env     string  `yaml:"env" env:"ENV" env-default:"local"`
	API     API     `yaml:"api"`
	Session Session `yaml:"session"`
	Redis   Redis   `yaml:"redis"`
	Search  Search  `yaml:"search"`
}

// Load reads the optional yaml config at path, then the environment. An empty
// path means environment-only.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, err
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
