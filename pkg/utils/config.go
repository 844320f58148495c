package utils

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Catalog  CatalogConfig
}

type AppConfig struct {
	Name       string
	Port       string
	Debug      bool
	LogPath    string
	BcryptCost int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	Secret   string
	TTLHours int
}

type CatalogConfig struct {
	APIKey  string
	BaseURL string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "moviehub")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("BCRYPT_COST", 12)
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("OMDB_BASE_URL", "https://www.omdbapi.com/")
	viper.SetDefault("LOG_PATH", "logs/")

	// .env is optional, environment variables alone are enough
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:       viper.GetString("APP_NAME"),
			Port:       viper.GetString("PORT"),
			Debug:      viper.GetBool("DEBUG"),
			LogPath:    viper.GetString("LOG_PATH"),
			BcryptCost: viper.GetInt("BCRYPT_COST"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			Secret:   viper.GetString("SESSION_SECRET"),
			TTLHours: viper.GetInt("SESSION_TTL_HOURS"),
		},
		Catalog: CatalogConfig{
			APIKey:  viper.GetString("OMDB_API_KEY"),
			BaseURL: viper.GetString("OMDB_BASE_URL"),
		},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate enforces required keys. The catalog API key is deliberately not
// required: discovery degrades to an empty result set without it.
func (c *Config) validate() error {
	if c.Database.Host == "" || c.Database.Name == "" || c.Database.User == "" {
		return fmt.Errorf("database configuration incomplete: DB_HOST, DB_NAME and DB_USER are required")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	return nil
}
