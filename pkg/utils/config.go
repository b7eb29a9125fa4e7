package utils

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Ticket   TicketConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// TicketConfig holds the purchase rules that are allowed to change without a release
type TicketConfig struct {
	MaxPerBooking int `validate:"min=1"`
	PriceAdult    int `validate:"min=0"`
	PriceChild    int `validate:"min=0"`
	PriceInfant   int `validate:"min=0"`
}

// LoadConfig reads an env-style file at path. A missing file is fine:
// defaults and process environment are used instead.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "ticket-service")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("TICKET_MAX_PER_BOOKING", 25)
	v.SetDefault("TICKET_PRICE_ADULT", 25)
	v.SetDefault("TICKET_PRICE_CHILD", 15)
	v.SetDefault("TICKET_PRICE_INFANT", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Ticket: TicketConfig{
			MaxPerBooking: v.GetInt("TICKET_MAX_PER_BOOKING"),
			PriceAdult:    v.GetInt("TICKET_PRICE_ADULT"),
			PriceChild:    v.GetInt("TICKET_PRICE_CHILD"),
			PriceInfant:   v.GetInt("TICKET_PRICE_INFANT"),
		},
	}

	if errs := ValidateStruct(config.Ticket); len(errs) > 0 {
		return nil, fmt.Errorf("invalid ticket config: %s", FormatValidationErrors(errs))
	}

	return config, nil
}
