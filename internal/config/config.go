package config

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultOriginAddress is the placeholder shipped with the example env file.
// Until a deployment replaces it with a real base address, distance resolution
// stays disabled and every quote routes to contact.
const DefaultOriginAddress = "REPLACE_WITH_YOUR_BASE_ADDRESS"

type Config struct {
	ServerPort     string `mapstructure:"SERVER_PORT" validate:"required"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	AWSRegion               string `mapstructure:"AWS_REGION"`
	LocationPlaceIndex      string `mapstructure:"LOCATION_PLACE_INDEX"`
	LocationRouteCalculator string `mapstructure:"LOCATION_ROUTE_CALCULATOR"`
	QuoteOriginAddress      string `mapstructure:"QUOTE_ORIGIN_ADDRESS"`

	QuoteWindowStartHour int `mapstructure:"QUOTE_WINDOW_START_HOUR" validate:"min=0,max=23"`
	QuoteWindowEndHour   int `mapstructure:"QUOTE_WINDOW_END_HOUR" validate:"min=0,max=23"`

	// Both must be set for contact-lead notification emails to go out.
	ContactNotifySender    string `mapstructure:"CONTACT_NOTIFY_SENDER" validate:"omitempty,email"`
	ContactNotifyRecipient string `mapstructure:"CONTACT_NOTIFY_RECIPIENT" validate:"omitempty,email"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env") // Name of config file (without extension)
	viper.SetConfigType("env")

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ALLOWED_ORIGINS", "*")
	viper.SetDefault("QUOTE_ORIGIN_ADDRESS", DefaultOriginAddress)
	viper.SetDefault("QUOTE_WINDOW_START_HOUR", 13)
	viper.SetDefault("QUOTE_WINDOW_END_HOUR", 22)

	err := viper.ReadInConfig()
	if err != nil {
		// Handle errors reading the config file, but allow it if it's just "not found"
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No .env file found.")
		} else {
			return nil, err
		}
	}

	var cfg Config
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Origins splits ALLOWED_ORIGINS into a clean list, falling back to "*" when
// nothing usable was configured.
func (c *Config) Origins() []string {
	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			origins = append(origins, v)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}
