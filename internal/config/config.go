package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	InitialAdmin struct {
		Username string `env:"USERNAME" envDefault:"admin"`
		Password string `env:"PASSWORD,required"`
		FullName string `env:"FULL_NAME" envDefault:"Shop Admin"`
	} `envPrefix:"INITIAL_ADMIN_"`
	JWT struct {
		Expiration int    `env:"EXPIRATION" envDefault:"1209600"` // 14 days, in seconds
		Secret     string `env:"SECRET,required"`
	} `envPrefix:"JWT_"`
	Optimizer struct {
		BaseURL string `env:"BASE_URL,required"`
		APIKey  string `env:"API_KEY"`
		Model   string `env:"MODEL" envDefault:"gpt-4o-mini"`
		Timeout int    `env:"TIMEOUT" envDefault:"60"`
	} `envPrefix:"OPTIMIZER_"`
	Planner struct {
		DefaultDailyCapacity float64 `env:"DEFAULT_DAILY_CAPACITY" envDefault:"8"`
		CalendarWeekdays     int     `env:"CALENDAR_WEEKDAYS" envDefault:"30"` // weekday columns the calendar renders
		NewUserPasswordLen   int     `env:"NEW_USER_PASSWORD_LENGTH" envDefault:"12"`
	} `envPrefix:"PLANNER_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// only return the first error to keep the log readable
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
