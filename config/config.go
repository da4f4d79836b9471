package config

import (
	"fmt"

	"github.com/jinzhu/configor"
)

type Config struct {
	AppConfig AppConfig `env:"APPCONFIG"`
	DBConfig  DBConfig  `env:"DBCONFIG"`
}

type AppConfig struct {
	APPName string `default:"leaderboard"`
	Version string `default:"x.x.x" env:"VERSION"`
	Port    int    `default:"3000" env:"PORT"`
}

type DBConfig struct {
	// URL, when set, wins over the discrete fields below.
	URL      string `env:"DATABASE_URL"`
	Host     string `default:"localhost" env:"DBHOST"`
	DataBase string `default:"leaderboard" env:"DBNAME"`
	User     string `default:"postgres" env:"DBUSERNAME"`
	Password string `required:"true" env:"DBPASSWORD" default:"mysecretpassword"`
	Port     uint   `default:"5432" env:"DBPORT"`
	SSLMode  string `default:"disable" env:"DBSSL"`
}

// DSN returns the connection string for the persistence backend.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.Host, c.User, c.Password, c.DataBase, c.Port, c.SSLMode)
}

func LoadConfigOrPanic() Config {
	var config = Config{}
	configor.Load(&config, "config/config.dev.json")

	return config
}
