package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config carries every external knob of the application. The store location
// is always explicit: it defaults to a local MySQL database but any caller
// (flag, environment) can override it.
type Config struct {
	DSN     string `envconfig:"INVENTORY_DSN" default:"root:root@tcp(localhost:3306)/inventario?parseTime=true&multiStatements=true"`
	LogFile string `envconfig:"INVENTORY_LOG_FILE" default:"inventario.log"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, errors.Wrap(err, "parse environment")
	}
	return c, nil
}
