package simple

import (
	"github.com/externref/macro/core/server"
)

type Config struct {
	Server server.Config

	AppName  string `env:"APP_NAME" envDefault:"macro-simple"`
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}
