package env

import (
	"strings"

	"github.com/benjaminmd/ezplot/helpers"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	TimeFormat = "20060102-150405.000"
)

var LogStdout bool
var LogLevel int
var Login, LogFile, Mode, OutputDir, Password, Port, StylePath, WebPrefix string

func init() {
	Mode = helpers.GetenvOr("MODE", "PROD")
	// CAUTION: other init functions in "helpers" package may be called before this
	if Mode == "DEV" {
		if err := godotenv.Load(".env"); err != nil {
			log.Fatal().Err(err).Msg("app_crashed")
		}
	}
	LogStdout = helpers.GetenvBool("LOG_STDOUT")
	LogLevel = helpers.GetenvInt("LOG_LEVEL", 2)

	// strings
	LogFile = helpers.Getenv("LOG_FILE")
	Port = helpers.Getenv("PORT")
	if len(Port) < 2 {
		Port = "8200"
	}
	StylePath = helpers.GetenvOr("STYLE", "config/style.yml")
	OutputDir = helpers.GetenvOr("OUTPUT_DIR", "plots")
	// for instance "/path" if ezplot is reachable at https://host/path
	WebPrefix = strings.TrimSuffix(helpers.Getenv("WEB_PREFIX"), "/")
	// basic Auth, disabled when login is empty
	Login = helpers.Getenv("LOGIN")
	Password = helpers.Getenv("PASSWORD")
	configureGlobalLogger(LogLevel)
}
