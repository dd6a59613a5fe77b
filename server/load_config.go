package server

import (
	"github.com/benjaminmd/ezplot/helpers"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

type serverConfig struct {
	// request bodies above this size are rejected
	MaxBodyBytes int64 `yaml:"maxBodyBytes"`
	// renders older than this are dropped from the store
	RenderTTLMinutes int `yaml:"renderTTLMinutes"`
	// allowed render formats
	Formats []string `yaml:"formats"`
}

var config serverConfig

func defaultConfig() serverConfig {
	return serverConfig{
		MaxBodyBytes:     32 << 20,
		RenderTTLMinutes: 60,
		Formats:          []string{"png", "svg", "pdf"},
	}
}

func init() {
	config = defaultConfig()

	f, err := helpers.Open("config/server.yml")
	if err != nil {
		log.Warn().Str("context", "init").Err(err).Msg("server_config_defaults")
		return
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err = decoder.Decode(&config); err != nil {
		log.Error().Str("context", "init").Err(err).Msg("server_config_invalid")
		config = defaultConfig()
	}
}
