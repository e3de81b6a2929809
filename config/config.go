package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Gemini    Gemini
	Wikipedia Wikipedia
}

type Server struct {
	Port string
}

type Gemini struct {
	ApiKey string
	Model  string
}

type Wikipedia struct {
	ApiURL      string
	SearchLimit int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("PORT", "3001")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("WIKIPEDIA_API_URL", "https://en.wikipedia.org/w/api.php")
	viper.SetDefault("WIKIPEDIA_SEARCH_LIMIT", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("PORT")
	if p := viper.GetString("SERVER_PORT"); p != "" {
		config.Server.Port = p
	}
	config.Gemini.ApiKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")
	config.Wikipedia.ApiURL = viper.GetString("WIKIPEDIA_API_URL")
	config.Wikipedia.SearchLimit = viper.GetInt("WIKIPEDIA_SEARCH_LIMIT")

	if config.Gemini.ApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Chat and quiz endpoints will answer 503 until it is configured.")
	}

	log.Info().Str("port", config.Server.Port).Str("gemini_model", config.Gemini.Model).Msg("Config loaded")
	return &config, nil
}
