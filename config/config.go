package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Database   Database
	Catalog    Catalog
	Assessment Assessment
	Auth       Auth
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Catalog struct {
	BaseURL         string
	CacheTTLSeconds int
}

type Assessment struct {
	// SubmissionGraceSeconds is added to the submit deadline check only,
	// never to the end time shown to the user.
	SubmissionGraceSeconds int
}

type Auth struct {
	JWTSecret string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetDefault("CATALOG_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("SUBMISSION_GRACE_SECONDS", 120)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Catalog.BaseURL = viper.GetString("CATALOG_BASE_URL")
	config.Catalog.CacheTTLSeconds = viper.GetInt("CATALOG_CACHE_TTL_SECONDS")
	config.Assessment.SubmissionGraceSeconds = viper.GetInt("SUBMISSION_GRACE_SECONDS")
	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")

	log.Info().Str("port", config.Server.Port).Str("catalog", config.Catalog.BaseURL).Msg("Config loaded")
	return &config, nil
}
