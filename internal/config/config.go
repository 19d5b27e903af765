package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	S3        S3Config        `mapstructure:"s3"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Media     MediaConfig     `mapstructure:"media"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// JWTConfig defines JWT specific configuration
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// ProvidersConfig carries the upstream exercise-catalog provider settings.
// The API key is injected into the client at construction; a client with an
// empty key reports itself as not configured and the orchestrator falls
// over to the keyless mirror.
type ProvidersConfig struct {
	ExerciseDB ExerciseDBConfig `mapstructure:"exercisedb"`
	OpenExDB   OpenExDBConfig   `mapstructure:"openexdb"`
}

// ExerciseDBConfig is the primary provider (ExerciseDB via RapidAPI).
type ExerciseDBConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	APIHost string `mapstructure:"api_host"`
}

// OpenExDBConfig is the secondary provider (free mirror, no auth).
type OpenExDBConfig struct {
	BaseURL string `mapstructure:"base_url"`
}

// MediaConfig overrides the CDN base paths media URLs are resolved
// against. Empty values keep the built-in defaults.
type MediaConfig struct {
	ImageBase     string `mapstructure:"image_base"`
	AnimationBase string `mapstructure:"animation_base"`
	VideoBase     string `mapstructure:"video_base"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Env override for nested keys, e.g. providers.exercisedb.api_key ->
	// PROVIDERS_EXERCISEDB_API_KEY
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("database.uri", "mongodb://localhost:27017")
	viper.SetDefault("database.name", "fitflow_catalog")
	viper.SetDefault("s3.use_ssl", true)
	viper.SetDefault("jwt.expiration", "1h")
	viper.SetDefault("providers.exercisedb.base_url", "https://exercisedb.p.rapidapi.com")
	viper.SetDefault("providers.exercisedb.api_host", "exercisedb.p.rapidapi.com")
	viper.SetDefault("providers.openexdb.base_url", "https://exercisedb-api.vercel.app")

	err = viper.ReadInConfig()
	// Config file is optional; env vars and defaults may be enough.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
