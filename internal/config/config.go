// Package config reads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrAPIURLMissing    = errors.New("environment variable API_URL must be set")
	ErrAPIURLInvalid    = errors.New("environment variable API_URL must be a valid URL")
	ErrJWTSecretMissing = errors.New("environment variable JWT_SECRET must be set")
)

// Config is the runtime configuration of the backend.
type Config struct {
	APIURL           *url.URL      // Base URL the API is served under
	Port             int           // Port the HTTP server listens on
	DBPath           string        // Path to the SQLite database file
	JWTSecret        string        // HMAC secret for bearer tokens
	TokenTTL         time.Duration // Lifetime of issued tokens
	BcryptCost       int           // Cost for password hashes
	CORSAllowOrigins []string      // Allowed CORS origins, glob patterns are supported
	EnablePprof      bool          // Register pprof routes
	LogFormat        string        // "human" or "json", empty selects by gin mode
	GinMode          string        // gin mode, "release" unless set
}

// Load reads the configuration.
//
// Values from a .env file in the working directory are loaded first if the
// file exists. Variables already set in the environment take precedence.
func Load() (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not load .env file: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 8080)
	v.SetDefault("DB_PATH", "data/gorm.db")
	v.SetDefault("TOKEN_TTL", 7*24*time.Hour)
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("ENABLE_PPROF", false)

	// gin uses debug as the default mode, we use release for
	// security reasons
	v.SetDefault("GIN_MODE", "release")

	rawURL := v.GetString("API_URL")
	if rawURL == "" {
		return Config{}, ErrAPIURLMissing
	}

	apiURL, err := url.Parse(rawURL)
	if err != nil || apiURL.Scheme == "" || apiURL.Host == "" {
		return Config{}, ErrAPIURLInvalid
	}
	apiURL.Path = strings.TrimSuffix(apiURL.Path, "/")

	secret := v.GetString("JWT_SECRET")
	if secret == "" {
		return Config{}, ErrJWTSecretMissing
	}

	return Config{
		APIURL:           apiURL,
		Port:             v.GetInt("PORT"),
		DBPath:           v.GetString("DB_PATH"),
		JWTSecret:        secret,
		TokenTTL:         v.GetDuration("TOKEN_TTL"),
		BcryptCost:       v.GetInt("BCRYPT_COST"),
		CORSAllowOrigins: strings.Fields(v.GetString("CORS_ALLOW_ORIGINS")),
		EnablePprof:      v.GetBool("ENABLE_PPROF"),
		LogFormat:        v.GetString("LOG_FORMAT"),
		GinMode:          v.GetString("GIN_MODE"),
	}, nil
}
