package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. The types reflect how the values are used in
// the application: strings for identifiers and secrets, ints for durations
// and costs.
type Config struct {
	Env          string // application environment (e.g. "dev", "prod")
	Port         string // HTTP port to listen on
	DatabaseDSN  string // MySQL connection DSN
	JWTSecret    string // secret used to sign access tokens
	JWTAlgorithm string // HMAC signing algorithm name (HS256/HS384/HS512)
	AccessTTLMin int    // access token time-to-live in minutes
	BcryptCost   int    // bcrypt cost for password hashing
}

// Load reads configuration values from environment variables and returns a
// Config. The signing secret and database DSN are enforced by must(): the
// process refuses to start without them. Everything else falls back to a
// sensible default.
func Load() Config {
	return Config{
		Env:          getenv("APP_ENV", "dev"),
		Port:         getenv("APP_PORT", "8080"),
		DatabaseDSN:  must("DATABASE_DSN"),
		JWTSecret:    must("JWT_SECRET"),
		JWTAlgorithm: getenv("JWT_ALGORITHM", "HS256"),
		AccessTTLMin: getenvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 1440),
		BcryptCost:   getenvInt("BCRYPT_COST", 0), // 0 -> hasher default
	}
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the value of an environment variable or a default when
// the variable is unset or empty.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getenvInt is like getenv but converts the value to an integer. Invalid
// values fall back to the default rather than aborting startup.
func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
