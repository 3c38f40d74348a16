package config

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// Config holds the server's environment-driven settings. A .env file in the
// working directory is loaded automatically.
type Config struct {
	HTTPAddr       string // listen address for the HTTP server
	StaticDir      string // directory the game frontend is served from
	CatalogBackend string // "sqlite" or "postgres"
	SQLitePath     string
	PostgresDSN    string
}

// Load reads configuration from the environment, applying defaults.
func Load() Config {
	return Config{
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		StaticDir:      getenv("STATIC_DIR", "web/static"),
		CatalogBackend: getenv("CATALOG_BACKEND", "sqlite"),
		SQLitePath:     getenv("SQLITE_PATH", "./memory-game.db"),
		PostgresDSN:    os.Getenv("POSTGRES_DSN"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
