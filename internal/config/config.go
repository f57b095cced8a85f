package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	Backend  string // memory | file | sql | mongo
	DataFile string
	DBDriver string // mysql | sqlite
	DSN      string
	MongoURI string
	MongoDB  string
}

func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "dev"),
		Backend:  getEnv("STORE_BACKEND", "memory"),
		DataFile: getEnv("DATA_FILE", "data/rooms.json"),
		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DSN:      getEnv("DB_DSN", "roombook.db"),
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "roombook"),
	}
	log.Printf("config loaded: env=%s port=%s backend=%s", c.Env, c.Port, c.Backend)
	return c
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
