package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"golang-exercisebackend/helpers"

	"github.com/joho/godotenv"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	Port            string
	Store           string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	AllowOrigins    []string
	Spaces          helpers.SpacesConfig
}

// SnapshotsEnabled reports whether snapshot upload has everything it needs.
func (c *Config) SnapshotsEnabled() bool {
	return c.Spaces.Key != "" && c.Spaces.Secret != "" && c.Spaces.Bucket != ""
}

// Load reads an optional .env file from the working directory and builds the
// config from the environment:
//
//	PORT, EXERCISE_STORE, MONGODB_CONNECT_STRING, MONGODB_DATABASE,
//	MONGODB_COLLECTION, CORS_ALLOW_ORIGINS,
//	SPACES_KEY, SPACES_SECRET, SPACES_ENDPOINT, SPACES_REGION, SPACES_BUCKET
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. Variables already set in the
// environment win over the file.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg := &Config{
		Port:            getenv("PORT", "8080"),
		Store:           getenv("EXERCISE_STORE", StoreMongo),
		MongoURI:        os.Getenv("MONGODB_CONNECT_STRING"),
		MongoDatabase:   getenv("MONGODB_DATABASE", "exercises_db"),
		MongoCollection: getenv("MONGODB_COLLECTION", "exercises"),
		AllowOrigins:    splitList(getenv("CORS_ALLOW_ORIGINS", "*")),
		Spaces: helpers.SpacesConfig{
			Key:      os.Getenv("SPACES_KEY"),
			Secret:   os.Getenv("SPACES_SECRET"),
			Endpoint: os.Getenv("SPACES_ENDPOINT"),
			Region:   getenv("SPACES_REGION", "us-east-1"),
			Bucket:   os.Getenv("SPACES_BUCKET"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := strconv.ParseUint(c.Port, 10, 16); err != nil {
		return fmt.Errorf("PORT must be a port number, got %q", c.Port)
	}
	switch c.Store {
	case StoreMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_CONNECT_STRING is required when EXERCISE_STORE=%s", StoreMongo)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("EXERCISE_STORE must be %q or %q, got %q", StoreMongo, StoreMemory, c.Store)
	}
	if len(c.AllowOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOW_ORIGINS must list at least one origin")
	}
	for _, origin := range c.AllowOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("CORS_ALLOW_ORIGINS entry %q must start with http:// or https://", origin)
		}
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
