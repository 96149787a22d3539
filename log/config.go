package log

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

//Environment variables read by LoadConfig
const (
	EnvLevel = "JETFUELBURN_LOG_LEVEL"
	EnvDir   = "JETFUELBURN_LOG_DIR"
)

//Config holds the logging settings
type Config struct {
	Level string
	Dir   string
}

//LoadConfig reads the logging settings from dotenv files and the process
//environment. Variables already set in the environment win over the files.
//
//Without arguments the optional .env file of the working directory is read.
func LoadConfig(files ...string) (Config, error) {
	optional := len(files) == 0
	if optional {
		files = []string{".env"}
	}

	values, err := godotenv.Read(files...)
	if err != nil {
		if !(optional && errors.Is(err, fs.ErrNotExist)) {
			return Config{}, err
		}
		values = map[string]string{}
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return values[key]
	}

	cfg := Config{
		Level: lookup(EnvLevel),
		Dir:   lookup(EnvDir),
	}
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if _, err := ParseLevel(cfg.Level); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

//NewFromEnv creates a logger configured by LoadConfig and installs it
//as the default logger
func NewFromEnv(files ...string) (*Logger, error) {
	cfg, err := LoadConfig(files...)
	if err != nil {
		return nil, err
	}
	l, err := New(cfg.Level, cfg.Dir)
	if err != nil {
		return nil, err
	}
	SetDefault(l)
	return l, nil
}
