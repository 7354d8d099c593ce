package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the credentials file read when no path is given.
const DefaultPath = "login.yaml"

// Environment variables that override the credentials file.
const (
	EnvUser = "WLX_USER"
	EnvPass = "WLX_PASS"
)

// ErrMissingUser is returned when no username is configured.
var ErrMissingUser = errors.New("USER is required")

// Credentials is the username/password pair used for HTTP Basic auth.
type Credentials struct {
	Username string `yaml:"USER"`
	Password string `yaml:"PASS"`
}

// LogValue redacts the password.
func (c Credentials) LogValue() slog.Value {
	pass := ""
	if c.Password != "" {
		pass = "****"
	}
	return slog.GroupValue(
		slog.String("user", c.Username),
		slog.String("pass", pass),
	)
}

// Load reads the YAML credentials file at path and applies environment
// overrides. A missing file is only an error if the environment does not
// supply both values.
func Load(path string) (*Credentials, error) {
	creds := &Credentials{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, creds); err != nil {
			return nil, fmt.Errorf("config: parse yaml %q: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && envComplete():
		slog.Debug("config: credentials file not found, using environment", "path", path)
	default:
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	applyEnvOverrides(creds)

	if err := validate(creds); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return creds, nil
}

// LoadDotEnv loads variables from each existing file in paths into the process
// environment. Missing files are skipped; variables already set are kept.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("config: load %s: %w", p, err)
		}
		slog.Debug("config: loaded env file", "path", p)
	}
	return nil
}

func envComplete() bool {
	_, u := os.LookupEnv(EnvUser)
	_, p := os.LookupEnv(EnvPass)
	return u && p
}

func applyEnvOverrides(c *Credentials) {
	if v, ok := os.LookupEnv(EnvUser); ok {
		c.Username = v
	}
	if v, ok := os.LookupEnv(EnvPass); ok {
		c.Password = v
	}
}

// validate checks required fields. An empty password is allowed; some
// factory-reset units ship without one.
func validate(c *Credentials) error {
	if c.Username == "" {
		return ErrMissingUser
	}
	return nil
}
