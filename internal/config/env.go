package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/keystore/internal/model"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: passwords are never read from the environment - use ReadPassword
type Config struct {
	Port         string `envconfig:"PORT" default:"8080"`
	KeystoreDir  string `envconfig:"KEYSTORE_DIR" default:"keystore"`
	DefaultChain string `envconfig:"KEYSTORE_DEFAULT_CHAIN" default:"ethereum"`
	LightKDF     bool   `envconfig:"KEYSTORE_LIGHT_KDF" default:"false"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if _, err := model.ParseChain(c.DefaultChain); err != nil {
		return fmt.Errorf("invalid KEYSTORE_DEFAULT_CHAIN: %w", err)
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetKeystoreDir returns the key directory from configuration
func GetKeystoreDir() string {
	return Get().KeystoreDir
}

// GetDefaultChain returns the chain used when a request names none
func GetDefaultChain() model.Chain {
	chain, err := model.ParseChain(Get().DefaultChain)
	if err != nil {
		return model.DefaultChain
	}
	return chain
}

// ReadPassword prompts for a password in the terminal without echoing it.
// Caller must zero the returned slice after use.
func ReadPassword(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("stdin is not a terminal: run the command interactively to enter password")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}
	return raw, nil
}

// ReadNewPassword prompts twice and returns the password only if both entries match.
// Caller must zero the returned slice after use.
func ReadNewPassword(prompt string) ([]byte, error) {
	first, err := ReadPassword(prompt)
	if err != nil {
		return nil, err
	}

	second, err := ReadPassword("Repeat password: ")
	if err != nil {
		clear(first)
		return nil, err
	}
	defer clear(second)

	if !bytes.Equal(first, second) {
		clear(first)
		return nil, errors.New("passwords do not match")
	}
	return first, nil
}
