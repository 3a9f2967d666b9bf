package main

import (
	"encoding/json"
	"os"
)

// Config carries optional defaults for the CLI flags, loaded from a JSON
// file. Flags explicitly set on the command line take precedence.
type Config struct {
	Input    string `json:"input"`
	LogLevel string `json:"log_level"`
	Quiet    bool   `json:"quiet"`
	Linear   bool   `json:"linear"`
}

// loadConfig loads a JSON config from the given path. An empty path or a
// missing file yields zero-value defaults; a malformed file is an error.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}
	defer f.Close()

	var c Config
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return nil, err
	}

	return &c, nil
}
