// Package config reads the optional defaults file.
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	appDir   = "apitester"
	fileName = "config.yaml"
)

// Config holds defaults that command line flags may override. Pointer
// fields distinguish "not set" from an explicit false.
type Config struct {
	Timeout         string `yaml:"timeout"`
	FollowRedirects *bool  `yaml:"follow_redirects"`
	Verify          *bool  `yaml:"verify"`
	HTTP1           *bool  `yaml:"http1"`
	Color           *bool  `yaml:"color"`
	LogLevel        string `yaml:"log_level"`
}

// DefaultPath returns $XDG_CONFIG_HOME/apitester/config.yaml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appDir, fileName)
}

// Load reads the file at path. An empty path means DefaultPath, in which
// case a missing file yields an empty Config. An explicitly given path
// must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return &Config{}, nil
		}
	}

	clean := filepath.Clean(path)
	info, err := os.Stat(clean)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return &Config{}, nil
		}
		return nil, errors.Wrapf(err, "reading config '%s'", clean)
	}
	if !info.Mode().IsRegular() {
		return nil, errors.Errorf("config is not a regular file: %s", clean)
	}

	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config '%s'", clean)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing config '%s'", clean)
	}
	return c, nil
}

// Parse decodes YAML and rejects unknown keys.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if len(bytes.TrimSpace(data)) == 0 {
		return c, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, errors.WithStack(err)
	}
	return c, nil
}
