package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/hexpath/internal/errors"
)

// Load reads path over the defaults, applies environment overrides and
// validates the result. An empty path loads defaults only.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.NotFoundf("config file %s not found", path)
			}
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
		if err := Decode(path, data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return cfg, nil
}

// Decode parses data into cfg using the decoder for path's extension.
// Unknown keys are rejected.
func Decode(path string, data []byte, cfg *Config) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse toml config").
				WithMeta("path", path)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse yaml config").
				WithMeta("path", path)
		}
	default:
		return errors.InvalidArgumentf("unsupported config extension %q", ext)
	}
	return nil
}
