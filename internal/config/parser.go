package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tippererrors "github.com/alexisbeaulieu97/tipper/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseConfig loads a configuration file from disk, validates it, and returns
// the result. Files ending in .toml are read as TOML, anything else as YAML.
// Keys missing from the file keep their Default values and unknown keys are
// rejected.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tippererrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		err = decodeTOML(path, data, &cfg)
	} else {
		err = decodeYAML(path, data, &cfg)
	}
	if err != nil {
		return nil, err
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load returns Default when path is blank and ParseConfig otherwise.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		cfg := Default()
		return &cfg, nil
	}
	return ParseConfig(path)
}

func decodeYAML(path string, data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return tippererrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func decodeTOML(path string, data []byte, cfg *Config) error {
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		line := 0
		var parseErr toml.ParseError
		if errors.As(err, &parseErr) {
			line = parseErr.Position.Line
		}
		return tippererrors.NewParseError(path, line, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return tippererrors.NewParseError(path, 0, fmt.Errorf("unknown field %q", undecoded[0].String()))
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
