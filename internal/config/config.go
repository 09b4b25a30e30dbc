// Package config reads optional YAML defaults for tu's flags.
//
// Keys are flag names, for example:
//
//	dialect: uk
//	format: unix
//	parallelism: 8
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// Paths are the configuration files tried in order; later files win.
var Paths = []string{
	"/etc/tu/config.yaml",
	"~/.config/tu/config.yaml",
}

// Loader is a kong.ConfigurationLoader for YAML files. Values are handed to kong's JSON
// resolver so flag name matching is identical for both formats.
func Loader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding yaml config: %w", err)
	}

	raw, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("re-encoding config: %w", err)
	}
	return kong.JSON(bytes.NewReader(raw))
}
