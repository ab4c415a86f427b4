package inproc

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/cape-open/cobia/capi"
)

// KeyConfig is the TOML shape of one registry key. Keys nest through the
// keys table; values carry exactly one of the three kinds.
type KeyConfig struct {
	AllUsers bool                   `toml:"allUsers"`
	Values   map[string]ValueConfig `toml:"values"`
	Keys     map[string]KeyConfig   `toml:"keys"`
}

// ValueConfig is the TOML shape of one registry value.
type ValueConfig struct {
	String  *string `toml:"string"`
	Integer *int32  `toml:"integer"`
	UUID    *string `toml:"uuid"`
}

// Config is a registry snapshot.
type Config struct {
	Version string               `toml:"version"`
	Keys    map[string]KeyConfig `toml:"keys"`
}

// LoadConfig reads a snapshot from a TOML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry snapshot: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig reads a snapshot from TOML text.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse registry snapshot: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	for name, key := range c.Keys {
		if err := validateKey(name, key); err != nil {
			return err
		}
	}
	return nil
}

func validateKey(path string, key KeyConfig) error {
	for name, v := range key.Values {
		kinds := 0
		if v.String != nil {
			kinds++
		}
		if v.Integer != nil {
			kinds++
		}
		if v.UUID != nil {
			kinds++
		}
		if kinds > 1 {
			return fmt.Errorf("registry snapshot: value %s/%s has more than one kind", path, name)
		}
		if v.UUID != nil {
			if _, err := capi.ParseUUID(*v.UUID); err != nil {
				return fmt.Errorf("registry snapshot: value %s/%s: %w", path, name, err)
			}
		}
	}
	for name, sub := range key.Keys {
		if err := validateKey(path+"/"+name, sub); err != nil {
			return err
		}
	}
	return nil
}
