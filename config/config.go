package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/onestraw/weighted"
)

// Configuration error.
var (
	ErrItemValueEmpty = errors.New("Item Value is not specified")
	ErrNegativeWeight = errors.New("Item Weight is negative")
)

// Item configuration.
type Item struct {
	Value  string `json:"value" yaml:"value"`
	Weight int    `json:"weight" yaml:"weight"`
}

// Configuration is the whole configuration.
type Configuration struct {
	Method string `json:"method" yaml:"method"`
	Rounds int    `json:"rounds" yaml:"rounds"`
	Items  []Item `json:"items" yaml:"items"`
}

// Load reads the configFile and returns a Configuration object.
// Files named *.yaml or *.yml are decoded as YAML, everything else as JSON.
func Load(configFile string) (*Configuration, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	c := &Configuration{}
	switch filepath.Ext(configFile) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		return nil, err
	}
	if err = c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFromString returns a Configuration object.
func LoadFromString(config string) (*Configuration, error) {
	var err error
	c := &Configuration{}
	decoder := json.NewDecoder(strings.NewReader(config))
	if err = decoder.Decode(c); err != nil {
		return nil, err
	}
	if err = c.check(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Configuration) check() error {
	switch c.Method {
	case "", weighted.MethodRandom, weighted.MethodRoundRobin, weighted.MethodSmooth:
	default:
		return weighted.ErrNotSupportedMethod
	}

	// duplicate values are allowed, they are treated as distinct entries
	for _, item := range c.Items {
		if item.Value == "" {
			return ErrItemValueEmpty
		}
		if item.Weight < 0 {
			return ErrNegativeWeight
		}
	}
	return nil
}
