package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Config collects all configuration options.
type Config struct {
	Repository Repository `yaml:"repository"`

	// Fallback is the profile served for unknown usernames, if any.
	Fallback *Profile `yaml:"fallback"`
}

// Validate validates the configuration.
func (c Config) Validate() error {
	if c.Repository.Type == "" {
		return fmt.Errorf("repository type is required")
	}

	if err := c.Repository.Config.Validate(); err != nil {
		return err
	}

	if c.Fallback != nil && c.Fallback.Username == "" {
		return fmt.Errorf("fallback: username is required")
	}

	return nil
}

// rawConfig is a general struct to be used by other config structs to unmarshal yaml config first.
type rawConfig struct {
	Type   string                 `yaml:"type"`
	Config map[string]interface{} `yaml:"config"`
}

func decode(input interface{}, result interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: result,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
