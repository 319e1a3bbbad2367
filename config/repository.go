package config

import (
	"fmt"

	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"

	"github.com/Phponly/Onlyoption/directory"
	"github.com/Phponly/Onlyoption/directory/repository"
	"github.com/Phponly/Onlyoption/option"
)

// Repository is the configuration for a directory.ProfileRepository.
type Repository struct {
	Type   string `yaml:"type"`
	Config RepositoryFactory
}

func (c *Repository) UnmarshalYAML(value *yaml.Node) error {
	var rawConfig rawConfig

	err := value.Decode(&rawConfig)
	if err != nil {
		return err
	}

	var config RepositoryFactory

	switch rawConfig.Type {
	case "static":
		var factory staticRepository

		err := decode(rawConfig.Config, &factory)
		if err != nil {
			return err
		}

		config = factory
	default:
		return fmt.Errorf("unknown repository type: %s", rawConfig.Type)
	}

	c.Type = rawConfig.Type
	c.Config = config

	return nil
}

// RepositoryFactory creates a new directory.ProfileRepository.
type RepositoryFactory interface {
	CreateRepository() (directory.ProfileRepository, error)
	Validate() error
}

// Profile is the configuration form of a directory.Profile.
// Optional fields are pointers so that omitted keys stay distinguishable
// from empty values.
type Profile struct {
	Username   string            `yaml:"username" mapstructure:"username"`
	Email      *string           `yaml:"email" mapstructure:"email"`
	FullName   *string           `yaml:"fullName" mapstructure:"fullName"`
	Attributes map[string]string `yaml:"attributes" mapstructure:"attributes"`
}

// CreateProfile bridges the nullable configuration fields into a
// directory.Profile.
func (p Profile) CreateProfile() directory.Profile {
	return directory.Profile{
		Username:   p.Username,
		Email:      option.FromPointer(p.Email),
		FullName:   option.FromPointer(p.FullName),
		Attributes: maps.Clone(p.Attributes),
	}
}

type staticRepository struct {
	Entries []Profile `mapstructure:"entries"`
}

func (c staticRepository) CreateRepository() (directory.ProfileRepository, error) {
	profiles := make([]directory.Profile, 0, len(c.Entries))

	for _, entry := range c.Entries {
		profiles = append(profiles, entry.CreateProfile())
	}

	return repository.NewStaticProfileRepository(profiles), nil
}

func (c staticRepository) Validate() error {
	for _, entry := range c.Entries {
		if entry.Username == "" {
			return fmt.Errorf("repository: static: username is required")
		}
	}

	return nil
}
