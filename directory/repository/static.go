package repository

import (
	"context"
	"sync"

	"golang.org/x/exp/maps"

	"github.com/Phponly/Onlyoption/directory"
	"github.com/Phponly/Onlyoption/option"
)

// StaticProfileRepository serves profiles from memory.
type StaticProfileRepository struct {
	entries map[string]directory.Profile

	initOnce sync.Once
	mu       sync.RWMutex
}

// NewStaticProfileRepository returns a new StaticProfileRepository
// preloaded with profiles.
func NewStaticProfileRepository(profiles []directory.Profile) *StaticProfileRepository {
	r := &StaticProfileRepository{}

	for _, profile := range profiles {
		_ = r.SaveProfile(context.Background(), profile)
	}

	return r
}

func (r *StaticProfileRepository) init() {
	r.initOnce.Do(func() {
		if r.entries == nil {
			r.entries = make(map[string]directory.Profile)
		}
	})
}

// FindProfile implements the directory.ProfileRepository interface.
func (r *StaticProfileRepository) FindProfile(_ context.Context, username string) (option.Option[directory.Profile], error) {
	r.init()
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile, ok := r.entries[username]

	return option.FromOk(profile, ok), nil
}

// SaveProfile stores a profile, replacing any previous entry for the same
// username.
func (r *StaticProfileRepository) SaveProfile(_ context.Context, profile directory.Profile) error {
	r.init()
	r.mu.Lock()
	defer r.mu.Unlock()

	profile.Attributes = maps.Clone(profile.Attributes)
	r.entries[profile.Username] = profile

	return nil
}
