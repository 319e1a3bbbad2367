package directory

import (
	"context"
	"errors"

	"github.com/Phponly/Onlyoption/option"
)

// Profile represents a directory entry for a single user.
type Profile struct {
	// Username is the primary identifier for the Profile.
	Username string

	// Email is the contact address, if the user registered one.
	Email option.Option[string]

	// FullName is a human-readable name, if the user registered one.
	FullName option.Option[string]

	// Attributes are arbitrary key-value pairs attached to the Profile.
	Attributes map[string]string
}

// DisplayName returns the full name when one is registered, otherwise the
// username.
func (p Profile) DisplayName() string {
	return p.FullName.GetOrElse(p.Username)
}

// ErrProfileNotFound is returned when a lookup resolves to no profile,
// including after fallback chaining.
//
// Repository implementations should not return it: a missing entry is an
// absent Option, not an error. Any error from a repository means the lookup
// itself failed.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository retrieves profiles by username.
//
// A missing profile is reported as an absent Option with a nil error.
type ProfileRepository interface {
	FindProfile(ctx context.Context, username string) (option.Option[Profile], error)
}
