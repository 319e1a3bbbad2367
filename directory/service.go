package directory

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"

	"github.com/Phponly/Onlyoption/option"
)

// LookupService resolves directory lookups.
type LookupService interface {
	Lookup(ctx context.Context, r LookupRequest) (LookupResponse, error)
}

type LookupRequest struct {
	Username string

	// Verbose requests attribute details in the response.
	// Absent means the server default (off).
	Verbose option.Option[bool]
}

type LookupResponse struct {
	RequestID   string                `json:"request_id"`
	Username    string                `json:"username"`
	DisplayName string                `json:"display_name"`
	Email       option.Option[string] `json:"email"`
	Attributes  map[string]string     `json:"attributes,omitempty"`
	LookedUpAt  string                `json:"looked_up_at"`
}

// LookupServiceImpl resolves lookups against a ProfileRepository, falling
// back to an optional default profile when the repository has no entry.
type LookupServiceImpl struct {
	Repository ProfileRepository

	// Fallback is returned for usernames the repository does not know.
	// It is typically constructed with option.Defer so the default profile
	// is only built if a lookup ever misses.
	Fallback option.Option[Profile]

	Clock  clockwork.Clock
	Logger *zap.Logger
}

func (s LookupServiceImpl) Lookup(ctx context.Context, r LookupRequest) (LookupResponse, error) {
	requestID, err := uuid.NewV4()
	if err != nil {
		return LookupResponse{}, err
	}

	found, err := s.Repository.FindProfile(ctx, r.Username)
	if err != nil {
		return LookupResponse{}, err
	}

	profile, err := found.OrElse(s.Fallback).GetOrErr(func() error { return ErrProfileNotFound })
	if err != nil {
		return LookupResponse{}, err
	}

	s.Logger.Debug(
		"profile lookup",
		zap.String("username", r.Username),
		zap.Bool("fallback", found.IsEmpty()),
		zap.String("requestId", requestID.String()),
	)

	response := LookupResponse{
		RequestID:   requestID.String(),
		Username:    profile.Username,
		DisplayName: profile.DisplayName(),
		Email:       profile.Email,
		LookedUpAt:  s.Clock.Now().UTC().Format(time.RFC3339),
	}

	if r.Verbose.GetOrElse(false) {
		response.Attributes = maps.Clone(profile.Attributes)
	}

	return response, nil
}
