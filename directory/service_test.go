package directory_test

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Phponly/Onlyoption/directory"
	"github.com/Phponly/Onlyoption/option"
)

type profileRepositoryStub struct {
	profiles map[string]directory.Profile
}

func (r profileRepositoryStub) FindProfile(_ context.Context, username string) (option.Option[directory.Profile], error) {
	profile, ok := r.profiles[username]

	return option.FromOk(profile, ok), nil
}

func TestLookupService(t *testing.T) {
	now := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)

	repository := profileRepositoryStub{
		profiles: map[string]directory.Profile{
			"user": {
				Username:   "user",
				Email:      option.Some("user@example.com"),
				FullName:   option.None[string](),
				Attributes: map[string]string{"team": "platform"},
			},
		},
	}

	service := directory.LookupServiceImpl{
		Repository: repository,
		Fallback:   option.None[directory.Profile](),
		Clock:      clockwork.NewFakeClockAt(now),
		Logger:     zap.NewNop(),
	}

	t.Run("OK", func(t *testing.T) {
		response, err := service.Lookup(context.Background(), directory.LookupRequest{
			Username: "user",
			Verbose:  option.None[bool](),
		})
		require.NoError(t, err)

		assert.NotEmpty(t, response.RequestID)
		assert.Equal(t, "user", response.Username)
		assert.Equal(t, "user", response.DisplayName)
		assert.Equal(t, "user@example.com", response.Email.MustGet())
		assert.Empty(t, response.Attributes)
		assert.Equal(t, "2023-01-02T03:04:05Z", response.LookedUpAt)
	})

	t.Run("Verbose", func(t *testing.T) {
		response, err := service.Lookup(context.Background(), directory.LookupRequest{
			Username: "user",
			Verbose:  option.Some(true),
		})
		require.NoError(t, err)

		assert.Equal(t, map[string]string{"team": "platform"}, response.Attributes)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := service.Lookup(context.Background(), directory.LookupRequest{
			Username: "missing",
		})
		require.Error(t, err)

		assert.ErrorIs(t, err, directory.ErrProfileNotFound)
	})
}

func TestLookupServiceFallback(t *testing.T) {
	var builds int

	service := directory.LookupServiceImpl{
		Repository: profileRepositoryStub{},
		Fallback: option.Defer(func() *directory.Profile {
			builds++

			return &directory.Profile{
				Username: "guest",
				Email:    option.None[string](),
				FullName: option.Some("Guest User"),
			}
		}),
		Clock:  clockwork.NewFakeClock(),
		Logger: zap.NewNop(),
	}

	for i := 0; i < 3; i++ {
		response, err := service.Lookup(context.Background(), directory.LookupRequest{
			Username: "missing",
		})
		require.NoError(t, err)

		assert.Equal(t, "guest", response.Username)
		assert.Equal(t, "Guest User", response.DisplayName)
	}

	// The fallback profile is built on the first miss and memoized.
	assert.Equal(t, 1, builds)
}
