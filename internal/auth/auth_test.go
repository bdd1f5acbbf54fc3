package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/rtr/internal/auth"
	"github.com/fivetwenty-io/rtr/internal/constants"
)

var errSourceDown = errors.New("source down")

type stubKeySource struct {
	keys  map[string]string
	err   error
	calls int
}

func (s *stubKeySource) LoadAPIKey(path string) (string, error) {
	s.calls++

	return s.keys[path], s.err
}

func TestAPIKeyAuthorizer(t *testing.T) {
	t.Parallel()

	value, err := auth.NewAPIKeyAuthorizer("  secret ").Authorization(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ApiKey secret", value)

	_, err = auth.NewAPIKeyAuthorizer("").Authorization(context.Background())
	require.ErrorIs(t, err, constants.ErrEmptyAPIKey)
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		apiKey        string
		authorization string
		want          string
		wantErr       error
	}{
		{name: "api key", apiKey: "k1", want: "ApiKey k1"},
		{name: "authorization wins", apiKey: "k1", authorization: "Bearer x", want: "Bearer x"},
		{name: "nothing", wantErr: auth.ErrNoCredentials},
		{name: "blank key", apiKey: "   ", wantErr: auth.ErrNoCredentials},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			authorizer, err := auth.New(tc.apiKey, tc.authorization)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)

			value, err := authorizer.Authorization(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, value)
		})
	}
}

func TestConfigAuthorizer(t *testing.T) {
	t.Parallel()

	t.Run("loads once and caches", func(t *testing.T) {
		t.Parallel()

		source := &stubKeySource{keys: map[string]string{"default": "abc"}}
		authorizer := auth.NewConfigAuthorizer(source, "default")

		for range 3 {
			value, err := authorizer.Authorization(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "ApiKey abc", value)
		}

		assert.Equal(t, 1, source.calls)
	})

	t.Run("reloads after invalidate", func(t *testing.T) {
		t.Parallel()

		source := &stubKeySource{keys: map[string]string{"default": "old"}}
		authorizer := auth.NewConfigAuthorizer(source, "default")

		_, err := authorizer.Authorization(context.Background())
		require.NoError(t, err)

		source.keys["default"] = "new"
		authorizer.Invalidate()

		value, err := authorizer.Authorization(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ApiKey new", value)
		assert.Equal(t, 2, source.calls)
	})

	t.Run("empty key", func(t *testing.T) {
		t.Parallel()

		authorizer := auth.NewConfigAuthorizer(&stubKeySource{}, "missing")

		_, err := authorizer.Authorization(context.Background())
		require.ErrorIs(t, err, constants.ErrNoAPIKey)
	})

	t.Run("source error", func(t *testing.T) {
		t.Parallel()

		authorizer := auth.NewConfigAuthorizer(&stubKeySource{err: errSourceDown}, "default")

		_, err := authorizer.Authorization(context.Background())
		require.ErrorIs(t, err, errSourceDown)
	})

	t.Run("no source", func(t *testing.T) {
		t.Parallel()

		_, err := auth.NewConfigAuthorizer(nil, "default").Authorization(context.Background())
		require.ErrorIs(t, err, auth.ErrNoKeySource)
	})

	t.Run("set key", func(t *testing.T) {
		t.Parallel()

		authorizer := auth.NewConfigAuthorizer(nil, "default")
		authorizer.SetKey("direct")

		value, err := authorizer.Authorization(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ApiKey direct", value)
	})
}
