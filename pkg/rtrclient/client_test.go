package rtrclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/fivetwenty-io/rtr/pkg/rtrclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := rtrclient.New(context.Background(), nil)
		require.ErrorIs(t, err, rtr.ErrConfigRequired)
	})

	t.Run("requires credentials", func(t *testing.T) {
		t.Parallel()

		_, err := rtrclient.New(context.Background(), &rtr.Config{Customer: "acme"})
		require.ErrorIs(t, err, rtr.ErrAPIKeyRequired)
	})

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := rtrclient.New(context.Background(), &rtr.Config{APIKey: "key", Customer: "acme"})
		require.NoError(t, err)
		assert.Equal(t, "acme", client.Customer())
	})
}

func TestHelpers(t *testing.T) {
	t.Parallel()

	client, err := rtrclient.NewWithAPIKey(context.Background(), "key", "acme")
	require.NoError(t, err)
	assert.NotNil(t, client.Domains())

	client, err = rtrclient.NewOTE(context.Background(), "key", "acme")
	require.NoError(t, err)
	assert.NotNil(t, client.Certificates())

	client, err = rtrclient.NewWithAuthorization(context.Background(), "Bearer token", "acme")
	require.NoError(t, err)
	assert.NotNil(t, client.Billing())
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/v2/tlds/nl/info":
			assert.Equal(t, "ApiKey test-key", request.Header.Get("Authorization"))
			writer.Header().Set("Content-Type", "application/json")
			_, _ = writer.Write([]byte(`{"hash":"h","applicableFor":["nl"],"provider":"SIDN"}`))
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := rtrclient.New(context.Background(), &rtr.Config{
		APIKey:  "test-key",
		BaseURL: server.URL + "/v2/",
	})
	require.NoError(t, err)

	info, err := client.TLDs().Info(context.Background(), "nl")
	require.NoError(t, err)
	assert.Equal(t, "SIDN", info.Provider)

	_, err = client.TLDs().Info(context.Background(), "invalid")
	require.Error(t, err)
	assert.True(t, rtr.IsNotFound(err))
}
