package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/fivetwenty-io/rtr/internal/auth"
	"github.com/fivetwenty-io/rtr/internal/constants"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// executeCommand runs the root command with args and returns stdout. Tests
// using it share viper state and must not run in parallel.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "config.yml")

	root := NewRootCommand("1.2.3", "abc", "today")

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(append([]string{"--config", configFile}, args...))

	err := root.Execute()

	return stdout.String(), err
}

type apiRecorder struct {
	mu       sync.Mutex
	requests []*http.Request
}

func (r *apiRecorder) last() *http.Request {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.requests) == 0 {
		return nil
	}

	return r.requests[len(r.requests)-1]
}

func newAPIServer(t *testing.T, status int, body string) (*httptest.Server, *apiRecorder) {
	t.Helper()

	recorder := &apiRecorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		recorder.mu.Lock()
		recorder.requests = append(recorder.requests, req.Clone(req.Context()))
		recorder.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(constants.ProcessIDHeader, "77")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, recorder
}

func TestNewRootCommand(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := NewRootCommand("dev", "none", "unknown")
	assert.Equal(t, "rtr", root.Use)

	expected := map[string][]string{
		"version":       nil,
		"login":         nil,
		"config":        {"show", "get", "set", "unset"},
		"domains":       {"list", "get", "check", "renew", "delete"},
		"contacts":      {"list", "get"},
		"zones":         {"list", "get", "stats"},
		"certificates":  {"list", "get", "download", "decode-csr"},
		"processes":     {"list", "get", "cancel"},
		"notifications": {"list", "ack"},
		"billing":       {"transactions", "exchange-rates", "credit"},
		"tlds":          {"info"},
		"providers":     {"list", "downtime"},
	}

	for name, subcommands := range expected {
		cmd := findSubcommand(root, name)
		require.NotNil(t, cmd, name)

		for _, sub := range subcommands {
			assert.NotNil(t, findSubcommand(cmd, sub), "%s %s", name, sub)
		}
	}

	for _, flag := range []string{"config", "api-key", "customer", "base-url", "ote", "output", "verbose", "timeout"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestListCommandsHaveQueryFlags(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	root := NewRootCommand("dev", "none", "unknown")

	lists := [][2]string{
		{"domains", "list"},
		{"contacts", "list"},
		{"zones", "list"},
		{"certificates", "list"},
		{"processes", "list"},
		{"notifications", "list"},
		{"billing", "transactions"},
		{"providers", "list"},
		{"providers", "downtime"},
	}

	for _, path := range lists {
		cmd := findSubcommand(findSubcommand(root, path[0]), path[1])
		require.NotNil(t, cmd, path)

		for _, flag := range []string{"limit", "offset", "order", "total", "q", "fields", "filter"} {
			assert.NotNil(t, cmd.Flags().Lookup(flag), "%v --%s", path, flag)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "version", "--output", "json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, map[string]string{"version": "1.2.3", "commit": "abc", "built": "today"}, info)
}

func TestVersionCommand_InvalidOutput(t *testing.T) {
	_, err := executeCommand(t, "version", "--output", "xml")
	require.ErrorIs(t, err, constants.ErrInvalidOutput)
}

func TestDomainsList(t *testing.T) {
	server, recorder := newAPIServer(t, http.StatusOK,
		`{"entities":[{"domainName":"example.com","registrant":"john","status":["OK"]}],"pagination":{"limit":2,"offset":0,"total":1}}`)

	out, err := executeCommand(t,
		"--api-key", "secret", "--base-url", server.URL, "--output", "json",
		"domains", "list", "--limit", "2", "--order", "-expiryDate",
		"--filter", "expiryDate:lt=2026-01-01", "--filter", "status:in=OK,CLIENT_HOLD")
	require.NoError(t, err)

	req := recorder.last()
	require.NotNil(t, req)
	assert.Equal(t, "/domains/", req.URL.Path)
	assert.Equal(t, "ApiKey secret", req.Header.Get("Authorization"))

	query := req.URL.Query()
	assert.Equal(t, "2", query.Get("limit"))
	assert.Equal(t, "-expiryDate", query.Get("order"))
	assert.Equal(t, "2026-01-01", query.Get("expiryDate:lt"))
	assert.Equal(t, "OK,CLIENT_HOLD", query.Get("status:in"))

	var page rtr.Page[rtr.Domain]
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	require.Len(t, page.Entities, 1)
	assert.Equal(t, "example.com", page.Entities[0].DomainName)
}

func TestDomainsList_Table(t *testing.T) {
	server, _ := newAPIServer(t, http.StatusOK,
		`{"entities":[{"domainName":"example.com","status":["OK","CLIENT_HOLD"]}],"pagination":{"total":1}}`)

	out, err := executeCommand(t, "--api-key", "secret", "--base-url", server.URL, "domains", "list", "--total")
	require.NoError(t, err)
	assert.Contains(t, out, "example.com")
	assert.Contains(t, out, "OK, CLIENT_HOLD")
	assert.Contains(t, out, "Showing 1 of 1")
}

func TestDomainsGet_NotFound(t *testing.T) {
	server, _ := newAPIServer(t, http.StatusNotFound, `{"type":"EntityNotFound","message":"not found"}`)

	_, err := executeCommand(t, "--api-key", "secret", "--base-url", server.URL, "domains", "get", "missing.com")
	require.Error(t, err)
	assert.True(t, rtr.IsNotFound(err))
}

func TestDomainsRenewQuote(t *testing.T) {
	server, recorder := newAPIServer(t, http.StatusOK,
		`{"quote":{"currency":"EUR","total":1250,"billables":[{"product":"domain_com","action":"RENEW","quantity":1,"amount":1250,"total":1250}]}}`)

	out, err := executeCommand(t,
		"--api-key", "secret", "--base-url", server.URL, "domains", "renew", "example.com", "--period", "24", "--quote")
	require.NoError(t, err)

	req := recorder.last()
	require.NotNil(t, req)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/domains/example.com/renew", req.URL.Path)
	assert.Equal(t, "true", req.URL.Query().Get("quote"))
	assert.Contains(t, out, "12.50 EUR")
}

func TestDomainsDelete_RequiresConfirmation(t *testing.T) {
	server, recorder := newAPIServer(t, http.StatusOK, "")

	_, err := executeCommand(t, "--api-key", "secret", "--base-url", server.URL, "domains", "delete", "example.com")
	require.NoError(t, err)
	assert.Nil(t, recorder.last())

	out, err := executeCommand(t, "--api-key", "secret", "--base-url", server.URL, "domains", "delete", "example.com", "--force")
	require.NoError(t, err)
	require.NotNil(t, recorder.last())
	assert.Equal(t, http.MethodDelete, recorder.last().Method)
	assert.Contains(t, out, "77")
}

func TestCommands_RequireAPIKey(t *testing.T) {
	t.Setenv("RTR_API_KEY", "")

	_, err := executeCommand(t, "domains", "list")
	require.ErrorIs(t, err, constants.ErrNoAPIKey)
}

func TestCommands_RequireCustomer(t *testing.T) {
	t.Setenv("RTR_CUSTOMER", "")

	server, recorder := newAPIServer(t, http.StatusOK, `{}`)

	_, err := executeCommand(t, "--api-key", "secret", "--base-url", server.URL, "contacts", "list")
	require.ErrorIs(t, err, constants.ErrNoCustomer)
	assert.Nil(t, recorder.last())
}

func TestNotificationsList_Unacknowledged(t *testing.T) {
	server, recorder := newAPIServer(t, http.StatusOK, `{"entities":[],"pagination":{}}`)

	out, err := executeCommand(t,
		"--api-key", "secret", "--customer", "acme", "--base-url", server.URL,
		"notifications", "list", "--unacknowledged")
	require.NoError(t, err)

	req := recorder.last()
	require.NotNil(t, req)
	assert.True(t, strings.HasPrefix(req.URL.Path, "/customers/acme/notifications"))
	assert.Equal(t, "true", req.URL.Query().Get("acknowledgeDate:null"))
	assert.Contains(t, out, "No results found")
}

func TestBillingCredit(t *testing.T) {
	server, _ := newAPIServer(t, http.StatusOK,
		`{"accounts":[{"balance":-1050,"currency":"EUR","reservation":200}]}`)

	out, err := executeCommand(t,
		"--api-key", "secret", "--customer", "acme", "--base-url", server.URL, "billing", "credit")
	require.NoError(t, err)
	assert.Contains(t, out, "-10.50 EUR")
	assert.Contains(t, out, "2.00 EUR")
}

func TestCertificatesDownload(t *testing.T) {
	server, recorder := newAPIServer(t, http.StatusOK, "-----BEGIN CERTIFICATE-----")

	target := filepath.Join(t.TempDir(), "cert.pem")

	_, err := executeCommand(t,
		"--api-key", "secret", "--base-url", server.URL,
		"certificates", "download", "42", "--format", "ca_bundle", "--file", target)
	require.NoError(t, err)

	req := recorder.last()
	require.NotNil(t, req)
	assert.Equal(t, "/ssl/certificates/42/download", req.URL.Path)
	assert.Equal(t, "CA_BUNDLE", req.URL.Query().Get("format"))

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "-----BEGIN CERTIFICATE-----", string(data))
}

func TestProcessesCancel_InvalidID(t *testing.T) {
	_, err := executeCommand(t, "--api-key", "secret", "processes", "cancel", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid process id "abc"`)
}

func TestDomainsCheck_Multiple(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch req.URL.Path {
		case "/domains/free.com/check":
			_, _ = w.Write([]byte(`{"available":true,"premium":false}`))
		case "/domains/taken.com/check":
			_, _ = w.Write([]byte(`{"available":false,"reason":"registered"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"type":"EntityNotFound","message":"unknown"}`))
		}
	}))
	t.Cleanup(server.Close)

	out, err := executeCommand(t,
		"--api-key", "secret", "--base-url", server.URL, "--output", "json",
		"domains", "check", "free.com", "taken.com", "bad.invalid")
	require.NoError(t, err)

	var rows []domainCheckResult
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)

	assert.Equal(t, "free.com", rows[0].Domain)
	require.NotNil(t, rows[0].Availability)
	assert.True(t, rows[0].Availability.Available)

	assert.Equal(t, "taken.com", rows[1].Domain)
	require.NotNil(t, rows[1].Availability)
	assert.Equal(t, "registered", rows[1].Availability.Reason)

	assert.Equal(t, "bad.invalid", rows[2].Domain)
	assert.Nil(t, rows[2].Availability)
	assert.NotEmpty(t, rows[2].Error)
}

func TestNewAuthorizer(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yml")
	viper.Set("config", path)
	require.NoError(t, writeConfigFile(path, &Config{APIKey: "stored"}))

	t.Run("key from config file is reloaded", func(t *testing.T) {
		authorizer := newAuthorizer("stored")
		require.IsType(t, &auth.ConfigAuthorizer{}, authorizer)

		require.NoError(t, writeConfigFile(path, &Config{APIKey: "rotated"}))

		invalidator, ok := authorizer.(auth.Invalidator)
		require.True(t, ok)
		invalidator.Invalidate()

		value, err := authorizer.Authorization(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ApiKey rotated", value)
	})

	t.Run("key from flag is used as is", func(t *testing.T) {
		authorizer := newAuthorizer("flag-key")
		require.IsType(t, &auth.APIKeyAuthorizer{}, authorizer)

		value, err := authorizer.Authorization(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ApiKey flag-key", value)
	})
}
