package commands

import (
	"testing"

	"github.com/fivetwenty-io/rtr/internal/constants"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected rtr.Filter
		wantErr  bool
	}{
		{
			name:     "equality",
			input:    "registrant=john",
			expected: rtr.Filter{Field: "registrant", Matcher: rtr.MatcherEquals, Value: "john"},
		},
		{
			name:     "short matcher",
			input:    "expiryDate:lt=2026-01-01",
			expected: rtr.Filter{Field: "expiryDate", Matcher: rtr.MatcherLessThan, Value: "2026-01-01"},
		},
		{
			name:     "long matcher",
			input:    "expiryDate:GREATER_THAN_OR_EQUAL_TO=2026-01-01",
			expected: rtr.Filter{Field: "expiryDate", Matcher: rtr.MatcherGreaterThanOrEqual, Value: "2026-01-01"},
		},
		{
			name:     "in splits values",
			input:    "status:in=OK,CLIENT_HOLD",
			expected: rtr.Filter{Field: "status", Matcher: rtr.MatcherIn, Values: []string{"OK", "CLIENT_HOLD"}},
		},
		{
			name:     "not_in keeps the comma list",
			input:    "status:not_in=OK,CLIENT_HOLD",
			expected: rtr.Filter{Field: "status", Matcher: rtr.MatcherNotIn, Value: "OK,CLIENT_HOLD"},
		},
		{
			name:     "value may contain equals sign",
			input:    "q:like=a=b",
			expected: rtr.Filter{Field: "q", Matcher: rtr.MatcherLike, Value: "a=b"},
		},
		{name: "missing value", input: "status", wantErr: true},
		{name: "missing field", input: ":lt=3", wantErr: true},
		{name: "unknown matcher", input: "status:between=1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			filter, err := parseFilter(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, constants.ErrInvalidFilterFlag)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, filter)
		})
	}
}

func TestListFlags_Query(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "list"}
	flags := addListFlags(cmd)

	err := cmd.ParseFlags([]string{
		"--limit", "2",
		"--offset", "4",
		"--order", "-expiryDate,domainName",
		"--total",
		"--q", "example",
		"--fields", "domainName",
		"--filter", "expiryDate:lt=2026-01-01",
		"--filter", "status:in=OK,CLIENT_HOLD",
		"--filter", "registrant:not_in=A,B",
	})
	require.NoError(t, err)

	query, err := flags.query()
	require.NoError(t, err)

	params := rtr.Encode(query)
	assert.Equal(t, []string{
		"limit", "offset", "order", "total", "fields", "q", "expiryDate:lt", "status:in", "registrant:not_in",
	}, params.Keys())
	assert.Equal(t, map[string]any{
		"limit":             "2",
		"offset":            "4",
		"order":             []string{"-expiryDate", "domainName"},
		"total":             "true",
		"fields":            []string{"domainName"},
		"q":                 "example",
		"expiryDate:lt":     "2026-01-01",
		"status:in":         "OK,CLIENT_HOLD",
		"registrant:not_in": "A,B",
	}, params.ToMap())
	assert.Equal(t, []string{"A,B"}, params.Values()["registrant:not_in"])
}

func TestListFlags_Defaults(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "list"}
	flags := addListFlags(cmd)
	require.NoError(t, cmd.ParseFlags(nil))

	query, err := flags.query()
	require.NoError(t, err)
	require.NotNil(t, query.Limit)
	assert.Equal(t, constants.DefaultListLimit, *query.Limit)
	assert.Nil(t, query.Offset)
	assert.Nil(t, query.Total)
	assert.Empty(t, query.Filters)
}

func TestListFlags_InvalidFilter(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "list"}
	flags := addListFlags(cmd)
	require.NoError(t, cmd.ParseFlags([]string{"--filter", "broken"}))

	_, err := flags.query()
	require.ErrorIs(t, err, constants.ErrInvalidFilterFlag)
}
