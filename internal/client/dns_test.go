package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fivetwenty-io/rtr/internal/client"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDNSZonesClient(t *testing.T) {
	t.Parallel()

	runOperationTests(t, []operationTest{
		{
			name: "get",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.DNSZones().Get(ctx, 17, nil)
			},
			reply:  cannedResponse{body: `{"id":17,"name":"example.com","service":"PREMIUM"}`},
			method: http.MethodGet,
			path:   "/dns/zones/17",
			validate: func(t *testing.T, result any) {
				t.Helper()

				zone := result.(*rtr.DNSZone)
				assert.Equal(t, 17, zone.ID)
				assert.Equal(t, "example.com", zone.Name)
			},
		},
		{
			name: "stats",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.DNSZones().Stats(ctx, 17)
			},
			reply:  cannedResponse{body: `{"queries":[]}`},
			method: http.MethodGet,
			path:   "/dns/zones/17/stats",
		},
		{
			name: "list",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.DNSZones().List(ctx, rtr.NewListQuery().Where("service", rtr.MatcherEquals, "BASIC"))
			},
			reply:  cannedResponse{body: `{"entities":[{"id":1,"name":"a.com","service":"BASIC"}]}`},
			method: http.MethodGet,
			path:   "/dns/zones/",
			query:  "service=BASIC",
		},
		{
			name: "create",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.DNSZones().Create(ctx, &rtr.DNSZoneCreateRequest{Name: "example.com", Service: rtr.ZoneService("BASIC")})
			},
			reply:  cannedResponse{status: http.StatusCreated, processID: "30"},
			method: http.MethodPost,
			path:   "/dns/zones/",
		},
		{
			name: "update",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.DNSZones().Update(ctx, 17, &rtr.DNSZoneUpdateRequest{Template: "default"})
			},
			reply:  cannedResponse{processID: "31"},
			method: http.MethodPost,
			path:   "/dns/zones/17/update",
			body:   `{"template":"default"}`,
		},
		{
			name: "retrieve returns the status code",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.DNSZones().Retrieve(ctx, 17)
			},
			reply:  cannedResponse{status: http.StatusAccepted},
			method: http.MethodPost,
			path:   "/dns/zones/17/retrieve",
			validate: func(t *testing.T, result any) {
				t.Helper()

				assert.Equal(t, http.StatusAccepted, result.(*rtr.DNSZoneRetrieveResult).Status)
			},
		},
		{
			name: "ack DS update",
			call: func(ctx context.Context, client *Client) (any, error) {
				return nil, client.DNSZones().AckDSUpdate(ctx, 99)
			},
			method: http.MethodPost,
			path:   "/processes/99/ack-ds-update",
		},
		{
			name: "delete",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.DNSZones().Delete(ctx, 17)
			},
			reply:  cannedResponse{processID: "32"},
			method: http.MethodDelete,
			path:   "/dns/zones/17",
		},
	})
}

func TestDNSTemplatesClient(t *testing.T) {
	t.Parallel()

	runOperationTests(t, []operationTest{
		{
			name: "list",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.DNSTemplates().List(ctx, nil)
			},
			reply:  cannedResponse{body: `{"entities":[]}`},
			method: http.MethodGet,
			path:   "/customers/acme/dnstemplates/",
		},
		{
			name: "create",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.DNSTemplates().Create(ctx, "default", &rtr.DNSTemplateRequest{
					HostMaster: "hostmaster@example.com",
					Refresh:    3600,
					Retry:      600,
					Expire:     604800,
					TTL:        3600,
				})
			},
			reply:  cannedResponse{processID: "33"},
			method: http.MethodPost,
			path:   "/customers/acme/dnstemplates/default",
			body:   `{"hostMaster":"hostmaster@example.com","refresh":3600,"retry":600,"expire":604800,"ttl":3600}`,
		},
		{
			name: "update",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.DNSTemplates().Update(ctx, "default", &rtr.DNSTemplateRequest{})
			},
			reply:  cannedResponse{processID: "34"},
			method: http.MethodPost,
			path:   "/customers/acme/dnstemplates/default/update",
		},
		{
			name: "delete",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.DNSTemplates().Delete(ctx, "default")
			},
			reply:  cannedResponse{processID: "35"},
			method: http.MethodDelete,
			path:   "/customers/acme/dnstemplates/default",
		},
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestProcessesClient(t *testing.T) {
	t.Parallel()

	runOperationTests(t, []operationTest{
		{
			name: "get",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Processes().Get(ctx, 5, nil)
			},
			reply:  cannedResponse{body: `{"id":5,"user":"admin","customer":"acme","status":"COMPLETED","action":"create","type":"Domain","identifier":"example.com","createdDate":"2025-01-01T00:00:00Z","updatedDate":"2025-01-01T00:00:00Z"}`},
			method: http.MethodGet,
			path:   "/processes/5",
			validate: func(t *testing.T, result any) {
				t.Helper()

				assert.Equal(t, 5, result.(*rtr.Process).ID)
			},
		},
		{
			name: "info decodes the certificate process",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Processes().Info(ctx, 5)
			},
			reply:  cannedResponse{body: `{"commonName":"example.com","requiresAttention":true,"validations":{"dcv":[{"commonName":"example.com","type":"DNS","status":"WAITING"}]}}`},
			method: http.MethodGet,
			path:   "/processes/5/info",
			validate: func(t *testing.T, result any) {
				t.Helper()

				info := result.(*rtr.CertificateProcessResponse)
				assert.Equal(t, 5, info.ID)
				assert.Equal(t, "example.com", info.Result.CommonName)
				assert.True(t, info.Result.RequiresAttention)
				require.NotNil(t, info.Result.Validations)
				require.Len(t, info.Result.Validations.DCV, 1)
				assert.Equal(t, rtr.DCVDNS, info.Result.Validations.DCV[0].Type)
			},
		},
		{
			name: "cancel",
			call: func(ctx context.Context, client *Client) (any, error) {
				return nil, client.Processes().Cancel(ctx, 5)
			},
			method: http.MethodDelete,
			path:   "/processes/5",
		},
		{
			name: "resend",
			call: func(ctx context.Context, client *Client) (any, error) {
				return nil, client.Processes().Resend(ctx, 5)
			},
			method: http.MethodPost,
			path:   "/processes/5/resend",
			body:   `{}`,
		},
		{
			name: "list",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Processes().List(ctx, rtr.NewListQuery().WithFields("id", "status"))
			},
			reply:  cannedResponse{body: `{"entities":[]}`},
			method: http.MethodGet,
			path:   "/processes/",
			query:  "fields=id&fields=status",
		},
	})
}
