package client_test

import (
	"context"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fivetwenty-io/rtr/internal/client"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNotificationsClient(t *testing.T) {
	t.Parallel()

	runOperationTests(t, []operationTest{
		{
			name: "get resolves details",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Notifications().Get(ctx, 8, nil)
			},
			reply: cannedResponse{body: `{
				"id":8,"eventType":"LowBalance","notificationType":"BillingNotification",
				"fireDate":"2025-01-01T00:00:00Z","message":"Balance low","customer":"acme",
				"isAsync":false,"currency":"EUR","balance":1000
			}`},
			method: http.MethodGet,
			path:   "/customers/acme/notifications/8",
			validate: func(t *testing.T, result any) {
				t.Helper()

				notification := result.(*rtr.Notification)
				details, ok := notification.Details.(*rtr.BillingNotification)
				require.True(t, ok)
				assert.Equal(t, "EUR", details.Currency)
				require.NotNil(t, details.Balance)
				assert.Equal(t, 1000, *details.Balance)
			},
		},
		{
			name: "list unacknowledged",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Notifications().List(ctx, rtr.NewListQuery().Where("acknowledgeDate", rtr.MatcherNull, "true"))
			},
			reply:  cannedResponse{body: `{"entities":[]}`},
			method: http.MethodGet,
			path:   "/customers/acme/notifications/",
			query:  "acknowledgeDate:null=true",
		},
		{
			name: "ack",
			call: func(ctx context.Context, client *Client) (any, error) {
				return nil, client.Notifications().Ack(ctx, 8)
			},
			method: http.MethodPost,
			path:   "/customers/acme/notifications/8/ack/",
			body:   `{}`,
		},
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestCustomersAndBillingClients(t *testing.T) {
	t.Parallel()

	priceList := `{
		"prices":[{"product":"domain_com","action":"CREATE","currency":"EUR","price":1000}],
		"priceChanges":[{"product":"domain_com","action":"RENEW","currency":"EUR","price":1100,"fromDate":"2026-01-01T00:00:00Z"}],
		"promos":[{"product":"domain_nl","action":"CREATE","currency":"EUR","price":100,"fromDate":"2025-01-01T00:00:00Z","endDate":"2025-12-31T00:00:00Z","active":true}]
	}`

	runOperationTests(t, []operationTest{
		{
			name: "credit",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Customers().Credit(ctx)
			},
			reply:  cannedResponse{body: `{"accounts":[{"balance":50000,"currency":"EUR","reservation":1000}]}`},
			method: http.MethodGet,
			path:   "/customers/acme/credit",
			validate: func(t *testing.T, result any) {
				t.Helper()

				credit := result.(*rtr.Credit)
				require.Len(t, credit.Accounts, 1)
				assert.Equal(t, 50000, credit.Accounts[0].Balance)
			},
		},
		{
			name: "price changes come from the price list",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Customers().PriceChanges(ctx)
			},
			reply:  cannedResponse{body: priceList},
			method: http.MethodGet,
			path:   "/customers/acme/pricelist",
			validate: func(t *testing.T, result any) {
				t.Helper()

				changes := result.([]rtr.PriceChange)
				require.Len(t, changes, 1)
				assert.Equal(t, 1100, changes[0].Price.Price)
			},
		},
		{
			name: "promos come from the price list",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Customers().Promos(ctx)
			},
			reply:  cannedResponse{body: priceList},
			method: http.MethodGet,
			path:   "/customers/acme/pricelist",
			validate: func(t *testing.T, result any) {
				t.Helper()

				promos := result.([]rtr.Promo)
				require.Len(t, promos, 1)
				assert.True(t, promos[0].Active)
			},
		},
		{
			name: "transaction",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Billing().GetTransaction(ctx, 3, nil)
			},
			reply:  cannedResponse{body: `{"id":3,"amount":-1200,"customer":"acme","date":"2025-01-01T00:00:00Z","currency":"EUR","processId":9}`},
			method: http.MethodGet,
			path:   "/billing/financialtransactions/3",
			validate: func(t *testing.T, result any) {
				t.Helper()

				assert.Equal(t, -1200, result.(*rtr.Transaction).Amount)
			},
		},
		{
			name: "transactions",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Billing().ListTransactions(ctx, rtr.NewListQuery().WithOffset(10))
			},
			reply:  cannedResponse{body: `{"entities":[]}`},
			method: http.MethodGet,
			path:   "/billing/financialtransactions/",
			query:  "offset=10",
		},
		{
			name: "exchange rates",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Billing().ListExchangeRates(ctx)
			},
			reply:  cannedResponse{body: `[{"currency":"USD","exchangerates":{"EUR":0.85,"GBP":0.77}},{"currency":"EUR","exchangerates":{"USD":1.18}}]`},
			method: http.MethodGet,
			path:   "/exchangerates/",
			validate: func(t *testing.T, result any) {
				t.Helper()

				rates := result.([]rtr.ExchangeRate)
				require.Len(t, rates, 2)
				assert.InDelta(t, 0.85, rates[0].ExchangeRates["EUR"], 0.0001)
				assert.InDelta(t, 1.18, rates[1].ExchangeRates["USD"], 0.0001)
			},
		},
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestBrandsClient(t *testing.T) {
	t.Parallel()

	runOperationTests(t, []operationTest{
		{
			name: "get",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Brands().Get(ctx, "main", nil)
			},
			reply:  cannedResponse{body: `{"handle":"main","organization":"Acme","createdDate":"2024-01-01T00:00:00Z"}`},
			method: http.MethodGet,
			path:   "/customers/acme/brands/main",
		},
		{
			name: "update",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Brands().Update(ctx, "main", &rtr.BrandRequest{Organization: "Acme BV"})
			},
			reply:  cannedResponse{processID: "40"},
			method: http.MethodPost,
			path:   "/customers/acme/brands/main/update",
			body:   `{"organization":"Acme BV"}`,
		},
		{
			name: "list templates",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Brands().ListTemplates(ctx, "main", nil)
			},
			reply:  cannedResponse{body: `{"entities":[{"name":"DOMAIN_TRANSFER","contexts":["base"]}]}`},
			method: http.MethodGet,
			path:   "/customers/acme/brands/main/templates/",
		},
		{
			name: "update template without images posts JSON",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Brands().UpdateTemplate(ctx, "main", "DOMAIN_TRANSFER", &rtr.BrandTemplateRequest{Subject: "Transfer"})
			},
			reply:  cannedResponse{processID: "41"},
			method: http.MethodPost,
			path:   "/customers/acme/brands/main/templates/DOMAIN_TRANSFER/update",
			body:   `{"subject":"Transfer"}`,
		},
		{
			name: "preview defaults the context",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Brands().PreviewTemplate(ctx, "main", "DOMAIN_TRANSFER", nil)
			},
			reply:  cannedResponse{body: `{"name":"DOMAIN_TRANSFER","contexts":["base"]}`},
			method: http.MethodGet,
			path:   "/customers/acme/brands/main/templates/DOMAIN_TRANSFER/preview",
			query:  "context=base",
		},
		{
			name: "preview with context",
			call: func(ctx context.Context, client *Client) (any, error) {
				return client.Brands().PreviewTemplate(ctx, "main", "DOMAIN_TRANSFER", &rtr.PreviewOptions{Context: "reseller"})
			},
			reply:  cannedResponse{body: `{"name":"DOMAIN_TRANSFER","contexts":["reseller"]}`},
			method: http.MethodGet,
			path:   "/customers/acme/brands/main/templates/DOMAIN_TRANSFER/preview",
			query:  "context=reseller",
		},
	})
}

func TestBrandsClient_UpdateTemplateWithImages(t *testing.T) {
	t.Parallel()

	var parts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/customers/acme/brands/main/templates/WELCOME/update", request.URL.Path)

		mediaType, params, err := mime.ParseMediaType(request.Header.Get("Content-Type"))
		if !assert.NoError(t, err) {
			return
		}

		assert.Equal(t, "multipart/form-data", mediaType)

		reader := multipart.NewReader(request.Body, params["boundary"])

		command, err := reader.NextPart()
		if !assert.NoError(t, err) {
			return
		}

		assert.Equal(t, "command", command.FormName())

		image, err := reader.NextPart()
		if !assert.NoError(t, err) {
			return
		}

		assert.Equal(t, "my_logo.png", image.FormName())
		assert.Equal(t, "my_logo.png", image.FileName())

		parts.Store(2)

		writer.Header().Set("X-Process-Id", "42")
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	process, err := client.Brands().UpdateTemplate(context.Background(), "main", "WELCOME",
		&rtr.BrandTemplateRequest{HTML: "<img src=\"my_logo.png\">"},
		rtr.TemplateImage{Name: "my logo.png", ContentType: "image/png", Data: []byte("png")},
	)
	require.NoError(t, err)
	assert.Equal(t, 42, process.ID)
	assert.Equal(t, int32(2), parts.Load())

	_, err = client.Brands().UpdateTemplate(context.Background(), "main", "WELCOME",
		&rtr.BrandTemplateRequest{}, rtr.TemplateImage{Name: "empty.png"})
	require.ErrorIs(t, err, rtr.ErrNoImageData)
	assert.Contains(t, err.Error(), "empty.png")
}
