package client_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/fivetwenty-io/rtr/internal/client"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

const testCustomer = "acme"

// recordedRequest is the last request seen by a test server.
type recordedRequest struct {
	mu       sync.Mutex
	method   string
	path     string
	rawQuery string
	header   http.Header
	body     []byte
}

func (r *recordedRequest) snapshot() (string, string, string, http.Header, []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.method, r.path, r.rawQuery, r.header, r.body
}

// cannedResponse is what a test server replies with.
type cannedResponse struct {
	status    int
	processID string
	body      string
}

func newTestServer(t *testing.T, reply cannedResponse) (*httptest.Server, *recordedRequest) {
	t.Helper()

	recorded := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		body, _ := io.ReadAll(request.Body)

		recorded.mu.Lock()
		recorded.method = request.Method
		recorded.path = request.URL.EscapedPath()
		recorded.rawQuery = request.URL.RawQuery
		recorded.header = request.Header.Clone()
		recorded.body = body
		recorded.mu.Unlock()

		if reply.processID != "" {
			writer.Header().Set("X-Process-Id", reply.processID)
		}

		writer.Header().Set("Content-Type", "application/json")

		status := reply.status
		if status == 0 {
			status = http.StatusOK
		}

		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(reply.body))
	}))
	t.Cleanup(server.Close)

	return server, recorded
}

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	client, err := New(context.Background(), &rtr.Config{
		APIKey:   "test-key",
		Customer: testCustomer,
		BaseURL:  serverURL,
	})
	require.NoError(t, err)

	return client
}

// operationTest is a single call against a canned server response.
type operationTest struct {
	name     string
	call     func(ctx context.Context, client *Client) (any, error)
	reply    cannedResponse
	method   string
	path     string
	query    string
	body     string
	wantErr  error
	validate func(t *testing.T, result any)
}

// runOperationTests runs each case against its own server and checks the
// request line, the JSON body and the decoded result.
func runOperationTests(t *testing.T, tests []operationTest) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server, recorded := newTestServer(t, testCase.reply)
			client := newTestClient(t, server.URL)

			result, err := testCase.call(context.Background(), client)

			method, path, rawQuery, header, body := recorded.snapshot()
			assert.Equal(t, testCase.method, method)
			assert.Equal(t, testCase.path, path)
			assert.Equal(t, testCase.query, rawQuery)
			assert.Equal(t, "ApiKey test-key", header.Get("Authorization"))

			if testCase.body != "" {
				assert.JSONEq(t, testCase.body, string(body))
			}

			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)

				return
			}

			require.NoError(t, err)

			if testCase.validate != nil {
				testCase.validate(t, result)
			}
		})
	}
}

func intPtr(i int) *int {
	return &i
}

func boolPtr(b bool) *bool {
	return &b
}
