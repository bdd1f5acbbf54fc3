package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fivetwenty-io/rtr/internal/auth"
	"github.com/fivetwenty-io/rtr/internal/constants"
	"github.com/fivetwenty-io/rtr/internal/http"
	"github.com/fivetwenty-io/rtr/pkg/rtr"
)

// Client implements the rtr.Client interface.
type Client struct {
	httpClient *http.Client
	authorizer auth.Authorizer
	baseURL    string
	customer   string
	logger     rtr.Logger

	// Resource clients
	domains       rtr.DomainsClient
	contacts      rtr.ContactsClient
	hosts         rtr.HostsClient
	tlds          rtr.TLDsClient
	validation    rtr.ValidationClient
	dnsZones      rtr.DNSZonesClient
	dnsTemplates  rtr.DNSTemplatesClient
	certificates  rtr.CertificatesClient
	acme          rtr.AcmeClient
	siteLock      rtr.SiteLockClient
	billing       rtr.BillingClient
	brands        rtr.BrandsClient
	customers     rtr.CustomersClient
	notifications rtr.NotificationsClient
	processes     rtr.ProcessesClient
	providers     rtr.ProvidersClient
}

var _ rtr.Client = (*Client)(nil)

// baseURL picks the explicit endpoint, then the test or live environment.
// An explicit endpoint without a scheme is taken to be https.
func baseURL(config *rtr.Config) string {
	explicit := strings.TrimSpace(config.BaseURL)

	switch {
	case explicit != "":
		if !strings.HasPrefix(explicit, "http://") && !strings.HasPrefix(explicit, "https://") {
			explicit = "https://" + explicit
		}

		return explicit
	case config.OTE:
		return constants.OTEBaseURL
	default:
		return constants.ProductionBaseURL
	}
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *rtr.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))

		if config.Logger != nil {
			httpOpts = append(httpOpts, http.WithInterceptorLogging(config.Logger))
		}
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if len(config.Headers) > 0 {
		httpOpts = append(httpOpts, http.WithHeaders(config.Headers))
	}

	if config.RetryMax > 0 {
		retryWaitMin := 1 * time.Second
		retryWaitMax := constants.ExtendedRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if config.RateLimit > 0 {
		httpOpts = append(httpOpts, http.WithRateLimit(config.RateLimit))
	}

	if config.CircuitBreaker {
		httpOpts = append(httpOpts, http.WithCircuitBreaker(rtr.NewCircuitBreaker(nil)))
	}

	if config.Metrics != nil {
		httpOpts = append(httpOpts, http.WithMetrics(config.Metrics))
	}

	if config.Cache != nil {
		manager, policy, err := rtr.NewCacheManagerFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("creating cache: %w", err)
		}

		httpOpts = append(httpOpts, http.WithCache(manager, policy))
	}

	return httpOpts, nil
}

// New creates a new yoursrs API client.
func New(ctx context.Context, config *rtr.Config) (*Client, error) {
	if config == nil {
		return nil, rtr.ErrConfigRequired
	}

	authorizer, err := auth.New(config.APIKey, config.Authorization)
	if err != nil {
		if errors.Is(err, auth.ErrNoCredentials) {
			return nil, rtr.ErrAPIKeyRequired
		}

		return nil, fmt.Errorf("creating authorizer: %w", err)
	}

	return NewWithAuthorizer(config, authorizer)
}

// NewWithAuthorizer creates a new client that authenticates through
// authorizer instead of the credentials in config. Options in extra are
// applied after the ones derived from config.
func NewWithAuthorizer(config *rtr.Config, authorizer auth.Authorizer, extra ...http.Option) (*Client, error) {
	if config == nil {
		return nil, rtr.ErrConfigRequired
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	httpOpts = append(httpOpts, extra...)

	endpoint := baseURL(config)
	httpClient := http.NewClient(endpoint, authorizer, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		authorizer: authorizer,
		baseURL:    httpClient.BaseURL(),
		customer:   config.Customer,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Customer implements rtr.Client.Customer.
func (c *Client) Customer() string {
	return c.customer
}

// Authorizer returns the authorizer used for every request.
func (c *Client) Authorizer() auth.Authorizer {
	return c.authorizer
}

// Resource client accessors

// Domains implements rtr.Client.Domains.
func (c *Client) Domains() rtr.DomainsClient {
	return c.domains
}

// Contacts implements rtr.Client.Contacts.
func (c *Client) Contacts() rtr.ContactsClient {
	return c.contacts
}

// Hosts implements rtr.Client.Hosts.
func (c *Client) Hosts() rtr.HostsClient {
	return c.hosts
}

// TLDs implements rtr.Client.TLDs.
func (c *Client) TLDs() rtr.TLDsClient {
	return c.tlds
}

// Validation implements rtr.Client.Validation.
func (c *Client) Validation() rtr.ValidationClient {
	return c.validation
}

// DNSZones implements rtr.Client.DNSZones.
func (c *Client) DNSZones() rtr.DNSZonesClient {
	return c.dnsZones
}

// DNSTemplates implements rtr.Client.DNSTemplates.
func (c *Client) DNSTemplates() rtr.DNSTemplatesClient {
	return c.dnsTemplates
}

// Certificates implements rtr.Client.Certificates.
func (c *Client) Certificates() rtr.CertificatesClient {
	return c.certificates
}

// Acme implements rtr.Client.Acme.
func (c *Client) Acme() rtr.AcmeClient {
	return c.acme
}

// SiteLock implements rtr.Client.SiteLock.
func (c *Client) SiteLock() rtr.SiteLockClient {
	return c.siteLock
}

// Billing implements rtr.Client.Billing.
func (c *Client) Billing() rtr.BillingClient {
	return c.billing
}

// Brands implements rtr.Client.Brands.
func (c *Client) Brands() rtr.BrandsClient {
	return c.brands
}

// Customers implements rtr.Client.Customers.
func (c *Client) Customers() rtr.CustomersClient {
	return c.customers
}

// Notifications implements rtr.Client.Notifications.
func (c *Client) Notifications() rtr.NotificationsClient {
	return c.notifications
}

// Processes implements rtr.Client.Processes.
func (c *Client) Processes() rtr.ProcessesClient {
	return c.processes
}

// Providers implements rtr.Client.Providers.
func (c *Client) Providers() rtr.ProvidersClient {
	return c.providers
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	var logger http.Logger
	if c.logger != nil {
		logger = &loggerAdapter{logger: c.logger}
	}

	c.domains = NewDomainsClient(c.httpClient, c.customer)
	c.contacts = NewContactsClient(c.httpClient, c.customer)
	c.hosts = NewHostsClient(c.httpClient)
	c.tlds = NewTLDsClient(c.httpClient)
	c.validation = NewValidationClient(c.httpClient)
	c.dnsZones = NewDNSZonesClient(c.httpClient)
	c.dnsTemplates = NewDNSTemplatesClient(c.httpClient, c.customer)
	c.certificates = NewCertificatesClient(c.httpClient, c.customer, logger)
	c.acme = NewAcmeClient(c.httpClient)
	c.siteLock = NewSiteLockClient(c.httpClient, c.customer)
	c.billing = NewBillingClient(c.httpClient)
	c.brands = NewBrandsClient(c.httpClient, c.customer)
	c.customers = NewCustomersClient(c.httpClient, c.customer)
	c.notifications = NewNotificationsClient(c.httpClient, c.customer)
	c.processes = NewProcessesClient(c.httpClient)
	c.providers = NewProvidersClient(c.httpClient)
}

// loggerAdapter adapts rtr.Logger to http.Logger.
type loggerAdapter struct {
	logger rtr.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
