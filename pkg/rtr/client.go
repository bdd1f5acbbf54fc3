package rtr

import (
	"context"
	"time"
)

// BillingClient provides access to financial transactions and exchange rates.
type BillingClient interface {
	GetTransaction(ctx context.Context, id int, opts *GetOptions) (*Transaction, error)
	ListTransactions(ctx context.Context, query *ListQuery) (*Page[Transaction], error)
	ListExchangeRates(ctx context.Context) ([]ExchangeRate, error)
}

// BrandsClient manages the brands of the configured customer.
type BrandsClient interface {
	Get(ctx context.Context, handle string, opts *GetOptions) (*Brand, error)
	List(ctx context.Context, query *ListQuery) (*Page[Brand], error)
	Create(ctx context.Context, handle string, request *BrandRequest) (*ProcessResponse, error)
	Update(ctx context.Context, handle string, request *BrandRequest) (*ProcessResponse, error)
	Delete(ctx context.Context, handle string) (*ProcessResponse, error)
	GetTemplate(ctx context.Context, handle, name string, opts *GetOptions) (*BrandTemplate, error)
	ListTemplates(ctx context.Context, handle string, query *ListQuery) (*Page[BrandTemplate], error)
	// UpdateTemplate sends a multipart request when images are given.
	UpdateTemplate(ctx context.Context, handle, name string, request *BrandTemplateRequest, images ...TemplateImage) (*ProcessResponse, error)
	PreviewTemplate(ctx context.Context, handle, name string, opts *PreviewOptions) (*BrandTemplate, error)
}

// ContactsClient manages the contacts of the configured customer.
type ContactsClient interface {
	Get(ctx context.Context, handle string, opts *GetOptions) (*Contact, error)
	List(ctx context.Context, query *ListQuery) (*Page[Contact], error)
	Create(ctx context.Context, handle string, request *ContactCreateRequest) (*ProcessResponse, error)
	Update(ctx context.Context, handle string, request *ContactUpdateRequest) (*ProcessResponse, error)
	Delete(ctx context.Context, handle string) (*ProcessResponse, error)
	Split(ctx context.Context, handle string, request *ContactSplitRequest) (*ProcessResponse, error)
	Validate(ctx context.Context, handle string, categories ...string) (*ProcessResponse, error)
	AddProperties(ctx context.Context, handle, registry string, request *ContactPropertiesRequest) (*ProcessResponse, error)
	UpdateProperties(ctx context.Context, handle, registry string, request *ContactPropertiesRequest) (*ProcessResponse, error)
}

// CustomersClient reads account level data of the configured customer.
type CustomersClient interface {
	Credit(ctx context.Context) (*Credit, error)
	PriceList(ctx context.Context) (*PriceList, error)
	PriceChanges(ctx context.Context) ([]PriceChange, error)
	Promos(ctx context.Context) ([]Promo, error)
}

// DNSTemplatesClient manages the DNS templates of the configured customer.
type DNSTemplatesClient interface {
	Get(ctx context.Context, name string, opts *GetOptions) (*DNSTemplate, error)
	List(ctx context.Context, query *ListQuery) (*Page[DNSTemplate], error)
	Create(ctx context.Context, name string, request *DNSTemplateRequest) (*ProcessResponse, error)
	Update(ctx context.Context, name string, request *DNSTemplateRequest) (*ProcessResponse, error)
	Delete(ctx context.Context, name string) (*ProcessResponse, error)
}

// DNSZonesClient manages hosted DNS zones.
type DNSZonesClient interface {
	Get(ctx context.Context, id int, opts *GetOptions) (*DNSZone, error)
	Stats(ctx context.Context, id int) (*DNSZoneStats, error)
	List(ctx context.Context, query *ListQuery) (*Page[DNSZone], error)
	Create(ctx context.Context, request *DNSZoneCreateRequest) (*ProcessResponse, error)
	Update(ctx context.Context, id int, request *DNSZoneUpdateRequest) (*ProcessResponse, error)
	Delete(ctx context.Context, id int) (*ProcessResponse, error)
	// Retrieve refreshes a slave zone from its master and returns the status code.
	Retrieve(ctx context.Context, id int) (*DNSZoneRetrieveResult, error)
	AckDSUpdate(ctx context.Context, processID int) error
}

// DomainsClient manages domain names.
type DomainsClient interface {
	Get(ctx context.Context, domainName string, opts *GetOptions) (*Domain, error)
	List(ctx context.Context, query *ListQuery) (*Page[Domain], error)
	Check(ctx context.Context, domainName string) (*DomainAvailability, error)
	Register(ctx context.Context, domainName string, request *DomainRegisterRequest) (*DomainProcessResponse, error)
	RegisterQuote(ctx context.Context, domainName string, request *DomainRegisterRequest) (*Quote, error)
	Transfer(ctx context.Context, domainName string, request *DomainTransferRequest) (*DomainProcessResponse, error)
	TransferQuote(ctx context.Context, domainName string, request *DomainTransferRequest) (*Quote, error)
	Update(ctx context.Context, domainName string, request *DomainUpdateRequest) (*DomainProcessResponse, error)
	UpdateQuote(ctx context.Context, domainName string, request *DomainUpdateRequest) (*Quote, error)
	PushTransfer(ctx context.Context, domainName string, request *DomainPushTransferRequest) (*ProcessResponse, error)
	Renew(ctx context.Context, domainName string, request *DomainRenewRequest) (*DomainProcessResponse, error)
	RenewQuote(ctx context.Context, domainName string, request *DomainRenewRequest) (*Quote, error)
	Restore(ctx context.Context, domainName string, request *DomainRestoreRequest) (*DomainProcessResponse, error)
	RestoreQuote(ctx context.Context, domainName string, request *DomainRestoreRequest) (*Quote, error)
	Delete(ctx context.Context, domainName string) (*ProcessResponse, error)
	ZoneInfo(ctx context.Context, domainName string, opts *GetOptions) (*DNSTemplate, error)
	ZoneUpdate(ctx context.Context, domainName string, request *DNSTemplateRequest) (*ProcessResponse, error)
	TransferInfo(ctx context.Context, domainName string, processID int, opts *GetOptions) (*TransferInfo, error)
}

// HostsClient manages name server hosts.
type HostsClient interface {
	Get(ctx context.Context, hostName string, opts *GetOptions) (*Host, error)
	List(ctx context.Context, query *ListQuery) (*Page[Host], error)
	Create(ctx context.Context, hostName string, request *HostRequest) (*ProcessResponse, error)
	Update(ctx context.Context, hostName string, request *HostRequest) (*ProcessResponse, error)
	Delete(ctx context.Context, hostName string) (*ProcessResponse, error)
}

// NotificationsClient reads and acknowledges the notifications of the
// configured customer.
type NotificationsClient interface {
	Get(ctx context.Context, id int, opts *GetOptions) (*Notification, error)
	List(ctx context.Context, query *ListQuery) (*Page[Notification], error)
	Ack(ctx context.Context, id int) error
}

// ProcessesClient inspects and controls processes.
type ProcessesClient interface {
	Get(ctx context.Context, id int, opts *GetOptions) (*Process, error)
	Info(ctx context.Context, id int) (*CertificateProcessResponse, error)
	Cancel(ctx context.Context, id int) error
	Resend(ctx context.Context, id int) error
	List(ctx context.Context, query *ListQuery) (*Page[Process], error)
}

// ProvidersClient lists registries and their maintenance windows.
type ProvidersClient interface {
	List(ctx context.Context, query *ListQuery) (*Page[Provider], error)
	ListDowntimeWindows(ctx context.Context, query *ListQuery) (*Page[DowntimeWindow], error)
}

// SiteLockClient manages SiteLock accounts and sites.
type SiteLockClient interface {
	GetAccount(ctx context.Context, username string, opts *GetOptions) (*SiteLockAccount, error)
	ListAccounts(ctx context.Context, query *ListQuery) (*Page[SiteLockAccount], error)
	CreateAccount(ctx context.Context, username string, request *SiteLockAccountRequest) (*ProcessResponse, error)
	CreateAccountQuote(ctx context.Context, username string, request *SiteLockAccountRequest) (*Quote, error)
	DeleteAccount(ctx context.Context, username string) (*ProcessResponse, error)
	ResetPassword(ctx context.Context, username string, request *SiteLockPasswordRequest) (*ProcessResponse, error)
	SSO(ctx context.Context, username string, request *SiteLockSSORequest) (*SiteLockSSO, error)
	GetSite(ctx context.Context, domainName string, opts *GetOptions) (*SiteLockSite, error)
	ListSites(ctx context.Context, query *ListQuery) (*Page[SiteLockSite], error)
	CreateSite(ctx context.Context, domainName string, request *SiteLockSiteRequest) (*ProcessResponse, error)
	CreateSiteQuote(ctx context.Context, domainName string, request *SiteLockSiteRequest) (*Quote, error)
	UpdateSite(ctx context.Context, domainName string, request *SiteLockSiteRequest) (*ProcessResponse, error)
	UpdateSiteQuote(ctx context.Context, domainName string, request *SiteLockSiteRequest) (*Quote, error)
	DeleteSite(ctx context.Context, domainName string) (*ProcessResponse, error)
}

// AcmeClient manages ACME subscriptions.
type AcmeClient interface {
	Get(ctx context.Context, id int, opts *GetOptions) (*AcmeSubscription, error)
	List(ctx context.Context, query *ListQuery) (*Page[AcmeSubscription], error)
	Create(ctx context.Context, request *AcmeSubscriptionRequest) (*AcmeProcessResponse, error)
	CreateQuote(ctx context.Context, request *AcmeSubscriptionRequest) (*Quote, error)
	Update(ctx context.Context, id int, request *AcmeSubscriptionUpdateRequest) (*ProcessResponse, error)
	UpdateQuote(ctx context.Context, id int, request *AcmeSubscriptionUpdateRequest) (*Quote, error)
	Renew(ctx context.Context, id int, request *AcmeRenewRequest) (*ProcessResponse, error)
	RenewQuote(ctx context.Context, id int, request *AcmeRenewRequest) (*Quote, error)
	Delete(ctx context.Context, id int) (*ProcessResponse, error)
	Credentials(ctx context.Context, id int) (*AcmeCredentials, error)
}

// CertificatesClient manages SSL certificates and their validation.
type CertificatesClient interface {
	Get(ctx context.Context, id int, opts *GetOptions) (*Certificate, error)
	List(ctx context.Context, query *ListQuery) (*Page[Certificate], error)
	Request(ctx context.Context, request *CertificateRequest) (*CertificateProcessResponse, error)
	RequestQuote(ctx context.Context, request *CertificateRequest) (*Quote, error)
	Reissue(ctx context.Context, id int, request *CertificateReissueRequest) (*CertificateProcessResponse, error)
	Renew(ctx context.Context, id int, request *CertificateRenewRequest) (*CertificateProcessResponse, error)
	RenewQuote(ctx context.Context, id int, request *CertificateRenewRequest) (*Quote, error)
	Import(ctx context.Context, request *CertificateImportRequest) (*ProcessResponse, error)
	// Download returns the raw certificate in the requested format.
	Download(ctx context.Context, id int, opts *DownloadOptions) ([]byte, error)
	Revoke(ctx context.Context, id int, request *CertificateRevokeRequest) (*ProcessResponse, error)
	ResendDCV(ctx context.Context, processID int, request *DCVResendRequest) error
	DecodeCSR(ctx context.Context, csr string) (*CSRInfo, error)
	DCVEmailAddressList(ctx context.Context, domainName string, opts *DCVEmailAddressOptions) ([]string, error)
	// Deprecated: the certificate authority no longer accepts notes.
	AddNote(ctx context.Context, processID int, request *ProcessNoteRequest) error
	ScheduleValidationCall(ctx context.Context, processID int, request *ValidationCallRequest) error
	SendSubscriberAgreement(ctx context.Context, processID int, request *SubscriberAgreementRequest) error
}

// TLDsClient reads TLD metadata.
type TLDsClient interface {
	Info(ctx context.Context, tld string) (*TLDInfo, error)
}

// ValidationClient reads contact validation categories.
type ValidationClient interface {
	GetCategory(ctx context.Context, name string, opts *GetOptions) (*ValidationCategory, error)
	ListCategories(ctx context.Context, query *ListQuery) (*Page[ValidationCategory], error)
}

// DomainServiceClients provides access to the domain name resource clients.
type DomainServiceClients interface {
	Domains() DomainsClient
	Contacts() ContactsClient
	Hosts() HostsClient
	TLDs() TLDsClient
	Validation() ValidationClient
}

// DNSClients provides access to the DNS resource clients.
type DNSClients interface {
	DNSZones() DNSZonesClient
	DNSTemplates() DNSTemplatesClient
}

// SSLClients provides access to the certificate resource clients.
type SSLClients interface {
	Certificates() CertificatesClient
	Acme() AcmeClient
	SiteLock() SiteLockClient
}

// AccountClients provides access to customer and billing resource clients.
type AccountClients interface {
	Billing() BillingClient
	Brands() BrandsClient
	Customers() CustomersClient
	Notifications() NotificationsClient
	Processes() ProcessesClient
	Providers() ProvidersClient
}

// Client is the entry point to every resource client.
type Client interface {
	DomainServiceClients
	DNSClients
	SSLClients
	AccountClients

	// Customer returns the customer handle used for customer scoped paths.
	Customer() string
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a rtr.Client.
//
// # Authentication
//
// APIKey is sent as "Authorization: ApiKey <key>". Authorization, when set,
// is sent verbatim instead and takes precedence over APIKey.
//
// # Endpoints
//
// BaseURL defaults to the production endpoint, or to the OT&E endpoint when
// OTE is set. An explicit BaseURL always wins.
//
// # Timeouts, retries, and rate limiting
//
// Per-request timeouts should generally be controlled via context passed to
// client methods. Requests are sent once unless RetryMax is set; retries
// then cover 429 and 5xx responses other than 501, with backoff bounded by
// RetryWaitMin/RetryWaitMax.
type Config struct {
	// APIKey: API key of the account.
	APIKey string
	// Authorization: full Authorization header value, overrides APIKey.
	Authorization string
	// Customer: customer handle used for customer scoped resources.
	Customer string
	// OTE: use the test environment when BaseURL is empty.
	OTE bool
	// BaseURL: API root, e.g. "https://api.yoursrs.com/v2".
	BaseURL string

	// Timeout: optional overall HTTP timeout.
	Timeout time.Duration
	// RetryMax: maximum number of retries for 5xx and 429 responses. If 0,
	// requests are not retried.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// RateLimit: maximum requests per second, 0 disables client side limiting.
	RateLimit float64
	// CircuitBreaker: trip after repeated server failures.
	CircuitBreaker bool
	// Cache: optional response cache for TLD metadata, exchange rates and
	// price lists.
	Cache *CacheConfig
	// Metrics: optional collector fed with per endpoint request counters.
	Metrics *MetricsCollector

	// Debug: enables verbose HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer and helpers.
	Logger Logger
	// UserAgent: overrides the default User-Agent header sent by the client.
	UserAgent string
	// Headers: extra headers sent with every request.
	Headers map[string]string
}
