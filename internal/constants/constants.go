package constants

import "time"

// API endpoints.
const (
	// ProductionBaseURL is the live yoursrs API.
	ProductionBaseURL = "https://api.yoursrs.com/v2/"

	// OTEBaseURL is the operational test environment.
	OTEBaseURL = "https://api.yoursrs-ote.com/v2/"

	// ProcessIDHeader carries the id of the process started by a mutation.
	ProcessIDHeader = "x-process-id"

	// APIKeyScheme prefixes the API key in the Authorization header.
	APIKeyScheme = "ApiKey"

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "rtr-go"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second

	// ExtendedRetryWaitMax is used for operations that need longer waits.
	ExtendedRetryWaitMax = 30 * time.Second
)

// Circuit breaker settings.
const (
	// CircuitBreakerMaxRequests is the number of probes allowed while half-open.
	CircuitBreakerMaxRequests = 5

	// CircuitBreakerInterval resets the closed-state counters.
	CircuitBreakerInterval = 60 * time.Second

	// CircuitBreakerTimeout is how long the breaker stays open.
	CircuitBreakerTimeout = 30 * time.Second

	// CircuitBreakerMinRequests must be seen before the breaker may trip.
	CircuitBreakerMinRequests = 5

	// CircuitBreakerFailureRatio trips the breaker.
	CircuitBreakerFailureRatio = 0.6
)

// Cache settings.
const (
	// DefaultCacheSize is the default cache size limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is used for cacheable reference data.
	DefaultCacheTTL = 15 * time.Minute

	// DefaultRevalidateWindow is how long an expired entry with an entity
	// tag is kept for conditional requests.
	DefaultRevalidateWindow = 24 * time.Hour

	// DefaultNATSBucket is the KV bucket used by the NATS cache.
	DefaultNATSBucket = "rtr-cache"

	// DefaultCleanupInterval is the memory cache sweep interval.
	DefaultCleanupInterval = time.Minute
)

// Output formatting.
const (
	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// DefaultListLimit is the page size used by list commands.
	DefaultListLimit = 25
)

// Batch execution.
const (
	// DefaultBatchConcurrency bounds parallel batch operations.
	DefaultBatchConcurrency = 5
)

// Brand template uploads.
const (
	// MaxTemplateFileNameLength bounds sanitised image names.
	MaxTemplateFileNameLength = 40
)
