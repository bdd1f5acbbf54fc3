package rtr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorKind classifies an API failure.
type ErrorKind string

// Error kinds. Status based kinds are derived from the HTTP status, the rest
// from the "type" field of the response body.
const (
	KindAuthentication                 ErrorKind = "AuthenticationError"
	KindAuthorization                  ErrorKind = "AuthorizationError"
	KindNotFound                       ErrorKind = "NotFound"
	KindTooManyRequests                ErrorKind = "TooManyRequests"
	KindValidation                     ErrorKind = "ValidationError"
	KindConstraintViolation            ErrorKind = "ConstraintViolationException"
	KindInsufficientCredit             ErrorKind = "InsufficientCreditException"
	KindInternalSRS                    ErrorKind = "InternalSRSError"
	KindNoContract                     ErrorKind = "NoContractException"
	KindObjectDoesNotExist             ErrorKind = "ObjectDoesNotExist"
	KindObjectExists                   ErrorKind = "ObjectExists"
	KindProcessError                   ErrorKind = "ProcessError"
	KindProviderConnection             ErrorKind = "ProviderConnectionError"
	KindProviderUnavailable            ErrorKind = "ProviderUnavailable"
	KindUnrecognizedProperty           ErrorKind = "UnrecognizedPropertyException"
	KindObjectStatusProhibitsOperation ErrorKind = "ObjectStatusProhibitsOperation"
	KindBillableAcknowledgmentNeeded   ErrorKind = "BillableAcknowledgmentNeededException"
	KindContactUpdateValidation        ErrorKind = "ContactUpdateValidationError"
	KindDNSConfiguration               ErrorKind = "DnsConfigurationException"
	KindInvalidCSR                     ErrorKind = "InvalidCSRException"
	KindInvalidMessage                 ErrorKind = "InvalidMessage"
	KindUnsupportedTLD                 ErrorKind = "UnsupportedTld"
)

var bodyKinds = map[string]ErrorKind{
	string(KindAuthentication):                 KindAuthentication,
	string(KindValidation):                     KindValidation,
	string(KindConstraintViolation):            KindConstraintViolation,
	string(KindInsufficientCredit):             KindInsufficientCredit,
	string(KindInternalSRS):                    KindInternalSRS,
	string(KindNoContract):                     KindNoContract,
	string(KindObjectDoesNotExist):             KindObjectDoesNotExist,
	string(KindObjectExists):                   KindObjectExists,
	string(KindProcessError):                   KindProcessError,
	string(KindProviderConnection):             KindProviderConnection,
	string(KindProviderUnavailable):            KindProviderUnavailable,
	string(KindUnrecognizedProperty):           KindUnrecognizedProperty,
	string(KindObjectStatusProhibitsOperation): KindObjectStatusProhibitsOperation,
	string(KindBillableAcknowledgmentNeeded):   KindBillableAcknowledgmentNeeded,
	string(KindContactUpdateValidation):        KindContactUpdateValidation,
	string(KindDNSConfiguration):               KindDNSConfiguration,
	string(KindInvalidCSR):                     KindInvalidCSR,
	string(KindInvalidMessage):                 KindInvalidMessage,
	string(KindUnsupportedTLD):                 KindUnsupportedTLD,
}

// ConstraintViolation describes a single rejected field.
type ConstraintViolation struct {
	Field   string  `json:"field"           yaml:"field"`
	Message string  `json:"message"         yaml:"message"`
	Value   *string `json:"value,omitempty" yaml:"value,omitempty"`
}

// APIError is a classified error response from the API. Kind specific
// details are only populated for the matching kind.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	Header     http.Header
	Body       []byte

	// ConstraintViolationException
	Violations []ConstraintViolation
	// UnrecognizedPropertyException
	Property string
	// BillableAcknowledgmentNeededException
	Quote *Quote
	// ContactUpdateValidationError
	FieldErrors map[string]string
	// DnsConfigurationException, keyed by record index
	RecordErrors map[int]map[string]string
	Conflicts    map[int][]int
	// ProviderUnavailable
	StartDate *time.Time
	EndDate   *time.Time
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (status: %d)", e.Kind, e.StatusCode)
	}

	return fmt.Sprintf("%s: %s (status: %d)", e.Kind, e.Message, e.StatusCode)
}

// Is matches another *APIError of the same kind, so the sentinel values
// below work with errors.Is. UnsupportedTld also matches InvalidMessage.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}

	if e.Kind == t.Kind {
		return true
	}

	return e.Kind == KindUnsupportedTLD && t.Kind == KindInvalidMessage
}

// HTTPError is an unclassified non-2xx response.
type HTTPError struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("request failed with status code %d", e.StatusCode)
}

// Sentinel errors for use with errors.Is.
var (
	ErrAuthentication                 = &APIError{Kind: KindAuthentication}
	ErrAuthorization                  = &APIError{Kind: KindAuthorization}
	ErrNotFound                       = &APIError{Kind: KindNotFound}
	ErrTooManyRequests                = &APIError{Kind: KindTooManyRequests}
	ErrValidation                     = &APIError{Kind: KindValidation}
	ErrConstraintViolation            = &APIError{Kind: KindConstraintViolation}
	ErrInsufficientCredit             = &APIError{Kind: KindInsufficientCredit}
	ErrInternalSRS                    = &APIError{Kind: KindInternalSRS}
	ErrNoContract                     = &APIError{Kind: KindNoContract}
	ErrObjectDoesNotExist             = &APIError{Kind: KindObjectDoesNotExist}
	ErrObjectExists                   = &APIError{Kind: KindObjectExists}
	ErrProcessError                   = &APIError{Kind: KindProcessError}
	ErrProviderConnection             = &APIError{Kind: KindProviderConnection}
	ErrProviderUnavailable            = &APIError{Kind: KindProviderUnavailable}
	ErrUnrecognizedProperty           = &APIError{Kind: KindUnrecognizedProperty}
	ErrObjectStatusProhibitsOperation = &APIError{Kind: KindObjectStatusProhibitsOperation}
	ErrBillableAcknowledgmentNeeded   = &APIError{Kind: KindBillableAcknowledgmentNeeded}
	ErrContactUpdateValidation        = &APIError{Kind: KindContactUpdateValidation}
	ErrDNSConfiguration               = &APIError{Kind: KindDNSConfiguration}
	ErrInvalidCSR                     = &APIError{Kind: KindInvalidCSR}
	ErrInvalidMessage                 = &APIError{Kind: KindInvalidMessage}
	ErrUnsupportedTLD                 = &APIError{Kind: KindUnsupportedTLD}
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired    = errors.New("config is required")
	ErrAPIKeyRequired    = errors.New("API key or authorization is required")
	ErrCustomerRequired  = errors.New("customer handle is required")
	ErrMissingProcessID  = errors.New("response did not carry a process id")
	ErrInvalidProcessID  = errors.New("invalid process id header")
	ErrQuoteMissing      = errors.New("quote response did not contain a quote")
	ErrNoImageData       = errors.New("template image has no data")
	ErrUnexpectedPayload = errors.New("unexpected response payload")
)

// KindOf returns the kind of the first *APIError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}

	return "", false
}

func isKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)

	return ok && k == kind
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return isKind(err, KindNotFound) || isKind(err, KindObjectDoesNotExist)
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	return isKind(err, KindAuthentication)
}

// IsForbidden checks if the error is an authorization error.
func IsForbidden(err error) bool {
	return isKind(err, KindAuthorization)
}

// IsRateLimited checks if the request was throttled.
func IsRateLimited(err error) bool {
	return isKind(err, KindTooManyRequests)
}

// IsValidation checks for request validation failures of any flavour.
func IsValidation(err error) bool {
	k, ok := KindOf(err)
	if !ok {
		return false
	}

	switch k {
	case KindValidation, KindConstraintViolation, KindContactUpdateValidation,
		KindUnrecognizedProperty, KindInvalidCSR, KindInvalidMessage, KindUnsupportedTLD:
		return true
	default:
		return false
	}
}

// errorBody is the JSON error document returned by the API.
type errorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// errorDetails holds the kind specific members of an error document.
type errorDetails struct {
	Violations []ConstraintViolation `json:"violations"`
	Property   string                `json:"property"`
	Quote      *Quote                `json:"quote"`
	Errors     json.RawMessage       `json:"errors"`
	Conflicts  map[int][]int         `json:"conflicts"`
	StartDate  string                `json:"startDate"`
	EndDate    string                `json:"endDate"`
}

// ClassifyError maps a non-2xx response to an error. Status 401, 403, 404
// and 429 map to fixed kinds; otherwise the body's "type" selects the kind.
// Responses that cannot be classified yield an *HTTPError.
func ClassifyError(statusCode int, header http.Header, body []byte) error {
	raw := &HTTPError{StatusCode: statusCode, Header: header, Body: body}

	var doc errorBody
	if len(body) > 0 {
		_ = json.Unmarshal(body, &doc)
	}

	apiErr := &APIError{
		StatusCode: statusCode,
		Header:     header,
		Body:       body,
		Message:    doc.Message,
	}

	switch statusCode {
	case http.StatusUnauthorized:
		apiErr.Kind = KindAuthentication
	case http.StatusForbidden:
		apiErr.Kind = KindAuthorization
	case http.StatusNotFound:
		apiErr.Kind = KindNotFound
	case http.StatusTooManyRequests:
		apiErr.Kind = KindTooManyRequests
		apiErr.Message = "Too many requests"
	}

	if apiErr.Kind != "" {
		if apiErr.Message == "" {
			apiErr.Message = raw.Error()
		}

		return apiErr
	}

	kind, ok := bodyKinds[doc.Type]
	if !ok {
		return raw
	}

	apiErr.Kind = kind
	if apiErr.Message == "" {
		apiErr.Message = raw.Error()
	}

	var details errorDetails

	_ = json.Unmarshal(body, &details)

	switch kind {
	case KindConstraintViolation:
		apiErr.Violations = details.Violations
		if apiErr.Violations == nil {
			apiErr.Violations = []ConstraintViolation{}
		}
	case KindUnrecognizedProperty:
		apiErr.Property = details.Property
	case KindBillableAcknowledgmentNeeded:
		apiErr.Quote = details.Quote
	case KindContactUpdateValidation:
		if len(details.Errors) > 0 {
			_ = json.Unmarshal(details.Errors, &apiErr.FieldErrors)
		}
	case KindDNSConfiguration:
		if len(details.Errors) > 0 {
			_ = json.Unmarshal(details.Errors, &apiErr.RecordErrors)
		}

		apiErr.Conflicts = details.Conflicts
	case KindProviderUnavailable:
		apiErr.StartDate = parseTime(details.StartDate)
		apiErr.EndDate = parseTime(details.EndDate)
	}

	return apiErr
}
