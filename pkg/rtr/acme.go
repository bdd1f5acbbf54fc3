package rtr

import "time"

// AcmeSubscriptionStatus is the state of an ACME subscription.
type AcmeSubscriptionStatus string

// Subscription states.
const (
	AcmeStatusActive                        AcmeSubscriptionStatus = "ACTIVE"
	AcmeStatusSuspended                     AcmeSubscriptionStatus = "SUSPENDED"
	AcmeStatusRevoked                       AcmeSubscriptionStatus = "REVOKED"
	AcmeStatusPendingOrganizationValidation AcmeSubscriptionStatus = "PENDING_ORGANIZATION_VALIDATION"
)

// AcmeDomain is a domain covered by an ACME subscription.
type AcmeDomain struct {
	DomainName  string    `json:"domainName"  yaml:"domainName"`
	CreatedDate time.Time `json:"createdDate" yaml:"createdDate"`
}

// AcmeSubscription lets ACME clients obtain certificates for a product.
type AcmeSubscription struct {
	ID            int                    `json:"id"                      yaml:"id"`
	Product       string                 `json:"product"                 yaml:"product"`
	Organization  string                 `json:"organization,omitempty"  yaml:"organization,omitempty"`
	Address       string                 `json:"address,omitempty"       yaml:"address,omitempty"`
	City          string                 `json:"city,omitempty"          yaml:"city,omitempty"`
	State         string                 `json:"state,omitempty"         yaml:"state,omitempty"`
	PostalCode    string                 `json:"postalCode,omitempty"    yaml:"postalCode,omitempty"`
	Country       string                 `json:"country,omitempty"       yaml:"country,omitempty"`
	CreatedDate   time.Time              `json:"createdDate"             yaml:"createdDate"`
	ExpiryDate    time.Time              `json:"expiryDate"              yaml:"expiryDate"`
	Period        int                    `json:"period"                  yaml:"period"`
	DirectoryURL  string                 `json:"directoryUrl"            yaml:"directoryUrl"`
	AutoRenew     bool                   `json:"autoRenew"               yaml:"autoRenew"`
	CertValidity  int                    `json:"certValidity,omitempty"  yaml:"certValidity,omitempty"`
	OrgValidUntil *time.Time             `json:"orgValidUntil,omitempty" yaml:"orgValidUntil,omitempty"`
	Status        AcmeSubscriptionStatus `json:"status"                  yaml:"status"`
	Approver      *Approver              `json:"approver,omitempty"      yaml:"approver,omitempty"`
	Domains       []AcmeDomain           `json:"domains,omitempty"       yaml:"domains,omitempty"`
}

// AcmeSubscriptionRequest creates an ACME subscription.
type AcmeSubscriptionRequest struct {
	Customer     string    `json:"customer,omitempty"`
	Product      string    `json:"product"`
	DomainNames  []string  `json:"domainNames,omitempty"`
	Organization string    `json:"organization,omitempty"`
	Country      string    `json:"country,omitempty"`
	State        string    `json:"state,omitempty"`
	Address      string    `json:"address,omitempty"`
	PostalCode   string    `json:"postalCode,omitempty"`
	City         string    `json:"city,omitempty"`
	AutoRenew    *bool     `json:"autoRenew,omitempty"`
	Period       int       `json:"period"`
	CertValidity int       `json:"certValidity,omitempty"`
	Approver     *Approver `json:"approver,omitempty"`
}

// AcmeSubscriptionUpdateRequest updates an ACME subscription.
type AcmeSubscriptionUpdateRequest struct {
	DomainNames  []string  `json:"domainNames,omitempty"`
	Organization string    `json:"organization,omitempty"`
	Country      string    `json:"country,omitempty"`
	State        string    `json:"state,omitempty"`
	Address      string    `json:"address,omitempty"`
	PostalCode   string    `json:"postalCode,omitempty"`
	City         string    `json:"city,omitempty"`
	AutoRenew    *bool     `json:"autoRenew,omitempty"`
	Period       int       `json:"period,omitempty"`
	Approver     *Approver `json:"approver,omitempty"`
}

// AcmeCredentials are the credentials an ACME client registers with.
type AcmeCredentials struct {
	DirectoryURL string `json:"directoryUrl" yaml:"directoryUrl"`
	AccountKey   string `json:"accountKey"   yaml:"accountKey"`
	HMACKey      string `json:"hmacKey"      yaml:"hmacKey"`
}

// AcmeSubscriptionCreated is the body of a create response.
type AcmeSubscriptionCreated struct {
	AcmeCredentials `yaml:",inline"`

	ID int `json:"id" yaml:"id"`
}

// AcmeProcessResponse is a process response with the created subscription.
type AcmeProcessResponse struct {
	ProcessResponse

	Result AcmeSubscriptionCreated `json:"result" yaml:"result"`
}

// AcmeRenewRequest renews a subscription for a period in months.
type AcmeRenewRequest struct {
	Period int `json:"period"`
}
