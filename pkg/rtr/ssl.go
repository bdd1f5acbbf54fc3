package rtr

import "time"

// CertificateStatus is the lifecycle state of a certificate.
type CertificateStatus string

// Certificate states.
const (
	CertificateStatusActive    CertificateStatus = "ACTIVE"
	CertificateStatusSuspended CertificateStatus = "SUSPENDED"
	CertificateStatusRevoked   CertificateStatus = "REVOKED"
	CertificateStatusExpired   CertificateStatus = "EXPIRED"
	CertificateStatusReissued  CertificateStatus = "REISSUED"
	CertificateStatusRenewed   CertificateStatus = "RENEWED"
)

// DCVType is a domain control validation method.
type DCVType string

// Validation methods.
const (
	DCVEmail DCVType = "EMAIL"
	DCVDNS   DCVType = "DNS"
	DCVFile  DCVType = "FILE"
)

// DownloadFormat is the encoding of a downloaded certificate.
type DownloadFormat string

// Download formats.
const (
	DownloadFormatCRT      DownloadFormat = "CRT"
	DownloadFormatCA       DownloadFormat = "CA"
	DownloadFormatCABundle DownloadFormat = "CA_BUNDLE"
	DownloadFormatPKCS7    DownloadFormat = "PKCS7"
)

// Certificate is an issued SSL certificate.
type Certificate struct {
	ID                  int               `json:"id"                            yaml:"id"`
	DomainName          string            `json:"domainName"                    yaml:"domainName"`
	ValidationType      string            `json:"validationType"                yaml:"validationType"`
	CertificateType     string            `json:"certificateType"               yaml:"certificateType"`
	Product             string            `json:"product"                       yaml:"product"`
	Organization        string            `json:"organization,omitempty"        yaml:"organization,omitempty"`
	Department          string            `json:"department,omitempty"          yaml:"department,omitempty"`
	ProviderID          string            `json:"providerId"                    yaml:"providerId"`
	AddressLine         []string          `json:"addressLine,omitempty"         yaml:"addressLine,omitempty"`
	PostalCode          string            `json:"postalCode,omitempty"          yaml:"postalCode,omitempty"`
	City                string            `json:"city,omitempty"                yaml:"city,omitempty"`
	State               string            `json:"state,omitempty"               yaml:"state,omitempty"`
	Country             string            `json:"country,omitempty"             yaml:"country,omitempty"`
	StartDate           time.Time         `json:"startDate"                     yaml:"startDate"`
	ExpiryDate          time.Time         `json:"expiryDate"                    yaml:"expiryDate"`
	SubscriptionEndDate *time.Time        `json:"subscriptionEndDate,omitempty" yaml:"subscriptionEndDate,omitempty"`
	Contact             string            `json:"contact,omitempty"             yaml:"contact,omitempty"`
	COC                 string            `json:"coc,omitempty"                 yaml:"coc,omitempty"`
	SAN                 []string          `json:"san,omitempty"                 yaml:"san,omitempty"`
	Status              CertificateStatus `json:"status"                        yaml:"status"`
	PublicKeyAlgorithm  string            `json:"publicKeyAlgorithm,omitempty"  yaml:"publicKeyAlgorithm,omitempty"`
	PublicKeySize       int               `json:"publicKeySize,omitempty"       yaml:"publicKeySize,omitempty"`
	Process             int               `json:"process,omitempty"             yaml:"process,omitempty"`
	CSR                 string            `json:"csr,omitempty"                 yaml:"csr,omitempty"`
	Certificate         string            `json:"certificate,omitempty"         yaml:"certificate,omitempty"`
	Fingerprint         string            `json:"fingerprint,omitempty"         yaml:"fingerprint,omitempty"`
}

// DCVRequest selects a validation method for one common name.
type DCVRequest struct {
	CommonName string  `json:"commonName"`
	Type       DCVType `json:"type"`
	Email      string  `json:"email,omitempty"`
}

// CertificateRequest orders a new certificate.
type CertificateRequest struct {
	Customer     string                    `json:"customer,omitempty"`
	Product      string                    `json:"product"`
	Period       int                       `json:"period"`
	CSR          string                    `json:"csr"`
	DomainName   string                    `json:"domainName,omitempty"`
	SAN          []string                  `json:"san,omitempty"`
	Organization string                    `json:"organization,omitempty"`
	Department   string                    `json:"department,omitempty"`
	Address      string                    `json:"address,omitempty"`
	PostalCode   string                    `json:"postalCode,omitempty"`
	City         string                    `json:"city,omitempty"`
	State        string                    `json:"state,omitempty"`
	Country      string                    `json:"country,omitempty"`
	Language     string                    `json:"language,omitempty"`
	COC          string                    `json:"coc,omitempty"`
	SAEmail      string                    `json:"saEmail,omitempty"`
	Approver     *Approver                 `json:"approver,omitempty"`
	DCV          []DCVRequest              `json:"dcv,omitempty"`
	AuthKey      *bool                     `json:"authKey,omitempty"`
	Billables    []BillableAcknowledgement `json:"billables,omitempty"`
}

// CertificateReissueRequest reissues an existing certificate.
type CertificateReissueRequest struct {
	CSR          string       `json:"csr"`
	SAN          []string     `json:"san,omitempty"`
	Organization string       `json:"organization,omitempty"`
	Department   string       `json:"department,omitempty"`
	Address      string       `json:"address,omitempty"`
	PostalCode   string       `json:"postalCode,omitempty"`
	City         string       `json:"city,omitempty"`
	State        string       `json:"state,omitempty"`
	COC          string       `json:"coc,omitempty"`
	Approver     *Approver    `json:"approver,omitempty"`
	DCV          []DCVRequest `json:"dcv,omitempty"`
	DomainName   string       `json:"domainName,omitempty"`
	AuthKey      *bool        `json:"authKey,omitempty"`
}

// CertificateRenewRequest renews an existing certificate.
type CertificateRenewRequest struct {
	Period       int                       `json:"period"`
	CSR          string                    `json:"csr"`
	SAN          []string                  `json:"san,omitempty"`
	Organization string                    `json:"organization,omitempty"`
	Department   string                    `json:"department,omitempty"`
	Address      string                    `json:"address,omitempty"`
	PostalCode   string                    `json:"postalCode,omitempty"`
	City         string                    `json:"city,omitempty"`
	State        string                    `json:"state,omitempty"`
	COC          string                    `json:"coc,omitempty"`
	SAEmail      string                    `json:"saEmail,omitempty"`
	Approver     *Approver                 `json:"approver,omitempty"`
	DCV          []DCVRequest              `json:"dcv,omitempty"`
	DomainName   string                    `json:"domainName,omitempty"`
	AuthKey      *bool                     `json:"authKey,omitempty"`
	Billables    []BillableAcknowledgement `json:"billables,omitempty"`
}

// CertificateImportRequest imports a certificate issued elsewhere.
type CertificateImportRequest struct {
	Customer    string `json:"customer,omitempty"`
	Certificate string `json:"certificate"`
	CSR         string `json:"csr,omitempty"`
	COC         string `json:"coc,omitempty"`
	DomainName  string `json:"domainName,omitempty"`
}

// Approver is the person approving an organization validated certificate.
type Approver struct {
	FirstName string `json:"firstName"          yaml:"firstName"`
	LastName  string `json:"lastName"           yaml:"lastName"`
	JobTitle  string `json:"jobTitle,omitempty" yaml:"jobTitle,omitempty"`
	Email     string `json:"email"              yaml:"email"`
	Voice     string `json:"voice"              yaml:"voice"`
}

// DCVStatus is the validation state of one common name.
type DCVStatus struct {
	CommonName      string           `json:"commonName"                yaml:"commonName"`
	Type            DCVType          `json:"type"                      yaml:"type"`
	Email           string           `json:"email,omitempty"           yaml:"email,omitempty"`
	Status          ValidationStatus `json:"status"                    yaml:"status"`
	DNSRecord       string           `json:"dnsRecord,omitempty"       yaml:"dnsRecord,omitempty"`
	DNSType         string           `json:"dnsType,omitempty"         yaml:"dnsType,omitempty"`
	DNSContents     string           `json:"dnsContents,omitempty"     yaml:"dnsContents,omitempty"`
	FileLocation    string           `json:"fileLocation,omitempty"    yaml:"fileLocation,omitempty"`
	FileContents    string           `json:"fileContents,omitempty"    yaml:"fileContents,omitempty"`
	CAARecordStatus string           `json:"caaRecordStatus,omitempty" yaml:"caaRecordStatus,omitempty"`
	RiskStatus      string           `json:"riskStatus,omitempty"      yaml:"riskStatus,omitempty"`
}

// ValidationStatus is the state of a single certificate check.
type ValidationStatus string

// Validation states.
const (
	ValidationWaiting   ValidationStatus = "WAITING"
	ValidationAttention ValidationStatus = "ATTENTION"
	ValidationValidated ValidationStatus = "VALIDATED"
)

// CertificateValidations groups the checks of a certificate process.
type CertificateValidations struct {
	Organization ValidationStatus `json:"organization,omitempty" yaml:"organization,omitempty"`
	Agreement    ValidationStatus `json:"agreement,omitempty"    yaml:"agreement,omitempty"`
	Docs         ValidationStatus `json:"docs,omitempty"         yaml:"docs,omitempty"`
	Voice        ValidationStatus `json:"voice,omitempty"        yaml:"voice,omitempty"`
	Whois        ValidationStatus `json:"whois,omitempty"        yaml:"whois,omitempty"`
	DCV          []DCVStatus      `json:"dcv,omitempty"          yaml:"dcv,omitempty"`
}

// ProcessNote is a note attached to a certificate process.
type ProcessNote struct {
	CreatedDate time.Time `json:"createdDate" yaml:"createdDate"`
	Type        string    `json:"type"        yaml:"type"`
	Message     string    `json:"message"     yaml:"message"`
}

// CertificateProcess is the validation progress of a certificate order.
type CertificateProcess struct {
	CommonName        string                  `json:"commonName"            yaml:"commonName"`
	RequiresAttention bool                    `json:"requiresAttention"     yaml:"requiresAttention"`
	Validations       *CertificateValidations `json:"validations,omitempty" yaml:"validations,omitempty"`
	Notes             []ProcessNote           `json:"notes,omitempty"       yaml:"notes,omitempty"`
	OneTimeLink       string                  `json:"oneTimeLink,omitempty" yaml:"oneTimeLink,omitempty"`
}

// CertificateProcessResponse is a process response with a decoded
// certificate process body.
type CertificateProcessResponse struct {
	ProcessResponse

	Result CertificateProcess `json:"result" yaml:"result"`
}

// CSRInfo is a decoded certificate signing request.
type CSRInfo struct {
	Subject            map[string]string `json:"subject,omitempty"            yaml:"subject,omitempty"`
	Country            string            `json:"country,omitempty"            yaml:"country,omitempty"`
	State              string            `json:"state,omitempty"              yaml:"state,omitempty"`
	Locality           string            `json:"locality,omitempty"           yaml:"locality,omitempty"`
	Organization       string            `json:"organization,omitempty"       yaml:"organization,omitempty"`
	OrganizationalUnit string            `json:"organizationalUnit,omitempty" yaml:"organizationalUnit,omitempty"`
	CommonName         string            `json:"commonName"                   yaml:"commonName"`
	PublicKeyAlgorithm string            `json:"publicKeyAlgorithm"           yaml:"publicKeyAlgorithm"`
	PublicKeySize      int               `json:"publicKeySize"                yaml:"publicKeySize"`
	Street             []string          `json:"street,omitempty"             yaml:"street,omitempty"`
	PostalCode         string            `json:"postalCode,omitempty"         yaml:"postalCode,omitempty"`
	PostalOfficeBox    string            `json:"postalOfficeBox,omitempty"    yaml:"postalOfficeBox,omitempty"`
	EmailAddress       string            `json:"emailAddress,omitempty"       yaml:"emailAddress,omitempty"`
	AltNames           []string          `json:"altNames,omitempty"           yaml:"altNames,omitempty"`
}

// DCVResendRequest resends validation for the given common names.
type DCVResendRequest struct {
	DCV []DCVRequest `json:"dcv"`
}

// SubscriberAgreementRequest sends the subscriber agreement to an address.
type SubscriberAgreementRequest struct {
	Email    string `json:"email"`
	Language string `json:"language,omitempty"`
}

// CertificateRevokeRequest revokes a certificate.
type CertificateRevokeRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CSRDecodeRequest carries a PEM encoded signing request to decode.
type CSRDecodeRequest struct {
	CSR string `json:"csr"`
}
