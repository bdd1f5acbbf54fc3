package rtr

import (
	"encoding/json"
	"fmt"
	"time"
)

// Notification is a message about an event on an object of the customer.
// Details holds the type specific members selected by NotificationType; it
// is nil for types without extra members.
type Notification struct {
	ID                int             `json:"id"                          yaml:"id"`
	EventType         string          `json:"eventType"                   yaml:"eventType"`
	NotificationType  string          `json:"notificationType"            yaml:"notificationType"`
	FireDate          time.Time       `json:"fireDate"                    yaml:"fireDate"`
	ReadDate          *time.Time      `json:"readDate,omitempty"          yaml:"readDate,omitempty"`
	AcknowledgeDate   *time.Time      `json:"acknowledgeDate,omitempty"   yaml:"acknowledgeDate,omitempty"`
	DeliveryDate      *time.Time      `json:"deliveryDate,omitempty"      yaml:"deliveryDate,omitempty"`
	Message           string          `json:"message"                     yaml:"message"`
	Reason            string          `json:"reason,omitempty"            yaml:"reason,omitempty"`
	Process           int             `json:"process,omitempty"           yaml:"process,omitempty"`
	Payload           json.RawMessage `json:"payload,omitempty"           yaml:"-"`
	Customer          string          `json:"customer"                    yaml:"customer"`
	IsAsync           bool            `json:"isAsync"                     yaml:"isAsync"`
	ProcessType       string          `json:"processType,omitempty"       yaml:"processType,omitempty"`
	ProcessIdentifier string          `json:"processIdentifier,omitempty" yaml:"processIdentifier,omitempty"`

	Details NotificationDetails `json:"-" yaml:"details,omitempty"`
}

// NotificationDetails is implemented by the type specific notification
// members.
type NotificationDetails interface {
	NotificationType() string
}

// BillingNotification reports on the balance of an account.
type BillingNotification struct {
	Watermark         *int       `json:"watermark,omitempty"         yaml:"watermark,omitempty"`
	Currency          string     `json:"currency,omitempty"          yaml:"currency,omitempty"`
	Balance           *int       `json:"balance,omitempty"           yaml:"balance,omitempty"`
	NegativeSinceDate *time.Time `json:"negativeSinceDate,omitempty" yaml:"negativeSinceDate,omitempty"`
	NegativeCurrency  string     `json:"negativeCurrency,omitempty"  yaml:"negativeCurrency,omitempty"`
	NegativeLimit     *int       `json:"negativeLimit,omitempty"     yaml:"negativeLimit,omitempty"`
	NegativeSoftLimit *int       `json:"negativeSoftLimit,omitempty" yaml:"negativeSoftLimit,omitempty"`
}

// NotificationType implements NotificationDetails.
func (BillingNotification) NotificationType() string { return "BillingNotification" }

// CreateDomainNotification reports a registered domain.
type CreateDomainNotification struct {
	CreatedDate *time.Time `json:"createdDate,omitempty" yaml:"createdDate,omitempty"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty"  yaml:"expiryDate,omitempty"`
}

// NotificationType implements NotificationDetails.
func (CreateDomainNotification) NotificationType() string { return "CreateDomainNotification" }

// DomainExpiryReportNotification announces a report of expiring domains.
type DomainExpiryReportNotification struct {
	StartDate *time.Time `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"   yaml:"endDate,omitempty"`
}

// NotificationType implements NotificationDetails.
func (DomainExpiryReportNotification) NotificationType() string {
	return "DomainExpiryReportNotification"
}

// DomainNotification reports a change on a domain.
type DomainNotification struct {
	DomainName    string `json:"domainName,omitempty"    yaml:"domainName,omitempty"`
	SubjectStatus string `json:"subjectStatus,omitempty" yaml:"subjectStatus,omitempty"`
}

// NotificationType implements NotificationDetails.
func (DomainNotification) NotificationType() string { return "DomainNotification" }

// HostNotification reports a change on a host.
type HostNotification struct {
	HostName string `json:"hostName,omitempty" yaml:"hostName,omitempty"`
}

// NotificationType implements NotificationDetails.
func (HostNotification) NotificationType() string { return "HostNotification" }

// PremiumDomainChangePriceNotification reports a premium price change.
type PremiumDomainChangePriceNotification struct {
	Currency string `json:"currency,omitempty" yaml:"currency,omitempty"`
}

// NotificationType implements NotificationDetails.
func (PremiumDomainChangePriceNotification) NotificationType() string {
	return "PremiumDomainChangePriceNotification"
}

// RenewDomainNotification reports a renewed domain.
type RenewDomainNotification struct {
	ExpiryDate *time.Time `json:"expiryDate,omitempty" yaml:"expiryDate,omitempty"`
}

// NotificationType implements NotificationDetails.
func (RenewDomainNotification) NotificationType() string { return "RenewDomainNotification" }

// SSLCertificateExpiryReportNotification announces a report of expiring
// certificates.
type SSLCertificateExpiryReportNotification struct {
	StartDate *time.Time `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"   yaml:"endDate,omitempty"`
}

// NotificationType implements NotificationDetails.
func (SSLCertificateExpiryReportNotification) NotificationType() string {
	return "SSLCertificateExpiryReportNotification"
}

// SSLCertificateNotification reports a change on a certificate.
type SSLCertificateNotification struct {
	Provider       string     `json:"provider,omitempty"       yaml:"provider,omitempty"`
	Product        string     `json:"product,omitempty"        yaml:"product,omitempty"`
	ValidationType string     `json:"validationType,omitempty" yaml:"validationType,omitempty"`
	ProviderID     *int       `json:"providerId,omitempty"     yaml:"providerId,omitempty"`
	ExpiryDate     *time.Time `json:"expiryDate,omitempty"     yaml:"expiryDate,omitempty"`
	CertificateID  *int       `json:"certificateId,omitempty"  yaml:"certificateId,omitempty"`
}

// NotificationType implements NotificationDetails.
func (SSLCertificateNotification) NotificationType() string { return "SSLCertificateNotification" }

// TransferDomainNotification reports progress of a transfer.
type TransferDomainNotification struct {
	RequestedDate *time.Time `json:"requestedDate,omitempty" yaml:"requestedDate,omitempty"`
	ActionDate    *time.Time `json:"actionDate,omitempty"    yaml:"actionDate,omitempty"`
	ExpiryDate    *time.Time `json:"expiryDate,omitempty"    yaml:"expiryDate,omitempty"`
	TransferType  string     `json:"transferType,omitempty"  yaml:"transferType,omitempty"`
}

// NotificationType implements NotificationDetails.
func (TransferDomainNotification) NotificationType() string { return "TransferDomainNotification" }

// UpdatePriceGroupNotification announces a price group change.
type UpdatePriceGroupNotification struct {
	ActionDate *time.Time `json:"actionDate,omitempty" yaml:"actionDate,omitempty"`
}

// NotificationType implements NotificationDetails.
func (UpdatePriceGroupNotification) NotificationType() string {
	return "UpdatePriceGroupNotification"
}

var notificationDetails = map[string]func() NotificationDetails{
	"BillingNotification":                    func() NotificationDetails { return &BillingNotification{} },
	"CreateDomainNotification":               func() NotificationDetails { return &CreateDomainNotification{} },
	"DomainExpiryReportNotification":         func() NotificationDetails { return &DomainExpiryReportNotification{} },
	"DomainNotification":                     func() NotificationDetails { return &DomainNotification{} },
	"HostNotification":                       func() NotificationDetails { return &HostNotification{} },
	"PremiumDomainChangePriceNotification":   func() NotificationDetails { return &PremiumDomainChangePriceNotification{} },
	"RenewDomainNotification":                func() NotificationDetails { return &RenewDomainNotification{} },
	"SSLCertificateExpiryReportNotification": func() NotificationDetails { return &SSLCertificateExpiryReportNotification{} },
	"SSLCertificateNotification":             func() NotificationDetails { return &SSLCertificateNotification{} },
	"TransferDomainNotification":             func() NotificationDetails { return &TransferDomainNotification{} },
	"UpdatePriceGroupNotification":           func() NotificationDetails { return &UpdatePriceGroupNotification{} },
}

// UnmarshalJSON decodes the common members and, for known notification
// types, the type specific members into Details.
func (n *Notification) UnmarshalJSON(data []byte) error {
	type plain Notification

	var decoded plain

	err := json.Unmarshal(data, &decoded)
	if err != nil {
		return fmt.Errorf("decoding notification: %w", err)
	}

	*n = Notification(decoded)

	newDetails, ok := notificationDetails[n.NotificationType]
	if !ok {
		return nil
	}

	details := newDetails()

	err = json.Unmarshal(data, details)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", n.NotificationType, err)
	}

	n.Details = details

	return nil
}
