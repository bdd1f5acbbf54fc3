package rtr

import "time"

// DomainStatus is an EPP or registrar status of a domain.
type DomainStatus string

// Domain statuses.
const (
	DomainStatusOK                          DomainStatus = "OK"
	DomainStatusInactive                    DomainStatus = "INACTIVE"
	DomainStatusPendingTransfer             DomainStatus = "PENDING_TRANSFER"
	DomainStatusClientTransferProhibited    DomainStatus = "CLIENT_TRANSFER_PROHIBITED"
	DomainStatusServerTransferProhibited    DomainStatus = "SERVER_TRANSFER_PROHIBITED"
	DomainStatusRegistrarTransferProhibited DomainStatus = "REGISTRAR_TRANSFER_PROHIBITED"
	DomainStatusPendingRenew                DomainStatus = "PENDING_RENEW"
	DomainStatusClientRenewProhibited       DomainStatus = "CLIENT_RENEW_PROHIBITED"
	DomainStatusServerRenewProhibited       DomainStatus = "SERVER_RENEW_PROHIBITED"
	DomainStatusRegistrarRenewProhibited    DomainStatus = "REGISTRAR_RENEW_PROHIBITED"
	DomainStatusPendingUpdate               DomainStatus = "PENDING_UPDATE"
	DomainStatusClientUpdateProhibited      DomainStatus = "CLIENT_UPDATE_PROHIBITED"
	DomainStatusServerUpdateProhibited      DomainStatus = "SERVER_UPDATE_PROHIBITED"
	DomainStatusRegistrarUpdateProhibited   DomainStatus = "REGISTRAR_UPDATE_PROHIBITED"
	DomainStatusClientHold                  DomainStatus = "CLIENT_HOLD"
	DomainStatusServerHold                  DomainStatus = "SERVER_HOLD"
	DomainStatusRegistrarHold               DomainStatus = "REGISTRAR_HOLD"
	DomainStatusDeleteRequested             DomainStatus = "DELETE_REQUESTED"
	DomainStatusAddPeriod                   DomainStatus = "ADD_PERIOD"
	DomainStatusAutoRenewPeriod             DomainStatus = "AUTO_RENEW_PERIOD"
	DomainStatusRenewPeriod                 DomainStatus = "RENEW_PERIOD"
	DomainStatusTransferPeriod              DomainStatus = "TRANSFER_PERIOD"
	DomainStatusRedemptionPeriod            DomainStatus = "REDEMPTION_PERIOD"
	DomainStatusPendingRestore              DomainStatus = "PENDING_RESTORE"
	DomainStatusPendingDelete               DomainStatus = "PENDING_DELETE"
	DomainStatusClientDeleteProhibited      DomainStatus = "CLIENT_DELETE_PROHIBITED"
	DomainStatusServerDeleteProhibited      DomainStatus = "SERVER_DELETE_PROHIBITED"
	DomainStatusRegistrarDeleteProhibited   DomainStatus = "REGISTRAR_DELETE_PROHIBITED"
	DomainStatusPendingValidation           DomainStatus = "PENDING_VALIDATION"
	DomainStatusPrivacyProtectProhibited    DomainStatus = "PRIVACY_PROTECT_PROHIBITED"
	DomainStatusExpired                     DomainStatus = "EXPIRED"
	DomainStatusIRTPCTransferProhibited     DomainStatus = "IRTPC_TRANSFER_PROHIBITED"
)

// DesignatedAgent selects who acts as designated agent for a registrant change.
type DesignatedAgent string

// Designated agent options.
const (
	DesignatedAgentNone DesignatedAgent = "NONE"
	DesignatedAgentOld  DesignatedAgent = "OLD"
	DesignatedAgentNew  DesignatedAgent = "NEW"
	DesignatedAgentBoth DesignatedAgent = "BOTH"
)

// ContactRole is the role of a contact on a domain.
type ContactRole string

// Contact roles.
const (
	ContactRoleAdmin   ContactRole = "ADMIN"
	ContactRoleBilling ContactRole = "BILLING"
	ContactRoleTech    ContactRole = "TECH"
)

// DomainContact links a contact handle to a domain role.
type DomainContact struct {
	Role   ContactRole `json:"role"   yaml:"role"`
	Handle string      `json:"handle" yaml:"handle"`
}

// DomainZone configures the DNS zone of a domain.
type DomainZone struct {
	Template string `json:"template,omitempty" yaml:"template,omitempty"`
	Link     *bool  `json:"link,omitempty"     yaml:"link,omitempty"`
	Service  string `json:"service,omitempty"  yaml:"service,omitempty"`
	DNSSEC   *bool  `json:"dnssec,omitempty"   yaml:"dnssec,omitempty"`
	Master   string `json:"master,omitempty"   yaml:"master,omitempty"`
}

// KeyData is a DNSSEC key.
type KeyData struct {
	Protocol  int    `json:"protocol"  yaml:"protocol"`
	Flags     int    `json:"flags"     yaml:"flags"`
	Algorithm int    `json:"algorithm" yaml:"algorithm"`
	PublicKey string `json:"publicKey" yaml:"publicKey"`
}

// DSData is a DNSSEC delegation signer record.
type DSData struct {
	KeyTag     int    `json:"keyTag"     yaml:"keyTag"`
	Algorithm  int    `json:"algorithm"  yaml:"algorithm"`
	DigestType int    `json:"digestType" yaml:"digestType"`
	Digest     string `json:"digest"     yaml:"digest"`
}

// Domain is a registered domain name.
type Domain struct {
	DomainName      string          `json:"domainName"             yaml:"domainName"`
	Registry        string          `json:"registry"               yaml:"registry"`
	Customer        string          `json:"customer"               yaml:"customer"`
	Registrant      string          `json:"registrant"             yaml:"registrant"`
	PrivacyProtect  bool            `json:"privacyProtect"         yaml:"privacyProtect"`
	Status          []DomainStatus  `json:"status"                 yaml:"status"`
	Authcode        string          `json:"authcode,omitempty"     yaml:"authcode,omitempty"`
	LanguageCode    string          `json:"languageCode,omitempty" yaml:"languageCode,omitempty"`
	AutoRenew       bool            `json:"autoRenew"              yaml:"autoRenew"`
	AutoRenewPeriod int             `json:"autoRenewPeriod"        yaml:"autoRenewPeriod"`
	NS              []string        `json:"ns,omitempty"           yaml:"ns,omitempty"`
	ChildHosts      []string        `json:"childHosts,omitempty"   yaml:"childHosts,omitempty"`
	CreatedDate     time.Time       `json:"createdDate"            yaml:"createdDate"`
	UpdatedDate     *time.Time      `json:"updatedDate,omitempty"  yaml:"updatedDate,omitempty"`
	ExpiryDate      time.Time       `json:"expiryDate"             yaml:"expiryDate"`
	Premium         bool            `json:"premium"                yaml:"premium"`
	Gateway         bool            `json:"gateway"                yaml:"gateway"`
	Zone            *DomainZone     `json:"zone,omitempty"         yaml:"zone,omitempty"`
	Contacts        []DomainContact `json:"contacts,omitempty"     yaml:"contacts,omitempty"`
	KeyData         []KeyData       `json:"keyData,omitempty"      yaml:"keyData,omitempty"`
	DSData          []DSData        `json:"dsData,omitempty"       yaml:"dsData,omitempty"`
}

// DomainAvailability is the result of a domain check.
type DomainAvailability struct {
	Available bool   `json:"available"          yaml:"available"`
	Reason    string `json:"reason,omitempty"   yaml:"reason,omitempty"`
	Premium   bool   `json:"premium"            yaml:"premium"`
	Currency  string `json:"currency,omitempty" yaml:"currency,omitempty"`
	Price     int    `json:"price,omitempty"    yaml:"price,omitempty"`
}

// DomainRegisterRequest registers a new domain.
type DomainRegisterRequest struct {
	Registrant     string                    `json:"registrant"`
	Authcode       string                    `json:"authcode,omitempty"`
	AutoRenew      *bool                     `json:"autoRenew,omitempty"`
	PrivacyProtect *bool                     `json:"privacyProtect,omitempty"`
	Contacts       []DomainContact           `json:"contacts,omitempty"`
	Period         int                       `json:"period,omitempty"`
	NS             []string                  `json:"ns,omitempty"`
	Zone           *DomainZone               `json:"zone,omitempty"`
	LanguageCode   string                    `json:"languageCode,omitempty"`
	KeyData        []KeyData                 `json:"keyData,omitempty"`
	Billables      []BillableAcknowledgement `json:"billables,omitempty"`
	SkipValidation *bool                     `json:"skipValidation,omitempty"`
	Customer       string                    `json:"customer,omitempty"`
}

// TransferContacts selects which contacts are copied on an incoming transfer.
type TransferContacts string

// Transfer contact options.
const (
	TransferContactsRegistrant TransferContacts = "REGISTRANT"
	TransferContactsAdmin      TransferContacts = "ADMIN"
)

// DomainTransferRequest transfers a domain in.
type DomainTransferRequest struct {
	Registrant       string                    `json:"registrant"`
	Authcode         string                    `json:"authcode,omitempty"`
	AutoRenew        *bool                     `json:"autoRenew,omitempty"`
	PrivacyProtect   *bool                     `json:"privacyProtect,omitempty"`
	Contacts         []DomainContact           `json:"contacts,omitempty"`
	Period           int                       `json:"period,omitempty"`
	NS               []string                  `json:"ns,omitempty"`
	Zone             *DomainZone               `json:"zone,omitempty"`
	LanguageCode     string                    `json:"languageCode,omitempty"`
	KeyData          []KeyData                 `json:"keyData,omitempty"`
	Billables        []BillableAcknowledgement `json:"billables,omitempty"`
	TransferContacts TransferContacts          `json:"transferContacts,omitempty"`
	DesignatedAgent  DesignatedAgent           `json:"designatedAgent,omitempty"`
	Customer         string                    `json:"customer,omitempty"`
}

// DomainUpdateRequest changes a domain. Nil and empty fields are left as is.
type DomainUpdateRequest struct {
	Registrant      string                    `json:"registrant,omitempty"`
	PrivacyProtect  *bool                     `json:"privacyProtect,omitempty"`
	Authcode        string                    `json:"authcode,omitempty"`
	AutoRenew       *bool                     `json:"autoRenew,omitempty"`
	AutoRenewPeriod int                       `json:"autoRenewPeriod,omitempty"`
	NS              []string                  `json:"ns,omitempty"`
	Status          []DomainStatus            `json:"status,omitempty"`
	DesignatedAgent DesignatedAgent           `json:"designatedAgent,omitempty"`
	Zone            *DomainZone               `json:"zone,omitempty"`
	Contacts        []DomainContact           `json:"contacts,omitempty"`
	KeyData         []KeyData                 `json:"keyData,omitempty"`
	DSData          []DSData                  `json:"dsData,omitempty"`
	Billables       []BillableAcknowledgement `json:"billables,omitempty"`
}

// DomainRenewRequest renews a domain.
type DomainRenewRequest struct {
	Period    int                       `json:"period"`
	Billables []BillableAcknowledgement `json:"billables,omitempty"`
}

// DomainRestoreRequest restores a deleted domain.
type DomainRestoreRequest struct {
	Reason    string                    `json:"reason"`
	Billables []BillableAcknowledgement `json:"billables,omitempty"`
}

// DomainPushTransferRequest pushes a domain to another registrar account.
type DomainPushTransferRequest struct {
	Recipient string `json:"recipient"`
}

// DomainProcessResult is the body of a domain create, transfer, update,
// renew or restore response.
type DomainProcessResult struct {
	DomainName string       `json:"domainName"           yaml:"domainName"`
	ExpiryDate *time.Time   `json:"expiryDate,omitempty" yaml:"expiryDate,omitempty"`
	Status     DomainStatus `json:"status,omitempty"     yaml:"status,omitempty"`
}

// DomainProcessResponse is a process response with a decoded domain body.
type DomainProcessResponse struct {
	ProcessResponse

	Result DomainProcessResult `json:"result" yaml:"result"`
}

// TransferType is the direction of a transfer.
type TransferType string

// Transfer directions.
const (
	TransferTypeIn  TransferType = "IN"
	TransferTypeOut TransferType = "OUT"
)

// TransferLog is a single entry of a transfer's history.
type TransferLog struct {
	Date    time.Time `json:"date"    yaml:"date"`
	Status  string    `json:"status"  yaml:"status"`
	Message string    `json:"message" yaml:"message"`
}

// TransferInfo describes a pending or finished transfer.
type TransferInfo struct {
	DomainName    string        `json:"domainName"           yaml:"domainName"`
	Registrar     string        `json:"registrar"            yaml:"registrar"`
	Status        string        `json:"status"               yaml:"status"`
	RequestedDate time.Time     `json:"requestedDate"        yaml:"requestedDate"`
	ActionDate    *time.Time    `json:"actionDate,omitempty" yaml:"actionDate,omitempty"`
	ExpiryDate    *time.Time    `json:"expiryDate,omitempty" yaml:"expiryDate,omitempty"`
	Type          TransferType  `json:"type"                 yaml:"type"`
	ProcessID     int           `json:"processId"            yaml:"processId"`
	Log           []TransferLog `json:"log,omitempty"        yaml:"log,omitempty"`
}
