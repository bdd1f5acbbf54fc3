package rtr

// Restrictions bounds the number of items of some kind.
type Restrictions struct {
	Min      int  `json:"min"      yaml:"min"`
	Max      int  `json:"max"      yaml:"max"`
	Required bool `json:"required" yaml:"required"`
}

// HostRestrictions bounds the addresses of a host.
type HostRestrictions struct {
	AddressesIPv4  Restrictions `json:"addressesIPv4"  yaml:"addressesIPv4"`
	AddressesIPv6  Restrictions `json:"addressesIPv6"  yaml:"addressesIPv6"`
	AddressesTotal Restrictions `json:"addressesTotal" yaml:"addressesTotal"`
}

// ContactRestrictions bounds the contacts of one role.
type ContactRestrictions struct {
	Restrictions `yaml:",inline"`

	OrganizationRequired bool `json:"organizationRequired" yaml:"organizationRequired"`
	OrganizationAllowed  bool `json:"organizationAllowed"  yaml:"organizationAllowed"`
}

// LanguageCode is an IDN language supported by a TLD.
type LanguageCode struct {
	Name              string `json:"name"              yaml:"name"`
	AllowedCharacters string `json:"allowedCharacters" yaml:"allowedCharacters"`
}

// DomainSyntax describes the valid labels of a TLD.
type DomainSyntax struct {
	MinLength         int                     `json:"minLength"               yaml:"minLength"`
	MaxLength         int                     `json:"maxLength"               yaml:"maxLength"`
	IDNSupport        string                  `json:"idnSupport"              yaml:"idnSupport"`
	AllowedCharacters string                  `json:"allowedCharacters"       yaml:"allowedCharacters"`
	LanguageCodes     map[string]LanguageCode `json:"languageCodes,omitempty" yaml:"languageCodes,omitempty"`
}

// ContactProperty is a registry specific contact property.
type ContactProperty struct {
	Name        string `json:"name"        yaml:"name"`
	Label       string `json:"label"       yaml:"label"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type"        yaml:"type"`
	Mandatory   bool   `json:"mandatory"   yaml:"mandatory"`
}

// TLDMetadata holds the registry rules of a TLD.
type TLDMetadata struct {
	DomainSyntax                  DomainSyntax        `json:"domainSyntax"                  yaml:"domainSyntax"`
	Nameservers                   Restrictions        `json:"nameservers"                   yaml:"nameservers"`
	Hosts                         HostRestrictions    `json:"hosts"                         yaml:"hosts"`
	Registrant                    ContactRestrictions `json:"registrant"                    yaml:"registrant"`
	AdminContacts                 ContactRestrictions `json:"adminContacts"                 yaml:"adminContacts"`
	BillingContacts               ContactRestrictions `json:"billingContacts"               yaml:"billingContacts"`
	TechContacts                  ContactRestrictions `json:"techContacts"                  yaml:"techContacts"`
	ContactProperties             []ContactProperty   `json:"contactProperties,omitempty"   yaml:"contactProperties,omitempty"`
	AdjustableAuthCode            bool                `json:"adjustableAuthCode"            yaml:"adjustableAuthCode"`
	CustomAuthcodeSupport         bool                `json:"customAuthcodeSupport"         yaml:"customAuthcodeSupport"`
	TransferRequiresAuthcode      bool                `json:"transferRequiresAuthcode"      yaml:"transferRequiresAuthcode"`
	TransferSupportsAuthcode      bool                `json:"transferSupportsAuthcode"      yaml:"transferSupportsAuthcode"`
	CreateDomainPeriods           []int               `json:"createDomainPeriods"           yaml:"createDomainPeriods"`
	RenewDomainPeriods            []int               `json:"renewDomainPeriods"            yaml:"renewDomainPeriods"`
	TransferDomainPeriods         []int               `json:"transferDomainPeriods"         yaml:"transferDomainPeriods"`
	AutoRenewDomainPeriods        []int               `json:"autoRenewDomainPeriods"        yaml:"autoRenewDomainPeriods"`
	RedemptionPeriod              int                 `json:"redemptionPeriod"              yaml:"redemptionPeriod"`
	PendingDeletePeriod           int                 `json:"pendingDeletePeriod"           yaml:"pendingDeletePeriod"`
	AddGracePeriod                int                 `json:"addGracePeriod"                yaml:"addGracePeriod"`
	AutoRenewGracePeriod          int                 `json:"autoRenewGracePeriod"          yaml:"autoRenewGracePeriod"`
	RenewGracePeriod              int                 `json:"renewGracePeriod"              yaml:"renewGracePeriod"`
	TransferGracePeriod           int                 `json:"transferGracePeriod"           yaml:"transferGracePeriod"`
	PossibleClientDomainStatuses  []DomainStatus      `json:"possibleClientDomainStatuses"  yaml:"possibleClientDomainStatuses"`
	AllowedDNSSECRecords          int                 `json:"allowedDnssecRecords"          yaml:"allowedDnssecRecords"`
	AllowedDNSSECAlgorithms       []int               `json:"allowedDnssecAlgorithms"       yaml:"allowedDnssecAlgorithms"`
	CreationRequiresPreValidation bool                `json:"creationRequiresPreValidation" yaml:"creationRequiresPreValidation"`
	TransferFOA                   bool                `json:"transferFOA"                   yaml:"transferFOA"`
	ZoneCheck                     string              `json:"zoneCheck,omitempty"           yaml:"zoneCheck,omitempty"`
	ExpiryDateOffset              int                 `json:"expiryDateOffset"              yaml:"expiryDateOffset"`
	FeaturesAvailable             []string            `json:"featuresAvailable"             yaml:"featuresAvailable"`
	Jurisdiction                  string              `json:"jurisdiction,omitempty"        yaml:"jurisdiction,omitempty"`
	TermsOfService                string              `json:"termsOfService,omitempty"      yaml:"termsOfService,omitempty"`
	PrivacyPolicy                 string              `json:"privacyPolicy,omitempty"       yaml:"privacyPolicy,omitempty"`
	WhoisExposure                 string              `json:"whoisExposure"                 yaml:"whoisExposure"`
	GDPRCategory                  string              `json:"gdprCategory"                  yaml:"gdprCategory"`
	RegistrationNotice            string              `json:"registrationNotice,omitempty"  yaml:"registrationNotice,omitempty"`
	PremiumSupport                string              `json:"premiumSupport"                yaml:"premiumSupport"`
	RestoreIncludesRenew          bool                `json:"restoreIncludesRenew"          yaml:"restoreIncludesRenew"`
	RenewalOnTransfer             string              `json:"renewalOnTransfer"             yaml:"renewalOnTransfer"`
	AllowDesignatedAgent          DesignatedAgent     `json:"allowDesignatedAgent"          yaml:"allowDesignatedAgent"`
}

// TLDInfo is the metadata of a TLD as returned by the info endpoint.
type TLDInfo struct {
	Hash          string       `json:"hash"               yaml:"hash"`
	ApplicableFor []string     `json:"applicableFor"      yaml:"applicableFor"`
	Metadata      *TLDMetadata `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Provider      string       `json:"provider,omitempty" yaml:"provider,omitempty"`
}
