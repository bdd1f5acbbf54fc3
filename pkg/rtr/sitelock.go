package rtr

import "time"

// SiteLockAddOn is an add-on product of a SiteLock site.
type SiteLockAddOn struct {
	ID          int        `json:"id"                    yaml:"id"`
	Product     string     `json:"product"               yaml:"product"`
	CreatedDate time.Time  `json:"createdDate"           yaml:"createdDate"`
	UpdatedDate *time.Time `json:"updatedDate,omitempty" yaml:"updatedDate,omitempty"`
	RenewalDate time.Time  `json:"renewalDate"           yaml:"renewalDate"`
}

// SiteLockSite is a website protected by SiteLock.
type SiteLockSite struct {
	Account     string          `json:"account"               yaml:"account"`
	Customer    string          `json:"customer"              yaml:"customer"`
	DomainName  string          `json:"domainName"            yaml:"domainName"`
	Plan        string          `json:"plan"                  yaml:"plan"`
	CreatedDate time.Time       `json:"createdDate"           yaml:"createdDate"`
	UpdatedDate *time.Time      `json:"updatedDate,omitempty" yaml:"updatedDate,omitempty"`
	RenewalDate time.Time       `json:"renewalDate"           yaml:"renewalDate"`
	AddOns      []SiteLockAddOn `json:"addOns,omitempty"      yaml:"addOns,omitempty"`
}

// SiteLockAccount is a SiteLock login.
type SiteLockAccount struct {
	Username    string         `json:"username"              yaml:"username"`
	Customer    string         `json:"customer"              yaml:"customer"`
	Brand       string         `json:"brand"                 yaml:"brand"`
	CreatedDate time.Time      `json:"createdDate"           yaml:"createdDate"`
	UpdatedDate *time.Time     `json:"updatedDate,omitempty" yaml:"updatedDate,omitempty"`
	Sites       []SiteLockSite `json:"sites,omitempty"       yaml:"sites,omitempty"`
}

// SiteLockAccountRequest creates a SiteLock account.
type SiteLockAccountRequest struct {
	Customer   string `json:"customer,omitempty"`
	Email      string `json:"email"`
	Password   string `json:"password,omitempty"`
	Language   string `json:"language,omitempty"`
	Brand      string `json:"brand,omitempty"`
	DomainName string `json:"domainName"`
	Plan       string `json:"plan"`
}

// SiteLockSiteRequest creates or updates a SiteLock site.
type SiteLockSiteRequest struct {
	Account string `json:"account,omitempty"`
	Plan    string `json:"plan,omitempty"`
}

// SiteLockSSO is a single sign-on link.
type SiteLockSSO struct {
	URL string `json:"url" yaml:"url"`
}

// SiteLockPasswordRequest sets a new password on a SiteLock account.
type SiteLockPasswordRequest struct {
	Password string `json:"password"`
}

// SiteLockSSORequest optionally narrows a single sign-on link to a site.
type SiteLockSSORequest struct {
	Site string `json:"site,omitempty"`
}
