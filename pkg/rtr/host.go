package rtr

import "time"

// IPVersion is the address family of a host address.
type IPVersion string

// Address families.
const (
	IPv4 IPVersion = "V4"
	IPv6 IPVersion = "V6"
)

// HostAddress is a glue address of a host.
type HostAddress struct {
	Address   string    `json:"address"   yaml:"address"`
	IPVersion IPVersion `json:"ipVersion" yaml:"ipVersion"`
}

// Host is a name server host object.
type Host struct {
	HostName    string        `json:"hostName"              yaml:"hostName"`
	Addresses   []HostAddress `json:"addresses,omitempty"   yaml:"addresses,omitempty"`
	CreatedDate time.Time     `json:"createdDate"           yaml:"createdDate"`
	UpdatedDate *time.Time    `json:"updatedDate,omitempty" yaml:"updatedDate,omitempty"`
}

// HostRequest creates or updates a host. The host name is part of the path.
type HostRequest struct {
	Addresses []HostAddress `json:"addresses"`
}

// Provider is a registry or certificate authority.
type Provider struct {
	Name string   `json:"name"           yaml:"name"`
	TLDs []string `json:"tlds,omitempty" yaml:"tlds,omitempty"`
}

// DowntimeWindow is a scheduled maintenance of a provider.
type DowntimeWindow struct {
	ID        int       `json:"id"               yaml:"id"`
	StartDate time.Time `json:"startDate"        yaml:"startDate"`
	EndDate   time.Time `json:"endDate"          yaml:"endDate"`
	Reason    string    `json:"reason,omitempty" yaml:"reason,omitempty"`
	Provider  Provider  `json:"provider"         yaml:"provider"`
}

// ValidationTerms is a version of the terms of a validation category.
type ValidationTerms struct {
	ID         int       `json:"id"         yaml:"id"`
	Version    int       `json:"version"    yaml:"version"`
	ValidUntil time.Time `json:"validUntil" yaml:"validUntil"`
	Terms      string    `json:"terms"      yaml:"terms"`
}

// ValidationCategory is a set of contact checks required by registries.
type ValidationCategory struct {
	ID          int               `json:"id"          yaml:"id"`
	Name        string            `json:"name"        yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Fields      []string          `json:"fields"      yaml:"fields"`
	Terms       []ValidationTerms `json:"terms"       yaml:"terms"`
}
