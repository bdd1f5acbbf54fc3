package rtr

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// DNSRecordType is the type of a resource record.
type DNSRecordType string

// Record types.
const (
	DNSRecordA      DNSRecordType = "A"
	DNSRecordMX     DNSRecordType = "MX"
	DNSRecordCNAME  DNSRecordType = "CNAME"
	DNSRecordAAAA   DNSRecordType = "AAAA"
	DNSRecordURL    DNSRecordType = "URL"
	DNSRecordMBOXFW DNSRecordType = "MBOXFW"
	DNSRecordHINFO  DNSRecordType = "HINFO"
	DNSRecordNAPTR  DNSRecordType = "NAPTR"
	DNSRecordNS     DNSRecordType = "NS"
	DNSRecordSRV    DNSRecordType = "SRV"
	DNSRecordCAA    DNSRecordType = "CAA"
	DNSRecordTLSA   DNSRecordType = "TLSA"
	DNSRecordTXT    DNSRecordType = "TXT"
	DNSRecordSOA    DNSRecordType = "SOA"
	DNSRecordALIAS  DNSRecordType = "ALIAS"
	DNSRecordDNSKEY DNSRecordType = "DNSKEY"
	DNSRecordCERT   DNSRecordType = "CERT"
	DNSRecordDS     DNSRecordType = "DS"
	DNSRecordLOC    DNSRecordType = "LOC"
	DNSRecordSSHFP  DNSRecordType = "SSHFP"
	DNSRecordURI    DNSRecordType = "URI"
)

// DomainPlaceholder stands for the zone apex in template record names.
const DomainPlaceholder = "##DOMAIN##"

// DNSRecord is a single resource record.
type DNSRecord struct {
	Name    string        `json:"name"           yaml:"name"`
	Type    DNSRecordType `json:"type"           yaml:"type"`
	Content string        `json:"content"        yaml:"content"`
	TTL     int           `json:"ttl"            yaml:"ttl"`
	Prio    *int          `json:"prio,omitempty" yaml:"prio,omitempty"`
}

// SortRecords orders records by name with the apex placeholder first, then
// by type, then by priority when both records have a different one, and
// finally by content.
func SortRecords(records []DNSRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]

		if a.Name != b.Name {
			if a.Name == DomainPlaceholder {
				return true
			}

			if b.Name == DomainPlaceholder {
				return false
			}

			return a.Name < b.Name
		}

		if a.Type != b.Type {
			return a.Type < b.Type
		}

		if a.Prio != nil && b.Prio != nil && *a.Prio != *b.Prio {
			return *a.Prio < *b.Prio
		}

		return a.Content < b.Content
	})
}

// SortDefaultRecords orders default records with SOA first, then by type
// and content.
func SortDefaultRecords(records []DNSRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]

		if a.Type == b.Type {
			return a.Content < b.Content
		}

		if a.Type == DNSRecordSOA {
			return true
		}

		if b.Type == DNSRecordSOA {
			return false
		}

		return a.Type < b.Type
	})
}

// ZoneService is the DNS service level of a zone.
type ZoneService string

// Zone services.
const (
	ZoneServiceBasic   ZoneService = "BASIC"
	ZoneServicePremium ZoneService = "PREMIUM"
	ZoneServiceSectigo ZoneService = "SECTIGO"
)

// DNSZone is a hosted DNS zone.
type DNSZone struct {
	ID             int         `json:"id"                     yaml:"id"`
	Name           string      `json:"name"                   yaml:"name"`
	Service        ZoneService `json:"service"                yaml:"service"`
	Template       string      `json:"template,omitempty"     yaml:"template,omitempty"`
	Link           *bool       `json:"link,omitempty"         yaml:"link,omitempty"`
	Master         string      `json:"master,omitempty"       yaml:"master,omitempty"`
	NS             []string    `json:"ns,omitempty"           yaml:"ns,omitempty"`
	DNSSEC         *bool       `json:"dnssec,omitempty"       yaml:"dnssec,omitempty"`
	HostMaster     string      `json:"hostMaster"             yaml:"hostMaster"`
	Refresh        int         `json:"refresh"                yaml:"refresh"`
	Retry          int         `json:"retry"                  yaml:"retry"`
	Expire         int         `json:"expire"                 yaml:"expire"`
	TTL            int         `json:"ttl"                    yaml:"ttl"`
	DefaultRecords []DNSRecord `json:"defaultRecords"         yaml:"defaultRecords"`
	Records        []DNSRecord `json:"records,omitempty"      yaml:"records,omitempty"`
	KeyData        []KeyData   `json:"keyData,omitempty"      yaml:"keyData,omitempty"`
	Customer       string      `json:"customer"               yaml:"customer"`
	Managed        bool        `json:"managed"                yaml:"managed"`
	CreatedDate    time.Time   `json:"createdDate"            yaml:"createdDate"`
	UpdatedDate    *time.Time  `json:"updatedDate,omitempty"  yaml:"updatedDate,omitempty"`
	DeletionDate   *time.Time  `json:"deletionDate,omitempty" yaml:"deletionDate,omitempty"`
}

// UnmarshalJSON decodes a zone and sorts its records.
func (z *DNSZone) UnmarshalJSON(data []byte) error {
	type plain DNSZone

	var decoded plain

	err := json.Unmarshal(data, &decoded)
	if err != nil {
		return fmt.Errorf("decoding dns zone: %w", err)
	}

	*z = DNSZone(decoded)
	SortDefaultRecords(z.DefaultRecords)
	SortRecords(z.Records)

	return nil
}

// DNSZoneCreateRequest creates a zone.
type DNSZoneCreateRequest struct {
	Name       string      `json:"name"`
	Service    ZoneService `json:"service"`
	Template   string      `json:"template,omitempty"`
	Link       *bool       `json:"link,omitempty"`
	Master     string      `json:"master,omitempty"`
	NS         []string    `json:"ns,omitempty"`
	DNSSEC     *bool       `json:"dnssec,omitempty"`
	HostMaster string      `json:"hostMaster,omitempty"`
	Refresh    int         `json:"refresh,omitempty"`
	Retry      int         `json:"retry,omitempty"`
	Expire     int         `json:"expire,omitempty"`
	TTL        int         `json:"ttl,omitempty"`
	Records    []DNSRecord `json:"records,omitempty"`
	Customer   string      `json:"customer,omitempty"`
}

// DNSZoneUpdateRequest updates a zone.
type DNSZoneUpdateRequest struct {
	Template   string      `json:"template,omitempty"`
	Link       *bool       `json:"link,omitempty"`
	Master     string      `json:"master,omitempty"`
	NS         []string    `json:"ns,omitempty"`
	DNSSEC     *bool       `json:"dnssec,omitempty"`
	HostMaster string      `json:"hostMaster,omitempty"`
	Refresh    int         `json:"refresh,omitempty"`
	Retry      int         `json:"retry,omitempty"`
	Expire     int         `json:"expire,omitempty"`
	TTL        int         `json:"ttl,omitempty"`
	Records    []DNSRecord `json:"records,omitempty"`
}

// DNSTemplate is a reusable zone layout, also used for a domain's zone info.
type DNSTemplate struct {
	Name           string      `json:"name"                  yaml:"name"`
	HostMaster     string      `json:"hostMaster"            yaml:"hostMaster"`
	Refresh        int         `json:"refresh"               yaml:"refresh"`
	Retry          int         `json:"retry"                 yaml:"retry"`
	Expire         int         `json:"expire"                yaml:"expire"`
	TTL            int         `json:"ttl"                   yaml:"ttl"`
	DefaultRecords []DNSRecord `json:"defaultRecords"        yaml:"defaultRecords"`
	Records        []DNSRecord `json:"records,omitempty"     yaml:"records,omitempty"`
	CreatedDate    time.Time   `json:"createdDate"           yaml:"createdDate"`
	UpdatedDate    *time.Time  `json:"updatedDate,omitempty" yaml:"updatedDate,omitempty"`
}

// UnmarshalJSON decodes a template and sorts its records.
func (t *DNSTemplate) UnmarshalJSON(data []byte) error {
	type plain DNSTemplate

	var decoded plain

	err := json.Unmarshal(data, &decoded)
	if err != nil {
		return fmt.Errorf("decoding dns template: %w", err)
	}

	*t = DNSTemplate(decoded)
	SortDefaultRecords(t.DefaultRecords)
	SortRecords(t.Records)

	return nil
}

// DNSTemplateRequest creates or updates a template, or a domain's zone.
type DNSTemplateRequest struct {
	HostMaster string      `json:"hostMaster"`
	Refresh    int         `json:"refresh"`
	Retry      int         `json:"retry"`
	Expire     int         `json:"expire"`
	TTL        int         `json:"ttl"`
	Records    []DNSRecord `json:"records,omitempty"`
}

// DNSZoneQueries holds query counters for one day.
type DNSZoneQueries struct {
	Date    time.Time `json:"date"    yaml:"date"`
	QCount  int       `json:"qcount"  yaml:"qcount"`
	NXCount int       `json:"nxcount" yaml:"nxcount"`
}

// DNSZoneStats holds query statistics of a zone.
type DNSZoneStats struct {
	Queries []DNSZoneQueries `json:"queries" yaml:"queries"`
}

// DNSZoneRetrieveResult is the status returned when refreshing a slave zone.
type DNSZoneRetrieveResult struct {
	Status int `json:"status" yaml:"status"`
}
