package rtr

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// DisclosedField is a contact field that may be published in whois.
type DisclosedField string

// Disclosable fields.
const (
	DisclosedRegistryContactID DisclosedField = "registryContactId"
	DisclosedName              DisclosedField = "name"
	DisclosedOrganization      DisclosedField = "organization"
	DisclosedAddressLine       DisclosedField = "addressLine"
	DisclosedPostalCode        DisclosedField = "postalCode"
	DisclosedCity              DisclosedField = "city"
	DisclosedEmail             DisclosedField = "email"
	DisclosedVoice             DisclosedField = "voice"
	DisclosedFax               DisclosedField = "fax"
	DisclosedState             DisclosedField = "state"
	DisclosedCountry           DisclosedField = "country"
)

// ContactValidation records that a contact passed a validation category.
type ContactValidation struct {
	ValidatedOn time.Time `json:"validatedOn" yaml:"validatedOn"`
	Version     int       `json:"version"     yaml:"version"`
	Category    string    `json:"category"    yaml:"category"`
}

// Contact is a registrant or role contact.
type Contact struct {
	Handle          string                       `json:"handle"                    yaml:"handle"`
	Brand           string                       `json:"brand,omitempty"           yaml:"brand,omitempty"`
	Customer        string                       `json:"customer"                  yaml:"customer"`
	Name            string                       `json:"name"                      yaml:"name"`
	Organization    string                       `json:"organization,omitempty"    yaml:"organization,omitempty"`
	AddressLine     []string                     `json:"addressLine"               yaml:"addressLine"`
	PostalCode      string                       `json:"postalCode"                yaml:"postalCode"`
	City            string                       `json:"city"                      yaml:"city"`
	State           string                       `json:"state,omitempty"           yaml:"state,omitempty"`
	Country         string                       `json:"country"                   yaml:"country"`
	Email           string                       `json:"email"                     yaml:"email"`
	Voice           string                       `json:"voice"                     yaml:"voice"`
	Fax             string                       `json:"fax,omitempty"             yaml:"fax,omitempty"`
	DisclosedFields []DisclosedField             `json:"disclosedFields,omitempty" yaml:"disclosedFields,omitempty"`
	Registries      []string                     `json:"registries,omitempty"      yaml:"registries,omitempty"`
	Properties      map[string]map[string]string `json:"properties,omitempty"      yaml:"properties,omitempty"`
	Validations     []ContactValidation          `json:"validations,omitempty"     yaml:"validations,omitempty"`
	CreatedDate     time.Time                    `json:"createdDate"               yaml:"createdDate"`
	UpdatedDate     *time.Time                   `json:"updatedDate,omitempty"     yaml:"updatedDate,omitempty"`
}

// UnmarshalJSON decodes a contact and orders its validations by category.
func (c *Contact) UnmarshalJSON(data []byte) error {
	type plain Contact

	var decoded plain

	err := json.Unmarshal(data, &decoded)
	if err != nil {
		return fmt.Errorf("decoding contact: %w", err)
	}

	*c = Contact(decoded)

	sort.SliceStable(c.Validations, func(i, j int) bool {
		return c.Validations[i].Category < c.Validations[j].Category
	})

	return nil
}

// ContactCreateRequest creates a contact.
type ContactCreateRequest struct {
	Brand        string   `json:"brand,omitempty"`
	Name         string   `json:"name"`
	Organization string   `json:"organization,omitempty"`
	AddressLine  []string `json:"addressLine"`
	PostalCode   string   `json:"postalCode"`
	City         string   `json:"city"`
	State        string   `json:"state,omitempty"`
	Country      string   `json:"country"`
	Email        string   `json:"email"`
	Voice        string   `json:"voice"`
	Fax          string   `json:"fax,omitempty"`
}

// ContactUpdateRequest updates a contact. Empty fields are left as is.
type ContactUpdateRequest struct {
	Brand           string           `json:"brand,omitempty"`
	Name            string           `json:"name,omitempty"`
	Organization    *string          `json:"organization,omitempty"`
	AddressLine     []string         `json:"addressLine,omitempty"`
	PostalCode      string           `json:"postalCode,omitempty"`
	City            string           `json:"city,omitempty"`
	State           *string          `json:"state,omitempty"`
	Country         string           `json:"country,omitempty"`
	Email           string           `json:"email,omitempty"`
	Voice           string           `json:"voice,omitempty"`
	Fax             *string          `json:"fax,omitempty"`
	DesignatedAgent DesignatedAgent  `json:"designatedAgent,omitempty"`
	DisclosedFields []DisclosedField `json:"disclosedFields,omitempty"`
}

// ContactSplitRequest copies a contact to a new handle for some registries.
type ContactSplitRequest struct {
	NewHandle  string   `json:"newHandle"`
	Registries []string `json:"registries,omitempty"`
}

// ContactValidateRequest validates a contact against categories.
type ContactValidateRequest struct {
	Categories []string `json:"categories"`
}

// ContactPropertiesRequest sets registry specific contact properties.
type ContactPropertiesRequest struct {
	Properties map[string]string `json:"properties"`
}
