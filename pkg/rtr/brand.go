package rtr

import (
	"regexp"
	"time"

	"github.com/fivetwenty-io/rtr/internal/constants"
)

// Brand is a set of reseller details used in registrant communication.
type Brand struct {
	Handle            string     `json:"handle"                    yaml:"handle"`
	Locale            string     `json:"locale,omitempty"          yaml:"locale,omitempty"`
	HideOptionalTerms bool       `json:"hideOptionalTerms"         yaml:"hideOptionalTerms"`
	Organization      string     `json:"organization"              yaml:"organization"`
	AddressLine       []string   `json:"addressLine"               yaml:"addressLine"`
	PostalCode        string     `json:"postalCode"                yaml:"postalCode"`
	City              string     `json:"city"                      yaml:"city"`
	State             string     `json:"state,omitempty"           yaml:"state,omitempty"`
	Country           string     `json:"country"                   yaml:"country"`
	Email             string     `json:"email"                     yaml:"email"`
	ContactURL        string     `json:"contactUrl,omitempty"      yaml:"contactUrl,omitempty"`
	URL               string     `json:"url,omitempty"             yaml:"url,omitempty"`
	Voice             string     `json:"voice"                     yaml:"voice"`
	Fax               string     `json:"fax,omitempty"             yaml:"fax,omitempty"`
	PrivacyContact    string     `json:"privacyContact,omitempty"  yaml:"privacyContact,omitempty"`
	AbuseContact      string     `json:"abuseContact,omitempty"    yaml:"abuseContact,omitempty"`
	CreatedDate       time.Time  `json:"createdDate"               yaml:"createdDate"`
	UpdatedDate       *time.Time `json:"updatedDate,omitempty"     yaml:"updatedDate,omitempty"`
	InvalidSPFSince   *time.Time `json:"invalidSpfSince,omitempty" yaml:"invalidSpfSince,omitempty"`
}

// BrandRequest creates or updates a brand. The handle is part of the path.
type BrandRequest struct {
	Locale            string   `json:"locale,omitempty"`
	HideOptionalTerms *bool    `json:"hideOptionalTerms,omitempty"`
	Organization      string   `json:"organization,omitempty"`
	AddressLine       []string `json:"addressLine,omitempty"`
	PostalCode        string   `json:"postalCode,omitempty"`
	City              string   `json:"city,omitempty"`
	State             string   `json:"state,omitempty"`
	Country           string   `json:"country,omitempty"`
	Email             string   `json:"email,omitempty"`
	URL               string   `json:"url,omitempty"`
	Voice             string   `json:"voice,omitempty"`
	Fax               string   `json:"fax,omitempty"`
	PrivacyContact    string   `json:"privacyContact,omitempty"`
	AbuseContact      string   `json:"abuseContact,omitempty"`
}

// BrandTemplateMedia is an image attached to a brand template.
type BrandTemplateMedia struct {
	Name     string `json:"name"     yaml:"name"`
	MimeType string `json:"mimetype" yaml:"mimetype"`
	Size     int    `json:"size"     yaml:"size"`
	URL      string `json:"url"      yaml:"url"`
}

// BrandTemplate is a message template of a brand.
type BrandTemplate struct {
	Name     string                        `json:"name"              yaml:"name"`
	Subject  string                        `json:"subject,omitempty" yaml:"subject,omitempty"`
	Text     string                        `json:"text,omitempty"    yaml:"text,omitempty"`
	HTML     string                        `json:"html,omitempty"    yaml:"html,omitempty"`
	Contexts []string                      `json:"contexts"          yaml:"contexts"`
	Media    map[string]BrandTemplateMedia `json:"media,omitempty"   yaml:"media,omitempty"`
}

// BrandTemplateRequest updates the content of a brand template.
type BrandTemplateRequest struct {
	Subject string `json:"subject,omitempty"`
	Text    string `json:"text,omitempty"`
	HTML    string `json:"html,omitempty"`
}

// TemplateImage is an image uploaded alongside a template update.
type TemplateImage struct {
	Name        string
	ContentType string
	Data        []byte
}

var unsafeFileNameChars = regexp.MustCompile(`[^a-zA-Z0-9\-@.]+`)

// SanitizeFileName replaces runs of unsupported characters with an
// underscore and truncates the result.
func SanitizeFileName(name string) string {
	clean := unsafeFileNameChars.ReplaceAllString(name, "_")
	if len(clean) > constants.MaxTemplateFileNameLength {
		clean = clean[:constants.MaxTemplateFileNameLength]
	}

	return clean
}
