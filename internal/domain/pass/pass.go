package pass

import (
	"encoding/json"
	"fmt"
)

// Type tags the pass variant. The variant determines which image roles
// are permitted and under which key the field sets are serialized.
type Type string

// Supported pass variants.
const (
	TypeBoardingPass Type = "boardingPass"
	TypeCoupon       Type = "coupon"
	TypeEventTicket  Type = "eventTicket"
	TypeGeneric      Type = "generic"
	TypeStoreCard    Type = "storeCard"
)

// Valid reports whether the type is one of the supported variants.
func (t Type) Valid() bool {
	_, ok := allowedImageRoles[t]
	return ok
}

// allowedImageRoles maps each variant to the image roles it permits.
//
//nolint:gochecknoglobals // Fixed allow-list table keyed by variant tag.
var allowedImageRoles = map[Type]map[string]struct{}{
	TypeBoardingPass: rolesToSet(roleIcon, roleLogo, roleFooter),
	TypeCoupon:       rolesToSet(roleIcon, roleLogo, roleStrip),
	TypeEventTicket:  rolesToSet(roleIcon, roleLogo, roleStrip, roleBackground, roleThumbnail),
	TypeGeneric:      rolesToSet(roleIcon, roleLogo, roleThumbnail),
	TypeStoreCard:    rolesToSet(roleIcon, roleLogo, roleStrip),
}

// rolesToSet converts a role list to a set for quick lookups.
func rolesToSet(roles ...string) map[string]struct{} {
	result := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		result[role] = struct{}{}
	}

	return result
}

// Barcode describes the machine-readable code rendered on the pass.
type Barcode struct {
	// Format is the barcode symbology identifier (e.g. PKBarcodeFormatQR).
	Format string `json:"format" yaml:"format"`
	// Message is the payload encoded into the barcode.
	Message string `json:"message" yaml:"message"`
	// MessageEncoding is the IANA character set name of the message.
	MessageEncoding string `json:"messageEncoding" yaml:"message_encoding"`
	// AltText is the human-readable text shown near the barcode.
	AltText string `json:"altText,omitempty" yaml:"alt_text"`
}

// Field is a single labeled value displayed on the pass.
type Field struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label,omitempty" yaml:"label"`
	Value any    `json:"value" yaml:"value"`
}

// FieldSet groups the visual field slots of a pass variant.
type FieldSet struct {
	HeaderFields    []Field `json:"headerFields,omitempty" yaml:"header"`
	PrimaryFields   []Field `json:"primaryFields,omitempty" yaml:"primary"`
	SecondaryFields []Field `json:"secondaryFields,omitempty" yaml:"secondary"`
	AuxiliaryFields []Field `json:"auxiliaryFields,omitempty" yaml:"auxiliary"`
	BackFields      []Field `json:"backFields,omitempty" yaml:"back"`
}

// Content holds the top-level keys of the pass content document.
type Content struct {
	FormatVersion      int      `json:"formatVersion"`
	SerialNumber       string   `json:"serialNumber"`
	PassTypeIdentifier string   `json:"passTypeIdentifier"`
	TeamIdentifier     string   `json:"teamIdentifier"`
	OrganizationName   string   `json:"organizationName"`
	Description        string   `json:"description"`
	LogoText           string   `json:"logoText,omitempty"`
	ForegroundColor    string   `json:"foregroundColor,omitempty"`
	BackgroundColor    string   `json:"backgroundColor,omitempty"`
	LabelColor         string   `json:"labelColor,omitempty"`
	RelevantDate       string   `json:"relevantDate,omitempty"`
	ExpirationDate     string   `json:"expirationDate,omitempty"`
	Barcode            *Barcode `json:"barcode,omitempty"`
}

// Pass is the caller-owned description of one wallet pass.
// The bundler reads it and never mutates it.
type Pass struct {
	// Type selects the variant and therefore the permitted image roles.
	Type Type
	// Content carries the top-level keys of pass.json.
	Content Content
	// Fields carries the variant-scoped field sets of pass.json.
	Fields FieldSet
	// Images are the top-level visual assets of the bundle.
	Images []Image
	// Localizations are per-language string and image overrides.
	Localizations []Localization
}

// SerialNumber returns the unique pass serial,
// used as the default archive filename and the scratch directory key.
func (p *Pass) SerialNumber() string {
	return p.Content.SerialNumber
}

// Document serializes the pass content as pretty-printed JSON,
// nesting the field sets under the variant key.
func (p *Pass) Document() ([]byte, error) {
	raw, err := json.Marshal(p.Content)
	if err != nil {
		return nil, fmt.Errorf("encode pass content: %w", err)
	}

	var document map[string]any
	if err = json.Unmarshal(raw, &document); err != nil {
		return nil, fmt.Errorf("decode pass content: %w", err)
	}

	document[string(p.Type)] = p.Fields

	contents, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode pass document: %w", err)
	}

	return contents, nil
}
