// Package entity contains the core business objects of the project.
package entity

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Address is a Brazilian postal address. It is persisted as a JSON-encoded
// string on its owning entity and decoded on read.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// EncodeAddress serializes an address for storage. A nil address encodes to
// the empty string.
func EncodeAddress(addr *Address) string {
	if addr == nil {
		return ""
	}
	raw, err := json.Marshal(addr)
	if err != nil {
		return ""
	}

	return string(raw)
}

// DecodeAddress normalizes the stored representation back into a structured
// address. A value that fails to parse yields nil; callers fall back to the
// raw string (fail-soft, never fail-fast).
func DecodeAddress(raw string) *Address {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var addr Address
	if err := json.Unmarshal([]byte(raw), &addr); err != nil {
		return nil
	}

	return &addr
}

// FormatAddressLine renders an address as a single human-readable line:
//
//	"{street}, {number}{, complement}, {neighborhood}, {city} - {state}, CEP: {zipCode}"
//
// Missing fields render as empty placeholders with the commas retained; the
// stored data predates validation and that rough output is kept as-is.
func FormatAddressLine(addr *Address) string {
	if addr == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s, %s", addr.Street, addr.Number))
	if addr.Complement != "" {
		sb.WriteString(", " + addr.Complement)
	}
	sb.WriteString(fmt.Sprintf(", %s, %s - %s, CEP: %s",
		addr.Neighborhood, addr.City, addr.State, addr.ZipCode))

	return sb.String()
}

// FormatAddressValue formats a raw stored value for display. JSON decodes to
// the single-line form; anything that is not valid JSON is assumed to be a
// legacy free-form address and is returned unchanged.
func FormatAddressValue(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if addr := DecodeAddress(raw); addr != nil {
		return FormatAddressLine(addr)
	}

	return raw
}

// DecodeGuarantor decodes a JSON-encoded guarantor embedded in a tenant
// record. Malformed or empty payloads are treated as "no guarantor".
func DecodeGuarantor(raw string) *Guarantor {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	var g Guarantor
	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		return nil
	}
	if g.Name == "" && g.Document == "" {
		return nil
	}

	return &g
}

// EncodeGuarantor serializes a guarantor for embedding in a tenant record.
func EncodeGuarantor(g *Guarantor) string {
	if g == nil {
		return ""
	}
	raw, err := json.Marshal(g)
	if err != nil {
		return ""
	}

	return string(raw)
}
