// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Person groups the civil-identification fields shared by every contracting
// party (owner, tenant, guarantor). Any field may be empty; rendering decides
// whether an empty field disappears entirely or becomes an empty string.
type Person struct {
	Name          string   `json:"name"`          // Full legal name.
	Document      string   `json:"document"`      // Tax ID (CPF), formatted as stored.
	RG            string   `json:"rg"`            // Secondary identity document, optional.
	Phone         string   `json:"phone"`         // Contact phone, optional.
	Email         string   `json:"email"`         // Contact email, optional.
	Nationality   string   `json:"nationality"`   // e.g. "brasileiro(a)".
	Profession    string   `json:"profession"`    // Declared profession.
	MaritalStatus string   `json:"maritalStatus"` // Declared marital status.
	SpouseName    string   `json:"spouseName"`    // Spouse name, optional.
	Address       *Address `json:"address"`       // Decoded address, nil when none stored.
}

// Owner is a property owner (locador).
type Owner struct {
	ID int64
	Person
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tenant is a renting party (locatário). A guarantor may travel embedded as a
// JSON-encoded string on the tenant record; callers must go through
// DecodeGuarantor since storage may hand back either form.
type Tenant struct {
	ID int64
	Person
	GuarantorRaw string // JSON-encoded Guarantor, empty when there is none.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Guarantor is the optional third party backing a contract (fiador).
type Guarantor struct {
	Person
}
