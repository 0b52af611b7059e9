package entity

import "time"

// Contract status values. Stored as-is; they are user-facing vocabulary.
const (
	ContractStatusAtivo     = "ativo"
	ContractStatusPendente  = "pendente"
	ContractStatusEncerrado = "encerrado"
	ContractStatusRenovado  = "renovado"
)

// Contract types. A contract without a type renders as residential.
const (
	ContractTypeResidential = "residential"
	ContractTypeCommercial  = "commercial"
)

// Contract is a lease binding exactly one owner, tenant and property.
// Civil dates are stored as "YYYY-MM-DD" strings; display formatting goes
// through render.CivilDate, never straight through time.Parse.
type Contract struct {
	ID         int64
	OwnerID    int64
	TenantID   int64
	PropertyID int64

	Type             string // "residential" | "commercial", may be empty.
	StartDate        string // Civil date "YYYY-MM-DD".
	EndDate          string // Civil date "YYYY-MM-DD".
	DurationMonths   int
	RentValue        float64
	DepositValue     *float64 // Optional security deposit.
	FirstPaymentDate string   // Civil date of the first rent payment.
	PaymentDay       *int     // Day of month; derived from FirstPaymentDate when nil.
	Status           string
	Observations     string

	// Renewal linkage. Once a contract is renewed its own status becomes
	// "renovado" and the renewal contract carries the pointer back here.
	IsRenewal          bool
	OriginalContractID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Renewable reports whether this contract can still be renewed. A contract
// already consumed by a renewal (status "renovado") or closed is immutable
// with respect to further chaining.
func (c *Contract) Renewable() bool {
	return c.Status == ContractStatusAtivo || c.Status == ContractStatusPendente
}
