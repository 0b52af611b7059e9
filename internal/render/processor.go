package render

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"imobi/internal/domain/entity"
)

// Context is the request-scoped aggregate the processor substitutes from.
// It is never persisted and must be fully hydrated before Process runs: the
// processor performs no I/O and is not re-entrant mid-substitution.
type Context struct {
	Owner    *entity.Owner
	Tenant   *entity.Tenant
	Property *entity.Property
	Contract *entity.Contract

	// Guarantor, when set, wins over the tenant's embedded guarantor.
	Guarantor *entity.Guarantor

	// OriginalContract is the prefetched renewal source; nil when the
	// contract is not a renewal or the soft lookup failed.
	OriginalContract *entity.Contract

	// GeneratedAt is attached by the use case purely to defeat HTTP-level
	// response caching. No tag reads it.
	GeneratedAt time.Time
}

var guarantorTagPattern = regexp.MustCompile(`\{\{guarantor\.[A-Za-z]+\}\}`)

// Processor walks the fixed, ordered list of tag families and produces the
// fully substituted document string.
type Processor struct {
	logger *slog.Logger
	now    func() time.Time
}

// NewProcessor is the constructor for Processor.
func NewProcessor(logger *slog.Logger) *Processor {
	return &Processor{logger: logger, now: time.Now}
}

// WithClock replaces the wall clock used by the DATA_*/HORA macros. Intended
// for tests.
func (p *Processor) WithClock(now func() time.Time) *Processor {
	p.now = now

	return p
}

// Process substitutes every tag of the fixed vocabulary in content using the
// hydrated context. Absent scalar fields become empty strings; no literal
// {{...}} tag of the vocabulary ever survives into the output. The pass
// order is fixed: party families, property, contract, wall-clock macros,
// derived contract tags, renewal tags, the RG defensive pass, and the
// page-numbering pass last.
func (p *Processor) Process(content string, rc *Context) string {
	text := content

	var ownerPerson, tenantPerson entity.Person
	if rc.Owner != nil {
		ownerPerson = rc.Owner.Person
	}
	if rc.Tenant != nil {
		tenantPerson = rc.Tenant.Person
	}
	text = p.applyParty(text, "owner", ownerPerson, false)
	text = p.applyParty(text, "tenant", tenantPerson, false)

	// Guarantor resolution: explicit object first, then the tenant's
	// embedded JSON form; with neither, blanket-remove the whole family.
	guarantor := rc.Guarantor
	if guarantor == nil && rc.Tenant != nil {
		guarantor = entity.DecodeGuarantor(rc.Tenant.GuarantorRaw)
	}
	if guarantor != nil {
		text = p.applyParty(text, "guarantor", guarantor.Person, true)
	} else {
		text = guarantorTagPattern.ReplaceAllString(text, "")
	}

	text = p.applyProperty(text, rc.Property)
	text = p.applyContract(text, rc.Contract)
	text = p.applyClockMacros(text)
	text = p.applyDerivedContract(text, rc.Contract)
	text = p.applyRenewal(text, rc.Contract, rc.OriginalContract)
	text = p.defensiveRGPass(text, rc)
	text = paginate(text)

	return text
}

// applyParty substitutes one party tag family. Guarantor fields carry labels
// (they are optional and must be self-explanatory when present); owner and
// tenant phone/email/maritalStatus stay plain.
func (p *Processor) applyParty(text, role string, person entity.Person, labeled bool) string {
	text = Replace(text, role+".name", person.Name)

	// Documents resolve to the bare value: templates carry their own "CPF:"
	// label, and Replace already yields an empty string when the field is
	// absent. RG is the opposite case, its label travels with the value.
	text = Replace(text, role+".document", person.Document)

	text = ReplaceConditional(text, "RG nº:", role+".rg", person.RG)
	text = Replace(text, role+".rg", person.RG)
	if HasTag(text, role+".rg") {
		p.logger.Warn("defensive rg substitution corrected a leftover tag", "role", role)
		text = Replace(text, role+".rg", person.RG)
	}

	text = Replace(text, role+".address", "Endereço: "+entity.FormatAddressLine(person.Address))

	if labeled {
		text = ReplaceConditional(text, "Telefone:", role+".phone", person.Phone)
		text = ReplaceConditional(text, "Email:", role+".email", person.Email)
	} else {
		text = Replace(text, role+".phone", person.Phone)
		text = Replace(text, role+".email", person.Email)
	}

	text = Replace(text, role+".nationality", person.Nationality)
	text = Replace(text, role+".profession", person.Profession)

	if labeled {
		text = ReplaceConditional(text, "Estado Civil:", role+".maritalStatus", person.MaritalStatus)
	} else {
		text = Replace(text, role+".maritalStatus", person.MaritalStatus)
	}

	text = ReplaceConditional(text, "Cônjuge:", role+".spouseName", person.SpouseName)
	// Unconditional cleanup guarantees an empty string when absent.
	text = Replace(text, role+".spouseName", person.SpouseName)

	return text
}

func (p *Processor) applyProperty(text string, prop *entity.Property) string {
	if prop == nil {
		prop = &entity.Property{}
	}

	text = Replace(text, "property.name", prop.Name)
	text = Replace(text, "property.address", "Endereço: "+entity.FormatAddressLine(prop.Address))
	text = Replace(text, "property.area", floatPtrString(prop.Area))
	text = Replace(text, "property.description", prop.Description)
	text = Replace(text, "property.type", prop.Type)
	text = Replace(text, "property.bedrooms", intPtrString(prop.Bedrooms))
	text = Replace(text, "property.bathrooms", intPtrString(prop.Bathrooms))
	text = Replace(text, "property.waterCompany", prop.WaterCompany)
	text = Replace(text, "property.waterAccountNumber", prop.WaterAccountNumber)
	text = Replace(text, "property.electricityCompany", prop.ElectricityCompany)
	text = Replace(text, "property.electricityAccountNumber", prop.ElectricityAccountNumber)

	return text
}

func (p *Processor) applyContract(text string, c *entity.Contract) string {
	if c == nil {
		c = &entity.Contract{}
	}

	text = Replace(text, "contract.duration", strconv.Itoa(c.DurationMonths))
	text = Replace(text, "contract.startDate", FormatDateShort(c.StartDate))
	text = Replace(text, "contract.endDate", FormatDateShort(c.EndDate))
	text = Replace(text, "contract.rentValue", FormatCurrency(c.RentValue))
	text = Replace(text, "contract.number", strconv.FormatInt(c.ID, 10))
	text = Replace(text, "contract.status", c.Status)
	text = Replace(text, "contract.observations", c.Observations)

	return text
}

// applyClockMacros resolves the free-standing macros from wall-clock "now",
// never from any stored date.
func (p *Processor) applyClockMacros(text string) string {
	now := p.now().In(civilZone)

	text = Replace(text, "DATA_LONGA", LongDateProse(now))
	text = Replace(text, "DATA_ATUAL", now.Format("02/01/2006"))
	text = Replace(text, "HORA", now.Format("15:04"))

	return text
}

func (p *Processor) applyDerivedContract(text string, c *entity.Contract) string {
	if c == nil {
		c = &entity.Contract{}
	}

	paymentDay := ""
	switch {
	case c.PaymentDay != nil:
		paymentDay = strconv.Itoa(*c.PaymentDay)
	case c.FirstPaymentDate != "":
		if d := PaymentDayOf(c.FirstPaymentDate); d > 0 {
			paymentDay = strconv.Itoa(d)
		}
	}
	text = Replace(text, "contract.paymentDay", paymentDay)

	text = Replace(text, "contract.id", strconv.FormatInt(c.ID, 10))

	contractType := c.Type
	if contractType == "" {
		contractType = "residencial"
	}
	text = Replace(text, "contract.type", contractType)

	text = Replace(text, "contract.rentValueInWords", Extenso(int(c.RentValue))+" reais")
	text = Replace(text, "contract.firstPaymentDate", FormatDateShort(c.FirstPaymentDate))

	deposit := ""
	if c.DepositValue != nil {
		deposit = FormatCurrency(*c.DepositValue)
	}
	text = Replace(text, "contract.depositValue", deposit)

	return text
}

// applyRenewal populates the renewal tags when the contract is a renewal and
// its original was found; otherwise all four resolve to empty string, never
// to a literal tag.
func (p *Processor) applyRenewal(text string, c, original *entity.Contract) string {
	id, start, end, period := "", "", "", ""

	if c != nil && c.IsRenewal && c.OriginalContractID != nil && original != nil {
		id = strconv.FormatInt(original.ID, 10)
		start = FormatDateShort(original.StartDate)
		end = FormatDateShort(original.EndDate)
		period = start + " a " + end
	}

	text = Replace(text, "contract.originalContractId", id)
	text = Replace(text, "contract.originalStartDate", start)
	text = Replace(text, "contract.originalEndDate", end)
	text = Replace(text, "contract.originalPeriod", period)

	return text
}

// defensiveRGPass is a last-resort guard for the historical substitution
// ordering defect: no literal RG tag may ever reach rendered output. The
// primary pipeline already substitutes RG exactly once, so a hit here means
// a pass upstream missed a case and is worth a log line.
func (p *Processor) defensiveRGPass(text string, rc *Context) string {
	if HasTag(text, "owner.rg") {
		p.logger.Warn("final defensive pass corrected a literal owner.rg tag")
		v := ""
		if rc.Owner != nil {
			v = rc.Owner.RG
		}
		text = Replace(text, "owner.rg", v)
	}
	if HasTag(text, "tenant.rg") {
		p.logger.Warn("final defensive pass corrected a literal tenant.rg tag")
		v := ""
		if rc.Tenant != nil {
			v = rc.Tenant.RG
		}
		text = Replace(text, "tenant.rg", v)
	}

	return text
}

// paginate replaces the k-th of N occurrences of {{PAGINA}} with a
// positioned "Página k de N" fragment. With zero occurrences nothing is
// injected. It runs last, after all content substitution.
func paginate(text string) string {
	const token = "{{PAGINA}}"

	total := strings.Count(text, token)
	if total == 0 {
		return text
	}

	for k := 1; k <= total; k++ {
		fragment := fmt.Sprintf(`<span class="page-marker">Página %d de %d</span>`, k, total)
		text = strings.Replace(text, token, fragment, 1)
	}

	return text
}

func intPtrString(v *int) string {
	if v == nil {
		return ""
	}

	return strconv.Itoa(*v)
}

func floatPtrString(v *float64) string {
	if v == nil {
		return ""
	}

	return strconv.FormatFloat(*v, 'f', -1, 64)
}
