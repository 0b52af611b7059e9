package render

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"imobi/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor() *Processor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time {
		return time.Date(2026, time.March, 2, 14, 30, 0, 0, time.UTC)
	}

	return NewProcessor(logger).WithClock(clock)
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func int64Ptr(v int64) *int64     { return &v }

func fullContext() *Context {
	return &Context{
		Owner: &entity.Owner{ID: 1, Person: entity.Person{
			Name:          "João Pereira",
			Document:      "111.222.333-44",
			RG:            "12.345-6",
			Phone:         "(41) 3333-0000",
			Email:         "joao@example.com",
			Nationality:   "brasileiro",
			Profession:    "engenheiro",
			MaritalStatus: "casado",
			SpouseName:    "Maria Pereira",
			Address: &entity.Address{
				Street: "Rua Alfa", Number: "10", Neighborhood: "Centro",
				City: "Curitiba", State: "PR", ZipCode: "80000-000",
			},
		}},
		Tenant: &entity.Tenant{ID: 2, Person: entity.Person{
			Name:     "Ana Silva",
			Document: "555.666.777-88",
		}},
		Property: &entity.Property{
			ID: 3, Name: "Apto 302", Type: "apartamento",
			Bedrooms: intPtr(2), Bathrooms: intPtr(1), Area: floatPtr(68),
			WaterCompany: "Sanepar", WaterAccountNumber: "W-123",
			ElectricityCompany: "Copel", ElectricityAccountNumber: "E-456",
			Address: &entity.Address{
				Street: "Rua Beta", Number: "302", Neighborhood: "Batel",
				City: "Curitiba", State: "PR", ZipCode: "80400-000",
			},
		},
		Contract: &entity.Contract{
			ID: 7, Type: entity.ContractTypeResidential,
			StartDate: "2026-01-10", EndDate: "2027-01-10",
			DurationMonths: 12, RentValue: 1200,
			FirstPaymentDate: "2026-02-05",
			Status:           entity.ContractStatusAtivo,
			Observations:     "sem animais",
		},
	}
}

func TestProcessEndToEnd(t *testing.T) {
	p := newTestProcessor()

	tpl := "Locador: {{owner.name}}, CPF: {{owner.document}}{{owner.rg}}"
	rc := fullContext()
	rc.Owner.RG = ""

	got := p.Process(tpl, rc)
	assert.Equal(t, "Locador: João Pereira, CPF: 111.222.333-44", got)
	assert.NotContains(t, got, "RG nº:")
	assert.NotContains(t, got, "{{")
}

func TestProcessDocumentResolvesToBareValue(t *testing.T) {
	p := newTestProcessor()

	got := p.Process("CPF: {{owner.document}} / {{tenant.document}}", fullContext())
	assert.Equal(t, "CPF: 111.222.333-44 / 555.666.777-88", got)
}

func TestProcessDocumentAbsentBecomesEmpty(t *testing.T) {
	p := newTestProcessor()

	rc := fullContext()
	rc.Owner.Document = ""

	got := p.Process("CPF: {{owner.document}}", rc)
	assert.Equal(t, "CPF: ", got)
}

func TestProcessRGPresent(t *testing.T) {
	p := newTestProcessor()

	got := p.Process("{{owner.rg}}", fullContext())
	assert.Equal(t, "RG nº: 12.345-6", got)
}

func TestProcessRGAbsentLeavesNoLabel(t *testing.T) {
	p := newTestProcessor()

	rc := fullContext()
	rc.Owner.RG = ""
	rc.Tenant.RG = ""

	got := p.Process("a{{owner.rg}}b{{tenant.rg}}c", rc)
	assert.Equal(t, "abc", got)
}

func TestProcessNoRecognizedTags(t *testing.T) {
	p := newTestProcessor()

	tpl := "Contrato simples sem marcações."
	assert.Equal(t, tpl, p.Process(tpl, fullContext()))
}

func TestProcessGuarantorFromEmbeddedJSON(t *testing.T) {
	p := newTestProcessor()

	rc := fullContext()
	rc.Tenant.GuarantorRaw = entity.EncodeGuarantor(&entity.Guarantor{Person: entity.Person{
		Name:     "Carlos Souza",
		Document: "999.888.777-66",
		Phone:    "(41) 98888-1111",
	}})

	got := p.Process("Fiador: {{guarantor.name}} {{guarantor.phone}} {{guarantor.email}}", rc)
	assert.Equal(t, "Fiador: Carlos Souza Telefone: (41) 98888-1111 ", got)
}

func TestProcessGuarantorWildcardCleanup(t *testing.T) {
	p := newTestProcessor()

	tpl := "Fiador: {{guarantor.name}}, CPF: {{guarantor.document}} {{guarantor.spouseName}}"
	got := p.Process(tpl, fullContext())

	assert.Equal(t, "Fiador: , CPF:  ", got)
	assert.NotContains(t, got, "{{")
}

func TestProcessExplicitGuarantorWinsOverEmbedded(t *testing.T) {
	p := newTestProcessor()

	rc := fullContext()
	rc.Tenant.GuarantorRaw = entity.EncodeGuarantor(&entity.Guarantor{Person: entity.Person{Name: "Embutido"}})
	rc.Guarantor = &entity.Guarantor{Person: entity.Person{Name: "Explícito", Document: "1"}}

	got := p.Process("{{guarantor.name}}", rc)
	assert.Equal(t, "Explícito", got)
}

func TestProcessPropertyTags(t *testing.T) {
	p := newTestProcessor()

	tpl := "{{property.name}} | {{property.bedrooms}}q {{property.bathrooms}}b {{property.area}}m² | {{property.waterCompany}} {{property.waterAccountNumber}}"
	got := p.Process(tpl, fullContext())
	assert.Equal(t, "Apto 302 | 2q 1b 68m² | Sanepar W-123", got)
}

func TestProcessPropertyOptionalCountsVanish(t *testing.T) {
	p := newTestProcessor()

	rc := fullContext()
	rc.Property.Bedrooms = nil
	rc.Property.Area = nil

	got := p.Process("[{{property.bedrooms}}][{{property.area}}]", rc)
	assert.Equal(t, "[][]", got)
}

func TestProcessContractTags(t *testing.T) {
	p := newTestProcessor()

	tpl := "nº {{contract.number}} (id {{contract.id}}), {{contract.duration}} meses, de {{contract.startDate}} a {{contract.endDate}}, {{contract.rentValue}}, {{contract.status}}"
	got := p.Process(tpl, fullContext())

	// Dates carry the one-day civil compensation.
	assert.Equal(t, "nº 7 (id 7), 12 meses, de 09/01/2026 a 09/01/2027, R$ 1.200,00, ativo", got)
}

func TestProcessDerivedContractTags(t *testing.T) {
	p := newTestProcessor()

	rc := fullContext()
	got := p.Process("{{contract.paymentDay}}|{{contract.type}}|{{contract.rentValueInWords}}|{{contract.firstPaymentDate}}|{{contract.depositValue}}", rc)
	assert.Equal(t, "4|residential|mil e duzentos reais|04/02/2026|", got)

	rc.Contract.PaymentDay = intPtr(10)
	rc.Contract.Type = ""
	rc.Contract.DepositValue = floatPtr(2400)
	got = p.Process("{{contract.paymentDay}}|{{contract.type}}|{{contract.depositValue}}", rc)
	assert.Equal(t, "10|residencial|R$ 2.400,00", got)
}

func TestProcessClockMacros(t *testing.T) {
	p := newTestProcessor()

	got := p.Process("{{DATA_LONGA}} / {{DATA_ATUAL}} / {{HORA}}", fullContext())
	// Clock fixture is 2026-03-02 14:30 UTC = 11:30 at UTC-3, a Monday.
	assert.Equal(t, "segunda-feira, 2 de março de 2026 / 02/03/2026 / 11:30", got)
}

func TestProcessRenewalTags(t *testing.T) {
	p := newTestProcessor()

	rc := fullContext()
	rc.Contract.IsRenewal = true
	rc.Contract.OriginalContractID = int64Ptr(4)
	rc.OriginalContract = &entity.Contract{
		ID: 4, StartDate: "2025-01-10", EndDate: "2026-01-10",
	}

	tpl := "{{contract.originalContractId}}|{{contract.originalStartDate}}|{{contract.originalEndDate}}|{{contract.originalPeriod}}"
	got := p.Process(tpl, rc)
	assert.Equal(t, "4|09/01/2025|09/01/2026|09/01/2025 a 09/01/2026", got)
}

func TestProcessRenewalTagsEmptyWhenNotRenewal(t *testing.T) {
	p := newTestProcessor()

	rc := fullContext()
	// originalContractId set but isRenewal false: still all empty.
	rc.Contract.IsRenewal = false
	rc.Contract.OriginalContractID = int64Ptr(4)
	rc.OriginalContract = &entity.Contract{ID: 4}

	tpl := "[{{contract.originalContractId}}|{{contract.originalStartDate}}|{{contract.originalEndDate}}|{{contract.originalPeriod}}]"
	assert.Equal(t, "[|||]", p.Process(tpl, rc))
}

func TestProcessRenewalTagsEmptyWhenLookupFailed(t *testing.T) {
	p := newTestProcessor()

	rc := fullContext()
	rc.Contract.IsRenewal = true
	rc.Contract.OriginalContractID = int64Ptr(99)
	rc.OriginalContract = nil // soft lookup failure

	assert.Equal(t, "[]", p.Process("[{{contract.originalPeriod}}]", rc))
}

func TestProcessPagina(t *testing.T) {
	p := newTestProcessor()

	tpl := "p1 {{PAGINA}} p2 {{PAGINA}} p3 {{PAGINA}}"
	got := p.Process(tpl, fullContext())

	require.NotContains(t, got, "{{PAGINA}}")
	first := strings.Index(got, "Página 1 de 3")
	second := strings.Index(got, "Página 2 de 3")
	third := strings.Index(got, "Página 3 de 3")
	require.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)
	assert.Greater(t, third, second)
}

func TestProcessPaginaAbsentInjectsNothing(t *testing.T) {
	p := newTestProcessor()

	got := p.Process("sem páginas", fullContext())
	assert.Equal(t, "sem páginas", got)
	assert.NotContains(t, got, "Página")
}

func TestProcessSpouseNameConditional(t *testing.T) {
	p := newTestProcessor()

	got := p.Process("{{owner.spouseName}}|{{tenant.spouseName}}", fullContext())
	assert.Equal(t, "Cônjuge: Maria Pereira|", got)
}

func TestProcessAddressAlwaysPrefixed(t *testing.T) {
	p := newTestProcessor()

	got := p.Process("{{owner.address}}", fullContext())
	assert.Equal(t, "Endereço: Rua Alfa, 10, Centro, Curitiba - PR, CEP: 80000-000", got)
}

func TestProcessNoLiteralTagSurvives(t *testing.T) {
	p := newTestProcessor()

	// Every tag of the vocabulary at once, against a sparse context.
	tags := []string{
		"owner.name", "owner.document", "owner.rg", "owner.address", "owner.phone",
		"owner.email", "owner.nationality", "owner.profession", "owner.maritalStatus",
		"owner.spouseName",
		"tenant.name", "tenant.document", "tenant.rg", "tenant.address", "tenant.phone",
		"tenant.email", "tenant.nationality", "tenant.profession", "tenant.maritalStatus",
		"tenant.spouseName",
		"guarantor.name", "guarantor.document", "guarantor.rg", "guarantor.address",
		"guarantor.phone", "guarantor.email", "guarantor.nationality",
		"guarantor.profession", "guarantor.maritalStatus", "guarantor.spouseName",
		"property.name", "property.address", "property.area", "property.description",
		"property.type", "property.bedrooms", "property.bathrooms",
		"property.waterCompany", "property.waterAccountNumber",
		"property.electricityCompany", "property.electricityAccountNumber",
		"contract.duration", "contract.startDate", "contract.endDate",
		"contract.rentValue", "contract.number", "contract.status",
		"contract.observations", "contract.paymentDay", "contract.id", "contract.type",
		"contract.originalContractId", "contract.originalStartDate",
		"contract.originalEndDate", "contract.originalPeriod",
		"contract.rentValueInWords", "contract.firstPaymentDate",
		"contract.depositValue", "DATA_LONGA", "DATA_ATUAL", "HORA", "PAGINA",
	}

	var sb strings.Builder
	for _, tag := range tags {
		sb.WriteString("{{" + tag + "}}\n")
	}

	got := p.Process(sb.String(), &Context{
		Owner:    &entity.Owner{},
		Tenant:   &entity.Tenant{},
		Property: &entity.Property{},
		Contract: &entity.Contract{},
	})
	assert.NotContains(t, got, "{{")
	assert.NotContains(t, got, "}}")
}
