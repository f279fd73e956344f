package domain

import (
	"time"

	"github.com/rallyforge/benefits-engine/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ServiceMember is the retiree or veteran a scenario is run for.
type ServiceMember struct {
	Name           string       `yaml:"name" json:"name" toml:"name" validate:"required"`
	BirthDate      FlexibleDate `yaml:"birth_date" json:"birth_date" toml:"birth_date"`
	EntryDate      FlexibleDate `yaml:"entry_date" json:"entry_date" toml:"entry_date"`
	RetirementDate FlexibleDate `yaml:"retirement_date" json:"retirement_date" toml:"retirement_date"`
	Dependents     int          `yaml:"dependents" json:"dependents" toml:"dependents" validate:"min=0,max=20"`

	// Monthly High-3 average base pay and the retired-pay multiplier per year (0.025 for High-3).
	High3Average         decimal.Decimal `yaml:"high3_average" json:"high3_average" toml:"high3_average"`
	RetiredPayMultiplier decimal.Decimal `yaml:"retired_pay_multiplier" json:"retired_pay_multiplier" toml:"retired_pay_multiplier"`

	// Overrides the service computed from entry and retirement dates when non-zero.
	ServiceYears decimal.Decimal `yaml:"years_of_service,omitempty" json:"years_of_service,omitempty" toml:"years_of_service"`

	Survivor *SurvivorElection `yaml:"survivor,omitempty" json:"survivor,omitempty" toml:"survivor"`
}

// YearsOfService returns creditable service at retirement.
func (m *ServiceMember) YearsOfService() decimal.Decimal {
	if !m.ServiceYears.IsZero() {
		return m.ServiceYears
	}
	if m.EntryDate.IsZero() || m.RetirementDate.IsZero() {
		return decimal.Zero
	}
	return dateutil.ServiceYears(m.EntryDate.Time, m.RetirementDate.Time)
}

// Age returns the member's age in whole years at the given date.
func (m *ServiceMember) Age(at time.Time) int {
	if m.BirthDate.IsZero() {
		return 0
	}
	return dateutil.Age(m.BirthDate.Time, at)
}

// RetirementAge returns the age at the retirement date.
func (m *ServiceMember) RetirementAge() int {
	return m.Age(m.RetirementDate.Time)
}

// PensionInput builds the retired-pay formula inputs for this member.
func (m *ServiceMember) PensionInput() PensionInput {
	return PensionInput{
		High3Average:   m.High3Average,
		Multiplier:     m.RetiredPayMultiplier,
		YearsOfService: m.YearsOfService(),
		Survivor:       m.Survivor,
	}
}
