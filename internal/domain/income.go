package domain

import (
	"github.com/shopspring/decimal"
)

// IncomeSource identifies where a recurring benefit payment comes from.
type IncomeSource string

const (
	IncomeRetiredPay     IncomeSource = "retired_pay"
	IncomeVACompensation IncomeSource = "va_compensation"
	IncomeSocialSecurity IncomeSource = "social_security"
	IncomeSpecialComp    IncomeSource = "special_compensation" // CRSC or CRDP
	IncomeOther          IncomeSource = "other"
)

// IncomeStream is a monthly benefit that grows once a year by its COLA.
// A nil COLARate inherits the scenario assumption when loaded from a file.
type IncomeStream struct {
	Source        IncomeSource     `yaml:"source" json:"source" toml:"source" validate:"required"`
	MonthlyAmount decimal.Decimal  `yaml:"monthly_amount" json:"monthly_amount" toml:"monthly_amount"`
	COLARate      *decimal.Decimal `yaml:"cola_rate,omitempty" json:"cola_rate,omitempty" toml:"cola_rate,omitempty"`
}

// COLA returns the stream's adjustment rate, zero when unset.
func (s IncomeStream) COLA() decimal.Decimal {
	if s.COLARate == nil {
		return decimal.Zero
	}
	return *s.COLARate
}

// AnnualAmount is one year of an income projection.
type AnnualAmount struct {
	Year         int             `json:"year"`
	AnnualAmount decimal.Decimal `json:"annual_amount"`
}

// IncomeProjection is the COLA-compounded series for one stream.
type IncomeProjection struct {
	Source IncomeSource   `json:"source"`
	Years  []AnnualAmount `json:"years"`
}
