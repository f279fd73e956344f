package domain

import (
	"github.com/shopspring/decimal"
)

// CombatFlags are the CRSC combat-relatedness indicators for a condition.
type CombatFlags struct {
	PurpleHeart          bool `yaml:"purple_heart" json:"purple_heart" toml:"purple_heart"`
	ArmedConflict        bool `yaml:"armed_conflict" json:"armed_conflict" toml:"armed_conflict"`
	HazardousService     bool `yaml:"hazardous_service" json:"hazardous_service" toml:"hazardous_service"`
	SimulatedWar         bool `yaml:"simulated_war" json:"simulated_war" toml:"simulated_war"`
	InstrumentalityOfWar bool `yaml:"instrumentality_of_war" json:"instrumentality_of_war" toml:"instrumentality_of_war"`
	NotCombatRelated     bool `yaml:"not_combat_related" json:"not_combat_related" toml:"not_combat_related"`
}

// CRSCCategory is the single combat-relatedness category assigned to a condition.
type CRSCCategory string

const (
	CRSCPurpleHeart          CRSCCategory = "PURPLE_HEART"
	CRSCArmedConflict        CRSCCategory = "ARMED_CONFLICT"
	CRSCHazardousService     CRSCCategory = "HAZARDOUS_SERVICE"
	CRSCSimulatedWar         CRSCCategory = "SIMULATED_WAR"
	CRSCInstrumentalityOfWar CRSCCategory = "INSTRUMENTALITY_OF_WAR"
	CRSCNotCombatRelated     CRSCCategory = "NOT_COMBAT_RELATED"
)

// IsCombatRelated reports whether the category qualifies for CRSC.
func (c CRSCCategory) IsCombatRelated() bool {
	return c != "" && c != CRSCNotCombatRelated
}

// Confidence is the discrete evidence-strength label.
type Confidence string

const (
	ConfidenceHigh   Confidence = "HIGH"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceLow    Confidence = "LOW"
)

// SurvivorElection is a survivor-benefit plan election.
// BaseAmount zero means "cover the full gross pension".
type SurvivorElection struct {
	BaseAmount      decimal.Decimal `yaml:"base_amount" json:"base_amount" toml:"base_amount"`
	CoveragePercent decimal.Decimal `yaml:"coverage_percent" json:"coverage_percent" toml:"coverage_percent"`
}

// PensionInput holds the retired-pay formula inputs. High3Average is monthly.
type PensionInput struct {
	High3Average   decimal.Decimal   `json:"high3_average"`
	Multiplier     decimal.Decimal   `json:"multiplier"`
	YearsOfService decimal.Decimal   `json:"years_of_service"`
	Survivor       *SurvivorElection `json:"survivor,omitempty"`
}

// PensionResult is the computed monthly retired pay.
type PensionResult struct {
	GrossMonthly    decimal.Decimal `json:"gross_monthly"`
	SurvivorBase    decimal.Decimal `json:"survivor_base"`
	SurvivorCost    decimal.Decimal `json:"survivor_cost"`
	NetMonthly      decimal.Decimal `json:"net_monthly"`
	SurvivorBenefit decimal.Decimal `json:"survivor_benefit"`
}

// CompensationResult is a VA compensation table lookup.
type CompensationResult struct {
	Rating         int             `json:"rating"`
	TableRating    int             `json:"table_rating"`
	Dependents     int             `json:"dependents"`
	BaseRate       decimal.Decimal `json:"base_rate"`
	DependentTotal decimal.Decimal `json:"dependent_total"`
	Monthly        decimal.Decimal `json:"monthly"`
}

// OffsetProgram names the program that restores waived retired pay.
type OffsetProgram string

const (
	OffsetNone OffsetProgram = "NONE"
	OffsetCRDP OffsetProgram = "CRDP"
	OffsetCRSC OffsetProgram = "CRSC"
)

// OffsetInput holds everything needed to compute the VA waiver and restoration.
type OffsetInput struct {
	RetiredPay         decimal.Decimal `json:"retired_pay"`
	VACompensation     decimal.Decimal `json:"va_compensation"`
	CombatCompensation decimal.Decimal `json:"combat_compensation"`
	CombinedRating     int             `json:"combined_rating"`
	YearsOfService     decimal.Decimal `json:"years_of_service"`
	Category           CRSCCategory    `json:"category"`
}

// OffsetResult is the monthly pay picture after the VA waiver and any restoration.
type OffsetResult struct {
	Waiver          decimal.Decimal `json:"waiver"`
	CRDPEligible    bool            `json:"crdp_eligible"`
	CRDPAmount      decimal.Decimal `json:"crdp_amount"`
	CRSCEligible    bool            `json:"crsc_eligible"`
	CRSCAmount      decimal.Decimal `json:"crsc_amount"`
	Elected         OffsetProgram   `json:"elected"`
	Restored        decimal.Decimal `json:"restored"`
	NetRetiredPay   decimal.Decimal `json:"net_retired_pay"`
	TotalMonthlyPay decimal.Decimal `json:"total_monthly_pay"`
}

// EvidenceAssessment is the result of matching provided evidence against requirements.
type EvidenceAssessment struct {
	Required   []string   `json:"required"`
	Matched    []string   `json:"matched"`
	Missing    []string   `json:"missing"`
	Confidence Confidence `json:"confidence"`
}
