package domain

import (
	"github.com/shopspring/decimal"
)

// DisabilityCondition is a single service-connected condition as of one claim snapshot.
type DisabilityCondition struct {
	Code        string      `yaml:"code" json:"code" toml:"code" validate:"required"`
	Description string      `yaml:"description,omitempty" json:"description,omitempty" toml:"description"`
	Rating      int         `yaml:"rating" json:"rating" toml:"rating" validate:"min=0,max=100,step10"`
	Bilateral   bool        `yaml:"bilateral" json:"bilateral" toml:"bilateral"`
	Combat      CombatFlags `yaml:"combat,omitempty" json:"combat,omitempty" toml:"combat"`
}

// RatingStep records one application of the remaining-capacity rule.
type RatingStep struct {
	Rating decimal.Decimal `json:"rating"`
	Before decimal.Decimal `json:"before"`
	After  decimal.Decimal `json:"after"`
}

// CombinedRating is the result of combining several disability ratings.
type CombinedRating struct {
	Ratings         []int           `json:"ratings"` // sorted descending
	Exact           decimal.Decimal `json:"exact"`
	Combined        int             `json:"combined"`
	BilateralFactor decimal.Decimal `json:"bilateral_factor"`
	Steps           []RatingStep    `json:"steps"`
}
