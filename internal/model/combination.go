package model

import (
	"fmt"
	"strings"
)

// TypeFilterAll disables the asset type filter.
const TypeFilterAll = "all"

// Tier is the quality label of a qualifying combination.
type Tier string

// Tiers from best to worst.
const (
	TierGold        Tier = "Gold"
	TierUnmissable  Tier = "Unmissable"
	TierExcellent   Tier = "Excellent"
	TierOpportunity Tier = "Opportunity"
	TierStandard    Tier = "Standard"
)

// Tier thresholds on the real cost ratio, upper edge inclusive.
const (
	GoldMaxRatio        = 0.20
	UnmissableMaxRatio  = 0.35
	ExcellentMaxRatio   = 0.45
	OpportunityMaxRatio = 0.50
)

// TierFor maps a real cost ratio to its tier.
func TierFor(ratio float64) Tier {
	switch {
	case ratio <= GoldMaxRatio:
		return TierGold
	case ratio <= UnmissableMaxRatio:
		return TierUnmissable
	case ratio <= ExcellentMaxRatio:
		return TierExcellent
	case ratio <= OpportunityMaxRatio:
		return TierOpportunity
	default:
		return TierStandard
	}
}

// Constraints are the buyer's budget limits for a search.
type Constraints struct {
	TypeFilter     string
	MinCredit      float64
	MaxCredit      float64
	MaxDownPayment float64
	MaxInstallment float64
	MaxCostRatio   float64
}

// AcceptsType reports whether quotas of type t pass the type filter.
func (c Constraints) AcceptsType(t AssetType) bool {
	if c.TypeFilter == "" || strings.EqualFold(c.TypeFilter, TypeFilterAll) {
		return true
	}
	return strings.EqualFold(c.TypeFilter, string(t))
}

// Validate ensures the constraints describe a searchable budget.
func (c *Constraints) Validate() error {
	if c.MinCredit < 0 || c.MaxCredit < 0 || c.MaxDownPayment < 0 || c.MaxInstallment < 0 {
		return fmt.Errorf("credit, down payment and installment limits must not be negative")
	}
	if c.MinCredit > c.MaxCredit {
		return fmt.Errorf("minimum credit %.2f exceeds maximum credit %.2f", c.MinCredit, c.MaxCredit)
	}
	if c.TypeFilter != "" && !strings.EqualFold(c.TypeFilter, TypeFilterAll) {
		if _, err := ParseAssetType(c.TypeFilter); err != nil {
			return err
		}
	}
	return nil
}

// CombinationResult is a set of quotas from one administrator that fits the buyer's budget.
type CombinationResult struct {
	Admin                 string
	Type                  AssetType
	Tier                  Tier
	IDs                   []int
	Terms                 []int
	TotalCredit           float64
	TotalDownPayment      float64
	TotalInstallment      float64
	TotalRemainingBalance float64
	RealCostRatio         float64
}

// Size is the number of quotas in the combination.
func (r CombinationResult) Size() int {
	return len(r.IDs)
}

// TotalCost is the combined down payment and remaining balance.
func (r CombinationResult) TotalCost() float64 {
	return r.TotalDownPayment + r.TotalRemainingBalance
}

// DownPaymentShare is the combined down payment as a fraction of combined credit.
func (r CombinationResult) DownPaymentShare() float64 {
	if r.TotalCredit == 0 {
		return 0
	}
	return r.TotalDownPayment / r.TotalCredit
}

// IDLabel joins member ids the way listings refer to bundles, e.g. "3 + 7".
func (r CombinationResult) IDLabel() string {
	return joinInts(r.IDs, " + ")
}

// TermLabel joins member terms in the same order as IDLabel.
func (r CombinationResult) TermLabel() string {
	return joinInts(r.Terms, " + ")
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, sep)
}
