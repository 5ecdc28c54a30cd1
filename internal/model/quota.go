package model

import (
	"fmt"
	"strings"
)

// AdminOther is the administrator assigned to blocks that name no known administrator.
const AdminOther = "OTHER"

// AssetType is the category of the asset a quota buys.
type AssetType string

// Asset types recognized by the extractor.
const (
	AssetProperty AssetType = "Property"
	AssetVehicle  AssetType = "Vehicle"
	AssetHeavy    AssetType = "Heavy"
	AssetGeneral  AssetType = "General"
)

// AssetTypes returns every asset type in display order.
func AssetTypes() []AssetType {
	return []AssetType{AssetProperty, AssetVehicle, AssetHeavy, AssetGeneral}
}

// ParseAssetType resolves a case-insensitive asset type name.
func ParseAssetType(s string) (AssetType, error) {
	for _, t := range AssetTypes() {
		if strings.EqualFold(string(t), strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown asset type %q", s)
}

// Source records which extraction path produced a figure.
type Source string

// Extraction sources.
const (
	SourceNone       Source = "none"
	SourceLabeled    Source = "labeled"    // label word followed by an amount on the same line
	SourceRelaxed    Source = "relaxed"    // label and amount separated by a line break
	SourcePositional Source = "positional" // ranked by size among all amounts in the block
	SourceSchedule   Source = "schedule"   // summed from installment schedules
	SourceEstimated  Source = "estimated"  // credit*1.3 - down payment
)

// Quota is one consortium share offered on the marketplace.
type Quota struct {
	Admin             string
	Type              AssetType
	CreditSource      Source
	DownPaymentSource Source
	BalanceSource     Source
	Credit            float64
	DownPayment       float64
	Installment       float64 // ceiling installment of the longest qualifying schedule
	RemainingBalance  float64
	ID                int
	Term              int // installments left at Installment
}

// TotalCost is what the buyer pays over the life of the quota.
func (q Quota) TotalCost() float64 {
	return q.DownPayment + q.RemainingBalance
}

// DownPaymentRatio is the down payment as a fraction of credit.
func (q Quota) DownPaymentRatio() float64 {
	if q.Credit == 0 {
		return 0
	}
	return q.DownPayment / q.Credit
}

// Validate checks the materialization invariant.
func (q *Quota) Validate() error {
	if q.Credit <= MinQuotaCredit {
		return fmt.Errorf("credit must be greater than %.0f, got %.2f", MinQuotaCredit, q.Credit)
	}
	if q.DownPayment <= 0 {
		return fmt.Errorf("down payment must be positive, got %.2f", q.DownPayment)
	}
	if q.Admin == "" {
		return fmt.Errorf("administrator is required")
	}
	return nil
}

// MinQuotaCredit is the credit a quota must exceed to be kept.
const MinQuotaCredit = 5000.0
