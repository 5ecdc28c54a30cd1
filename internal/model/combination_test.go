package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name  string
		want  Tier
		ratio float64
	}{
		{name: "negative premium", ratio: -0.1, want: TierGold},
		{name: "gold upper edge", ratio: 0.20, want: TierGold},
		{name: "just above gold", ratio: 0.2000001, want: TierUnmissable},
		{name: "unmissable upper edge", ratio: 0.35, want: TierUnmissable},
		{name: "excellent upper edge", ratio: 0.45, want: TierExcellent},
		{name: "opportunity upper edge", ratio: 0.50, want: TierOpportunity},
		{name: "just above opportunity", ratio: 0.5000001, want: TierStandard},
		{name: "expensive", ratio: 0.9, want: TierStandard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TierFor(tt.ratio))
		})
	}
}

func TestConstraints_Validate(t *testing.T) {
	tests := []struct {
		name        string
		constraints Constraints
		wantErr     bool
	}{
		{
			name:        "valid with all types",
			constraints: Constraints{MinCredit: 100, MaxCredit: 200, TypeFilter: "all"},
		},
		{
			name:        "valid with type",
			constraints: Constraints{MaxCredit: 200, TypeFilter: "Heavy"},
		},
		{
			name:        "min above max",
			constraints: Constraints{MinCredit: 300, MaxCredit: 200},
			wantErr:     true,
		},
		{
			name:        "negative limit",
			constraints: Constraints{MaxCredit: 200, MaxInstallment: -1},
			wantErr:     true,
		},
		{
			name:        "unknown type",
			constraints: Constraints{MaxCredit: 200, TypeFilter: "boat"},
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.constraints.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConstraints_AcceptsType(t *testing.T) {
	assert.True(t, Constraints{}.AcceptsType(AssetHeavy))
	assert.True(t, Constraints{TypeFilter: "ALL"}.AcceptsType(AssetHeavy))
	assert.True(t, Constraints{TypeFilter: "heavy"}.AcceptsType(AssetHeavy))
	assert.False(t, Constraints{TypeFilter: "Property"}.AcceptsType(AssetHeavy))
}

func TestCombinationResult_Labels(t *testing.T) {
	r := CombinationResult{
		IDs:              []int{3, 7},
		Terms:            []int{120, 95},
		TotalCredit:      200000,
		TotalDownPayment: 50000,
	}

	assert.Equal(t, 2, r.Size())
	assert.Equal(t, "3 + 7", r.IDLabel())
	assert.Equal(t, "120 + 95", r.TermLabel())
	assert.Equal(t, 0.25, r.DownPaymentShare())
}
