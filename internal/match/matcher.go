// Package match searches each administrator's quotas for bundles that fit a
// buyer's budget.
package match

import (
	"log/slog"
	"sort"

	"github.com/Veraticus/quota-sniper/internal/model"
)

// Search defaults.
const (
	DefaultMaxComboSize    = 6
	DefaultMaxCombinations = 3_000_000
)

// Tolerance is the slack given over the buyer's down payment and installment ceilings.
const Tolerance = 1.05

// Options bound the enumeration.
type Options struct {
	MaxComboSize    int `mapstructure:"max_combo_size"`
	MaxCombinations int `mapstructure:"max_combinations"` // per administrator pool, across all sizes
}

// DefaultOptions returns the standard search bounds.
func DefaultOptions() Options {
	return Options{
		MaxComboSize:    DefaultMaxComboSize,
		MaxCombinations: DefaultMaxCombinations,
	}
}

// ProgressReporter observes the search. Report receives the percentage of
// administrator pools finished.
type ProgressReporter interface {
	Report(percent int)
}

// NopProgress discards progress reports.
type NopProgress struct{}

// Report implements ProgressReporter.
func (NopProgress) Report(int) {}

// PoolSummary describes the enumeration of one administrator's pool.
type PoolSummary struct {
	Admin     string
	Size      int
	Evaluated int
	Matched   int
	Capped    bool // enumeration stopped at MaxCombinations
}

// Result is the outcome of a search.
type Result struct {
	Rows  []model.CombinationResult
	Pools []PoolSummary
}

// Capped reports whether any pool stopped before exhausting its combinations.
func (r *Result) Capped() bool {
	for _, p := range r.Pools {
		if p.Capped {
			return true
		}
	}
	return false
}

// Matcher enumerates quota combinations per administrator.
type Matcher struct {
	opts Options
}

// New creates a matcher. Non-positive options fall back to the defaults.
func New(opts Options) *Matcher {
	if opts.MaxComboSize <= 0 {
		opts.MaxComboSize = DefaultMaxComboSize
	}
	if opts.MaxCombinations <= 0 {
		opts.MaxCombinations = DefaultMaxCombinations
	}
	return &Matcher{opts: opts}
}

// Options returns the bounds in use.
func (m *Matcher) Options() Options {
	return m.opts
}

// Search returns every combination of same-administrator quotas that satisfies
// the constraints. Rows are grouped by pool, in the order administrators first
// appear in quotas; quotas without a known administrator are never combined.
func (m *Matcher) Search(quotas []model.Quota, c model.Constraints, progress ProgressReporter) *Result {
	if progress == nil {
		progress = NopProgress{}
	}

	pools := groupByAdmin(quotas, c)
	result := &Result{Pools: make([]PoolSummary, 0, len(pools))}

	for i, pool := range pools {
		rows, summary := m.searchPool(pool, c)
		result.Rows = append(result.Rows, rows...)
		result.Pools = append(result.Pools, summary)

		slog.Debug("Searched administrator pool",
			"admin", summary.Admin,
			"quotas", summary.Size,
			"evaluated", summary.Evaluated,
			"matched", summary.Matched,
			"capped", summary.Capped)

		progress.Report((i + 1) * 100 / len(pools))
	}

	return result
}

type pool struct {
	admin  string
	quotas []model.Quota
}

func groupByAdmin(quotas []model.Quota, c model.Constraints) []pool {
	var pools []pool
	index := make(map[string]int)

	for _, q := range quotas {
		if q.Admin == model.AdminOther || !c.AcceptsType(q.Type) {
			continue
		}
		i, ok := index[q.Admin]
		if !ok {
			i = len(pools)
			index[q.Admin] = i
			pools = append(pools, pool{admin: q.Admin})
		}
		pools[i].quotas = append(pools[i].quotas, q)
	}

	// Cheapest entry first; ties keep extraction order.
	for _, p := range pools {
		sort.SliceStable(p.quotas, func(a, b int) bool {
			return p.quotas[a].DownPaymentRatio() < p.quotas[b].DownPaymentRatio()
		})
	}
	return pools
}

func (m *Matcher) searchPool(p pool, c model.Constraints) ([]model.CombinationResult, PoolSummary) {
	summary := PoolSummary{Admin: p.admin, Size: len(p.quotas)}
	var rows []model.CombinationResult

	maxDownPayment := c.MaxDownPayment * Tolerance
	maxInstallment := c.MaxInstallment * Tolerance

sizes:
	for r := 1; r <= m.opts.MaxComboSize; r++ {
		combos := newCombinations(len(p.quotas), r)
		for combos.Next() {
			if summary.Evaluated == m.opts.MaxCombinations {
				summary.Capped = true
				break sizes
			}
			summary.Evaluated++

			if row, ok := evaluate(p, combos.Indices(), c, maxDownPayment, maxInstallment); ok {
				rows = append(rows, row)
			}
		}
	}

	summary.Matched = len(rows)
	return rows, summary
}

// evaluate applies the constraints cheapest check first.
func evaluate(p pool, idx []int, c model.Constraints, maxDownPayment, maxInstallment float64) (model.CombinationResult, bool) {
	var downPayment float64
	for _, i := range idx {
		downPayment += p.quotas[i].DownPayment
	}
	if downPayment > maxDownPayment {
		return model.CombinationResult{}, false
	}

	var credit float64
	for _, i := range idx {
		credit += p.quotas[i].Credit
	}
	if credit < c.MinCredit || credit > c.MaxCredit {
		return model.CombinationResult{}, false
	}

	var installment float64
	for _, i := range idx {
		installment += p.quotas[i].Installment
	}
	if installment > maxInstallment {
		return model.CombinationResult{}, false
	}

	var balance float64
	for _, i := range idx {
		balance += p.quotas[i].RemainingBalance
	}
	ratio := (downPayment+balance)/credit - 1
	if ratio > c.MaxCostRatio {
		return model.CombinationResult{}, false
	}

	ids := make([]int, len(idx))
	terms := make([]int, len(idx))
	for k, i := range idx {
		ids[k] = p.quotas[i].ID
		terms[k] = p.quotas[i].Term
	}

	return model.CombinationResult{
		Admin:                 p.admin,
		Type:                  p.quotas[idx[0]].Type,
		Tier:                  model.TierFor(ratio),
		IDs:                   ids,
		Terms:                 terms,
		TotalCredit:           credit,
		TotalDownPayment:      downPayment,
		TotalInstallment:      installment,
		TotalRemainingBalance: balance,
		RealCostRatio:         ratio,
	}, true
}
