package match

import (
	"sort"

	"github.com/Veraticus/quota-sniper/internal/model"
)

// SortByCost orders rows by real cost ratio, cheapest first. Equal ratios
// prefer fewer quotas, then keep search order.
func SortByCost(rows []model.CombinationResult) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].RealCostRatio != rows[j].RealCostRatio {
			return rows[i].RealCostRatio < rows[j].RealCostRatio
		}
		return rows[i].Size() < rows[j].Size()
	})
}
