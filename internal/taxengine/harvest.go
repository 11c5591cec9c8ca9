package taxengine

import (
	"sort"
	"time"

	"taxdash/internal/domain"

	"github.com/shopspring/decimal"
)

// HarvestCandidates scans lots for tax-loss-harvesting opportunities:
// lots strictly underwater at their current price, with loss at or above
// minLoss, ranked by loss magnitude descending and truncated to limit.
// Lots whose symbol is missing from prices are silently skipped; lots at
// gain or break-even are excluded entirely. Ties keep input order.
func HarvestCandidates(
	lots []domain.Lot,
	prices map[string]decimal.Decimal,
	minLoss decimal.Decimal,
	limit int,
	asOf time.Time,
) []domain.HarvestCandidate {
	candidates := []domain.HarvestCandidate{}
	for _, lot := range lots {
		price, ok := prices[lot.Symbol]
		if !ok {
			continue
		}
		gain := price.Sub(lot.CostPerShare).Mul(lot.Quantity)
		if !gain.LessThan(decimal.Zero) {
			continue
		}
		candidates = append(candidates, domain.HarvestCandidate{
			Symbol:         lot.Symbol,
			LotID:          lot.LotID,
			PurchaseDate:   lot.PurchaseDate,
			Quantity:       lot.Quantity,
			CostPerShare:   lot.CostPerShare,
			Price:          price,
			UnrealizedLoss: gain.Neg().Round(2),
			DaysToLongTerm: DaysToLongTerm(lot.PurchaseDate, asOf),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].UnrealizedLoss.GreaterThan(candidates[j].UnrealizedLoss)
	})

	out := []domain.HarvestCandidate{}
	for _, c := range candidates {
		if c.UnrealizedLoss.LessThan(minLoss) {
			continue
		}
		out = append(out, c)
		if len(out) == limit {
			break
		}
	}
	return out
}
