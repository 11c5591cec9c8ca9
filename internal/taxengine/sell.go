package taxengine

import (
	"sort"
	"time"

	taxdash_errors "taxdash/internal"
	"taxdash/internal/domain"

	"github.com/shopspring/decimal"
)

// SimulateSell previews selling quantity shares of symbol at price,
// consuming lots in FIFO order (earliest purchase date first). FIFO is a
// policy choice, not the only valid one; a LIFO or specific-identification
// variant would swap the comparator below.
//
// The simulation is atomic: if the user's lots cannot cover the requested
// quantity, it fails with ErrInsufficientShares and no partial result.
// Tranche and aggregate money amounts are rounded to cents, the price to
// four decimals.
func SimulateSell(
	lots []domain.Lot,
	symbol string,
	quantity decimal.Decimal,
	price decimal.Decimal,
	profile domain.TaxProfile,
	asOf time.Time,
) (*domain.SellSimulation, error) {
	candidates := make([]domain.Lot, 0, len(lots))
	for _, lot := range lots {
		if lot.Symbol == symbol {
			candidates = append(candidates, lot)
		}
	}
	if len(candidates) == 0 {
		return nil, taxdash_errors.ErrNoLotsForSymbol{Symbol: symbol}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].PurchaseDate.Before(candidates[j].PurchaseDate)
	})

	var (
		remaining    = quantity
		consumed     = decimal.Zero
		realizedGain = decimal.Zero
		estTax       = decimal.Zero
		details      = []domain.ConsumedLot{}
	)
	for _, lot := range candidates {
		if !remaining.GreaterThan(decimal.Zero) {
			break
		}
		quantityUsed := remaining
		if lot.Quantity.LessThan(remaining) {
			quantityUsed = lot.Quantity
		}

		gain := price.Sub(lot.CostPerShare).Mul(quantityUsed)

		term := domain.TermShort
		rate := profile.TotalSTRate()
		if IsLongTerm(lot.PurchaseDate, asOf) {
			term = domain.TermLong
			rate = profile.TotalLTRate()
		}

		tax := decimal.Zero
		if gain.GreaterThan(decimal.Zero) {
			tax = gain.Mul(rate)
		}

		realizedGain = realizedGain.Add(gain)
		estTax = estTax.Add(tax)
		consumed = consumed.Add(quantityUsed)
		remaining = remaining.Sub(quantityUsed)

		details = append(details, domain.ConsumedLot{
			LotID:        lot.LotID,
			QuantityUsed: quantityUsed,
			Term:         term,
			RealizedGain: gain.Round(2),
			EstTax:       tax.Round(2),
		})
	}

	if consumed.LessThan(quantity) {
		return nil, taxdash_errors.ErrInsufficientShares{
			Symbol:    symbol,
			Requested: quantity,
			Available: consumed,
		}
	}

	return &domain.SellSimulation{
		Symbol:       symbol,
		SellQuantity: quantity,
		AsOfPrice:    price.Round(4),
		RealizedGain: realizedGain.Round(2),
		EstTax:       estTax.Round(2),
		LotsConsumed: details,
	}, nil
}
