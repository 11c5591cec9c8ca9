package taxengine

import (
	"time"

	"taxdash/internal/domain"

	"github.com/shopspring/decimal"
)

// EstimateLot combines a lot, a current price and a tax profile into a
// per-lot snapshot. Liability only exists on a positive gain and savings
// only on a negative one; a flat lot produces neither. After-tax value
// subtracts the liability and never adds the savings back, since savings
// are informational until the loss is actually realized.
//
// Inputs are assumed well-formed. The caller is responsible for supplying
// a valid price; lots without one are skipped upstream, not here.
func EstimateLot(lot domain.Lot, price decimal.Decimal, profile domain.TaxProfile, asOf time.Time) domain.LotResult {
	holdingDays := HoldingDays(lot.PurchaseDate, asOf)
	longTerm := IsLongTerm(lot.PurchaseDate, asOf)

	term := domain.TermShort
	rate := profile.TotalSTRate()
	if longTerm {
		term = domain.TermLong
		rate = profile.TotalLTRate()
	}

	gain := price.Sub(lot.CostPerShare).Mul(lot.Quantity)

	estTax := decimal.Zero
	estSavings := decimal.Zero
	if gain.GreaterThan(decimal.Zero) {
		estTax = gain.Mul(rate)
	} else if gain.LessThan(decimal.Zero) {
		estSavings = gain.Neg().Mul(rate)
	}

	daysToLT := 0
	if !longTerm {
		daysToLT = DaysToLongTerm(lot.PurchaseDate, asOf)
	}

	return domain.LotResult{
		Symbol:          lot.Symbol,
		Quantity:        lot.Quantity,
		Price:           price,
		CostPerShare:    lot.CostPerShare,
		PurchaseDate:    lot.PurchaseDate,
		HoldingDays:     holdingDays,
		Term:            term,
		UnrealizedGain:  gain,
		EstTaxLiability: estTax,
		EstTaxSavings:   estSavings,
		AfterTaxValue:   price.Mul(lot.Quantity).Sub(estTax),
		DaysToLongTerm:  daysToLT,
	}
}
