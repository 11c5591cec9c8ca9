package taxengine

import (
	"taxdash/internal/domain"

	"github.com/shopspring/decimal"
)

// Summarize aggregates lot results into portfolio totals. All fields are
// unordered sums, so an empty input yields an all-zero summary. Net tax is
// floored at zero: aggregate savings can offset aggregate gains fully but
// never produce a negative bill.
func Summarize(results []domain.LotResult) domain.PortfolioSummary {
	preTax := decimal.Zero
	unrealizedGain := decimal.Zero
	taxGross := decimal.Zero
	savingsGross := decimal.Zero

	for _, r := range results {
		preTax = preTax.Add(r.Price.Mul(r.Quantity))
		unrealizedGain = unrealizedGain.Add(r.UnrealizedGain)
		taxGross = taxGross.Add(r.EstTaxLiability)
		savingsGross = savingsGross.Add(r.EstTaxSavings)
	}

	netTax := taxGross.Sub(savingsGross)
	if netTax.IsNegative() {
		netTax = decimal.Zero
	}

	return domain.PortfolioSummary{
		PreTaxValue:                   preTax,
		TotalUnrealizedGain:           unrealizedGain,
		GrossTaxOnGains:               taxGross,
		GrossPotentialSavingsOnLosses: savingsGross,
		NaiveNetTaxIfLiquidatedNow:    netTax,
		AfterTaxValueIfLiquidatedNow:  preTax.Sub(netTax),
	}
}
