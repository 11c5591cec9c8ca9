package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LotResult is a read-only snapshot of one lot estimated against a price
// and a tax profile. Recomputed on every request; never cached.
type LotResult struct {
	Symbol          string
	Quantity        decimal.Decimal
	Price           decimal.Decimal
	CostPerShare    decimal.Decimal
	PurchaseDate    time.Time
	HoldingDays     int
	Term            Term
	UnrealizedGain  decimal.Decimal
	EstTaxLiability decimal.Decimal
	EstTaxSavings   decimal.Decimal
	AfterTaxValue   decimal.Decimal
	DaysToLongTerm  int
}

type PortfolioSummary struct {
	PreTaxValue                   decimal.Decimal
	TotalUnrealizedGain           decimal.Decimal
	GrossTaxOnGains               decimal.Decimal
	GrossPotentialSavingsOnLosses decimal.Decimal
	NaiveNetTaxIfLiquidatedNow    decimal.Decimal
	AfterTaxValueIfLiquidatedNow  decimal.Decimal
}
