package domain

import (
	"github.com/shopspring/decimal"
)

// TaxProfile holds a user's configured flat tax rates. All rates are
// fractional (0.15 means 15%). Ranges are not enforced here.
type TaxProfile struct {
	FilingStatus  string
	FederalSTRate decimal.Decimal
	FederalLTRate decimal.Decimal
	StateCode     string
	StateSTRate   decimal.Decimal
	StateLTRate   decimal.Decimal
	NIITRate      decimal.Decimal

	// stored and echoed back, not applied in any computation
	CarryForwardLosses decimal.Decimal
}

func (p TaxProfile) TotalSTRate() decimal.Decimal {
	return p.FederalSTRate.Add(p.StateSTRate).Add(p.NIITRate)
}

func (p TaxProfile) TotalLTRate() decimal.Decimal {
	return p.FederalLTRate.Add(p.StateLTRate).Add(p.NIITRate)
}
