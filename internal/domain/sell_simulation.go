package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConsumedLot is one tranche of a simulated sale. Money fields are
// rounded to cents.
type ConsumedLot struct {
	LotID        *uuid.UUID
	QuantityUsed decimal.Decimal
	Term         Term
	RealizedGain decimal.Decimal
	EstTax       decimal.Decimal
}

type SellSimulation struct {
	Symbol       string
	SellQuantity decimal.Decimal
	AsOfPrice    decimal.Decimal
	RealizedGain decimal.Decimal
	EstTax       decimal.Decimal
	LotsConsumed []ConsumedLot
}

type HarvestCandidate struct {
	Symbol         string
	LotID          *uuid.UUID
	PurchaseDate   time.Time
	Quantity       decimal.Decimal
	CostPerShare   decimal.Decimal
	Price          decimal.Decimal
	UnrealizedLoss decimal.Decimal
	DaysToLongTerm int
}
