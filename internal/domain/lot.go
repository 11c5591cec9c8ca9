package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Lot is a single purchased holding. LotID is an opaque storage key and
// may be nil for lots that were never persisted.
type Lot struct {
	LotID        *uuid.UUID
	Symbol       string
	Quantity     decimal.Decimal
	CostPerShare decimal.Decimal
	PurchaseDate time.Time
	Account      *string
}

type Term string

const (
	TermShort Term = "short"
	TermLong  Term = "long"
)
