package taxdash_errors

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ErrNoTaxProfile struct {
	UserID uuid.UUID
}

func (e ErrNoTaxProfile) Error() string {
	return fmt.Sprintf("no tax profile set for user %s", e.UserID)
}

type ErrPriceUnavailable struct {
	Symbol string
}

func (e ErrPriceUnavailable) Error() string {
	return fmt.Sprintf("no price for %s", e.Symbol)
}

type ErrNoLotsForSymbol struct {
	Symbol string
}

func (e ErrNoLotsForSymbol) Error() string {
	return fmt.Sprintf("no lots for %s", e.Symbol)
}

type ErrEmailAlreadyRegistered struct {
	Email string
}

func (e ErrEmailAlreadyRegistered) Error() string {
	return fmt.Sprintf("email %s already registered", e.Email)
}

type ErrInvalidCredentials struct{}

func (e ErrInvalidCredentials) Error() string {
	return "incorrect email or password"
}

type ErrInsufficientShares struct {
	Symbol    string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e ErrInsufficientShares) Error() string {
	return fmt.Sprintf("requested %s exceeds available %s shares for %s", e.Requested, e.Available, e.Symbol)
}
