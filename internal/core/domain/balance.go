package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Balance is the amount of a token sub-unit held by an account.
type Balance struct {
	Account  Address
	TokenRef TokenRef
	SubUnit  SubUnitId
	Amount   decimal.Decimal
}

// Credit increases the balance by the given amount.
func (b *Balance) Credit(amount decimal.Decimal) {
	b.Amount = b.Amount.Add(amount)
}

// Debit decreases the balance, failing with ErrInsufficientFunds if it does
// not cover the amount.
func (b *Balance) Debit(amount decimal.Decimal) error {
	if b.Amount.LessThan(amount) {
		return ErrInsufficientFunds
	}
	b.Amount = b.Amount.Sub(amount)
	return nil
}

// BalanceRepository persists account balances of the custody ledger.
type BalanceRepository interface {
	// GetBalance returns the balance of the account for the given token
	// sub-unit, a zero balance if never funded.
	GetBalance(
		ctx context.Context, account Address, tokenRef TokenRef, subUnit SubUnitId,
	) (*Balance, error)
	// UpdateBalance applies updateFn to the current balance and stores the
	// result.
	UpdateBalance(
		ctx context.Context, account Address, tokenRef TokenRef, subUnit SubUnitId,
		updateFn func(b *Balance) (*Balance, error),
	) error
}
