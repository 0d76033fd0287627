package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Address is an opaque account identifier, already resolved by whatever
// authenticates the caller.
type Address string

// TokenRef identifies a fungible or semi-fungible token class.
type TokenRef string

// SubUnitId distinguishes the sub-units of a semi-fungible or non-fungible
// token. Pure fungible tokens use 0.
type SubUnitId uint64

// Payment is a quantity of a given token sub-unit.
type Payment struct {
	TokenRef TokenRef
	SubUnit  SubUnitId
	Amount   decimal.Decimal
}

// NewPayment returns a validated Payment.
func NewPayment(
	tokenRef TokenRef, subUnit SubUnitId, amount decimal.Decimal,
) (Payment, error) {
	p := Payment{tokenRef, subUnit, amount}
	if err := p.Validate(); err != nil {
		return Payment{}, err
	}
	return p, nil
}

// Validate makes sure the payment references a token and carries a strictly
// positive integer amount.
func (p Payment) Validate() error {
	if err := p.TokenRef.Validate(); err != nil {
		return err
	}
	if !p.Amount.IsPositive() || !p.Amount.IsInteger() {
		return ErrInvalidAmount
	}
	return nil
}

// Equal returns whether the two payments match exactly in token reference,
// sub-unit and amount.
func (p Payment) Equal(other Payment) bool {
	return p.TokenRef == other.TokenRef &&
		p.SubUnit == other.SubUnit &&
		p.Amount.Equal(other.Amount)
}

func (p Payment) String() string {
	return fmt.Sprintf("%s %s/%d", p.Amount, p.TokenRef, p.SubUnit)
}

func (t TokenRef) Validate() error {
	if len(strings.TrimSpace(string(t))) <= 0 {
		return ErrInvalidTokenRef
	}
	return nil
}

func (a Address) Validate() error {
	if len(strings.TrimSpace(string(a))) <= 0 {
		return ErrInvalidAddress
	}
	return nil
}
