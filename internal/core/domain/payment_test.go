package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/escrowd/internal/core/domain"
)

func TestNewPayment(t *testing.T) {
	amount := decimal.RequireFromString("340282366920938463463374607431768211456")
	payment, err := domain.NewPayment("token", 7, amount)
	require.NoError(t, err)
	require.Equal(t, domain.TokenRef("token"), payment.TokenRef)
	require.Equal(t, domain.SubUnitId(7), payment.SubUnit)
	require.True(t, amount.Equal(payment.Amount))
}

func TestFailingNewPayment(t *testing.T) {
	tests := []struct {
		name        string
		tokenRef    domain.TokenRef
		amount      decimal.Decimal
		expectedErr error
	}{
		{"missing token", "", decimal.NewFromInt(1), domain.ErrInvalidTokenRef},
		{"zero amount", "token", decimal.Zero, domain.ErrInvalidAmount},
		{"negative amount", "token", decimal.NewFromInt(-1), domain.ErrInvalidAmount},
		{"fractional amount", "token", decimal.NewFromFloat(1.5), domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewPayment(tt.tokenRef, 0, tt.amount)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestBalance(t *testing.T) {
	balance := &domain.Balance{Account: "alice", TokenRef: "token"}

	balance.Credit(decimal.NewFromInt(10))
	require.Equal(t, "10", balance.Amount.String())

	require.NoError(t, balance.Debit(decimal.NewFromInt(4)))
	require.Equal(t, "6", balance.Amount.String())

	err := balance.Debit(decimal.NewFromInt(7))
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	require.Equal(t, "6", balance.Amount.String())
}
