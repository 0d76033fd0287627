package ledger_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	ledgersvc "github.com/tdex-network/escrowd/internal/core/application/ledger"
	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/tdex-network/escrowd/internal/infrastructure/ledger"
	"github.com/tdex-network/escrowd/internal/infrastructure/storage/db/inmemory"
)

func newTestService(t *testing.T) *ledgersvc.Service {
	repoManager := inmemory.NewRepoManager()
	custody, err := ledger.NewCustodyLedger(repoManager, "escrow")
	require.NoError(t, err)

	svc, err := ledgersvc.NewService(repoManager, custody)
	require.NoError(t, err)
	return svc
}

func TestFundAccount(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)
	payment := domain.Payment{
		TokenRef: "token", SubUnit: 2, Amount: decimal.NewFromInt(10),
	}

	balance, err := svc.GetBalance(ctx, "alice", "token", 2)
	require.NoError(t, err)
	require.True(t, balance.Amount.IsZero())

	require.NoError(t, svc.FundAccount(ctx, "alice", payment))
	require.NoError(t, svc.FundAccount(ctx, "alice", payment))

	balance, err = svc.GetBalance(ctx, "alice", "token", 2)
	require.NoError(t, err)
	require.Equal(t, "20", balance.Amount.String())

	balance, err = svc.GetBalance(ctx, "alice", "token", 0)
	require.NoError(t, err)
	require.True(t, balance.Amount.IsZero())
}

func TestFailingFundAccount(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	tests := []struct {
		name    string
		account domain.Address
		payment domain.Payment
	}{
		{
			name:    "custody account",
			account: svc.CustodyAccount(),
			payment: domain.Payment{TokenRef: "token", Amount: decimal.NewFromInt(1)},
		},
		{
			name:    "empty account",
			account: "",
			payment: domain.Payment{TokenRef: "token", Amount: decimal.NewFromInt(1)},
		},
		{
			name:    "zero amount",
			account: "alice",
			payment: domain.Payment{TokenRef: "token", Amount: decimal.Zero},
		},
		{
			name:    "missing token",
			account: "alice",
			payment: domain.Payment{Amount: decimal.NewFromInt(1)},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := svc.FundAccount(ctx, tt.account, tt.payment)
			require.Error(t, err)
		})
	}

	err := svc.FundAccount(
		ctx, svc.CustodyAccount(),
		domain.Payment{TokenRef: "token", Amount: decimal.NewFromInt(1)},
	)
	require.ErrorIs(t, err, domain.ErrCustodyFunding)

	_, err = svc.GetBalance(ctx, "", "token", 0)
	require.ErrorIs(t, err, domain.ErrInvalidAddress)
	_, err = svc.GetBalance(ctx, "alice", "", 0)
	require.ErrorIs(t, err, domain.ErrInvalidTokenRef)
}
