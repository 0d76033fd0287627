package db_test

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/tdex-network/escrowd/internal/core/ports"
	dbbadger "github.com/tdex-network/escrowd/internal/infrastructure/storage/db/badger"
	"github.com/tdex-network/escrowd/internal/infrastructure/storage/db/inmemory"
)

type repoManager struct {
	Name    string
	Manager ports.RepoManager
}

func createRepoManagers(t *testing.T) []repoManager {
	badgerInMemory, err := dbbadger.NewRepoManager("", nil)
	require.NoError(t, err)
	badgerOnDisk, err := dbbadger.NewRepoManager(t.TempDir(), nil)
	require.NoError(t, err)

	managers := []repoManager{
		{"inmemory", inmemory.NewRepoManager()},
		{"badger_inmemory", badgerInMemory},
		{"badger", badgerOnDisk},
	}
	t.Cleanup(func() {
		for _, m := range managers {
			m.Manager.Close()
		}
	})
	return managers
}

func write(
	t *testing.T, rm ports.RepoManager, fn func(ctx context.Context) error,
) error {
	_, err := rm.RunTransaction(
		context.Background(), false,
		func(ctx context.Context) (interface{}, error) {
			return nil, fn(ctx)
		},
	)
	return err
}

func read(
	t *testing.T, rm ports.RepoManager,
	fn func(ctx context.Context) (interface{}, error),
) interface{} {
	res, err := rm.RunTransaction(context.Background(), true, fn)
	require.NoError(t, err)
	return res
}

func makeRandomOffer(id domain.OfferId) domain.Offer {
	return domain.Offer{
		Id:      id,
		Creator: domain.Address(randomHex(20)),
		OfferedPayment: domain.Payment{
			TokenRef: domain.TokenRef(randomHex(8)),
			SubUnit:  domain.SubUnitId(id % 3),
			Amount:   decimal.RequireFromString("123456789012345678901234567890"),
		},
		AcceptedPayment: domain.Payment{
			TokenRef: domain.TokenRef(randomHex(8)),
			Amount:   decimal.NewFromInt(50),
		},
		Counterparty: domain.Address(randomHex(20)),
	}
}

func randomHex(len int) string {
	return hex.EncodeToString(randomBytes(len))
}

func randomBytes(len int) []byte {
	b := make([]byte, len)
	//nolint
	rand.Read(b)
	return b
}
