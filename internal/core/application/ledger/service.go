package ledger

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/tdex-network/escrowd/internal/core/ports"
)

// Service exposes the custody ledger to the operator.
type Service struct {
	repoManager ports.RepoManager
	ledger      ports.LedgerAdmin
}

func NewService(
	repoManager ports.RepoManager, ledger ports.LedgerAdmin,
) (*Service, error) {
	if repoManager == nil {
		return nil, fmt.Errorf("missing repo manager")
	}
	if ledger == nil {
		return nil, fmt.Errorf("missing ledger")
	}
	return &Service{repoManager, ledger}, nil
}

func (s *Service) FundAccount(
	ctx context.Context, account domain.Address, payment domain.Payment,
) error {
	if account == s.ledger.CustodyAccount() {
		return fmt.Errorf("%w: %s", domain.ErrCustodyFunding, account)
	}

	if _, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			return nil, s.ledger.Fund(ctx, account, payment)
		},
	); err != nil {
		return err
	}

	log.Infof("funded account %s with %s", account, payment)
	return nil
}

func (s *Service) GetBalance(
	ctx context.Context, account domain.Address,
	tokenRef domain.TokenRef, subUnit domain.SubUnitId,
) (*domain.Balance, error) {
	if err := account.Validate(); err != nil {
		return nil, err
	}
	if err := tokenRef.Validate(); err != nil {
		return nil, err
	}

	res, err := s.repoManager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			return s.ledger.Balance(ctx, account, tokenRef, subUnit)
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Balance), nil
}

func (s *Service) CustodyAccount() domain.Address {
	return s.ledger.CustodyAccount()
}
