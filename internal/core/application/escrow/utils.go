package escrow

import (
	"fmt"

	"github.com/tdex-network/escrowd/internal/core/domain"
)

func validateOfferTerms(
	creator domain.Address, deposit, accepted domain.Payment,
	counterparty domain.Address,
) error {
	if err := creator.Validate(); err != nil {
		return err
	}
	if err := counterparty.Validate(); err != nil {
		return err
	}
	if err := deposit.Validate(); err != nil {
		return err
	}
	return accepted.Validate()
}

func transferFailed(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrTransferFailed, err)
}
