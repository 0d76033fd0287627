package domain

import "fmt"

// OfferId uniquely identifies an offer. Ids are assigned monotonically
// starting from 1 and are never reused.
type OfferId uint64

// Offer is an open escrow: Creator deposited OfferedPayment and only
// Counterparty can settle it by depositing AcceptedPayment.
// An offer exists in storage if and only if it is open, settlement and
// cancellation remove it.
type Offer struct {
	Id              OfferId
	Creator         Address
	OfferedPayment  Payment
	AcceptedPayment Payment
	Counterparty    Address
}

// NewOffer returns a validated offer for the given terms.
func NewOffer(
	id OfferId, creator Address, offered, accepted Payment,
	counterparty Address,
) (*Offer, error) {
	if err := creator.Validate(); err != nil {
		return nil, err
	}
	if err := counterparty.Validate(); err != nil {
		return nil, err
	}
	if err := offered.Validate(); err != nil {
		return nil, err
	}
	if err := accepted.Validate(); err != nil {
		return nil, err
	}

	return &Offer{
		Id:              id,
		Creator:         creator,
		OfferedPayment:  offered,
		AcceptedPayment: accepted,
		Counterparty:    counterparty,
	}, nil
}

// CanBeCancelledBy returns an error if the caller is not the creator of the
// offer. The counterparty cannot cancel.
func (o *Offer) CanBeCancelledBy(caller Address) error {
	if caller != o.Creator {
		return ErrUnauthorized
	}
	return nil
}

// CanBeAcceptedBy checks that the caller is the counterparty and that the
// attached deposit matches the accepted payment exactly.
func (o *Offer) CanBeAcceptedBy(caller Address, deposit Payment) error {
	if caller != o.Counterparty {
		return ErrUnauthorized
	}
	if !deposit.Equal(o.AcceptedPayment) {
		return ErrPaymentMismatch
	}
	return nil
}

func (o *Offer) String() string {
	return fmt.Sprintf(
		"offer %d: %s offers %s to %s for %s",
		o.Id, o.Creator, o.OfferedPayment, o.Counterparty, o.AcceptedPayment,
	)
}
