package escrow

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/tdex-network/escrowd/internal/core/ports"
)

// EventPublisher is notified once an offer operation has been committed.
type EventPublisher interface {
	PublishOfferCreatedEvent(offer domain.Offer) error
	PublishOfferAcceptedEvent(offer domain.Offer) error
	PublishOfferCancelledEvent(offer domain.Offer) error
}

type Service struct {
	repoManager ports.RepoManager
	ledger      ports.Ledger
	publisher   EventPublisher
}

// NewService returns the escrow engine. The publisher is optional.
func NewService(
	repoManager ports.RepoManager, ledger ports.Ledger,
	publisher EventPublisher,
) (*Service, error) {
	if repoManager == nil {
		return nil, fmt.Errorf("missing repo manager")
	}
	if ledger == nil {
		return nil, fmt.Errorf("missing ledger")
	}
	return &Service{repoManager, ledger, publisher}, nil
}

// CreateOffer captures the caller's deposit into custody and opens a new
// offer that only counterparty can accept.
func (s *Service) CreateOffer(
	ctx context.Context, caller domain.Address,
	deposit, accepted domain.Payment, counterparty domain.Address,
) (domain.OfferId, error) {
	if err := validateOfferTerms(
		caller, deposit, accepted, counterparty,
	); err != nil {
		offerFailures.WithLabelValues(opCreate).Inc()
		return 0, err
	}

	res, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			if err := s.ledger.Deposit(ctx, caller, deposit); err != nil {
				return nil, transferFailed(err)
			}

			id, err := s.repoManager.SequenceRepository().NextOfferId(ctx)
			if err != nil {
				return nil, err
			}
			offer, err := domain.NewOffer(
				id, caller, deposit, accepted, counterparty,
			)
			if err != nil {
				return nil, err
			}

			if err := s.repoManager.OfferRepository().AddOffer(
				ctx, *offer,
			); err != nil {
				return nil, err
			}
			indexRepo := s.repoManager.OfferIndexRepository()
			if err := indexRepo.AddToIndex(
				ctx, domain.IndexByCreator, offer.Creator, offer.Id,
			); err != nil {
				return nil, err
			}
			if err := indexRepo.AddToIndex(
				ctx, domain.IndexByCounterparty, offer.Counterparty, offer.Id,
			); err != nil {
				return nil, err
			}
			return offer, nil
		},
	)
	if err != nil {
		offerFailures.WithLabelValues(opCreate).Inc()
		return 0, err
	}

	offer := res.(*domain.Offer)
	offersCreated.Inc()
	log.WithFields(log.Fields{
		"offer_id": offer.Id, "caller": caller,
	}).Debugf("created %s", offer)

	s.publish(*offer, opCreate)
	return offer.Id, nil
}

// AcceptOffer settles the offer as an atomic swap: the caller gets the
// offered payment out of custody and the creator gets the caller's deposit.
func (s *Service) AcceptOffer(
	ctx context.Context, caller domain.Address, offerId domain.OfferId,
	deposit domain.Payment,
) error {
	res, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			offer, err := s.repoManager.OfferRepository().GetOffer(ctx, offerId)
			if err != nil {
				return nil, err
			}
			if err := offer.CanBeAcceptedBy(caller, deposit); err != nil {
				return nil, err
			}

			if err := s.ledger.Deposit(ctx, caller, deposit); err != nil {
				return nil, transferFailed(err)
			}
			if err := s.ledger.Transfer(
				ctx, caller, offer.OfferedPayment,
			); err != nil {
				return nil, transferFailed(err)
			}
			if err := s.ledger.Transfer(
				ctx, offer.Creator, offer.AcceptedPayment,
			); err != nil {
				return nil, transferFailed(err)
			}

			if err := s.removeOffer(ctx, offer); err != nil {
				return nil, err
			}
			return offer, nil
		},
	)
	if err != nil {
		offerFailures.WithLabelValues(opAccept).Inc()
		return err
	}

	offer := res.(*domain.Offer)
	offersAccepted.Inc()
	log.WithFields(log.Fields{
		"offer_id": offer.Id, "caller": caller,
	}).Debug("offer accepted")

	s.publish(*offer, opAccept)
	return nil
}

// CancelOffer refunds the creator and removes the offer. Only the creator
// can cancel.
func (s *Service) CancelOffer(
	ctx context.Context, caller domain.Address, offerId domain.OfferId,
) error {
	res, err := s.repoManager.RunTransaction(
		ctx, false, func(ctx context.Context) (interface{}, error) {
			offer, err := s.repoManager.OfferRepository().GetOffer(ctx, offerId)
			if err != nil {
				return nil, err
			}
			if err := offer.CanBeCancelledBy(caller); err != nil {
				return nil, err
			}

			if err := s.ledger.Transfer(
				ctx, caller, offer.OfferedPayment,
			); err != nil {
				return nil, transferFailed(err)
			}

			if err := s.removeOffer(ctx, offer); err != nil {
				return nil, err
			}
			return offer, nil
		},
	)
	if err != nil {
		offerFailures.WithLabelValues(opCancel).Inc()
		return err
	}

	offer := res.(*domain.Offer)
	offersCancelled.Inc()
	log.WithFields(log.Fields{
		"offer_id": offer.Id, "caller": caller,
	}).Debug("offer cancelled")

	s.publish(*offer, opCancel)
	return nil
}

func (s *Service) GetOffer(
	ctx context.Context, offerId domain.OfferId,
) (*domain.Offer, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			return s.repoManager.OfferRepository().GetOffer(ctx, offerId)
		},
	)
	if err != nil {
		return nil, err
	}
	return res.(*domain.Offer), nil
}

// GetCreatedOffers returns the open offers created by the given address, in
// no particular order.
func (s *Service) GetCreatedOffers(
	ctx context.Context, address domain.Address,
) ([]domain.Offer, error) {
	return s.listOffers(ctx, domain.IndexByCreator, address)
}

// GetWantedOffers returns the open offers the given address is entitled to
// accept, in no particular order.
func (s *Service) GetWantedOffers(
	ctx context.Context, address domain.Address,
) ([]domain.Offer, error) {
	return s.listOffers(ctx, domain.IndexByCounterparty, address)
}

// GetLastOfferId returns the last assigned id, 0 if no offer was ever
// created.
func (s *Service) GetLastOfferId(ctx context.Context) (domain.OfferId, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			return s.repoManager.SequenceRepository().LastOfferId(ctx)
		},
	)
	if err != nil {
		return 0, err
	}
	return res.(domain.OfferId), nil
}

func (s *Service) listOffers(
	ctx context.Context, kind domain.IndexKind, address domain.Address,
) ([]domain.Offer, error) {
	res, err := s.repoManager.RunTransaction(
		ctx, true, func(ctx context.Context) (interface{}, error) {
			ids, err := s.repoManager.OfferIndexRepository().ListIndex(
				ctx, kind, address,
			)
			if err != nil {
				return nil, err
			}

			offerRepo := s.repoManager.OfferRepository()
			offers := make([]domain.Offer, 0, len(ids))
			for _, id := range ids {
				offer, err := offerRepo.GetOffer(ctx, id)
				if err != nil {
					return nil, fmt.Errorf(
						"%w: %s index of %s references offer %d: %s",
						domain.ErrBrokenIndex, kind, address, id, err,
					)
				}
				offers = append(offers, *offer)
			}
			return offers, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return res.([]domain.Offer), nil
}

func (s *Service) removeOffer(ctx context.Context, offer *domain.Offer) error {
	if err := s.repoManager.OfferRepository().DeleteOffer(
		ctx, offer.Id,
	); err != nil {
		return err
	}
	indexRepo := s.repoManager.OfferIndexRepository()
	if err := indexRepo.RemoveFromIndex(
		ctx, domain.IndexByCreator, offer.Creator, offer.Id,
	); err != nil {
		return err
	}
	return indexRepo.RemoveFromIndex(
		ctx, domain.IndexByCounterparty, offer.Counterparty, offer.Id,
	)
}

func (s *Service) publish(offer domain.Offer, op string) {
	if s.publisher == nil {
		return
	}

	go func() {
		var err error
		switch op {
		case opCreate:
			err = s.publisher.PublishOfferCreatedEvent(offer)
		case opAccept:
			err = s.publisher.PublishOfferAcceptedEvent(offer)
		case opCancel:
			err = s.publisher.PublishOfferCancelledEvent(offer)
		}
		if err != nil {
			log.WithError(err).Warnf(
				"pubsub: failed to publish %s event for offer %d", op, offer.Id,
			)
		}
	}()
}
