package domain

import "context"

// OfferRepository is the abstraction for any kind of database intended to
// persist open Offers. It is the single source of truth for offer existence.
type OfferRepository interface {
	// GetOffer returns the open offer with the given id or ErrOfferNotFound.
	GetOffer(ctx context.Context, id OfferId) (*Offer, error)
	// AddOffer stores a newly created offer. It is called once per id.
	AddOffer(ctx context.Context, offer Offer) error
	// DeleteOffer removes the offer with the given id.
	DeleteOffer(ctx context.Context, id OfferId) error
}

// IndexKind distinguishes the two address-keyed offer indexes.
type IndexKind int

const (
	// IndexByCreator groups offers by the address that created them.
	IndexByCreator IndexKind = iota
	// IndexByCounterparty groups offers by the only address allowed to
	// accept them.
	IndexByCounterparty
)

func (k IndexKind) String() string {
	switch k {
	case IndexByCreator:
		return "created"
	case IndexByCounterparty:
		return "wanted"
	default:
		return "unknown"
	}
}

// OfferIndexRepository keeps, for every address, an unordered set of offer
// ids. Only ids are stored, offers are always resolved via OfferRepository.
type OfferIndexRepository interface {
	// AddToIndex adds the id to the address' bucket of the given kind.
	AddToIndex(ctx context.Context, kind IndexKind, addr Address, id OfferId) error
	// RemoveFromIndex removes the id from the address' bucket. Removing a
	// non-member is a no-op.
	RemoveFromIndex(ctx context.Context, kind IndexKind, addr Address, id OfferId) error
	// ListIndex returns the ids in the address' bucket in no particular
	// order.
	ListIndex(ctx context.Context, kind IndexKind, addr Address) ([]OfferId, error)
}

// SequenceRepository persists the offer id counter.
type SequenceRepository interface {
	// NextOfferId increments the counter and returns the new value. The
	// first returned id is 1. It fails with ErrSequenceOverflow instead of
	// wrapping around.
	NextOfferId(ctx context.Context) (OfferId, error)
	// LastOfferId returns the current counter value without changing it.
	LastOfferId(ctx context.Context) (OfferId, error)
}
