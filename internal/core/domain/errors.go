package domain

import "errors"

var (
	// ErrOfferNotFound is returned when the referenced offer id has no open
	// offer.
	ErrOfferNotFound = errors.New("offer does not exist")
	// ErrOfferAlreadyExists is returned when storing an offer with an id
	// already in use.
	ErrOfferAlreadyExists = errors.New("offer already exists")
	// ErrUnauthorized is returned when the caller lacks the required
	// relationship with the offer (creator for cancel, counterparty for
	// accept).
	ErrUnauthorized = errors.New("caller is not authorized to perform this operation")
	// ErrPaymentMismatch is returned when the deposit attached to an accept
	// differs from the offer's accepted payment in token, sub-unit or amount.
	ErrPaymentMismatch = errors.New("deposit does not match the accepted payment")
	// ErrInvalidAmount is returned for non positive or fractional amounts.
	ErrInvalidAmount = errors.New("amount must be a positive integer")
	// ErrTransferFailed wraps any failure coming from the ledger.
	ErrTransferFailed = errors.New("transfer failed")
	// ErrInvalidAddress is returned for empty or blank addresses.
	ErrInvalidAddress = errors.New("address must not be empty")
	// ErrInvalidTokenRef is returned for empty or blank token references.
	ErrInvalidTokenRef = errors.New("token reference must not be empty")
	// ErrCustodyFunding is returned when minting tokens into the custody
	// account is requested.
	ErrCustodyFunding = errors.New("custody account cannot be funded")
	// ErrSequenceOverflow is returned if the offer id counter reached its max
	// value.
	ErrSequenceOverflow = errors.New("offer id sequence overflow")
	// ErrBrokenIndex is returned when an indexed offer id does not resolve to
	// a stored offer.
	ErrBrokenIndex = errors.New("offer index references a missing offer")
	// ErrInsufficientFunds is returned by ledgers when the source balance does
	// not cover a transfer.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
