package dbbadger

import "errors"

var (
	// ErrMissingTx is returned when a repository method that needs to run
	// within a transaction is called without one.
	ErrMissingTx = errors.New("operation must run within a transaction")
)
