package pubsub

import "github.com/tdex-network/escrowd/internal/core/ports"

var (
	ErrMissingTopic         = ports.ErrMissingTopic
	ErrInvalidEndpoint      = ports.ErrInvalidEndpoint
	ErrSubscriptionNotFound = ports.ErrSubscriptionNotFound
)
