package ports

import "errors"

const AnyTopic = "*"
const UnspecifiedTopic = ""

var (
	// ErrMissingTopic is returned when subscribing without a topic.
	ErrMissingTopic = errors.New("missing event")
	// ErrInvalidEndpoint is returned if the webhook endpoint is not a valid
	// http(s) URL.
	ErrInvalidEndpoint = errors.New("invalid webhook endpoint, must be a valid http URL")
	// ErrSubscriptionNotFound is returned when unsubscribing an unknown id.
	ErrSubscriptionNotFound = errors.New("webhook not found")
)

type Subscription interface {
	Topic() string
	Id() string
	IsSecured() bool
	NotifyAt() string
}

// PubSub defines the methods of a pubsub service. Subscriptions are
// persisted by the service itself, so they survive restarts.
type PubSub interface {
	// Subscribe adds a new subscription for the requested topic.
	Subscribe(topic, endpoint, secret string) (string, error)
	// Unsubscribe removes some client defined by its id for a topic.
	Unsubscribe(topic, id string) error
	// ListSubscriptionsForTopic returns the info of all clients subscribed for
	// a certain topic.
	ListSubscriptionsForTopic(topic string) []Subscription
	// Publish publishes a message for a certain topic. All clients subscribed
	// for such topic will receive the message.
	Publish(topic string, message string) error
	// Close should be used to gracefully close the connection with the store.
	Close() error
}
