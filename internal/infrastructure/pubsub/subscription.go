package pubsub

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tdex-network/escrowd/internal/core/ports"
)

// Subscription is a webhook endpoint notified with every message published
// for Event. A non empty Secret makes requests carry a signed bearer token.
type Subscription struct {
	ID        string
	Event     string `badgerhold:"index"`
	Endpoint  string
	Secret    string
	CreatedAt int64
}

// NewSubscription validates the endpoint, which must be an absolute http(s)
// URL, and assigns a fresh id to the subscription.
func NewSubscription(event, endpoint, secret string) (*Subscription, error) {
	if len(strings.TrimSpace(event)) <= 0 {
		return nil, ErrMissingTopic
	}
	if err := validateEndpoint(endpoint); err != nil {
		return nil, err
	}
	return &Subscription{
		ID:        uuid.New().String(),
		Event:     event,
		Endpoint:  endpoint,
		Secret:    secret,
		CreatedAt: time.Now().UnixNano(),
	}, nil
}

func (s *Subscription) Topic() string    { return s.Event }
func (s *Subscription) Id() string       { return s.ID }
func (s *Subscription) NotifyAt() string { return s.Endpoint }
func (s *Subscription) IsSecured() bool  { return len(s.Secret) > 0 }

type subscriptions []Subscription

func (s subscriptions) toPortable() []ports.Subscription {
	list := make([]ports.Subscription, 0, len(s))
	for i := range s {
		list = append(list, &s[i])
	}
	return list
}

func validateEndpoint(endpoint string) error {
	u, err := url.ParseRequestURI(endpoint)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEndpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidEndpoint, u.Scheme)
	}
	if len(u.Host) <= 0 {
		return fmt.Errorf("%w: missing host", ErrInvalidEndpoint)
	}
	return nil
}
