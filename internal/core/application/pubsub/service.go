package pubsub

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/tdex-network/escrowd/internal/core/ports"
)

const (
	EventOfferCreated   = "OFFER_CREATED"
	EventOfferAccepted  = "OFFER_ACCEPTED"
	EventOfferCancelled = "OFFER_CANCELLED"
	EventAny            = ports.AnyTopic
)

// ErrInvalidEvent is returned for webhook event types that can't be
// subscribed to.
var ErrInvalidEvent = errors.New("invalid webhook event type")

var events = map[string]struct{}{
	EventOfferCreated:   {},
	EventOfferAccepted:  {},
	EventOfferCancelled: {},
	EventAny:            {},
}

// IsValidEvent returns whether the given event can be subscribed to.
func IsValidEvent(event string) bool {
	_, ok := events[event]
	return ok
}

type Service struct {
	pubsub ports.PubSub
}

func NewService(pubsub ports.PubSub) *Service {
	return &Service{pubsub}
}

func (s *Service) PubSub() ports.PubSub {
	return s.pubsub
}

func (s *Service) AddWebhook(
	_ context.Context, event, endpoint, secret string,
) (string, error) {
	if !IsValidEvent(event) {
		return "", fmt.Errorf("%w %q", ErrInvalidEvent, event)
	}
	return s.pubsub.Subscribe(event, endpoint, secret)
}

func (s *Service) RemoveWebhook(_ context.Context, id string) error {
	return s.pubsub.Unsubscribe(ports.UnspecifiedTopic, id)
}

func (s *Service) ListWebhooks(
	_ context.Context, event string,
) ([]ports.Subscription, error) {
	if event != ports.UnspecifiedTopic && !IsValidEvent(event) {
		return nil, fmt.Errorf("%w %q", ErrInvalidEvent, event)
	}
	return s.pubsub.ListSubscriptionsForTopic(event), nil
}

func (s *Service) PublishOfferCreatedEvent(offer domain.Offer) error {
	return s.publish(EventOfferCreated, offer, nil)
}

func (s *Service) PublishOfferAcceptedEvent(offer domain.Offer) error {
	return s.publish(EventOfferAccepted, offer, map[string]interface{}{
		"accepted_by": offer.Counterparty,
	})
}

func (s *Service) PublishOfferCancelledEvent(offer domain.Offer) error {
	return s.publish(EventOfferCancelled, offer, map[string]interface{}{
		"cancelled_by": offer.Creator,
	})
}

func (s *Service) publish(
	event string, offer domain.Offer, extra map[string]interface{},
) error {
	payload := map[string]interface{}{
		"event":     event,
		"offer":     getOfferPayload(offer),
		"timestamp": time.Now().Unix(),
	}
	for k, v := range extra {
		payload[k] = v
	}
	message, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.pubsub.Publish(event, string(message))
}
