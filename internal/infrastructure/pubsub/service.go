package pubsub

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/tdex-network/escrowd/internal/core/ports"
	"github.com/tdex-network/escrowd/pkg/circuitbreaker"
	"go.uber.org/ratelimit"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultRateLimit      = 10
)

type service struct {
	store      SubscriptionStore
	httpClient *client
	cb         *gobreaker.CircuitBreaker
	limiter    ratelimit.Limiter
}

// NewService returns a PubSub that notifies subscribers by POSTing the
// message to their webhook endpoint. At most rateLimit requests per second
// are made, across all subscribers.
func NewService(
	store SubscriptionStore, requestTimeout time.Duration, rateLimit int,
) (ports.PubSub, error) {
	if store == nil {
		return nil, fmt.Errorf("missing subscription store")
	}
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}
	if rateLimit <= 0 {
		rateLimit = DefaultRateLimit
	}

	return &service{
		store:      store,
		httpClient: newHTTPClient(requestTimeout),
		cb:         circuitbreaker.NewCircuitBreaker("webhooks"),
		limiter:    ratelimit.New(rateLimit),
	}, nil
}

func (ws *service) Subscribe(topic, endpoint, secret string) (string, error) {
	sub, err := NewSubscription(topic, endpoint, secret)
	if err != nil {
		return "", err
	}
	if err := ws.store.Add(*sub); err != nil {
		return "", err
	}
	log.Debugf("added webhook %s for topic %s", sub.ID, sub.Event)
	return sub.ID, nil
}

func (ws *service) Unsubscribe(_, id string) error {
	if err := ws.store.Remove(id); err != nil {
		return err
	}
	log.Debugf("removed webhook %s", id)
	return nil
}

func (ws *service) ListSubscriptionsForTopic(topic string) []ports.Subscription {
	subs, err := ws.listSubscriptionsForTopic(topic)
	if err != nil {
		log.WithError(err).Warnf("pubsub: failed to list webhooks for %q", topic)
		return nil
	}
	return subs.toPortable()
}

func (ws *service) Publish(topic string, message string) error {
	subs, err := ws.listSubscriptionsForTopic(topic)
	if err != nil {
		return err
	}

	eg := &errgroup.Group{}
	for i := range subs {
		sub := subs[i]
		eg.Go(func() error { return ws.doRequest(sub, message) })
	}
	return eg.Wait()
}

func (ws *service) Close() error {
	return ws.store.Close()
}

func (ws *service) listSubscriptionsForTopic(topic string) (subscriptions, error) {
	subs, err := ws.store.List(topic)
	if err != nil {
		return nil, err
	}
	if topic != ports.AnyTopic && topic != ports.UnspecifiedTopic {
		subsForAnyTopic, err := ws.store.List(ports.AnyTopic)
		if err != nil {
			return nil, err
		}
		subs = append(subs, subsForAnyTopic...)
	}
	return subs, nil
}

func (ws *service) doRequest(sub Subscription, payload string) error {
	ws.limiter.Take()

	_, err := ws.cb.Execute(func() (interface{}, error) {
		headers := map[string]string{
			"Content-Type": "application/json",
		}
		if sub.IsSecured() {
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
				IssuedAt: time.Now().Unix(),
				Subject:  sub.Event,
			})
			tokenString, err := token.SignedString([]byte(sub.Secret))
			if err != nil {
				return nil, err
			}
			headers["Authorization"] = fmt.Sprintf("Bearer %s", tokenString)
		}

		status, resp, err := ws.httpClient.post(sub.Endpoint, payload, headers)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf(
				"webhook %s replied with status %d: %s", sub.ID, status, resp,
			)
		}
		return nil, nil
	})

	return err
}
