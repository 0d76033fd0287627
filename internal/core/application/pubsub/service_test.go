package pubsub_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/escrowd/internal/core/application/pubsub"
	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/tdex-network/escrowd/internal/core/ports"
)

type mockPubSub struct {
	mock.Mock
}

func (m *mockPubSub) Subscribe(topic, endpoint, secret string) (string, error) {
	args := m.Called(topic, endpoint, secret)
	return args.String(0), args.Error(1)
}

func (m *mockPubSub) Unsubscribe(topic, id string) error {
	return m.Called(topic, id).Error(0)
}

func (m *mockPubSub) ListSubscriptionsForTopic(topic string) []ports.Subscription {
	args := m.Called(topic)
	if res := args.Get(0); res != nil {
		return res.([]ports.Subscription)
	}
	return nil
}

func (m *mockPubSub) Publish(topic string, message string) error {
	return m.Called(topic, message).Error(0)
}

func (m *mockPubSub) Close() error {
	return m.Called().Error(0)
}

func TestWebhooks(t *testing.T) {
	ctx := context.Background()
	ps := &mockPubSub{}
	ps.On("Subscribe", pubsub.EventOfferCreated, "http://hook", "").
		Return("id", nil)
	ps.On("Unsubscribe", ports.UnspecifiedTopic, "id").Return(nil)
	ps.On("ListSubscriptionsForTopic", mock.Anything).Return(nil)

	svc := pubsub.NewService(ps)

	id, err := svc.AddWebhook(ctx, pubsub.EventOfferCreated, "http://hook", "")
	require.NoError(t, err)
	require.Equal(t, "id", id)

	_, err = svc.AddWebhook(ctx, "TRADE_SETTLED", "http://hook", "")
	require.Error(t, err)

	_, err = svc.ListWebhooks(ctx, "")
	require.NoError(t, err)
	_, err = svc.ListWebhooks(ctx, pubsub.EventAny)
	require.NoError(t, err)
	_, err = svc.ListWebhooks(ctx, "TRADE_SETTLED")
	require.Error(t, err)

	require.NoError(t, svc.RemoveWebhook(ctx, "id"))
	ps.AssertExpectations(t)
}

func TestPublishOfferEvents(t *testing.T) {
	offer := domain.Offer{
		Id:      7,
		Creator: "alice",
		OfferedPayment: domain.Payment{
			TokenRef: "X", Amount: decimal.NewFromInt(100),
		},
		AcceptedPayment: domain.Payment{
			TokenRef: "Y", SubUnit: 3, Amount: decimal.NewFromInt(50),
		},
		Counterparty: "bob",
	}

	tests := []struct {
		event    string
		publish  func(svc *pubsub.Service) error
		extraKey string
		extraVal string
	}{
		{
			event: pubsub.EventOfferCreated,
			publish: func(svc *pubsub.Service) error {
				return svc.PublishOfferCreatedEvent(offer)
			},
		},
		{
			event: pubsub.EventOfferAccepted,
			publish: func(svc *pubsub.Service) error {
				return svc.PublishOfferAcceptedEvent(offer)
			},
			extraKey: "accepted_by",
			extraVal: "bob",
		},
		{
			event: pubsub.EventOfferCancelled,
			publish: func(svc *pubsub.Service) error {
				return svc.PublishOfferCancelledEvent(offer)
			},
			extraKey: "cancelled_by",
			extraVal: "alice",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.event, func(t *testing.T) {
			var message string
			ps := &mockPubSub{}
			ps.On("Publish", tt.event, mock.Anything).
				Run(func(args mock.Arguments) { message = args.String(1) }).
				Return(nil)

			require.NoError(t, tt.publish(pubsub.NewService(ps)))

			payload := map[string]interface{}{}
			require.NoError(t, json.Unmarshal([]byte(message), &payload))
			require.Equal(t, tt.event, payload["event"])
			require.NotZero(t, payload["timestamp"])

			gotOffer := payload["offer"].(map[string]interface{})
			require.EqualValues(t, 7, gotOffer["id"])
			require.Equal(t, "alice", gotOffer["creator"])
			require.Equal(t, "bob", gotOffer["counterparty"])
			accepted := gotOffer["accepted_payment"].(map[string]interface{})
			require.Equal(t, "Y", accepted["token"])
			require.EqualValues(t, 3, accepted["sub_unit"])
			require.Equal(t, "50", accepted["amount"])

			if tt.extraKey != "" {
				require.Equal(t, tt.extraVal, payload[tt.extraKey])
			}
		})
	}
}
