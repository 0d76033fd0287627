package pubsub

import "github.com/tdex-network/escrowd/internal/core/domain"

func getOfferPayload(offer domain.Offer) map[string]interface{} {
	return map[string]interface{}{
		"id":               offer.Id,
		"creator":          offer.Creator,
		"counterparty":     offer.Counterparty,
		"offered_payment":  getPaymentPayload(offer.OfferedPayment),
		"accepted_payment": getPaymentPayload(offer.AcceptedPayment),
	}
}

func getPaymentPayload(p domain.Payment) map[string]interface{} {
	return map[string]interface{}{
		"token":    p.TokenRef,
		"sub_unit": p.SubUnit,
		"amount":   p.Amount.String(),
	}
}
