package escrowv1

type Payment struct {
	TokenRef string `json:"token_ref"`
	SubUnit  uint64 `json:"sub_unit"`
	// Amount is a base 10 integer string, arbitrary precision.
	Amount string `json:"amount"`
}

func (p *Payment) GetTokenRef() string {
	if p == nil {
		return ""
	}
	return p.TokenRef
}

func (p *Payment) GetSubUnit() uint64 {
	if p == nil {
		return 0
	}
	return p.SubUnit
}

func (p *Payment) GetAmount() string {
	if p == nil {
		return ""
	}
	return p.Amount
}

type Offer struct {
	Id              uint64   `json:"id"`
	Creator         string   `json:"creator"`
	OfferedPayment  *Payment `json:"offered_payment"`
	AcceptedPayment *Payment `json:"accepted_payment"`
	Counterparty    string   `json:"counterparty"`
}

type CreateOfferRequest struct {
	Deposit         *Payment `json:"deposit"`
	AcceptedPayment *Payment `json:"accepted_payment"`
	Counterparty    string   `json:"counterparty"`
}

type CreateOfferResponse struct {
	OfferId uint64 `json:"offer_id"`
}

type AcceptOfferRequest struct {
	OfferId uint64   `json:"offer_id"`
	Deposit *Payment `json:"deposit"`
}

type AcceptOfferResponse struct{}

type CancelOfferRequest struct {
	OfferId uint64 `json:"offer_id"`
}

type CancelOfferResponse struct{}

type GetOfferRequest struct {
	OfferId uint64 `json:"offer_id"`
}

type GetOfferResponse struct {
	Offer *Offer `json:"offer"`
}

type ListOffersRequest struct {
	Address string `json:"address"`
}

type ListOffersResponse struct {
	Offers []*Offer `json:"offers"`
}

type GetLastOfferIdRequest struct{}

type GetLastOfferIdResponse struct {
	OfferId uint64 `json:"offer_id"`
}

type FundAccountRequest struct {
	Account string   `json:"account"`
	Payment *Payment `json:"payment"`
}

type FundAccountResponse struct{}

type GetBalanceRequest struct {
	Account  string `json:"account"`
	TokenRef string `json:"token_ref"`
	SubUnit  uint64 `json:"sub_unit"`
}

type GetBalanceResponse struct {
	Amount string `json:"amount"`
}

type AddWebhookRequest struct {
	Event    string `json:"event"`
	Endpoint string `json:"endpoint"`
	Secret   string `json:"secret,omitempty"`
}

type AddWebhookResponse struct {
	Id string `json:"id"`
}

type RemoveWebhookRequest struct {
	Id string `json:"id"`
}

type RemoveWebhookResponse struct{}

type ListWebhooksRequest struct {
	Event string `json:"event"`
}

type WebhookInfo struct {
	Id        string `json:"id"`
	Event     string `json:"event"`
	Endpoint  string `json:"endpoint"`
	IsSecured bool   `json:"is_secured"`
}

type ListWebhooksResponse struct {
	WebhookInfo []*WebhookInfo `json:"webhook_info"`
}
