package payment

import "context"

type Request struct {
	TxRef         string
	Amount        float64
	Currency      string
	Email         string
	FirstName     string
	LastName      string
	CallbackURL   string
	Customization map[string]any
}

type InitResult struct {
	TxRef       string
	CheckoutURL string
	Message     string
}

type VerifyResult struct {
	TxRef   string
	Status  string
	Amount  float64
	Message string
}

// Gateway is the payment provider boundary. An empty Request.TxRef asks
// the provider side to generate the reference.
type Gateway interface {
	Initialize(ctx context.Context, req Request) (*InitResult, error)
	Verify(ctx context.Context, txRef string) (*VerifyResult, error)
}
