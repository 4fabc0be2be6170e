package chapagateway

import (
	"context"

	"github.com/addispay/chapa-pay-hub/internal/domain/payment"
	"github.com/addispay/chapa-pay-hub/pkg/chapa"
)

type Gateway struct {
	client *chapa.Client
}

func NewGateway(client *chapa.Client) *Gateway {
	return &Gateway{client: client}
}

func (g *Gateway) Initialize(ctx context.Context, req payment.Request) (*payment.InitResult, error) {
	body := chapa.TransactionRequest{
		"amount":       req.Amount,
		"currency":     req.Currency,
		"email":        req.Email,
		"first_name":   req.FirstName,
		"last_name":    req.LastName,
		"callback_url": req.CallbackURL,
	}
	if req.TxRef != "" {
		body["tx_ref"] = req.TxRef
	}
	if len(req.Customization) > 0 {
		body["customization"] = req.Customization
	}

	res, err := g.client.Initialize(ctx, body, chapa.Options{AutoRef: req.TxRef == ""})
	if err != nil {
		return nil, err
	}

	return &payment.InitResult{
		TxRef:       res.TxRef(),
		CheckoutURL: res.CheckoutURL(),
		Message:     res.Message(),
	}, nil
}

func (g *Gateway) Verify(ctx context.Context, txRef string) (*payment.VerifyResult, error) {
	res, err := g.client.Verify(ctx, txRef)
	if err != nil {
		return nil, err
	}

	return &payment.VerifyResult{
		TxRef:   res.TxRef(),
		Status:  verifyStatus(res),
		Amount:  verifyAmount(res),
		Message: res.Message(),
	}, nil
}

// the provider reports the transaction state inside data, separate from
// the envelope status of the call itself
func verifyStatus(res chapa.Result) string {
	if s, ok := res.Data()["status"].(string); ok {
		return s
	}
	return res.Status()
}

func verifyAmount(res chapa.Result) float64 {
	a, _ := res.Data()["amount"].(float64)
	return a
}
