package chapa

// TransactionRequest is the JSON body for Initialize. Keys mirror the
// provider's wire names: amount, currency, email, first_name, last_name
// and callback_url are required, tx_ref and customization are optional.
type TransactionRequest map[string]any

// Options tweaks how a single Initialize call behaves.
type Options struct {
	// AutoRef tolerates a missing tx_ref; normalization generates one.
	AutoRef bool
}

// Result is a decoded provider response annotated with the tx_ref of the
// request that produced it.
type Result map[string]any

func (r Result) TxRef() string {
	s, _ := r["tx_ref"].(string)
	return s
}

func (r Result) Status() string {
	s, _ := r["status"].(string)
	return s
}

func (r Result) Message() string {
	s, _ := r["message"].(string)
	return s
}

func (r Result) Data() map[string]any {
	m, _ := r["data"].(map[string]any)
	return m
}

func (r Result) CheckoutURL() string {
	s, _ := r.Data()["checkout_url"].(string)
	return s
}
