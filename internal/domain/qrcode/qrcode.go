package qrcode

// Generator renders a scannable image pointing at a hosted checkout page.
type Generator interface {
	Generate(checkoutURL string) ([]byte, error)
}
