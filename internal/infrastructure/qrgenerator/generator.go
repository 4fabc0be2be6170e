package qrgenerator

import (
	qr "github.com/skip2/go-qrcode"
)

type Generator struct {
	size int
}

func NewGenerator(size int) *Generator {
	return &Generator{size: size}
}

func (g *Generator) Generate(checkoutURL string) ([]byte, error) {
	return qr.Encode(checkoutURL, qr.Medium, g.size)
}
