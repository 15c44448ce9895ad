package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// QRGenerator renders a scannable link to a restaurant's public page.
type QRGenerator interface {
	Generate(restaurantID string) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(restaurantID string) ([]byte, error) {
	qrData := fmt.Sprintf("%s/restaurants/%s", g.BaseURL, restaurantID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
