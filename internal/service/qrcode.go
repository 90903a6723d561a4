package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes the public storefront URL for a tenant.
type DefaultQRGenerator struct {
	Scheme     string
	RootDomain string
}

func (g DefaultQRGenerator) Generate(subdomain string) ([]byte, error) {
	qrData := fmt.Sprintf("%s://%s.%s", g.Scheme, subdomain, g.RootDomain)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}

var _ QRGenerator = DefaultQRGenerator{}
