package utils

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

const qrCodeSize = 256

// TableMenuURL is the public menu link printed on a table's QR code.
func TableMenuURL(baseURL string, restaurantID int64, tableNumber string) string {
	return fmt.Sprintf("%s/menu?restaurantId=%d&table=%s", baseURL, restaurantID, url.QueryEscape(tableNumber))
}

// EncodeQRCode renders content as a PNG QR code.
func EncodeQRCode(content string) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, qrCodeSize)
}
