package qrcode

import (
	"fmt"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

const pngSize = 512

// MenuURL builds the public menu address a printed code points at.
func MenuURL(baseURL, slug string) string {
	return fmt.Sprintf("%s/m/%s", strings.TrimRight(baseURL, "/"), slug)
}

// GeneratePNG renders the menu URL as a PNG with medium error
// correction, enough to survive a laminated tabletop print.
func GeneratePNG(baseURL, slug string) ([]byte, error) {
	return qr.Encode(MenuURL(baseURL, slug), qr.Medium, pngSize)
}
