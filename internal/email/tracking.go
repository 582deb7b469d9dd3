package email

import (
	"fmt"
	"net/url"
	"time"
)

// TrackingGIF is a 1x1 transparent GIF, 43 bytes. The beacon endpoint
// returns these exact bytes on every request, no matter what happened
// server-side, so that broken tracking can never break an email client's
// image rendering.
var TrackingGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, // GIF89a
	0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00, // 1x1, global color table
	0x00, 0x00, 0x00, 0xff, 0xff, 0xff, // black, white
	0x21, 0xf9, 0x04, 0x01, 0x00, 0x00, 0x00, 0x00, // graphic control, transparent
	0x2c, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x01, 0x00, 0x00, // image descriptor
	0x02, 0x02, 0x44, 0x01, 0x00, // image data
	0x3b, // trailer
}

// TrackingPixelURL builds the beacon URL for an invoice email. The t
// parameter is a cache-buster so each send produces a distinct URL.
func TrackingPixelURL(baseURL, invoiceID, customerID string) string {
	q := url.Values{}
	q.Set("invoice_id", invoiceID)
	q.Set("customer_id", customerID)
	q.Set("t", fmt.Sprintf("%d", time.Now().UnixMilli()))
	return baseURL + "/track-email-open?" + q.Encode()
}

// AppendTrackingPixel appends a hidden 1x1 image to the HTML body.
func AppendTrackingPixel(htmlContent, baseURL, invoiceID, customerID string) string {
	pixel := fmt.Sprintf(`<img src="%s" width="1" height="1" style="display:none;" alt="" />`,
		TrackingPixelURL(baseURL, invoiceID, customerID))
	return htmlContent + pixel
}
