// Package geocode resolves coordinates to a human-readable address via
// the Nominatim reverse endpoint. Lookups are best-effort: any failure
// yields the NotAvailable sentinel and must never block checkout.
package geocode

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// NotAvailable is returned whenever a lookup fails for any reason.
const NotAvailable = "Address not available"

const defaultBaseURL = "https://nominatim.openstreetmap.org"

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

type reverseResponse struct {
	DisplayName string `json:"display_name"`
}

// Reverse returns the display address for the given coordinates, or
// NotAvailable if the lookup fails.
func (c *Client) Reverse(lat, lon float64) string {
	url := fmt.Sprintf("%s/reverse?format=jsonv2&lat=%f&lon=%f", c.BaseURL, lat, lon)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return NotAvailable
	}
	// Nominatim requires an identifying user agent.
	req.Header.Set("User-Agent", "TasteKart/1.0 (https://tastekart.com)")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return NotAvailable
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return NotAvailable
	}

	var body reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.DisplayName == "" {
		return NotAvailable
	}
	return body.DisplayName
}
