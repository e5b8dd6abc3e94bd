package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Card carries the opaque card details forwarded to the processor. This
// service never inspects or validates them.
type Card struct {
	Number string `json:"ccNumber"`
	CVV    string `json:"ccv"`
	Expiry string `json:"expirationDate"`
}

// Response is the processor's reply, status code plus raw body.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client posts payment confirmations to a processor host over HTTPS. Deciding
// which hosts are contactable is the caller's job; the client is plain
// transport.
type Client struct {
	httpClient *http.Client
}

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient}
}

// Charge issues one POST to https://<host>/payments with the card details as
// JSON body. No retries; timeouts are whatever the transport defaults to.
func (c *Client) Charge(host string, card Card) (*Response, error) {
	payload, err := json.Marshal(card)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("https://%s/payments", host)
	resp, err := c.httpClient.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
