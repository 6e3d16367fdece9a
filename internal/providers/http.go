package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultTimeout bounds every outbound provider call. The upstream APIs
// occasionally hang, so an unbounded client would stall a whole turn.
const DefaultTimeout = 10 * time.Second

// NewHTTPClient returns the client shared by provider requestors.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// GetJSON issues a single GET and decodes the body into v. Numeric
// literals are preserved as json.Number so callers can build decimals
// from the string form without a float64 round trip.
func GetJSON(ctx context.Context, client *http.Client, url string, v any) *Error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return WrapError(TransportError, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return WrapError(TransportError, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return NewError(TransportError, fmt.Sprintf("%s returned %s", url, resp.Status))
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return WrapError(MalformedResponse, err)
	}
	return nil
}

// DecimalFromNumber converts a json.Number to a decimal via its string
// form, keeping the exact digits the upstream sent.
func DecimalFromNumber(n json.Number) (decimal.Decimal, *Error) {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, WrapError(MalformedResponse, err)
	}
	return d, nil
}

// DecimalFromString converts an upstream string field to a decimal.
func DecimalFromString(s string) (decimal.Decimal, *Error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, WrapError(MalformedResponse, err)
	}
	return d, nil
}
