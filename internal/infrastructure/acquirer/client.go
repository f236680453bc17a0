// Package acquirer implements the HTTP client for the acquiring bank.
package acquirer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cardpay/gateway/internal/application"
	"github.com/cardpay/gateway/internal/config"
)

type HTTPAcquirerClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.AcquirerConfig) application.AcquirerClient {
	return &HTTPAcquirerClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

// AuthorisePayment posts the authorisation request to the bank. There is no
// retry here: any transport failure, non-success status or malformed body
// propagates to the caller as-is.
func (c *HTTPAcquirerClient) AuthorisePayment(ctx context.Context, req application.AuthorisationRequest) (*application.AuthorisationResponse, error) {
	url := fmt.Sprintf("%s/payments", c.baseURL)

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("error marshalling json: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &AcquirerError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	var acquirerResp application.AuthorisationResponse
	if err := json.NewDecoder(resp.Body).Decode(&acquirerResp); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &acquirerResp, nil
}
